package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/drip-agent/internal/types"
)

// CreateJob inserts a new analysis job record. The caller supplies the ID,
// handle, status and progress; timestamps come from the database.
func (s *Store) CreateJob(ctx context.Context, job *types.AnalysisJob) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO analysis_jobs (id, handle, status, progress)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		job.ID, job.Handle, string(job.Status), job.Progress,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// JobUpdate holds optional fields for a partial job update. Nil fields are
// left unchanged.
type JobUpdate struct {
	Status     *types.JobStatus
	Progress   *int
	Error      *string
	LookbookID *string
}

// UpdateJob applies a partial update to a job and bumps updated_at.
func (s *Store) UpdateJob(ctx context.Context, jobID string, update JobUpdate) error {
	var status *string
	if update.Status != nil {
		v := string(*update.Status)
		status = &v
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE analysis_jobs
		 SET status = COALESCE($1, status),
		     progress = COALESCE($2, progress),
		     error_message = COALESCE($3, error_message),
		     lookbook_id = COALESCE($4, lookbook_id),
		     updated_at = NOW()
		 WHERE id = $5`,
		status, update.Progress, update.Error, update.LookbookID, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", jobID)
	}
	return nil
}

// GetJob retrieves a job by ID. Returns nil, nil when no job exists.
func (s *Store) GetJob(ctx context.Context, jobID string) (*types.AnalysisJob, error) {
	var job types.AnalysisJob
	var errMsg, lookbookID *string

	err := s.pool.QueryRow(ctx,
		`SELECT id, handle, status, progress, error_message, lookbook_id, created_at, updated_at
		 FROM analysis_jobs WHERE id = $1`,
		jobID,
	).Scan(&job.ID, &job.Handle, &job.Status, &job.Progress, &errMsg, &lookbookID,
		&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if errMsg != nil {
		job.Error = *errMsg
	}
	if lookbookID != nil {
		job.LookbookID = *lookbookID
	}
	return &job, nil
}

// ListJobs retrieves recent jobs, newest first.
func (s *Store) ListJobs(ctx context.Context, limit int) ([]types.AnalysisJob, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, handle, status, progress, error_message, lookbook_id, created_at, updated_at
		 FROM analysis_jobs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.AnalysisJob
	for rows.Next() {
		var job types.AnalysisJob
		var errMsg, lookbookID *string
		if err := rows.Scan(&job.ID, &job.Handle, &job.Status, &job.Progress, &errMsg,
			&lookbookID, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if errMsg != nil {
			job.Error = *errMsg
		}
		if lookbookID != nil {
			job.LookbookID = *lookbookID
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
