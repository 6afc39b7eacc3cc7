package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/drip-agent/internal/types"
)

// SaveLookbook stores a completed lookbook as a JSONB document. Lookbooks
// are write-once; saving an existing ID is an error.
func (s *Store) SaveLookbook(ctx context.Context, lookbook *types.Lookbook) error {
	doc, err := json.Marshal(lookbook)
	if err != nil {
		return fmt.Errorf("failed to marshal lookbook: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO lookbooks (id, handle, document)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		lookbook.ID, lookbook.Handle, doc,
	).Scan(&lookbook.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save lookbook: %w", err)
	}
	return nil
}

// GetLookbook retrieves a lookbook by ID. Returns nil, nil when no lookbook
// exists.
func (s *Store) GetLookbook(ctx context.Context, lookbookID string) (*types.Lookbook, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM lookbooks WHERE id = $1`,
		lookbookID,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lookbook: %w", err)
	}

	var lookbook types.Lookbook
	if err := json.Unmarshal(doc, &lookbook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lookbook: %w", err)
	}
	return &lookbook, nil
}

// GetLookbookByHandle retrieves the most recent lookbook for a handle.
// Returns nil, nil when the handle has none.
func (s *Store) GetLookbookByHandle(ctx context.Context, handle string) (*types.Lookbook, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM lookbooks WHERE handle = $1
		 ORDER BY created_at DESC LIMIT 1`,
		handle,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lookbook for %s: %w", handle, err)
	}

	var lookbook types.Lookbook
	if err := json.Unmarshal(doc, &lookbook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lookbook: %w", err)
	}
	return &lookbook, nil
}
