package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPageCacheTTL is how long a cached profile page stays fresh.
const DefaultPageCacheTTL = 24 * time.Hour

// ProfilePage is a cached copy of a fetched profile page.
type ProfilePage struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Platform   string    `json:"platform"`
	RawHTML    string    `json:"raw_html"`
	ParsedText string    `json:"parsed_text"`
	HTTPStatus int       `json:"http_status"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// GetFreshProfilePage retrieves a cached page for a URL if it was fetched
// within ttl. Returns nil, nil when there is no fresh copy.
func (s *Store) GetFreshProfilePage(ctx context.Context, url string, ttl time.Duration) (*ProfilePage, error) {
	var page ProfilePage
	err := s.pool.QueryRow(ctx,
		`SELECT id, url, platform, raw_html, parsed_text, http_status, fetched_at
		 FROM profile_pages
		 WHERE url = $1 AND fetched_at > NOW() - $2::interval`,
		url, ttl,
	).Scan(&page.ID, &page.URL, &page.Platform, &page.RawHTML, &page.ParsedText,
		&page.HTTPStatus, &page.FetchedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}
	return &page, nil
}

// UpsertProfilePage stores a fetched page, replacing any previous copy for
// the same URL.
func (s *Store) UpsertProfilePage(ctx context.Context, page *ProfilePage) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO profile_pages (url, platform, raw_html, parsed_text, http_status, fetched_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (url) DO UPDATE
		 SET platform = $2, raw_html = $3, parsed_text = $4, http_status = $5, fetched_at = NOW()
		 RETURNING id, fetched_at`,
		page.URL, page.Platform, page.RawHTML, page.ParsedText, page.HTTPStatus,
	).Scan(&page.ID, &page.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert cached page: %w", err)
	}
	return nil
}

// DeleteProfilePage removes the cached copy of a URL, if any.
func (s *Store) DeleteProfilePage(ctx context.Context, url string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM profile_pages WHERE url = $1`, url)
	if err != nil {
		return fmt.Errorf("failed to delete cached page: %w", err)
	}
	return nil
}
