package types

import "time"

// JobStatus is the analysis job state machine. Complete and Error are
// terminal.
type JobStatus string

// Job statuses, in pipeline order.
const (
	StatusPending         JobStatus = "pending"
	StatusScraping        JobStatus = "scraping"
	StatusAnalyzingVibe   JobStatus = "analyzing_vibe"
	StatusMatchingStyle   JobStatus = "matching_style"
	StatusFindingProducts JobStatus = "finding_products"
	StatusComplete        JobStatus = "complete"
	StatusError           JobStatus = "error"
)

// Terminal reports whether no further transitions can occur from s.
func (s JobStatus) Terminal() bool {
	return s == StatusComplete || s == StatusError
}

// AnalysisJob tracks one pipeline run. Progress is monotonically
// non-decreasing; a job reaches StatusComplete if and only if a lookbook with
// LookbookID exists.
type AnalysisJob struct {
	ID         string    `json:"id"`
	Handle     string    `json:"handle"`
	Status     JobStatus `json:"status"`
	Progress   int       `json:"progress"`
	Error      string    `json:"error,omitempty"`
	LookbookID string    `json:"lookbook_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Lookbook is the final persisted bundle for one completed job. Created
// exactly once at job completion; immutable thereafter.
type Lookbook struct {
	ID           string                  `json:"id"`
	Handle       string                  `json:"handle"`
	Profile      Profile                 `json:"profile"`
	Vibe         VibeProfile             `json:"vibe"`
	Style        StyleRecommendation     `json:"style"`
	Products     ShoppingResult          `json:"products"`
	OutfitColors *OutfitColorSuggestions `json:"outfit_colors,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}
