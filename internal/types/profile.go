// Package types provides type definitions for structured data used throughout the drip-agent system.
package types

// Profile holds the raw social profile a job analyzes. It is immutable once
// fetched and owned exclusively by the job that fetched it.
type Profile struct {
	Handle    string   `json:"handle"`
	Bio       string   `json:"bio"`
	Followers int      `json:"followers"`
	Following int      `json:"following"`
	Posts     []string `json:"posts"`
	Location  string   `json:"location,omitempty"`
	Name      string   `json:"name,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
}
