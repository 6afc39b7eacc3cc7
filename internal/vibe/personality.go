// Package vibe infers a personality/demographic/aesthetic profile from raw
// profile text and merges it with weather and color-season analysis.
package vibe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/prompts"
	"github.com/jonathan/drip-agent/internal/schemas"
	"github.com/jonathan/drip-agent/internal/types"
)

// PersonalityAgent turns raw profile text into structured personality and
// aesthetic attributes via one inference call. A failed or malformed result
// is fatal: personality is load-bearing for everything downstream.
type PersonalityAgent struct {
	client llm.Client
}

// NewPersonalityAgent creates a personality agent using the given client.
func NewPersonalityAgent(client llm.Client) *PersonalityAgent {
	return &PersonalityAgent{client: client}
}

// Analyze runs the personality inference call for a profile.
func (a *PersonalityAgent) Analyze(ctx context.Context, profile *types.Profile) (*types.PersonalityAnalysis, error) {
	system := prompts.MustGet("vibe.json", "personality-system")
	user := prompts.Format(prompts.MustGet("vibe.json", "personality-user"), map[string]string{
		"Handle":    profile.Handle,
		"Bio":       profile.Bio,
		"Followers": strconv.Itoa(profile.Followers),
		"Following": strconv.Itoa(profile.Following),
		"Posts":     formatPosts(profile.Posts),
	})

	response, err := a.client.Complete(ctx, system, user, llm.TierStandard, llm.Options{JSONMode: true})
	if err != nil {
		return nil, &APICallError{Message: "personality analysis failed", Cause: err}
	}

	if err := schemas.Validate(schemas.Personality, []byte(response)); err != nil {
		return nil, &ParseError{Message: "personality response failed validation", Cause: err}
	}

	var analysis types.PersonalityAnalysis
	if err := json.Unmarshal([]byte(response), &analysis); err != nil {
		return nil, &ParseError{Message: "failed to parse personality JSON", Cause: err}
	}

	return &analysis, nil
}

// formatPosts renders text samples as a bulleted block for prompt insertion.
func formatPosts(posts []string) string {
	if len(posts) == 0 {
		return "(no posts available)"
	}
	var b strings.Builder
	for i, post := range posts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, post)
	}
	return b.String()
}
