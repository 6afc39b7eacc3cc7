package profile

import (
	"strings"

	"github.com/jonathan/drip-agent/internal/types"
)

const manualBioLimit = 160

// ParseManualInput builds a profile from pasted text, one post per
// non-empty line. The bio is the first post truncated to 160 characters, and
// follower counts are fixed placeholders.
func ParseManualInput(input, handle string) *types.Profile {
	if handle == "" {
		handle = "demo_user"
	}

	var posts []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			posts = append(posts, line)
		}
	}

	bio := ""
	if len(posts) > 0 {
		bio = posts[0]
		if len(bio) > manualBioLimit {
			bio = bio[:manualBioLimit]
		}
	}

	return &types.Profile{
		Handle:    handle,
		Bio:       bio,
		Followers: 1000,
		Following: 500,
		Posts:     posts,
	}
}
