// Package profile acquires social profiles: scraped from a platform,
// parsed from manually supplied text, or taken from a built-in demo set.
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/drip-agent/internal/fetch"
	"github.com/jonathan/drip-agent/internal/types"
)

const (
	actorEndpoint = "https://api.apify.com/v2/acts/quacker~twitter-scraper/run-sync-get-dataset-items"
	actorTimeout  = 60 * time.Second

	maxPosts = 30
)

// ScrapeError represents a failure to acquire a profile.
type ScrapeError struct {
	Handle  string
	Message string
	Cause   error
}

func (e *ScrapeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scrape error for @%s: %s: %v", e.Handle, e.Message, e.Cause)
	}
	return fmt.Sprintf("scrape error for @%s: %s", e.Handle, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Cause
}

// Scraper acquires profiles from the network. Construct with NewScraper.
type Scraper struct {
	actorToken string
	client     *http.Client
	fetcher    *fetch.CachedFetcher
	verbose    bool
}

// NewScraper creates a scraper. An empty actorToken disables the scraper
// actor and goes straight to direct page fetching. fetcher may be nil, in
// which case pages are fetched without caching.
func NewScraper(actorToken string, fetcher *fetch.CachedFetcher, verbose bool) *Scraper {
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(nil, nil)
	}
	return &Scraper{
		actorToken: actorToken,
		client:     &http.Client{Timeout: actorTimeout},
		fetcher:    fetcher,
		verbose:    verbose,
	}
}

// Scrape acquires a profile for a handle, trying the scraper actor first and
// falling back to direct page fetching.
func (s *Scraper) Scrape(ctx context.Context, handle string) (*types.Profile, error) {
	handle = CleanHandle(handle)
	if handle == "" {
		return nil, &ScrapeError{Handle: handle, Message: "empty handle"}
	}

	if s.actorToken != "" {
		profile, err := s.scrapeViaActor(ctx, handle)
		if err == nil {
			return profile, nil
		}
		if s.verbose {
			log.Printf("[SCRAPE] actor failed for @%s, trying page fetch: %v", handle, err)
		}
	}

	return s.scrapeViaPage(ctx, handle)
}

// CleanHandle strips whitespace and a leading @ from a handle.
func CleanHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

type actorItem struct {
	FullText string `json:"full_text"`
	User     struct {
		Description     string `json:"description"`
		FollowersCount  int    `json:"followers_count"`
		FriendsCount    int    `json:"friends_count"`
		Name            string `json:"name"`
		Location        string `json:"location"`
		ProfileImageURL string `json:"profile_image_url_https"`
	} `json:"user"`
}

// scrapeViaActor runs the hosted scraper actor synchronously and maps its
// dataset items into a profile.
func (s *Scraper) scrapeViaActor(ctx context.Context, handle string) (*types.Profile, error) {
	payload, err := json.Marshal(map[string]any{
		"startUrls":       []string{"https://twitter.com/" + handle},
		"tweetsDesired":   maxPosts,
		"includeUserInfo": true,
	})
	if err != nil {
		return nil, &ScrapeError{Handle: handle, Message: "failed to encode actor input", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		actorEndpoint+"?token="+s.actorToken, bytes.NewReader(payload))
	if err != nil {
		return nil, &ScrapeError{Handle: handle, Message: "failed to create actor request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &ScrapeError{Handle: handle, Message: "actor request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &ScrapeError{Handle: handle, Message: fmt.Sprintf("actor HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ScrapeError{Handle: handle, Message: "failed to read actor response", Cause: err}
	}

	var items []actorItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &ScrapeError{Handle: handle, Message: "failed to decode actor response", Cause: err}
	}
	if len(items) == 0 {
		return nil, &ScrapeError{Handle: handle, Message: "profile not found"}
	}

	var posts []string
	for _, item := range items {
		if item.FullText != "" {
			posts = append(posts, item.FullText)
		}
		if len(posts) >= maxPosts {
			break
		}
	}

	user := items[0].User
	return &types.Profile{
		Handle:    handle,
		Bio:       user.Description,
		Followers: user.FollowersCount,
		Following: user.FriendsCount,
		Posts:     posts,
		Location:  user.Location,
		Name:      user.Name,
		ImageURL:  user.ProfileImageURL,
	}, nil
}

var followerCountRe = regexp.MustCompile(`([\d,.]+[KkMm]?)\s+Followers`)

// scrapeViaPage fetches the public profile page directly. Profile pages are
// JavaScript-rendered, so the OpenGraph meta tags carry most of the usable
// signal; a headless browser pass fills in the rest when available.
func (s *Scraper) scrapeViaPage(ctx context.Context, handle string) (*types.Profile, error) {
	url := fetch.ProfileURL(fetch.PlatformTwitter, handle)

	result, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, &ScrapeError{Handle: handle, Message: "page fetch failed", Cause: err}
	}

	html := result.HTML
	text := result.Text
	if fetch.ShouldUseBrowser(text) {
		if rendered, berr := fetch.BrowserSimple(ctx, url, s.verbose); berr == nil {
			html = rendered
			platform := fetch.DetectPlatform(url)
			text, _ = fetch.ExtractMainText(html, fetch.PlatformContentSelectors(platform),
				fetch.PlatformNoiseSelectors(platform)...)
		}
	}

	bio := fetch.MetaContent(html, "og:description", "description")
	name := fetch.MetaContent(html, "og:title")

	var posts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 20 {
			posts = append(posts, line)
		}
		if len(posts) >= maxPosts {
			break
		}
	}

	if bio == "" && len(posts) == 0 {
		return nil, &ScrapeError{Handle: handle, Message: "no usable profile content"}
	}

	return &types.Profile{
		Handle:    handle,
		Bio:       bio,
		Followers: parseFollowerCount(bio + " " + text),
		Posts:     posts,
		Name:      name,
	}, nil
}

// parseFollowerCount pulls a follower count out of free text like
// "1,234 Followers" or "1.2M Followers". Returns 0 when none is found.
func parseFollowerCount(text string) int {
	match := followerCountRe.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	raw := strings.ReplaceAll(match[1], ",", "")
	multiplier := 1.0
	switch {
	case strings.HasSuffix(strings.ToLower(raw), "k"):
		multiplier = 1_000
		raw = raw[:len(raw)-1]
	case strings.HasSuffix(strings.ToLower(raw), "m"):
		multiplier = 1_000_000
		raw = raw[:len(raw)-1]
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(value * multiplier)
}
