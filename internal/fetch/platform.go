// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known social media platform.
type Platform string

const (
	// PlatformInstagram is an Instagram profile page
	PlatformInstagram Platform = "instagram"
	// PlatformTwitter is a Twitter/X profile page
	PlatformTwitter Platform = "twitter"
	// PlatformTikTok is a TikTok profile page
	PlatformTikTok Platform = "tiktok"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the social platform from a profile URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "instagram.com") {
		return PlatformInstagram
	}

	if strings.Contains(host, "twitter.com") ||
		host == "x.com" || strings.HasSuffix(host, ".x.com") {
		return PlatformTwitter
	}

	if strings.Contains(host, "tiktok.com") {
		return PlatformTikTok
	}

	return PlatformUnknown
}

// ProfileURL builds the canonical profile URL for a handle on a platform.
func ProfileURL(platform Platform, handle string) string {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	switch platform {
	case PlatformInstagram:
		return "https://www.instagram.com/" + handle + "/"
	case PlatformTwitter:
		return "https://x.com/" + handle
	case PlatformTikTok:
		return "https://www.tiktok.com/@" + handle
	default:
		return ""
	}
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformInstagram:
		return []string{
			"header section",
			"main header",
			"main[role='main']",
			"main",
		}
	case PlatformTwitter:
		return []string{
			"[data-testid='UserProfileHeader_Items']",
			"[data-testid='UserDescription']",
			"[data-testid='primaryColumn']",
			"main",
		}
	case PlatformTikTok:
		return []string{
			"[data-e2e='user-page']",
			"[data-e2e='user-bio']",
			"main",
		}
	default:
		return DefaultTextSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Login and signup walls
		"form",
		".login-wrapper",
		".sign-up",
		"[data-testid='loginForm']",
		"[data-testid='signupButton']",

		// App install banners
		".app-banner",
		".smartbanner",
		".download-app",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformInstagram:
		return append(common,
			"[role='dialog']",
			".suggested-users",
		)
	case PlatformTwitter:
		return append(common,
			"[data-testid='sidebarColumn']",
			"[data-testid='BottomBar']",
			"[aria-label='Trending']",
		)
	case PlatformTikTok:
		return append(common,
			"[data-e2e='recommend-list']",
			".video-feed",
		)
	default:
		return common
	}
}
