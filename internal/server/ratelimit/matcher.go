package ratelimit

import "strings"

// MatchEndpoint resolves a request path and method to its configured tier.
// Exact path matches win; tiers whose path ends in "/" also match as a
// prefix, which covers id-suffixed routes like /status/{id}. Returns nil
// when only the default tier applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}
	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}
	return nil
}
