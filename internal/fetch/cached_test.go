package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedFetcher_NilDatabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><main>bio text here</main></body></html>"))
	}))
	defer server.Close()

	f := NewCachedFetcher(nil, nil)
	result, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Contains(t, result.Text, "bio text here")

	// Invalidation is a no-op without a database.
	assert.NoError(t, f.InvalidateCache(context.Background(), server.URL))
}

func TestDefaultCachedFetcherConfig(t *testing.T) {
	cfg := DefaultCachedFetcherConfig()
	assert.False(t, cfg.SkipCache)
	assert.NotZero(t, cfg.CacheTTL)
	assert.NotNil(t, cfg.Options)
}
