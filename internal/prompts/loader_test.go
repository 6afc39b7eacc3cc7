package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("vibe.json", "personality-system")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "personality_traits")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("vibe.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	out := Format("why {{.ProductName}} suits {{.Energy}}", map[string]string{
		"ProductName": "Box Logo Hoodie",
		"Energy":      "chaotic builder",
	})
	assert.Equal(t, "why Box Logo Hoodie suits chaotic builder", out)
}

func TestList_AllFilesHaveKeys(t *testing.T) {
	ClearCache()

	for _, file := range []string{"vibe.json", "style.json", "shopping.json"} {
		keys, err := List(file)
		require.NoError(t, err, file)
		assert.NotEmpty(t, keys, file)
	}
}
