package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["serve"], "serve command should be registered")
	assert.True(t, names["analyze"], "analyze command should be registered")
	assert.True(t, names["seed"], "seed command should be registered")
}

func TestAnalyzeRequiresHandle(t *testing.T) {
	err := analyzeCmd.Args(analyzeCmd, []string{})
	assert.Error(t, err)

	err = analyzeCmd.Args(analyzeCmd, []string{"some_handle"})
	assert.NoError(t, err)
}

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := resolveConfig("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestResolveConfig_BadPath(t *testing.T) {
	_, err := resolveConfig("/no/such/config.json")
	assert.Error(t, err)
}
