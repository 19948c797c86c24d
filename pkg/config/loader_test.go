package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestInitializeDefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5, cfg.Sessions.MaxIterations)
	assert.Equal(t, 0.05, cfg.Sessions.DeltaThreshold)
	require.NotNil(t, cfg.Sessions.StopOnNoHighIssues)
	assert.True(t, *cfg.Sessions.StopOnNoHighIssues)
}

func TestInitializeMergesUserConfig(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9999
llm:
  default_model: claude-sonnet
  model_pool: [claude-sonnet, gpt-4o, gemini-pro]
sessions:
  max_iterations: 8
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "claude-sonnet", cfg.LLM.DefaultModel)
	assert.Len(t, cfg.LLM.ModelPool, 3)
	assert.Equal(t, 8, cfg.Sessions.MaxIterations)
	// Untouched fields keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3, cfg.Sessions.NumParticipants)
}

func TestInitializeExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_MODEL", "gpt-4o-mini")
	dir := writeConfig(t, `
llm:
  default_model: ${TEST_MODEL}
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.DefaultModel)
}

func TestInitializeValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "server:\n  port: -1\n"},
		{"negative workers", "queue:\n  worker_count: -1\n"},
		{"delta out of range", "sessions:\n  delta_threshold: 1.5\n"},
		{"max iterations above cap", "sessions:\n  max_iterations: 100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Initialize(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestInitializeRejectsMalformedYAML(t *testing.T) {
	_, err := Initialize(writeConfig(t, "server: [not a map"))
	assert.Error(t, err)
}
