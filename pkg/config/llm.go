package config

import "time"

// LLMConfig holds the LLM sidecar connection and model settings. All
// completions go through the gRPC sidecar; provider credentials live
// with the sidecar, not here.
type LLMConfig struct {
	// SidecarAddress is the gRPC endpoint of the LLM sidecar.
	SidecarAddress string `yaml:"sidecar_address"`

	// DefaultModel is used for moderator and planner calls and for
	// reviewers under the uniform strategy.
	DefaultModel string `yaml:"default_model"`

	// ModelPool is the round-robin pool for the diverse reviewer
	// strategy. Falls back to DefaultModel when empty.
	ModelPool []string `yaml:"model_pool"`

	// RequestTimeout bounds a single completion call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxAttempts is the retry budget for transient failures.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		SidecarAddress: "localhost:50051",
		DefaultModel:   "gpt-4o",
		RequestTimeout: 2 * time.Minute,
		MaxAttempts:    3,
	}
}
