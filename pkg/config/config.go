// Package config loads and validates the server configuration from
// roundtable.yaml, merged over built-in defaults.
package config

import (
	"fmt"
)

// Config is the fully merged and validated server configuration.
type Config struct {
	Server   ServerConfig     `yaml:"server"`
	LLM      *LLMConfig       `yaml:"llm"`
	Queue    *QueueConfig     `yaml:"queue"`
	Sessions *SessionDefaults `yaml:"sessions"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host             string   `yaml:"host"`
	Port             int      `yaml:"port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// SessionDefaults are applied to start requests that omit the
// corresponding field. NumParticipants and MaxIterations are also the
// clamping targets for out-of-range requests.
type SessionDefaults struct {
	MaxIterations      int     `yaml:"max_iterations"`
	NumParticipants    int     `yaml:"num_participants"`
	DeltaThreshold     float64 `yaml:"delta_threshold"`
	StopOnNoHighIssues *bool   `yaml:"stop_on_no_high_issues"`
	DocumentType       string  `yaml:"document_type"`
	MaxIterationsCap   int     `yaml:"max_iterations_cap"`
}

// DefaultSessionDefaults returns the built-in session defaults.
func DefaultSessionDefaults() *SessionDefaults {
	stopOnNoHigh := true
	return &SessionDefaults{
		MaxIterations:      5,
		NumParticipants:    3,
		DeltaThreshold:     0.05,
		StopOnNoHighIssues: &stopOnNoHigh,
		DocumentType:       "document",
		MaxIterationsCap:   20,
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}
	if cfg.LLM.DefaultModel == "" {
		return fmt.Errorf("llm.default_model is required")
	}
	if cfg.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be at least 1")
	}
	if cfg.Sessions.MaxIterations < 1 || cfg.Sessions.MaxIterations > cfg.Sessions.MaxIterationsCap {
		return fmt.Errorf("sessions.max_iterations %d out of range", cfg.Sessions.MaxIterations)
	}
	if cfg.Sessions.DeltaThreshold < 0 || cfg.Sessions.DeltaThreshold > 1 {
		return fmt.Errorf("sessions.delta_threshold %g out of range", cfg.Sessions.DeltaThreshold)
	}
	return nil
}
