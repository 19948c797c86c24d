package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the expected YAML file name inside the config
// directory.
const ConfigFileName = "roundtable.yaml"

// Initialize loads roundtable.yaml from configDir, merges it over the
// built-in defaults and validates the result. A missing file is fine;
// the defaults alone are a working configuration.
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := defaultConfig()

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("No configuration file found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	default:
		var user Config
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &user); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		// User values override the defaults; unset fields keep them.
		if err := mergo.Merge(cfg, &user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging configuration: %w", err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"listen", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		"workers", cfg.Queue.WorkerCount,
		"default_model", cfg.LLM.DefaultModel)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		LLM:      DefaultLLMConfig(),
		Queue:    DefaultQueueConfig(),
		Sessions: DefaultSessionDefaults(),
	}
}
