// Package config loads the shell's rc file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure of the rc file.
type Config struct {
	Prompt     string            `yaml:"prompt"`
	History    HistoryConfig     `yaml:"history"`
	Completion CompletionConfig  `yaml:"completion"`
	Aliases    map[string]string `yaml:"aliases"`
}

// HistoryConfig configures the command history store.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// CompletionConfig configures the completion provider.
type CompletionConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no rc file exists.
func Default() Config {
	return Config{
		Prompt:     "> ",
		Completion: CompletionConfig{Enabled: true},
	}
}

// DefaultPath returns the default rc file path, or "" if no suitable
// directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "corvid", "rc.yaml")
}

// Load reads the rc file at path, filling in defaults for absent fields. A
// missing or empty path yields the default configuration; a malformed file
// is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %v: %w", path, err)
	}
	return cfg, nil
}
