package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside BaseDir.
const FileName = "config.yaml"

// DefaultCategories is the category suggestion list offered when the
// config file does not provide one.
var DefaultCategories = []string{
	"GenAI",
	"Operating Systems",
	"Digital Electronics and Logic Design",
}

// Config holds the application configuration.
type Config struct {
	DatabasePath string   `yaml:"database_path,omitempty"` // SQLite file location
	Categories   []string `yaml:"categories,omitempty"`    // category suggestions for the form
}

// BaseDir returns the application data directory (~/.studylog).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".studylog"), nil
}

// Default returns the built-in configuration rooted at base.
func Default(base string) *Config {
	return &Config{
		DatabasePath: filepath.Join(base, "study_logs.db"),
		Categories:   append([]string(nil), DefaultCategories...),
	}
}

// Load reads the YAML config at path. A missing file yields the defaults
// rooted at base; a partial file keeps defaults for whatever it leaves
// unset, so the caller always gets a usable config.
func Load(path, base string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(base), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(base, "study_logs.db")
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = append([]string(nil), DefaultCategories...)
	}
	return &cfg, nil
}
