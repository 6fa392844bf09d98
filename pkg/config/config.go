// Package config handles loading and managing cervicare configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for cervicare.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Input  InputConfig  `yaml:"input"`
}

// OutputConfig controls how assessments are presented.
type OutputConfig struct {
	Format       string `yaml:"format" validate:"oneof=text json"`
	InsightLimit int    `yaml:"insight_limit" validate:"gte=0"` // 0 shows every insight
	Color        string `yaml:"color" validate:"oneof=auto always never"`
	Language     string `yaml:"language" validate:"oneof=en hi"`
}

// InputConfig controls how response files and answers are accepted.
type InputConfig struct {
	Strict bool `yaml:"strict"` // reject unanswered questions and unknown options
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:       "text",
			InsightLimit: 3,
			Color:        "auto",
			Language:     "en",
		},
	}
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks output options merged from flags, using the same rules as
// the config file.
func (o OutputConfig) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid output options: %w", err)
	}
	return nil
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile looks for .cervicare/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".cervicare", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
