package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Model       ModelConfig       `yaml:"model" envPrefix:"MODEL_"`
	Summary     SummaryConfig     `yaml:"summary" envPrefix:"SUMMARY_"`
	Paths       PathsConfig       `yaml:"paths" envPrefix:"PATHS_"`
	Logging     LoggingConfig     `yaml:"logging" envPrefix:"LOG_"`
	Performance PerformanceConfig `yaml:"performance" envPrefix:"PERF_"`
}

// ModelConfig locates the local generation model and its inference runner.
type ModelConfig struct {
	Path       string `yaml:"path" env:"PATH"`
	RunnerPath string `yaml:"runner_path" env:"RUNNER_PATH"`
	Device     string `yaml:"device" env:"DEVICE"`
	MaxTokens  int    `yaml:"max_tokens" env:"MAX_TOKENS"`
}

type SummaryConfig struct {
	Language  string `yaml:"language" env:"LANGUAGE"`
	MaxLength int    `yaml:"max_length" env:"MAX_LENGTH"`
	MinLength int    `yaml:"min_length" env:"MIN_LENGTH"`
}

type PathsConfig struct {
	Input string `yaml:"input" env:"INPUT"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" env:"MAX_CONCURRENT"`
}

// Load reads the YAML config file, applies RENAMEFLOW_* environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "RENAMEFLOW_"}); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Model.Path == "" {
		return fmt.Errorf("model.path is required")
	}
	if c.Model.RunnerPath == "" {
		return fmt.Errorf("model.runner_path is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}

	if c.Model.MaxTokens == 0 {
		c.Model.MaxTokens = 512
	}
	if c.Summary.Language == "" {
		c.Summary.Language = "en"
	}
	if c.Summary.MaxLength == 0 {
		c.Summary.MaxLength = 30
	}
	if c.Summary.MinLength == 0 {
		c.Summary.MinLength = 10
	}
	if c.Summary.MinLength > c.Summary.MaxLength {
		return fmt.Errorf("summary.min_length must not exceed summary.max_length")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
