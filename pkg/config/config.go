// Package config provides configuration loading and management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/mjpegpack/pkg/orchestrator"
	"github.com/user/mjpegpack/pkg/pipeline"
)

// Config represents the full configuration for mjpegpack.
type Config struct {
	// Input/Output
	InputDir   string   `yaml:"input"`
	OutputPath string   `yaml:"output"`
	Extensions []string `yaml:"extensions"`

	// Reporting
	SummaryPath string `yaml:"summary"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Extensions: pipeline.DefaultExtensions(),
		DebugDir:   "./debug",
		LogLevel:   "info",
	}
}

// LoadFromFile loads configuration from a YAML file, starting from the
// defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		InputDir:   c.InputDir,
		OutputPath: c.OutputPath,
		Extensions: c.Extensions,
	}
}
