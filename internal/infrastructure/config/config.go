package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/straion/straion-claude-plugin/internal/adapters/otel"
)

// Hooks holds configuration shared by all hook commands.
type Hooks struct {
	// ProjectDir is set by the host for every hook invocation.
	ProjectDir string      `envconfig:"CLAUDE_PROJECT_DIR"`
	StraionBin string      `envconfig:"STRAION_BIN" default:"straion"`
	LogLevel   string      `envconfig:"STRAION_HOOKS_LOG_LEVEL" default:"warn"`
	Otel       otel.Config `ignored:"true"`
}

// Default returns the configuration used when the environment cannot be read.
// CLAUDE_PROJECT_DIR is still honoured so the log lands in the right project.
func Default() *Hooks {
	return &Hooks{
		ProjectDir: os.Getenv("CLAUDE_PROJECT_DIR"),
		StraionBin: "straion",
		LogLevel:   "warn",
	}
}

// LoadHooks loads hook configuration from environment variables.
// An unset CLAUDE_PROJECT_DIR falls back to the current working directory.
// Telemetry settings are not read here: see LoadOtel.
func LoadHooks() (*Hooks, error) {
	var cfg Hooks
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.resolveProjectDir(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOtel loads the metrics exporter settings. A malformed value yields a
// disabled configuration together with the error.
func LoadOtel() (otel.Config, error) {
	var cfg otel.Config
	if err := envconfig.Process("", &cfg); err != nil {
		return otel.Config{}, fmt.Errorf("invalid telemetry config: %w", err)
	}
	return cfg, nil
}

func (c *Hooks) resolveProjectDir() error {
	if c.ProjectDir != "" {
		return nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	c.ProjectDir = wd
	return nil
}
