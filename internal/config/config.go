// Package config loads beamgrid CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/beamgrid/beam"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every CLI knob. Flags override it.
type Config struct {
	// Workers bounds concurrent traversals in maximize; 0 means GOMAXPROCS.
	Workers int           `yaml:"workers"`
	Entry   EntryConfig   `yaml:"entry"`
	Logging LoggingConfig `yaml:"logging"`
}

// EntryConfig is the default entry for the energize command.
type EntryConfig struct {
	Row int    `yaml:"row"`
	Col int    `yaml:"col"`
	Dir string `yaml:"dir"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings: top-left entry heading
// East, info logging, one worker per CPU.
func DefaultConfig() *Config {
	return &Config{
		Workers: 0,
		Entry: EntryConfig{
			Row: 0,
			Col: 0,
			Dir: "east",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing
// file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("BEAMGRID_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: BEAMGRID_WORKERS=%q", ErrInvalidConfig, v)
		}
		c.Workers = n
	}
	if v := os.Getenv("BEAMGRID_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks that every field can be used as-is.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidConfig, c.Workers)
	}
	if c.Entry.Row < 0 || c.Entry.Col < 0 {
		return fmt.Errorf("%w: entry (%d,%d)", ErrInvalidConfig, c.Entry.Row, c.Entry.Col)
	}
	if _, err := beam.ParseDirection(c.Entry.Dir); err != nil {
		return fmt.Errorf("%w: entry dir: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: logging level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// EntryState converts the configured entry into a beam.State.
func (c *Config) EntryState() (beam.State, error) {
	d, err := beam.ParseDirection(c.Entry.Dir)
	if err != nil {
		return beam.State{}, err
	}
	return beam.At(c.Entry.Row, c.Entry.Col, d), nil
}

// Level parses the logging level.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Logging.Level)
}
