// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/procflow/lib/snapshotfile"
)

// ErrNoConfig is returned by Load when PROCFLOW_CONFIG is not set.
var ErrNoConfig = errors.New("PROCFLOW_CONFIG environment variable not set")

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local use at a workstation.
	Development Environment = "development"
	// Staging is for pre-production automation.
	Staging Environment = "staging"
	// Production is for automation that persists snapshot changes.
	Production Environment = "production"
)

// Color modes for OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the master configuration for procflow.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Snapshot configures how snapshot files are found and checked.
	Snapshot SnapshotConfig `yaml:"snapshot"`

	// Output configures terminal rendering.
	Output OutputConfig `yaml:"output"`

	// Log configures diagnostic logging to stderr.
	Log LogConfig `yaml:"log"`

	// Per-environment overrides, applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Snapshot *SnapshotConfig `yaml:"snapshot,omitempty"`
	Output   *OutputConfig   `yaml:"output,omitempty"`
	Log      *LogConfig      `yaml:"log,omitempty"`
}

// SnapshotConfig configures snapshot loading.
type SnapshotConfig struct {
	// DefaultPath is used when a command is not given --file.
	// Supports ${VAR} and ${VAR:-default} expansion.
	DefaultPath string `yaml:"default_path"`

	// CyclePolicy is "reject" or "tolerate".
	// Default: reject
	CyclePolicy snapshotfile.CyclePolicy `yaml:"cycle_policy"`

	// DanglingPolicy is "ignore", "warn", or "reject".
	// Default: warn (development, staging), reject (production)
	DanglingPolicy snapshotfile.DanglingPolicy `yaml:"dangling_policy"`

	// MaxActivities bounds the size of a snapshot. 0 means unlimited.
	// Default: 10000
	MaxActivities int `yaml:"max_activities"`

	// MaxBytes bounds the decompressed size of .zst and .lz4 files.
	// 0 means unlimited.
	// Default: 64 MiB
	MaxBytes int64 `yaml:"max_bytes"`
}

// OutputConfig configures terminal rendering.
type OutputConfig struct {
	// Color is "auto", "always", or "never".
	// Default: auto
	Color string `yaml:"color"`

	// Width is the rendering width in columns. 0 means the terminal
	// width, or 100 when stdout is not a terminal.
	Width int `yaml:"width"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is "debug", "info", "warn", or "error".
	// Default: warn
	Level string `yaml:"level"`
}

// Default returns the default configuration. The CLI uses it as-is
// when no configuration file is given, and LoadFile uses it as the
// base that the file is merged onto.
func Default() *Config {
	return &Config{
		Environment: Development,
		Snapshot: SnapshotConfig{
			DefaultPath:    "${PROCFLOW_SNAPSHOT:-process.yaml}",
			CyclePolicy:    snapshotfile.CycleReject,
			DanglingPolicy: snapshotfile.DanglingWarn,
			MaxActivities:  10000,
			MaxBytes:       64 << 20,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from the PROCFLOW_CONFIG environment
// variable. Returns ErrNoConfig when it is not set; the caller decides
// whether that is fatal.
func Load() (*Config, error) {
	configPath := os.Getenv("PROCFLOW_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("%w; set it to the path of your procflow.yaml, or use --config", ErrNoConfig)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, applies the
// matching environment section, expands variables, and validates the
// result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the section matching Environment.
// Only non-zero override fields replace base values.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		if overrides == nil {
			overrides = &ConfigOverrides{
				Snapshot: &SnapshotConfig{
					CyclePolicy:    snapshotfile.CycleReject,
					DanglingPolicy: snapshotfile.DanglingReject,
				},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Snapshot != nil {
		if overrides.Snapshot.DefaultPath != "" {
			c.Snapshot.DefaultPath = overrides.Snapshot.DefaultPath
		}
		if overrides.Snapshot.CyclePolicy != "" {
			c.Snapshot.CyclePolicy = overrides.Snapshot.CyclePolicy
		}
		if overrides.Snapshot.DanglingPolicy != "" {
			c.Snapshot.DanglingPolicy = overrides.Snapshot.DanglingPolicy
		}
		if overrides.Snapshot.MaxActivities != 0 {
			c.Snapshot.MaxActivities = overrides.Snapshot.MaxActivities
		}
		if overrides.Snapshot.MaxBytes != 0 {
			c.Snapshot.MaxBytes = overrides.Snapshot.MaxBytes
		}
	}

	if overrides.Output != nil {
		if overrides.Output.Color != "" {
			c.Output.Color = overrides.Output.Color
		}
		if overrides.Output.Width != 0 {
			c.Output.Width = overrides.Output.Width
		}
	}

	if overrides.Log != nil && overrides.Log.Level != "" {
		c.Log.Level = overrides.Log.Level
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	c.Snapshot.DefaultPath = c.ExpandDefaultPath()
}

// ExpandDefaultPath returns Snapshot.DefaultPath with variables
// expanded. Default() leaves the pattern unexpanded so the environment
// is read when the path is used.
func (c *Config) ExpandDefaultPath() string {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	return expandVars(c.Snapshot.DefaultPath, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Snapshot.CyclePolicy == "" || !c.Snapshot.CyclePolicy.IsValid() {
		errs = append(errs, fmt.Errorf("snapshot.cycle_policy must be one of: [reject tolerate]"))
	}
	if c.Snapshot.DanglingPolicy == "" || !c.Snapshot.DanglingPolicy.IsValid() {
		errs = append(errs, fmt.Errorf("snapshot.dangling_policy must be one of: [ignore warn reject]"))
	}
	if c.Snapshot.MaxActivities < 0 {
		errs = append(errs, fmt.Errorf("snapshot.max_activities must not be negative"))
	}
	if c.Snapshot.MaxBytes < 0 {
		errs = append(errs, fmt.Errorf("snapshot.max_bytes must not be negative"))
	}

	colorValues := []string{ColorAuto, ColorAlways, ColorNever}
	if !slices.Contains(colorValues, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v", colorValues))
	}
	if c.Output.Width < 0 {
		errs = append(errs, fmt.Errorf("output.width must not be negative"))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// SnapshotOptions returns the load options the snapshot section
// implies. logger receives tolerated-cycle and dangling-reference
// warnings.
func (c *Config) SnapshotOptions(logger *slog.Logger) snapshotfile.LoadOptions {
	return snapshotfile.LoadOptions{
		CyclePolicy:    c.Snapshot.CyclePolicy,
		DanglingPolicy: c.Snapshot.DanglingPolicy,
		MaxActivities:  c.Snapshot.MaxActivities,
		MaxBytes:       c.Snapshot.MaxBytes,
		Logger:         logger,
	}
}
