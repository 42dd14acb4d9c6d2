package config

import (
	"os"
	"strconv"

	"ac-tracker/internal/logging"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if any
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	dir := l.config.Storage.Dir
	if envDir := os.Getenv("AC_DATA_DIR"); envDir != "" {
		dir = envDir
	}

	path, required := configFilePath(dir)
	if err := loadOptionalFile(l.config, path, required); err != nil {
		return nil, err
	}
	logging.Debug("config file", "path", path, "required", required)

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	config.ApplyOverrides(overrides)

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Scoring overrides
	Multiplier *uint32
	Threshold  *uint32

	// Storage overrides
	DataDir          *string
	DataFilename     *string
	SnapshotFilename *string

	// Time overrides
	TimeFormat *string

	// Display overrides
	UnknownGroup  *string
	RelativeTimes *bool

	// Application overrides
	Verbose *bool
}

// ApplyOverrides applies command line overrides to the configuration.
// Nil fields leave the current value in place.
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) {
	if overrides == nil {
		return
	}
	if overrides.Multiplier != nil {
		c.Scoring.Multiplier = *overrides.Multiplier
	}
	if overrides.Threshold != nil {
		c.Scoring.Threshold = *overrides.Threshold
	}

	if overrides.DataDir != nil {
		c.Storage.Dir = *overrides.DataDir
	}
	if overrides.DataFilename != nil {
		c.Storage.Filename = *overrides.DataFilename
	}
	if overrides.SnapshotFilename != nil {
		c.Storage.SnapshotFilename = *overrides.SnapshotFilename
	}

	if overrides.TimeFormat != nil {
		c.Time.DisplayFormat = *overrides.TimeFormat
	}

	if overrides.UnknownGroup != nil {
		c.Display.UnknownGroup = *overrides.UnknownGroup
	}
	if overrides.RelativeTimes != nil {
		c.Display.RelativeTimes = *overrides.RelativeTimes
	}

	if overrides.Verbose != nil {
		c.Application.Verbose = *overrides.Verbose
	}
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
