package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the ac tracker
type Config struct {
	Scoring     ScoringConfig     `toml:"scoring"`
	Storage     StorageConfig     `toml:"storage"`
	Time        TimeConfig        `toml:"time"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// ScoringConfig holds the settings a new instance is created with
type ScoringConfig struct {
	Multiplier uint32 `toml:"multiplier" env:"AC_MULTIPLIER"`
	Threshold  uint32 `toml:"threshold" env:"AC_THRESHOLD"`
}

// StorageConfig holds file locations
type StorageConfig struct {
	Dir              string `toml:"dir" env:"AC_DATA_DIR"`
	Filename         string `toml:"filename" env:"AC_DATA_FILENAME"`
	SnapshotFilename string `toml:"snapshot_filename" env:"AC_SNAPSHOT_FILENAME"`
	DirPermissions   uint32 `toml:"dir_permissions" env:"AC_DATA_DIR_PERMISSIONS"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat string `toml:"display_format" env:"AC_TIME_DISPLAY_FORMAT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	UnknownGroup  string `toml:"unknown_group" env:"AC_DISPLAY_UNKNOWN_GROUP"`
	RelativeTimes bool   `toml:"relative_times" env:"AC_DISPLAY_RELATIVE_TIMES"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `toml:"verbose" env:"AC_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Scoring: ScoringConfig{
			Multiplier: 10,
			Threshold:  3,
		},
		Storage: StorageConfig{
			Dir:              filepath.Join(homeDir, ".ac"),
			Filename:         "instance.dat",
			SnapshotFilename: "snapshot.db",
			DirPermissions:   0755,
		},
		Time: TimeConfig{
			DisplayFormat: time.DateTime,
		},
		Display: DisplayConfig{
			UnknownGroup: "unknown group",
		},
	}
}

// GetInstancePath returns the full path to the binary instance file
func (c *Config) GetInstancePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetSnapshotPath returns the full path to the SQLite snapshot database
func (c *Config) GetSnapshotPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.SnapshotFilename)
}

// EnsureDataDir creates the storage directory if it does not exist
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.Storage.Dir, os.FileMode(c.Storage.DirPermissions))
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are reported rather than ignored.
func (c *Config) LoadFromEnvironment() error {
	// Scoring configuration
	if v := os.Getenv("AC_MULTIPLIER"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return &ConfigError{Field: "scoring.multiplier", Message: "AC_MULTIPLIER must be an unsigned 32-bit integer"}
		}
		c.Scoring.Multiplier = uint32(n)
	}
	if v := os.Getenv("AC_THRESHOLD"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return &ConfigError{Field: "scoring.threshold", Message: "AC_THRESHOLD must be an unsigned 32-bit integer"}
		}
		c.Scoring.Threshold = uint32(n)
	}

	// Storage configuration
	if dir := os.Getenv("AC_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("AC_DATA_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if filename := os.Getenv("AC_SNAPSHOT_FILENAME"); filename != "" {
		c.Storage.SnapshotFilename = filename
	}
	if perms := os.Getenv("AC_DATA_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Time configuration
	if format := os.Getenv("AC_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	// Display configuration
	if marker := os.Getenv("AC_DISPLAY_UNKNOWN_GROUP"); marker != "" {
		c.Display.UnknownGroup = marker
	}
	if relative := os.Getenv("AC_DISPLAY_RELATIVE_TIMES"); relative != "" {
		c.Display.RelativeTimes = ParseBoolWithFallback(relative, c.Display.RelativeTimes)
	}

	// Application configuration
	if verbose := os.Getenv("AC_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Scoring.Multiplier == 0 {
		return &ConfigError{Field: "scoring.multiplier", Message: "multiplier must be positive"}
	}

	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "data filename cannot be empty"}
	}
	if c.Storage.SnapshotFilename == "" {
		return &ConfigError{Field: "storage.snapshot_filename", Message: "snapshot filename cannot be empty"}
	}
	if c.Storage.Filename == c.Storage.SnapshotFilename {
		return &ConfigError{Field: "storage.snapshot_filename", Message: "snapshot filename must differ from the data filename"}
	}
	if c.Storage.DirPermissions == 0 || c.Storage.DirPermissions > 0777 {
		return &ConfigError{Field: "storage.dir_permissions", Message: "directory permissions must be between 0001 and 0777"}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Display.UnknownGroup == "" {
		return &ConfigError{Field: "display.unknown_group", Message: "unknown group marker cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
