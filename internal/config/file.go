package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileEnv names an explicit configuration file.
const ConfigFileEnv = "AC_CONFIG"

// DefaultConfigFilename is looked up inside the data directory when AC_CONFIG is unset.
const DefaultConfigFilename = "config.toml"

// LoadFromFile overlays the keys present in a TOML file onto c.
// Keys missing from the file keep their current values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := toml.Unmarshal(data, c); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return &ConfigError{Field: path, Message: fmt.Sprintf("line %d column %d: %s", row, col, decodeErr.Error())}
		}
		return &ConfigError{Field: path, Message: err.Error()}
	}
	return nil
}

// WriteTOML writes c as a TOML document.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// configFilePath resolves the file to read and whether it must exist.
// dir is the data directory in effect before any file is read.
func configFilePath(dir string) (path string, required bool) {
	if explicit := os.Getenv(ConfigFileEnv); explicit != "" {
		return explicit, true
	}
	return filepath.Join(dir, DefaultConfigFilename), false
}

func loadOptionalFile(c *Config, path string, required bool) error {
	err := c.LoadFromFile(path)
	if err != nil && !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
