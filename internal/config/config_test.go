package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at a temp dir so the user's files are never read.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AC_DATA_DIR", dir)
	t.Setenv(ConfigFileEnv, "")
	for _, key := range []string{
		"AC_MULTIPLIER", "AC_THRESHOLD", "AC_DATA_FILENAME", "AC_SNAPSHOT_FILENAME",
		"AC_DATA_DIR_PERMISSIONS", "AC_TIME_DISPLAY_FORMAT", "AC_DISPLAY_UNKNOWN_GROUP",
		"AC_DISPLAY_RELATIVE_TIMES", "AC_APP_VERBOSE",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, uint32(10), cfg.Scoring.Multiplier)
	assert.Equal(t, uint32(3), cfg.Scoring.Threshold)
	assert.Equal(t, "instance.dat", cfg.Storage.Filename)
	assert.Equal(t, "snapshot.db", cfg.Storage.SnapshotFilename)
	assert.Equal(t, ".ac", filepath.Base(cfg.Storage.Dir))
	assert.Equal(t, time.DateTime, cfg.Time.DisplayFormat)
	assert.Equal(t, "unknown group", cfg.Display.UnknownGroup)
	assert.NoError(t, cfg.Validate())
}

func TestLoader_Environment(t *testing.T) {
	dir := isolate(t)
	t.Setenv("AC_MULTIPLIER", "25")
	t.Setenv("AC_THRESHOLD", "0")
	t.Setenv("AC_DATA_FILENAME", "mine.dat")
	t.Setenv("AC_DISPLAY_RELATIVE_TIMES", "true")
	t.Setenv("AC_APP_VERBOSE", "not-a-bool")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, uint32(25), cfg.Scoring.Multiplier)
	assert.Equal(t, uint32(0), cfg.Scoring.Threshold)
	assert.Equal(t, filepath.Join(dir, "mine.dat"), cfg.GetInstancePath())
	assert.Equal(t, filepath.Join(dir, "snapshot.db"), cfg.GetSnapshotPath())
	assert.True(t, cfg.Display.RelativeTimes)
	assert.False(t, cfg.Application.Verbose)
}

func TestLoader_BadScoringEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("AC_MULTIPLIER", "-3")

	_, err := NewLoader().Load()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "scoring.multiplier", cfgErr.Field)
}

func TestLoader_FileThenEnvironment(t *testing.T) {
	dir := isolate(t)
	content := `
[scoring]
multiplier = 7
threshold = 5

[display]
unknown_group = "(none)"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFilename), []byte(content), 0o644))
	t.Setenv("AC_THRESHOLD", "9")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, uint32(7), cfg.Scoring.Multiplier)
	assert.Equal(t, uint32(9), cfg.Scoring.Threshold, "environment wins over the file")
	assert.Equal(t, "(none)", cfg.Display.UnknownGroup)
	assert.Equal(t, "instance.dat", cfg.Storage.Filename, "keys absent from the file keep defaults")
}

func TestLoader_ExplicitFile(t *testing.T) {
	isolate(t)

	t.Run("missing explicit file fails", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "nope.toml"))
		_, err := NewLoader().Load()
		assert.Error(t, err)
	})

	t.Run("malformed file reports position", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[scoring\nmultiplier = 1\n"), 0o644))
		t.Setenv(ConfigFileEnv, path)

		_, err := NewLoader().Load()
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, path, cfgErr.Field)
		assert.Contains(t, cfgErr.Message, "line 1")
	})
}

func TestLoader_Overrides(t *testing.T) {
	isolate(t)
	multiplier := uint32(2)
	dir := t.TempDir()
	verbose := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		Multiplier: &multiplier,
		DataDir:    &dir,
		Verbose:    &verbose,
	})
	require.NoError(t, err)

	assert.Equal(t, uint32(2), cfg.Scoring.Multiplier)
	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.True(t, cfg.Application.Verbose)

	zero := uint32(0)
	_, err = NewLoader().LoadWithOverrides(&ConfigOverrides{Multiplier: &zero})
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero multiplier", func(c *Config) { c.Scoring.Multiplier = 0 }, "scoring.multiplier"},
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir"},
		{"empty filename", func(c *Config) { c.Storage.Filename = "" }, "storage.filename"},
		{"same filenames", func(c *Config) { c.Storage.SnapshotFilename = c.Storage.Filename }, "storage.snapshot_filename"},
		{"bad permissions", func(c *Config) { c.Storage.DirPermissions = 01000 }, "storage.dir_permissions"},
		{"empty time format", func(c *Config) { c.Time.DisplayFormat = "" }, "time.display_format"},
		{"empty unknown group", func(c *Config) { c.Display.UnknownGroup = "" }, "display.unknown_group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfig_WriteTOMLRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Scoring.Multiplier = 42
	cfg.Display.RelativeTimes = true

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteTOML(&buf))
	assert.Contains(t, buf.String(), "[scoring]")

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded := &Config{}
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, cfg, loaded)
}

func TestRepositoryFactory(t *testing.T) {
	isolate(t)
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("testing uses memory", func(t *testing.T) {
		repo, err := NewRepositoryFactory(Testing, cfg).CreateRepository("")
		require.NoError(t, err)
		defer repo.Close()

		groups, err := repo.ListGroups(ctx)
		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("production uses data dir", func(t *testing.T) {
		repo, err := NewRepositoryFactory(Production, cfg).CreateRepository("")
		require.NoError(t, err)
		defer repo.Close()

		_, err = os.Stat(cfg.GetSnapshotPath())
		assert.NoError(t, err)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "other.db")
		repo, err := NewRepositoryFactory(Testing, cfg).CreateRepository(path)
		require.NoError(t, err)
		defer repo.Close()

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv(EnvironmentVariable, "testing")
	assert.Equal(t, Testing, GetEnvironment())

	t.Setenv(EnvironmentVariable, "development")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv(EnvironmentVariable, "")
	assert.Equal(t, Production, GetEnvironment())
}
