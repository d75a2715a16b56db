package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MINIMALLIST_CONFIG", "")
	return home
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("store", "", "")
	fs.String("sensor", "", "")
	fs.String("device", "", "")
	fs.Duration("interval", 0, "")
	fs.Float64("threshold", 0, "")
	fs.String("log", "", "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.Store.Backend)
	require.Equal(t, SourceAuto, cfg.Motion.Source)
	require.Equal(t, 200*time.Millisecond, cfg.Motion.Interval)
	require.Equal(t, 2.0, cfg.Motion.Threshold)
	require.Equal(t, "MinimalList", cfg.UI.Title)
	require.Equal(t, "I want to ...", cfg.UI.Placeholder)
	require.True(t, cfg.UI.AltScreen)
	require.Empty(t, cfg.Log.Path)
}

func TestLoadUnchangedFlagsKeepDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(testFlags())
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.Store.Backend)
	require.Equal(t, 200*time.Millisecond, cfg.Motion.Interval)
	require.Equal(t, 2.0, cfg.Motion.Threshold)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "minimallist")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[store]
backend = "sqlite"

[motion]
source = "simulated"
interval = "50ms"
threshold = 1.5

[ui]
title = "Groceries"
alt_screen = false
`), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, BackendSQLite, cfg.Store.Backend)
	require.Equal(t, SourceSimulated, cfg.Motion.Source)
	require.Equal(t, 50*time.Millisecond, cfg.Motion.Interval)
	require.Equal(t, 1.5, cfg.Motion.Threshold)
	require.Equal(t, "Groceries", cfg.UI.Title)
	require.False(t, cfg.UI.AltScreen)

	t.Setenv("MINIMALLIST_MOTION_THRESHOLD", "3")
	t.Setenv("MINIMALLIST_UI_TITLE", "From env")
	cfg, err = Load(nil)
	require.NoError(t, err)
	require.Equal(t, 3.0, cfg.Motion.Threshold)
	require.Equal(t, "From env", cfg.UI.Title)

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--threshold", "4.5", "--store", "MEMORY", "--sensor", "none", "--interval", "1s"}))
	cfg, err = Load(fs)
	require.NoError(t, err)
	require.Equal(t, 4.5, cfg.Motion.Threshold)
	require.Equal(t, BackendMemory, cfg.Store.Backend)
	require.Equal(t, SourceNone, cfg.Motion.Source)
	require.Equal(t, time.Second, cfg.Motion.Interval)
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\npath = \"/tmp/ml.log\"\n"), 0o644))

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--config", path}))
	cfg, err := Load(fs)
	require.NoError(t, err)
	require.Equal(t, "/tmp/ml.log", cfg.Log.Path)

	t.Setenv("MINIMALLIST_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	_, err = Load(nil)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Store:  StoreConfig{Backend: BackendMemory},
		Motion: MotionConfig{Source: SourceAuto, Interval: time.Second, Threshold: 2},
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(c *Config){
		"backend":   func(c *Config) { c.Store.Backend = "postgres" },
		"source":    func(c *Config) { c.Motion.Source = "gyro" },
		"interval":  func(c *Config) { c.Motion.Interval = 0 },
		"threshold": func(c *Config) { c.Motion.Threshold = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)
	t.Setenv("MINIMALLIST_STORE_BACKEND", "postgres")
	_, err := Load(nil)
	require.ErrorIs(t, err, ErrInvalid)
}
