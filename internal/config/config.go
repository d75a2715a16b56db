package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"

	SourceAuto      = "auto"
	SourceIIO       = "iio"
	SourceSimulated = "simulated"
	SourceNone      = "none"
)

// Config holds application configuration.
type Config struct {
	Store  StoreConfig
	Motion MotionConfig
	UI     UIConfig
	Log    LogConfig
}

// StoreConfig picks the task list backend. Both keep tasks in memory only.
type StoreConfig struct {
	Backend string
}

// MotionConfig holds accelerometer settings.
type MotionConfig struct {
	Source    string
	Device    string
	Interval  time.Duration
	Threshold float64
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title       string
	Placeholder string
	AltScreen   bool `mapstructure:"alt_screen"`
}

// LogConfig holds logging settings. An empty path discards logs.
type LogConfig struct {
	Path string
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"store":     "store.backend",
	"sensor":    "motion.source",
	"device":    "motion.device",
	"interval":  "motion.interval",
	"threshold": "motion.threshold",
	"log":       "log.path",
}

// Load reads configuration from file, env and flags, in increasing
// precedence. Env var overrides use prefix MINIMALLIST_. flags may be nil;
// a "config" flag names the file to read.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("motion.source", SourceAuto)
	v.SetDefault("motion.device", "")
	v.SetDefault("motion.interval", "200ms")
	v.SetDefault("motion.threshold", 2.0)
	v.SetDefault("ui.title", "MinimalList")
	v.SetDefault("ui.placeholder", "I want to ...")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MINIMALLIST_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "minimallist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MINIMALLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path must exist; the default location is optional
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	c.Motion.Source = strings.ToLower(strings.TrimSpace(c.Motion.Source))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	if !slices.Contains([]string{BackendMemory, BackendSQLite}, c.Store.Backend) {
		return fmt.Errorf("%w: store.backend %q", ErrInvalid, c.Store.Backend)
	}
	if !slices.Contains([]string{SourceAuto, SourceIIO, SourceSimulated, SourceNone}, c.Motion.Source) {
		return fmt.Errorf("%w: motion.source %q", ErrInvalid, c.Motion.Source)
	}
	if c.Motion.Interval <= 0 {
		return fmt.Errorf("%w: motion.interval must be positive, got %s", ErrInvalid, c.Motion.Interval)
	}
	if c.Motion.Threshold <= 0 {
		return fmt.Errorf("%w: motion.threshold must be positive, got %g", ErrInvalid, c.Motion.Threshold)
	}
	return nil
}
