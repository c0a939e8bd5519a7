// Package config loads user settings from ~/.willpower/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/habit"
)

const (
	KeyStore         = "store"
	KeyWeekStart     = "week_start"
	KeyStreakMaxWalk = "streak_max_walk"
	KeyDefaultHabit  = "default_habit"
	KeyLogLevel      = "log_level"
)

// Keys lists every settable key in display order.
var Keys = []string{KeyStore, KeyWeekStart, KeyStreakMaxWalk, KeyDefaultHabit, KeyLogLevel}

// Config holds the effective settings.
type Config struct {
	Store         string `mapstructure:"store"`
	WeekStart     string `mapstructure:"week_start"`
	StreakMaxWalk int    `mapstructure:"streak_max_walk"`
	DefaultHabit  string `mapstructure:"default_habit"`
	LogLevel      string `mapstructure:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Store:     entry.BackendJSON,
		WeekStart: "sunday",
		LogLevel:  "warn",
	}
}

// Path returns the config file location.
func Path(homeDir string) string {
	return filepath.Join(habit.Dir(homeDir), "config.yaml")
}

// Load reads the config file over the defaults. A missing file is not an
// error. WILLPOWER_* environment variables override file values.
func Load(homeDir string) (Config, error) {
	v, err := read(homeDir, true)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", Path(homeDir), err)
	}
	return cfg, nil
}

// Set validates and persists a single key, returning the config as stored
// in the file. WILLPOWER_* variables are neither applied nor written.
func Set(homeDir, key, value string) (Config, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !isKey(key) {
		return Config{}, fmt.Errorf("unknown config key '%s' (valid: %s)", key, strings.Join(Keys, ", "))
	}

	// Environment overrides stay out of the file.
	v, err := read(homeDir, false)
	if err != nil {
		return Config{}, err
	}

	if key == KeyStreakMaxWalk {
		n, err := strconv.Atoi(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a number, got '%s'", key, value)
		}
		v.Set(key, n)
	} else {
		v.Set(key, strings.TrimSpace(value))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	if err := os.MkdirAll(habit.Dir(homeDir), 0755); err != nil {
		return Config{}, err
	}
	if err := v.WriteConfigAs(Path(homeDir)); err != nil {
		return Config{}, fmt.Errorf("writing config: %w", err)
	}
	return cfg, nil
}

// Get returns the string form of a single key.
func (c Config) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case KeyStore:
		return c.Store, nil
	case KeyWeekStart:
		return c.WeekStart, nil
	case KeyStreakMaxWalk:
		return strconv.Itoa(c.StreakMaxWalk), nil
	case KeyDefaultHabit:
		return c.DefaultHabit, nil
	case KeyLogLevel:
		return c.LogLevel, nil
	}
	return "", fmt.Errorf("unknown config key '%s' (valid: %s)", key, strings.Join(Keys, ", "))
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Store {
	case entry.BackendJSON, entry.BackendSQLite:
	default:
		return fmt.Errorf("store must be '%s' or '%s', got '%s'", entry.BackendJSON, entry.BackendSQLite, c.Store)
	}
	if _, err := c.Weekday(); err != nil {
		return err
	}
	if c.StreakMaxWalk < 0 {
		return errors.New("streak_max_walk must not be negative")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level '%s'", c.LogLevel)
	}
	return nil
}

// Weekday parses WeekStart.
func (c Config) Weekday() (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(c.WeekStart))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if name == strings.ToLower(wd.String()) || name == strings.ToLower(wd.String()[:3]) {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid week_start '%s'", c.WeekStart)
}

func read(homeDir string, withEnv bool) (*viper.Viper, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(KeyStore, def.Store)
	v.SetDefault(KeyWeekStart, def.WeekStart)
	v.SetDefault(KeyStreakMaxWalk, def.StreakMaxWalk)
	v.SetDefault(KeyDefaultHabit, def.DefaultHabit)
	v.SetDefault(KeyLogLevel, def.LogLevel)

	if withEnv {
		v.SetEnvPrefix("willpower")
		v.AutomaticEnv()
	}

	path := Path(homeDir)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return v, nil
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return v, nil
}

func isKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Reset deletes the config file so every key falls back to its default.
func Reset(homeDir string) error {
	if err := os.Remove(Path(homeDir)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
