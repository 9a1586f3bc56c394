// Package config loads runtime settings: built-in defaults, then an optional
// YAML file, then SPRINTBUDGET_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath  = "SPRINTBUDGET_CONFIG"
	EnvDBPath      = "SPRINTBUDGET_DB"
	EnvLogLevel    = "SPRINTBUDGET_LOG_LEVEL"
	EnvLogUseCases = "SPRINTBUDGET_LOG_USECASES"
	EnvViewMode    = "SPRINTBUDGET_VIEW"
)

type Config struct {
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// UseCases logs every service call to stderr.
	UseCases bool `yaml:"use_cases"`
}

type DisplayConfig struct {
	ViewMode string   `yaml:"view_mode"`
	CardInfo CardInfo `yaml:"card_info"`
}

// CardInfo selects which figures a calendar cell shows.
type CardInfo struct {
	PlannedToday bool `yaml:"planned_today"`
	RestSprint   bool `yaml:"rest_sprint"`
	RestMonth    bool `yaml:"rest_month"`
	RestTotal    bool `yaml:"rest_total"`
	SprintAvg    bool `yaml:"sprint_avg"`
}

// AllCardInfo shows every figure.
func AllCardInfo() CardInfo {
	return CardInfo{PlannedToday: true, RestSprint: true, RestMonth: true, RestTotal: true, SprintAvg: true}
}

// Dir is the per-user data directory, ~/.sprintbudget.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sprintbudget"
	}
	return filepath.Join(home, ".sprintbudget")
}

func Default() Config {
	return Config{
		DB:  DBConfig{Path: filepath.Join(Dir(), "sprintbudget.db")},
		Log: LogConfig{Level: "info"},
		Display: DisplayConfig{
			ViewMode: string(domain.ViewMonth),
			CardInfo: AllCardInfo(),
		},
	}
}

// Load builds the effective configuration. The file named by
// SPRINTBUDGET_CONFIG must exist; the default ~/.sprintbudget/config.yaml is
// read only when present.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	} else {
		path := filepath.Join(Dir(), "config.yaml")
		if err := loadFromFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLogUseCases, err)
		}
		cfg.Log.UseCases = b
	}
	if v := os.Getenv(EnvViewMode); v != "" {
		cfg.Display.ViewMode = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path must not be empty")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if !domain.ValidViewModes[c.Display.ViewMode] {
		return fmt.Errorf("display.view_mode must be month, timeline or bars, got %q", c.Display.ViewMode)
	}
	return nil
}

// SlogLevel returns the configured level, falling back to info.
func (c Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
