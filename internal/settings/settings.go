// Package settings holds the application-level options: where
// configurations live, where icons are looked up, and how verbose logging is.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"flexipy-lite/internal/logger"

	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the log level from the settings file
const EnvLogLevel = "FLEXIPY_LOG_LEVEL"

// ErrInvalidLevel is returned for an unrecognised log level
var ErrInvalidLevel = errors.New("invalid log level")

type Settings struct {
	LogLevel     string `yaml:"log_level"`
	ConfigDir    string `yaml:"config_dir"`
	AppRoot      string `yaml:"app_root"`
	Theme        string `yaml:"theme"`
	WatchConfigs *bool  `yaml:"watch_configs"`
}

// Default returns the settings used when no file exists
func Default() Settings {
	watch := true
	return Settings{
		LogLevel:     "info",
		Theme:        "default",
		WatchConfigs: &watch,
	}
}

// DefaultPath returns ~/.flexipy/settings.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".flexipy", "settings.yaml"), nil
}

// Load reads path over the defaults and applies the environment override.
// A missing file is not an error. Values are not validated here so that
// later overrides can still replace a bad level; call Validate when done.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.applyEnv(), nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return s.applyEnv(), nil
}

func (s Settings) applyEnv() Settings {
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	return s
}

// Validate checks values that cannot be defaulted silently
func (s Settings) Validate() error {
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, s.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, info when invalid
func (s Settings) Level() logger.LogLevel {
	level, _ := logger.ParseLevel(s.LogLevel)
	return level
}

// Watch reports whether the config directory should be watched
func (s Settings) Watch() bool {
	return s.WatchConfigs == nil || *s.WatchConfigs
}

// ResolveAppRoot returns AppRoot, or the directory of the running executable
// when unset.
func (s Settings) ResolveAppRoot() string {
	if s.AppRoot != "" {
		return s.AppRoot
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// Save writes the settings as YAML, creating the parent directory
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
