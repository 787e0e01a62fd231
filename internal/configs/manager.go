// Package configs persists named configuration records as one JSON file per
// entry and keeps an in-memory cache of what was last loaded or saved.
package configs

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"flexipy-lite/internal/logger"
	"flexipy-lite/internal/models"
)

const (
	// FileExtension is the suffix of every configuration file
	FileExtension = ".json"

	component = "ConfigManager"
)

// ErrEmptyName is returned when a configuration has no usable name
var ErrEmptyName = errors.New("configuration name is empty")

// Manager loads and saves configurations in a single directory
type Manager struct {
	dir     string
	logger  logger.Logger
	configs map[string]models.ConfigModel
	// files maps a name to the file it was loaded from or last saved to
	files map[string]string
}

// DefaultDir returns ~/.flexipy/configs
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".flexipy", "configs"), nil
}

// NewManager creates the directory (and parents) when missing. An empty dir
// selects DefaultDir.
func NewManager(dir string, log logger.Logger) (*Manager, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create config directory %s: %w", dir, err)
	}

	return &Manager{
		dir:     dir,
		logger:  log,
		configs: make(map[string]models.ConfigModel),
		files:   make(map[string]string),
	}, nil
}

// Dir returns the directory backing the store
func (m *Manager) Dir() string {
	return m.dir
}

// LoadAll rescans the directory and replaces the cache with what it finds.
// Files that cannot be read or parsed are logged and skipped. When two files
// decode to the same name, the one Save would write wins.
func (m *Manager) LoadAll() map[string]models.ConfigModel {
	loaded := make(map[string]models.ConfigModel)
	files := make(map[string]string)

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		m.logger.Error(component, fmt.Errorf("read config directory: %w", err), map[string]interface{}{
			"dir": m.dir,
		})
		m.configs = loaded
		m.files = files
		return maps.Clone(loaded)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != FileExtension {
			continue
		}

		name := nameFromFile(entry.Name())

		model, err := m.readConfig(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			m.logger.Error(component, err, map[string]interface{}{
				"name": name,
			})
			continue
		}

		if existing, dup := files[name]; dup {
			m.logger.Warning(component, "duplicate configuration name", map[string]interface{}{
				"name": name,
				"file": entry.Name(),
				"other": existing,
			})
			if entry.Name() != fileFromName(name) {
				continue
			}
		}

		loaded[name] = model
		files[name] = entry.Name()
	}

	m.configs = loaded
	m.files = files
	m.logger.Debug(component, "configurations loaded", map[string]interface{}{
		"count": len(loaded),
		"dir":   m.dir,
	})

	return maps.Clone(loaded)
}

// Get looks up a configuration in the cache without touching the disk
func (m *Manager) Get(name string) (models.ConfigModel, bool) {
	model, ok := m.configs[name]
	return model, ok
}

// Names returns the cached configuration names in sorted order
func (m *Manager) Names() []string {
	return slices.Sorted(maps.Keys(m.configs))
}

// Save writes the configuration, replacing any existing file for name. A
// name loaded from a file keeps that file. On failure the error is logged,
// the cache is left untouched and false is returned.
func (m *Manager) Save(name string, config models.ConfigModel) bool {
	file := m.fileFor(name)
	if err := m.writeConfig(file, name, config); err != nil {
		m.logger.Error(component, err, map[string]interface{}{
			"name": name,
		})
		return false
	}

	m.configs[name] = config
	m.files[name] = file
	m.logger.Info(component, "configuration saved", map[string]interface{}{
		"name": name,
	})
	return true
}

func (m *Manager) readConfig(path string) (models.ConfigModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ConfigModel{}, fmt.Errorf("read configuration: %w", err)
	}

	var model models.ConfigModel
	if err := json.Unmarshal(data, &model); err != nil {
		return models.ConfigModel{}, fmt.Errorf("parse configuration %s: %w", filepath.Base(path), err)
	}
	return model, nil
}

func (m *Manager) writeConfig(file, name string, config models.ConfigModel) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.dir, file), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	return nil
}

func (m *Manager) fileFor(name string) string {
	if file, ok := m.files[name]; ok {
		return file
	}
	return fileFromName(name)
}

// fileFromName escapes name so that any string maps to a single file in the
// directory and decodes back to itself.
func fileFromName(name string) string {
	escaped := url.PathEscape(name)
	if strings.HasPrefix(escaped, ".") {
		escaped = "%2E" + escaped[1:]
	}
	return escaped + FileExtension
}

// nameFromFile reverses fileFromName. Stems that are not valid escapes,
// such as hand-written "50%off", are used as they are.
func nameFromFile(file string) string {
	stem := strings.TrimSuffix(file, FileExtension)
	name, err := url.PathUnescape(stem)
	if err != nil {
		return stem
	}
	return name
}
