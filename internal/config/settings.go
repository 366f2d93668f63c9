package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store drivers understood by the store package.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Settings is the application configuration file.
type Settings struct {
	Store  StoreSettings  `yaml:"store"`
	Server ServerSettings `yaml:"server"`
	Output OutputSettings `yaml:"output"`
	Debug  bool           `yaml:"debug"`
}

// StoreSettings selects where inputs and the theme are persisted.
type StoreSettings struct {
	Driver    string `yaml:"driver"`
	Path      string `yaml:"path"` // file and sqlite
	Addr      string `yaml:"addr"` // redis
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	Namespace string `yaml:"namespace"`
}

type ServerSettings struct {
	Addr string `yaml:"addr"`
}

type OutputSettings struct {
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

// DefaultSettings persists to a JSON file under the user config directory.
func DefaultSettings() Settings {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return Settings{
		Store: StoreSettings{
			Driver:    DriverFile,
			Path:      filepath.Join(dir, "reroi", "state.json"),
			Addr:      "localhost:6379",
			Namespace: "reroi",
		},
		Server: ServerSettings{Addr: "127.0.0.1:8080"},
		Output: OutputSettings{Format: "console", Dir: "."},
	}
}

// LoadSettings reads a settings file over the defaults. An empty path or a
// missing file yields the defaults.
func LoadSettings(filename string) (Settings, error) {
	s := DefaultSettings()
	if filename == "" {
		return s, nil
	}
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings validation failed: %w", err)
	}
	return s, nil
}

// Validate checks that the selected store driver has what it needs.
func (s Settings) Validate() error {
	switch s.Store.Driver {
	case DriverMemory:
	case DriverFile, DriverSQLite:
		if s.Store.Path == "" {
			return fmt.Errorf("store.path is required for the %s driver", s.Store.Driver)
		}
	case DriverRedis:
		if s.Store.Addr == "" {
			return fmt.Errorf("store.addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", s.Store.Driver)
	}
	if s.Store.Namespace == "" {
		return fmt.Errorf("store.namespace is required")
	}
	if s.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
