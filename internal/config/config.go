package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/organizer/internal/store"
	"github.com/idilsaglam/organizer/internal/ui"
)

const (
	dirName        = ".organizer"
	configFileName = "config.yaml"
	envPrefix      = "ORGANIZER_"
)

type Config struct {
	// Storage
	DataDir    string `yaml:"data_dir"`
	Backend    string `yaml:"backend"`
	SQLitePath string `yaml:"sqlite_path"`

	// Monthly planning and gym are kept in memory only unless this is set.
	PersistAll bool `yaml:"persist_all"`

	ExportDir string `yaml:"export_dir"`
	Theme     string `yaml:"theme"`

	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the configuration used when no file or env var says
// otherwise. Derived paths are filled in by Load.
func Default() *Config {
	return &Config{
		Backend:   store.BackendJSON,
		ExportDir: ".",
		Theme:     "classic",
		LogLevel:  "info",
	}
}

// DefaultPath is ~/.organizer/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName, configFileName), nil
}

// Load reads path (or DefaultPath when empty), then applies ORGANIZER_*
// environment overrides and finally overrides, e.g. command-line flags.
// A missing file is not an error.
func Load(path string, overrides ...func(*Config)) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(cfg)
	}
	if err := cfg.fillDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	setString := func(name string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(envPrefix + name)); v != "" {
			*dst = v
		}
	}
	setString("DATA_DIR", &c.DataDir)
	setString("BACKEND", &c.Backend)
	setString("SQLITE_PATH", &c.SQLitePath)
	setString("EXPORT_DIR", &c.ExportDir)
	setString("THEME", &c.Theme)
	setString("LOG_LEVEL", &c.LogLevel)
	setString("LOG_FILE", &c.LogFile)

	if v := strings.TrimSpace(os.Getenv(envPrefix + "PERSIST_ALL")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sPERSIST_ALL: %w", envPrefix, err)
		}
		c.PersistAll = b
	}
	return nil
}

// fillDerived resolves the paths that default relative to the data dir.
func (c *Config) fillDerived() error {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("home: %w", err)
		}
		c.DataDir = filepath.Join(home, dirName)
	}
	if c.SQLitePath == "" {
		c.SQLitePath = filepath.Join(c.DataDir, "organizer.db")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.DataDir, "organizer.log")
	}
	return nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if !slices.Contains(store.Backends(), c.Backend) {
		problems = append(problems, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, store.Backends()))
	}
	if strings.TrimSpace(c.DataDir) == "" {
		problems = append(problems, "data dir cannot be empty")
	}
	if c.Backend == store.BackendSQLite && strings.TrimSpace(c.SQLitePath) == "" {
		problems = append(problems, "sqlite path cannot be empty when using sqlite backend")
	}
	if !slices.Contains(ui.Themes(), strings.ToLower(c.Theme)) {
		problems = append(problems, fmt.Sprintf("invalid theme '%s': must be one of %v", c.Theme, ui.Themes()))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}
