package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"fintrack/internal/core"
)

type Config struct {
	// HTTP Server
	Port string

	// Backend selection: sqlite, file or memory
	DataBackend string

	// SQLite backend
	SQLiteDBPath string

	// File backend
	DataDir string

	// Seed file used when the collection is empty (and on reset)
	SeedFile string

	// Optional YAML file with default settings (units, rates, cap, theme)
	DefaultsFile string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8082"),
		DataBackend:  getEnv("DATA_BACKEND", "file"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/fintrack.db"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		SeedFile:     getEnv("SEED_FILE", "./data/seed.json"),
		DefaultsFile: getEnv("DEFAULTS_FILE", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errs = append(errs, "sqlite backend requires SQLITE_DB_PATH")
		}
	case "file":
		if c.DataDir == "" {
			errs = append(errs, "file backend requires DATA_DIR")
		}
	case "memory":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of sqlite, file, memory", c.DataBackend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Defaults is the optional YAML overlay shipping installation defaults:
// display settings applied when no settings document exists yet, and an
// alternative seed file location.
type Defaults struct {
	Settings core.Settings `yaml:"settings"`
	SeedFile string        `yaml:"seedFile"`
}

// LoadDefaults parses the YAML defaults file. Rates left out of the file
// are filled from the built-in settings.
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defaults file: %w", err)
	}
	d := &Defaults{Settings: core.DefaultSettings()}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parse defaults file: %w", err)
	}
	d.Settings = d.Settings.Normalize()
	return d, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
