package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration options for the planner application
type Config struct {
	Database    DatabaseConfig
	Storage     StorageConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir      string `env:"PLANNER_DB_DIR"`
	Filename string `env:"PLANNER_DB_FILENAME"`
}

// StorageConfig holds file-upload storage configuration
type StorageConfig struct {
	Dir     string `env:"PLANNER_STORAGE_DIR"`
	BaseURL string `env:"PLANNER_STORAGE_BASE_URL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"PLANNER_APP_TIMEOUT"`
	Verbose bool          `env:"PLANNER_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".planner")

	return &Config{
		Database: DatabaseConfig{
			Dir:      defaultDir,
			Filename: "planner.db",
		},
		Storage: StorageConfig{
			Dir:     filepath.Join(defaultDir, "storage"),
			BaseURL: "http://localhost:8080/files",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Load builds the configuration from defaults, an optional .env file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	// A missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	cfg := NewConfig()
	cfg.LoadFromEnvironment()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() {
	if dir := os.Getenv("PLANNER_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("PLANNER_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}

	if dir := os.Getenv("PLANNER_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if baseURL := os.Getenv("PLANNER_STORAGE_BASE_URL"); baseURL != "" {
		c.Storage.BaseURL = baseURL
	}

	if timeout := os.Getenv("PLANNER_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("PLANNER_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.BaseURL == "" {
		return &ConfigError{Field: "storage.base_url", Message: "storage base URL cannot be empty"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}
