package config

import (
	"fmt"
	"os"

	"planner/internal/logging"
	"planner/internal/repository/sqlite"
	"planner/internal/storage"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(cfg *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(cfg.Database.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	logging.Debugf("opening database at %s\n", cfg.GetDatabasePath())

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateFileStore creates the upload file store using the configuration system
func CreateFileStore(cfg *Config) *storage.FileStore {
	return storage.NewFileStore(cfg.Storage.Dir, cfg.Storage.BaseURL)
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
