package config

import (
	"fmt"
	"os"

	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
)

// CreateRepository opens the database named by the configuration,
// creating its directory when needed. Every query is bounded by the
// configured query timeout.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(config.GetDatabasePath(), sqlite.WithQueryTimeout(config.GetQueryTimeout()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
