package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Manav279/DailyTracker/internal/api"
	"github.com/Manav279/DailyTracker/internal/config"
	"github.com/Manav279/DailyTracker/internal/logging"
	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// environmentVar selects the environment.
const environmentVar = "DT_ENV"

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository(cfg)
	case Testing:
		return rf.createTestingRepository()
	default:
		return rf.createProductionRepository(cfg)
	}
}

// OpenAPI opens the repository and wraps it in the business API. The
// repository is returned as the closer.
func (rf *RepositoryFactory) OpenAPI(cfg *config.Config) (api.BusinessAPI, io.Closer, error) {
	logging.Debugf("opening %s repository", rf.env)
	repo, err := rf.CreateRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	return api.New(repo, cfg), repo, nil
}

// createDevelopmentRepository uses dt.db in the working directory
func (rf *RepositoryFactory) createDevelopmentRepository(cfg *config.Config) (sqlite.Repository, error) {
	repo, err := sqlite.New("dt.db", sqlite.WithQueryTimeout(cfg.GetQueryTimeout()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// createTestingRepository uses an in-memory database
func (rf *RepositoryFactory) createTestingRepository() (sqlite.Repository, error) {
	repo, err := config.CreateTestRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return repo, nil
}

// createProductionRepository uses the database named by the configuration
func (rf *RepositoryFactory) createProductionRepository(cfg *config.Config) (sqlite.Repository, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production database: %w", err)
	}
	return repo, nil
}

// getEnvironment reads DT_ENV, defaulting to production
func getEnvironment() Environment {
	switch Environment(os.Getenv(environmentVar)) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}
