package config

import (
	"fmt"
	"os"

	"ac-tracker/internal/repository/sqlite"
)

// Environment selects where snapshot databases live
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// EnvironmentVariable selects the Environment.
const EnvironmentVariable = "AC_ENV"

// GetEnvironment determines the current environment, defaulting to production
func GetEnvironment() Environment {
	switch Environment(os.Getenv(EnvironmentVariable)) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}

// RepositoryFactory creates snapshot repositories based on environment
type RepositoryFactory struct {
	env    Environment
	config *Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, config *Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, config: config}
}

// CreateRepository opens the snapshot database at path, or the environment's
// default location when path is empty.
//
// Development uses a file in the working directory, testing an in-memory
// database and production the configured data directory.
func (rf *RepositoryFactory) CreateRepository(path string) (sqlite.Repository, error) {
	if path == "" {
		switch rf.env {
		case Development:
			path = rf.config.Storage.SnapshotFilename
		case Testing:
			return CreateTestRepository()
		default:
			if err := rf.config.EnsureDataDir(); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
			path = rf.config.GetSnapshotPath()
		}
	}

	repo, err := sqlite.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot database: %w", err)
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
