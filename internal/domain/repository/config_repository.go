package repository

import (
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files and environment defaults.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadEnv() (*types.EnvConfig, error)
}
