package repository

import (
	"context"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// CostRepository defines the interface for AWS billing API interactions.
type CostRepository interface {
	// GetCostAndUsage returns every period of the query, following continuation tokens.
	GetCostAndUsage(ctx context.Context, query entity.CostQuery) ([]entity.ResultGroup, error)
	GetAccountID(ctx context.Context, profile string) (string, error)
}
