package adapter

import (
	"context"

	"github.com/quinzena/backend/internal/domain/entity"
)

// RevenueRepository defines the interface for revenue persistence operations.
type RevenueRepository interface {
	// Create persists a new revenue entry.
	Create(ctx context.Context, revenue *entity.Revenue) error
}
