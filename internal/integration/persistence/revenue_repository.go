package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/domain/entity"
	"github.com/quinzena/backend/internal/integration/persistence/model"
)

// revenueRepository implements the adapter.RevenueRepository interface.
type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a new revenue repository instance.
func NewRevenueRepository(db *gorm.DB) adapter.RevenueRepository {
	return &revenueRepository{
		db: db,
	}
}

// Create persists a new revenue entry.
func (r *revenueRepository) Create(ctx context.Context, revenue *entity.Revenue) error {
	revenueModel := model.RevenueFromEntity(revenue)
	result := r.db.WithContext(ctx).Create(revenueModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
