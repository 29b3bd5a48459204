// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/domain/entity"
	domainerror "github.com/quinzena/backend/internal/domain/error"
	"github.com/quinzena/backend/internal/integration/persistence/model"
)

// monthRepository implements the adapter.MonthRepository interface.
type monthRepository struct {
	db *gorm.DB
}

// NewMonthRepository creates a new month repository instance.
func NewMonthRepository(db *gorm.DB) adapter.MonthRepository {
	return &monthRepository{
		db: db,
	}
}

// Create persists a month and its two periods in a single transaction.
// The unique index on (owner_id, year, month) backs the duplicate check, so
// two concurrent creations of the same month cannot both succeed.
func (r *monthRepository) Create(ctx context.Context, month *entity.Month) error {
	monthModel := model.MonthFromEntity(month)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(monthModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeDuplicatePeriod,
				"month already exists for this owner and calendar month",
				domainerror.ErrDuplicatePeriod,
			)
		}
		return err
	}
	return nil
}

// FindByID retrieves a month with its periods by ID.
func (r *monthRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Month, error) {
	var monthModel model.MonthModel
	result := r.db.WithContext(ctx).
		Preload("Periods", func(db *gorm.DB) *gorm.DB {
			return db.Order("half_index ASC")
		}).
		Where("id = ?", id).
		First(&monthModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeMonthNotFound,
				"month not found",
				domainerror.ErrMonthNotFound,
			)
		}
		return nil, result.Error
	}
	return monthModel.ToEntity(), nil
}

// ListByOwner retrieves all months for an owner, newest first.
func (r *monthRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Month, error) {
	var monthModels []model.MonthModel
	result := r.db.WithContext(ctx).
		Preload("Periods", func(db *gorm.DB) *gorm.DB {
			return db.Order("half_index ASC")
		}).
		Where("owner_id = ?", ownerID).
		Order("year DESC, month DESC").
		Find(&monthModels)
	if result.Error != nil {
		return nil, result.Error
	}

	months := make([]*entity.Month, len(monthModels))
	for i := range monthModels {
		months[i] = monthModels[i].ToEntity()
	}
	return months, nil
}
