package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/domain/entity"
	domainerror "github.com/quinzena/backend/internal/domain/error"
	"github.com/quinzena/backend/internal/integration/persistence/model"
)

// installmentRepository implements the adapter.InstallmentRepository interface.
type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository instance.
func NewInstallmentRepository(db *gorm.DB) adapter.InstallmentRepository {
	return &installmentRepository{
		db: db,
	}
}

// FindByID retrieves an installment by its ID.
func (r *installmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error) {
	var installmentModel model.InstallmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&installmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, installmentNotFound()
		}
		return nil, result.Error
	}
	return installmentModel.ToEntity(), nil
}

// Settle marks an unpaid installment as paid. The WHERE paid = false clause
// makes the update a compare-and-set: when two settlements race, the second
// one matches zero rows and fails with ErrAlreadySettled instead of
// overwriting the first.
func (r *installmentRepository) Settle(ctx context.Context, id uuid.UUID, paidAmount decimal.Decimal, paidDate time.Time) (*entity.Installment, error) {
	result := r.db.WithContext(ctx).
		Model(&model.InstallmentModel{}).
		Where("id = ? AND paid = ?", id, false).
		Updates(map[string]interface{}{
			"paid":               true,
			"actual_paid_amount": paidAmount,
			"paid_date":          paidDate,
			"updated_at":         paidDate,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Zero rows means the installment is missing or was settled by a
		// concurrent request; look it up to tell the two apart.
		var installmentModel model.InstallmentModel
		findResult := r.db.WithContext(ctx).Where("id = ?", id).First(&installmentModel)
		if findResult.Error != nil {
			if errors.Is(findResult.Error, gorm.ErrRecordNotFound) {
				return nil, installmentNotFound()
			}
			return nil, findResult.Error
		}
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeAlreadySettled,
			"installment is already settled",
			domainerror.ErrAlreadySettled,
		)
	}

	var installmentModel model.InstallmentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&installmentModel).Error; err != nil {
		return nil, err
	}
	return installmentModel.ToEntity(), nil
}

// installmentNotFound builds the coded not-found error shared by the lookups.
func installmentNotFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeInstallmentNotFound,
		"installment not found",
		domainerror.ErrInstallmentNotFound,
	)
}
