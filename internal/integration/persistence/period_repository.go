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

// periodRepository implements the adapter.PeriodRepository interface.
type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository instance.
func NewPeriodRepository(db *gorm.DB) adapter.PeriodRepository {
	return &periodRepository{
		db: db,
	}
}

// FindByID retrieves a period with its revenues and installments by ID.
func (r *periodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Period, error) {
	var periodModel model.PeriodModel
	result := r.db.WithContext(ctx).
		Preload("Revenues").
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC, sequence_number ASC")
		}).
		Where("id = ?", id).
		First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, periodNotFound()
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// FindByIDWithMonth retrieves a period with its entries, owning month and
// the expenses behind the assigned installments.
func (r *periodRepository) FindByIDWithMonth(ctx context.Context, id uuid.UUID) (*entity.PeriodWithMonth, error) {
	var periodModel model.PeriodModel
	result := r.db.WithContext(ctx).
		Preload("Month").
		Preload("Revenues").
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC, sequence_number ASC")
		}).
		Preload("Installments.Expense").
		Where("id = ?", id).
		First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, periodNotFound()
		}
		return nil, result.Error
	}

	pm := &entity.PeriodWithMonth{
		Period: periodModel.ToEntity(),
		Month:  periodModel.Month.ToEntity(),
	}
	seen := map[uuid.UUID]bool{}
	for i := range periodModel.Installments {
		expense := periodModel.Installments[i].Expense
		if expense == nil || seen[expense.ID] {
			continue
		}
		seen[expense.ID] = true
		pm.Expenses = append(pm.Expenses, expense.ToEntity())
	}
	return pm, nil
}

// FindPreceding retrieves the owner's last period sorting strictly before
// (year, month, kind) in the global period order, or nil when none exists.
func (r *periodRepository) FindPreceding(ctx context.Context, ownerID uuid.UUID, year, month int, kind entity.PeriodKind) (*entity.Period, error) {
	var periodModel model.PeriodModel
	result := r.db.WithContext(ctx).
		Joins("JOIN months ON months.id = periods.month_id").
		Where("months.owner_id = ?", ownerID).
		Where(
			"months.year < ? OR (months.year = ? AND months.month < ?) OR (months.year = ? AND months.month = ? AND periods.half_index < ?)",
			year, year, month, year, month, kind.Ordinal(),
		).
		Order("months.year DESC, months.month DESC, periods.half_index DESC").
		Preload("Revenues").
		Preload("Installments").
		First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// periodNotFound builds the coded not-found error shared by the lookups.
func periodNotFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodePeriodNotFound,
		"period not found",
		domainerror.ErrPeriodNotFound,
	)
}
