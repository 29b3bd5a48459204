package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/domain/entity"
	"github.com/quinzena/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// CreateWithInstallments persists the expense and all of its installments in
// one transaction. A failure anywhere rolls the whole creation back, so a
// partially amortized expense can never become visible.
func (r *expenseRepository) CreateWithInstallments(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(expenseModel).Error
	})
}
