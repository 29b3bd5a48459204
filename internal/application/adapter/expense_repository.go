package adapter

import (
	"context"

	"github.com/quinzena/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// CreateWithInstallments persists an expense and all of its installments
	// in a single transaction. Either the expense and every installment
	// become visible together or nothing is persisted; this guards the
	// invariant that installment amounts always sum to the expense total.
	CreateWithInstallments(ctx context.Context, expense *entity.Expense) error
}
