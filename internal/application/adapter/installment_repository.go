package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/domain/entity"
)

// InstallmentRepository defines the interface for installment persistence operations.
type InstallmentRepository interface {
	// FindByID retrieves an installment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error)

	// Settle transitions an installment from unpaid to paid, recording the
	// paid amount and date. The transition is an atomic compare-and-set on
	// the paid flag: of two concurrent attempts exactly one succeeds and the
	// loser receives ErrAlreadySettled. Returns the settled installment.
	Settle(ctx context.Context, id uuid.UUID, paidAmount decimal.Decimal, paidDate time.Time) (*entity.Installment, error)
}
