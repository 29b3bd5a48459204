package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a logical purchase decomposed into one or more installments.
// The installments are created atomically with the expense and, in the
// current design, are all assigned to the expense's originating period.
type Expense struct {
	ID               uuid.UUID
	PeriodID         uuid.UUID // originating period
	Description      string
	TotalAmount      decimal.Decimal // always positive
	InstallmentCount int
	Category         string
	Note             string
	Installments     []*Installment
	CreatedAt        time.Time
}

// NewExpense creates a new Expense entity without its installments; callers
// attach the amortized installments before persisting.
func NewExpense(periodID uuid.UUID, description string, totalAmount decimal.Decimal, installmentCount int, category, note string) *Expense {
	return &Expense{
		ID:               uuid.New(),
		PeriodID:         periodID,
		Description:      description,
		TotalAmount:      totalAmount,
		InstallmentCount: installmentCount,
		Category:         category,
		Note:             note,
		CreatedAt:        time.Now().UTC(),
	}
}
