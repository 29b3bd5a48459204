package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installment is one dated, individually payable obligation derived from an
// expense. It is owned by its expense and assigned to exactly one period.
// An installment is mutated exactly once in its lifecycle, when it is
// settled; it is never un-settled. PaidDate and ActualPaidAmount are set if
// and only if Paid is true.
type Installment struct {
	ID               uuid.UUID
	ExpenseID        uuid.UUID
	PeriodID         uuid.UUID // placement, not ownership
	SequenceNumber   int       // 1-based, unique within the expense
	ScheduledAmount  decimal.Decimal
	DueDate          time.Time
	Paid             bool
	ActualPaidAmount *decimal.Decimal
	PaidDate         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewInstallment creates a new unpaid Installment entity.
func NewInstallment(expenseID, periodID uuid.UUID, sequenceNumber int, scheduledAmount decimal.Decimal, dueDate time.Time) *Installment {
	now := time.Now().UTC()

	return &Installment{
		ID:              uuid.New(),
		ExpenseID:       expenseID,
		PeriodID:        periodID,
		SequenceNumber:  sequenceNumber,
		ScheduledAmount: scheduledAmount,
		DueDate:         dueDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// PaidAmount returns the amount the installment contributes to paid expense
// totals: the actual paid amount when recorded, otherwise the scheduled one.
func (i *Installment) PaidAmount() decimal.Decimal {
	if i.ActualPaidAmount != nil {
		return *i.ActualPaidAmount
	}
	return i.ScheduledAmount
}

// InstallmentWithExpense pairs an installment with its owning expense.
type InstallmentWithExpense struct {
	Installment *Installment
	Expense     *Expense
}
