package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodKind identifies which half of the month a period covers.
type PeriodKind string

const (
	PeriodKindFirstHalf  PeriodKind = "first_half"
	PeriodKindSecondHalf PeriodKind = "second_half"
)

// IsValid reports whether the kind is one of the two half-month kinds.
func (k PeriodKind) IsValid() bool {
	return k == PeriodKindFirstHalf || k == PeriodKindSecondHalf
}

// Ordinal returns the kind's position within its month: first half before
// second half. Together with (year, month) it defines the global period order.
func (k PeriodKind) Ordinal() int {
	if k == PeriodKindSecondHalf {
		return 1
	}
	return 0
}

// Period is a half-month, the unit against which the ledger is computed.
// CarriedBalance is the available balance inherited from the chronologically
// preceding period; it is fixed at creation time and never recomputed.
type Period struct {
	ID             uuid.UUID
	MonthID        uuid.UUID
	Kind           PeriodKind
	CarriedBalance decimal.Decimal
	Revenues       []*Revenue
	Installments   []*Installment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPeriod creates a new Period entity.
func NewPeriod(monthID uuid.UUID, kind PeriodKind, carried decimal.Decimal) *Period {
	now := time.Now().UTC()

	return &Period{
		ID:             uuid.New(),
		MonthID:        monthID,
		Kind:           kind,
		CarriedBalance: carried,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// PeriodWithMonth pairs a period with the month it belongs to and the
// expenses owning the period's assigned installments.
type PeriodWithMonth struct {
	Period   *Period
	Month    *Month
	Expenses []*Expense
}

// ExpenseByID returns the expense with the given ID, or nil.
func (p *PeriodWithMonth) ExpenseByID(id uuid.UUID) *Expense {
	for _, e := range p.Expenses {
		if e.ID == id {
			return e
		}
	}
	return nil
}
