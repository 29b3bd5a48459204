package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueKind represents the kind of revenue (fixed or variable).
type RevenueKind string

const (
	RevenueKindFixed    RevenueKind = "fixed"
	RevenueKindVariable RevenueKind = "variable"
)

// IsValid reports whether the kind is a known revenue kind.
func (k RevenueKind) IsValid() bool {
	return k == RevenueKindFixed || k == RevenueKindVariable
}

// Revenue is an incoming money entry recorded against a period.
// Revenues are immutable after creation.
type Revenue struct {
	ID          uuid.UUID
	PeriodID    uuid.UUID
	Description string
	Amount      decimal.Decimal // always positive
	Kind        RevenueKind
	CreatedAt   time.Time
}

// NewRevenue creates a new Revenue entity.
func NewRevenue(periodID uuid.UUID, description string, amount decimal.Decimal, kind RevenueKind) *Revenue {
	return &Revenue{
		ID:          uuid.New(),
		PeriodID:    periodID,
		Description: description,
		Amount:      amount,
		Kind:        kind,
		CreatedAt:   time.Now().UTC(),
	}
}
