// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Month represents one calendar month of the ledger for a single owner.
// A month always owns exactly two periods, created together with it.
type Month struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Year      int
	Month     int // 1..12
	Periods   []*Period
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMonth creates a new Month entity together with its two half-month
// periods. firstCarried and secondCarried are the balances inherited from
// the chronologically preceding periods.
func NewMonth(ownerID uuid.UUID, year, month int, firstCarried, secondCarried decimal.Decimal) *Month {
	now := time.Now().UTC()

	m := &Month{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Year:      year,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.Periods = []*Period{
		NewPeriod(m.ID, PeriodKindFirstHalf, firstCarried),
		NewPeriod(m.ID, PeriodKindSecondHalf, secondCarried),
	}
	return m
}

// PeriodByKind returns the month's period of the given kind, or nil.
func (m *Month) PeriodByKind(kind PeriodKind) *Period {
	for _, p := range m.Periods {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}
