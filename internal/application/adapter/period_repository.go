package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/quinzena/backend/internal/domain/entity"
)

// PeriodRepository defines the interface for period persistence operations.
type PeriodRepository interface {
	// FindByID retrieves a period by ID with its revenues and assigned
	// installments loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Period, error)

	// FindByIDWithMonth retrieves a period with its entries and owning month.
	FindByIDWithMonth(ctx context.Context, id uuid.UUID) (*entity.PeriodWithMonth, error)

	// FindPreceding retrieves the owner's chronologically last period that
	// sorts strictly before (year, month, kind) in the global period order
	// (year, month, kind with first half before second half), with its
	// revenues and installments loaded. It returns nil when no earlier
	// period exists.
	FindPreceding(ctx context.Context, ownerID uuid.UUID, year, month int, kind entity.PeriodKind) (*entity.Period, error)
}
