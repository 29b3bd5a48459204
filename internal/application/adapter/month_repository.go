package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/quinzena/backend/internal/domain/entity"
)

// MonthRepository defines the interface for month persistence operations.
type MonthRepository interface {
	// Create persists a new month together with its two periods in a single
	// transaction. It returns ErrDuplicatePeriod when a month already exists
	// for the same owner, year and calendar month.
	Create(ctx context.Context, month *entity.Month) error

	// FindByID retrieves a month with its periods by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Month, error)

	// ListByOwner retrieves all months for an owner with their periods,
	// ordered newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Month, error)
}
