// Package revenue contains revenue-related use cases.
package revenue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/domain/entity"
	domainerror "github.com/quinzena/backend/internal/domain/error"
	"github.com/quinzena/backend/internal/domain/money"
)

// AddRevenueInput represents the input for recording a revenue entry.
type AddRevenueInput struct {
	PeriodID    uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        entity.RevenueKind
}

// AddRevenueOutput represents the output of recording a revenue entry.
type AddRevenueOutput struct {
	Revenue *RevenueOutput
}

// RevenueOutput represents a revenue entry in use case outputs.
type RevenueOutput struct {
	ID          uuid.UUID
	PeriodID    uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        entity.RevenueKind
	CreatedAt   time.Time
}

// AddRevenueUseCase handles revenue creation logic.
type AddRevenueUseCase struct {
	revenueRepo adapter.RevenueRepository
	periodRepo  adapter.PeriodRepository
}

// NewAddRevenueUseCase creates a new AddRevenueUseCase instance.
func NewAddRevenueUseCase(revenueRepo adapter.RevenueRepository, periodRepo adapter.PeriodRepository) *AddRevenueUseCase {
	return &AddRevenueUseCase{
		revenueRepo: revenueRepo,
		periodRepo:  periodRepo,
	}
}

// Execute records a revenue entry against a period.
func (uc *AddRevenueUseCase) Execute(ctx context.Context, input AddRevenueInput) (*AddRevenueOutput, error) {
	if err := money.RequirePositive(input.Amount); err != nil {
		return nil, err
	}

	if !input.Kind.IsValid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidRevenueKind,
			"revenue kind must be 'fixed' or 'variable'",
			domainerror.ErrInvalidRevenueKind,
		)
	}

	// Ensure the target period exists before writing.
	if _, err := uc.periodRepo.FindByID(ctx, input.PeriodID); err != nil {
		return nil, err
	}

	revenue := entity.NewRevenue(input.PeriodID, input.Description, input.Amount, input.Kind)

	if err := uc.revenueRepo.Create(ctx, revenue); err != nil {
		return nil, err
	}

	return &AddRevenueOutput{
		Revenue: &RevenueOutput{
			ID:          revenue.ID,
			PeriodID:    revenue.PeriodID,
			Description: revenue.Description,
			Amount:      revenue.Amount,
			Kind:        revenue.Kind,
			CreatedAt:   revenue.CreatedAt,
		},
	}, nil
}
