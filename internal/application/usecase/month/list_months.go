package month

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quinzena/backend/internal/application/adapter"
)

// ListMonthsInput represents the input for listing an owner's months.
type ListMonthsInput struct {
	OwnerID uuid.UUID
}

// ListMonthsOutput represents the output of listing months.
type ListMonthsOutput struct {
	Months []*MonthOutput
}

// ListMonthsUseCase handles listing all months of an owner.
type ListMonthsUseCase struct {
	monthRepo adapter.MonthRepository
}

// NewListMonthsUseCase creates a new ListMonthsUseCase instance.
func NewListMonthsUseCase(monthRepo adapter.MonthRepository) *ListMonthsUseCase {
	return &ListMonthsUseCase{monthRepo: monthRepo}
}

// Execute retrieves the owner's months with their periods, newest first.
func (uc *ListMonthsUseCase) Execute(ctx context.Context, input ListMonthsInput) (*ListMonthsOutput, error) {
	months, err := uc.monthRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list months: %w", err)
	}

	output := &ListMonthsOutput{Months: make([]*MonthOutput, len(months))}
	for i, m := range months {
		output.Months[i] = toMonthOutput(m)
	}
	return output, nil
}
