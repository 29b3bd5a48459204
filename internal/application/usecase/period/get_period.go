// Package period contains period-related use cases.
package period

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/domain/entity"
	"github.com/quinzena/backend/internal/domain/ledger"
)

// GetPeriodInput represents the input for retrieving a period.
type GetPeriodInput struct {
	PeriodID uuid.UUID
}

// GetPeriodOutput represents a period with its entries and computed figures.
type GetPeriodOutput struct {
	ID             uuid.UUID
	Kind           entity.PeriodKind
	CarriedBalance decimal.Decimal
	Month          MonthRefOutput
	Revenues       []*RevenueEntryOutput
	Installments   []*InstallmentEntryOutput
	Summary        ledger.Summary
}

// MonthRefOutput identifies the month a period belongs to.
type MonthRefOutput struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Year    int
	Month   int
}

// RevenueEntryOutput represents one revenue entry of the period.
type RevenueEntryOutput struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        entity.RevenueKind
	CreatedAt   time.Time
}

// InstallmentEntryOutput represents one installment assigned to the period,
// together with the describing fields of its owning expense.
type InstallmentEntryOutput struct {
	ID                 uuid.UUID
	ExpenseID          uuid.UUID
	ExpenseDescription string
	ExpenseCategory    string
	SequenceNumber     int
	InstallmentTotal   int
	ScheduledAmount    decimal.Decimal
	DueDate            time.Time
	Paid               bool
	ActualPaidAmount   *decimal.Decimal
	PaidDate           *time.Time
}

// GetPeriodUseCase handles retrieval of a period with its computed ledger.
type GetPeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewGetPeriodUseCase creates a new GetPeriodUseCase instance.
func NewGetPeriodUseCase(periodRepo adapter.PeriodRepository) *GetPeriodUseCase {
	return &GetPeriodUseCase{periodRepo: periodRepo}
}

// Execute retrieves the period and evaluates its ledger. The evaluation runs
// on every call; settlement between reads must always be reflected, so the
// summary is never cached.
func (uc *GetPeriodUseCase) Execute(ctx context.Context, input GetPeriodInput) (*GetPeriodOutput, error) {
	pm, err := uc.periodRepo.FindByIDWithMonth(ctx, input.PeriodID)
	if err != nil {
		return nil, err
	}

	p := pm.Period
	output := &GetPeriodOutput{
		ID:             p.ID,
		Kind:           p.Kind,
		CarriedBalance: p.CarriedBalance,
		Month: MonthRefOutput{
			ID:      pm.Month.ID,
			OwnerID: pm.Month.OwnerID,
			Year:    pm.Month.Year,
			Month:   pm.Month.Month,
		},
		Summary: ledger.EvaluatePeriod(p),
	}

	for _, r := range p.Revenues {
		output.Revenues = append(output.Revenues, &RevenueEntryOutput{
			ID:          r.ID,
			Description: r.Description,
			Amount:      r.Amount,
			Kind:        r.Kind,
			CreatedAt:   r.CreatedAt,
		})
	}

	for _, inst := range p.Installments {
		entry := &InstallmentEntryOutput{
			ID:               inst.ID,
			ExpenseID:        inst.ExpenseID,
			SequenceNumber:   inst.SequenceNumber,
			ScheduledAmount:  inst.ScheduledAmount,
			DueDate:          inst.DueDate,
			Paid:             inst.Paid,
			ActualPaidAmount: inst.ActualPaidAmount,
			PaidDate:         inst.PaidDate,
		}
		if expense := pm.ExpenseByID(inst.ExpenseID); expense != nil {
			entry.ExpenseDescription = expense.Description
			entry.ExpenseCategory = expense.Category
			entry.InstallmentTotal = expense.InstallmentCount
		}
		output.Installments = append(output.Installments, entry)
	}

	return output, nil
}
