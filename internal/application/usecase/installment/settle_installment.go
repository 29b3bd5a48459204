// Package installment contains installment-related use cases.
package installment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/application/adapter"
	domainerror "github.com/quinzena/backend/internal/domain/error"
	"github.com/quinzena/backend/internal/domain/money"
)

// SettleInstallmentInput represents the input for settling an installment.
// PaidAmount is optional; when absent the scheduled amount is recorded.
type SettleInstallmentInput struct {
	InstallmentID uuid.UUID
	PaidAmount    *decimal.Decimal
}

// SettleInstallmentOutput represents the output of settling an installment.
type SettleInstallmentOutput struct {
	Installment *SettledInstallmentOutput
}

// SettledInstallmentOutput represents a settled installment in use case outputs.
type SettledInstallmentOutput struct {
	ID               uuid.UUID
	ExpenseID        uuid.UUID
	PeriodID         uuid.UUID
	SequenceNumber   int
	ScheduledAmount  decimal.Decimal
	DueDate          time.Time
	Paid             bool
	ActualPaidAmount decimal.Decimal
	PaidDate         time.Time
}

// SettleInstallmentUseCase handles the unpaid-to-paid transition of an
// installment. The transition happens at most once; a second attempt fails
// with ErrAlreadySettled and leaves the first settlement untouched.
type SettleInstallmentUseCase struct {
	installmentRepo adapter.InstallmentRepository
	clock           adapter.Clock
}

// NewSettleInstallmentUseCase creates a new SettleInstallmentUseCase instance.
func NewSettleInstallmentUseCase(installmentRepo adapter.InstallmentRepository, clock adapter.Clock) *SettleInstallmentUseCase {
	return &SettleInstallmentUseCase{
		installmentRepo: installmentRepo,
		clock:           clock,
	}
}

// Execute settles the installment, recording the paid amount and date.
func (uc *SettleInstallmentUseCase) Execute(ctx context.Context, input SettleInstallmentInput) (*SettleInstallmentOutput, error) {
	if input.PaidAmount != nil {
		if err := money.RequirePositive(*input.PaidAmount); err != nil {
			return nil, err
		}
	}

	current, err := uc.installmentRepo.FindByID(ctx, input.InstallmentID)
	if err != nil {
		return nil, err
	}
	if current.Paid {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeAlreadySettled,
			"installment is already settled",
			domainerror.ErrAlreadySettled,
		)
	}

	paidAmount := current.ScheduledAmount
	if input.PaidAmount != nil {
		paidAmount = *input.PaidAmount
	}

	// The repository performs a compare-and-set on the paid flag, so a
	// concurrent settlement that slipped in after the read above still
	// loses cleanly instead of double-applying.
	settled, err := uc.installmentRepo.Settle(ctx, input.InstallmentID, paidAmount, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	slog.Info("Installment settled",
		"installmentID", settled.ID,
		"expenseID", settled.ExpenseID,
		"paidAmount", paidAmount.String(),
	)

	return &SettleInstallmentOutput{
		Installment: &SettledInstallmentOutput{
			ID:               settled.ID,
			ExpenseID:        settled.ExpenseID,
			PeriodID:         settled.PeriodID,
			SequenceNumber:   settled.SequenceNumber,
			ScheduledAmount:  settled.ScheduledAmount,
			DueDate:          settled.DueDate,
			Paid:             settled.Paid,
			ActualPaidAmount: settled.PaidAmount(),
			PaidDate:         *settled.PaidDate,
		},
	}, nil
}
