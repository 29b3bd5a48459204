// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/domain/entity"
	"github.com/quinzena/backend/internal/domain/ledger"
)

// AddExpenseInput represents the input for expense creation.
type AddExpenseInput struct {
	PeriodID         uuid.UUID
	Description      string
	TotalAmount      decimal.Decimal
	InstallmentCount int
	Category         string
	Note             string
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *ExpenseOutput
}

// ExpenseOutput represents an expense with its installments in use case outputs.
type ExpenseOutput struct {
	ID               uuid.UUID
	PeriodID         uuid.UUID
	Description      string
	TotalAmount      decimal.Decimal
	InstallmentCount int
	Category         string
	Note             string
	Installments     []*InstallmentOutput
	CreatedAt        time.Time
}

// InstallmentOutput represents one installment in use case outputs.
type InstallmentOutput struct {
	ID              uuid.UUID
	ExpenseID       uuid.UUID
	PeriodID        uuid.UUID
	SequenceNumber  int
	ScheduledAmount decimal.Decimal
	DueDate         time.Time
	Paid            bool
}

// AddExpenseUseCase handles expense creation: input validation, installment
// amortization and the atomic persist of the expense with its installments.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	periodRepo  adapter.PeriodRepository
	clock       adapter.Clock
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository, periodRepo adapter.PeriodRepository, clock adapter.Clock) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
		periodRepo:  periodRepo,
		clock:       clock,
	}
}

// Execute creates an expense and its amortized installments.
//
// Every installment is assigned to the expense's originating period, even
// though due dates run into future periods. That placement matches the
// observed behavior of the system this one replaces; distributing
// installments across the following periods is an open product question.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	schedule, err := ledger.Amortize(input.TotalAmount, input.InstallmentCount, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	// Ensure the target period exists before writing.
	if _, err := uc.periodRepo.FindByID(ctx, input.PeriodID); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.PeriodID,
		input.Description,
		input.TotalAmount,
		input.InstallmentCount,
		input.Category,
		input.Note,
	)
	for _, s := range schedule {
		expense.Installments = append(expense.Installments,
			entity.NewInstallment(expense.ID, input.PeriodID, s.SequenceNumber, s.Amount, s.DueDate))
	}

	if err := uc.expenseRepo.CreateWithInstallments(ctx, expense); err != nil {
		return nil, err
	}

	output := &AddExpenseOutput{
		Expense: &ExpenseOutput{
			ID:               expense.ID,
			PeriodID:         expense.PeriodID,
			Description:      expense.Description,
			TotalAmount:      expense.TotalAmount,
			InstallmentCount: expense.InstallmentCount,
			Category:         expense.Category,
			Note:             expense.Note,
			CreatedAt:        expense.CreatedAt,
		},
	}
	for _, inst := range expense.Installments {
		output.Expense.Installments = append(output.Expense.Installments, &InstallmentOutput{
			ID:              inst.ID,
			ExpenseID:       inst.ExpenseID,
			PeriodID:        inst.PeriodID,
			SequenceNumber:  inst.SequenceNumber,
			ScheduledAmount: inst.ScheduledAmount,
			DueDate:         inst.DueDate,
			Paid:            inst.Paid,
		})
	}
	return output, nil
}
