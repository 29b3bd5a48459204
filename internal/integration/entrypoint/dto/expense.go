package dto

import (
	"time"

	"github.com/quinzena/backend/internal/application/usecase/expense"
)

// AddExpenseRequest represents the request body for expense creation.
// Amount and installment count checks happen in the use case.
type AddExpenseRequest struct {
	Description      string  `json:"description" binding:"required,min=1,max=255"`
	TotalAmount      float64 `json:"total_amount"`
	InstallmentCount int     `json:"installment_count"`
	Category         string  `json:"category" binding:"required,min=1,max=100"`
	Note             string  `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// ExpenseInstallmentResponse represents one installment in an expense response.
type ExpenseInstallmentResponse struct {
	ID              string `json:"id"`
	ExpenseID       string `json:"expense_id"`
	PeriodID        string `json:"period_id"`
	SequenceNumber  int    `json:"sequence_number"`
	ScheduledAmount string `json:"scheduled_amount"`
	DueDate         string `json:"due_date"`
	Paid            bool   `json:"paid"`
}

// ExpenseResponse represents an expense with its installments in API responses.
type ExpenseResponse struct {
	ID               string                       `json:"id"`
	PeriodID         string                       `json:"period_id"`
	Description      string                       `json:"description"`
	TotalAmount      string                       `json:"total_amount"`
	InstallmentCount int                          `json:"installment_count"`
	Category         string                       `json:"category"`
	Note             string                       `json:"note,omitempty"`
	Installments     []ExpenseInstallmentResponse `json:"installments"`
	CreatedAt        time.Time                    `json:"created_at"`
}

// ToExpenseResponse converts an add expense output to its API response.
func ToExpenseResponse(output *expense.AddExpenseOutput) ExpenseResponse {
	e := output.Expense
	response := ExpenseResponse{
		ID:               e.ID.String(),
		PeriodID:         e.PeriodID.String(),
		Description:      e.Description,
		TotalAmount:      e.TotalAmount.StringFixed(2),
		InstallmentCount: e.InstallmentCount,
		Category:         e.Category,
		Note:             e.Note,
		Installments:     []ExpenseInstallmentResponse{},
		CreatedAt:        e.CreatedAt,
	}
	for _, inst := range e.Installments {
		response.Installments = append(response.Installments, ExpenseInstallmentResponse{
			ID:              inst.ID.String(),
			ExpenseID:       inst.ExpenseID.String(),
			PeriodID:        inst.PeriodID.String(),
			SequenceNumber:  inst.SequenceNumber,
			ScheduledAmount: inst.ScheduledAmount.StringFixed(2),
			DueDate:         inst.DueDate.Format("2006-01-02"),
			Paid:            inst.Paid,
		})
	}
	return response
}
