package dto

import (
	"time"

	"github.com/quinzena/backend/internal/application/usecase/installment"
)

// SettleInstallmentRequest represents the request body for settling an
// installment. PaidAmount is optional; when omitted the scheduled amount is
// recorded as the paid amount.
type SettleInstallmentRequest struct {
	PaidAmount *float64 `json:"paid_amount,omitempty"`
}

// SettledInstallmentResponse represents a settled installment in API responses.
type SettledInstallmentResponse struct {
	ID               string    `json:"id"`
	ExpenseID        string    `json:"expense_id"`
	PeriodID         string    `json:"period_id"`
	SequenceNumber   int       `json:"sequence_number"`
	ScheduledAmount  string    `json:"scheduled_amount"`
	DueDate          string    `json:"due_date"`
	Paid             bool      `json:"paid"`
	ActualPaidAmount string    `json:"actual_paid_amount"`
	PaidDate         time.Time `json:"paid_date"`
}

// ToSettledInstallmentResponse converts a settle output to its API response.
func ToSettledInstallmentResponse(output *installment.SettleInstallmentOutput) SettledInstallmentResponse {
	i := output.Installment
	return SettledInstallmentResponse{
		ID:               i.ID.String(),
		ExpenseID:        i.ExpenseID.String(),
		PeriodID:         i.PeriodID.String(),
		SequenceNumber:   i.SequenceNumber,
		ScheduledAmount:  i.ScheduledAmount.StringFixed(2),
		DueDate:          i.DueDate.Format("2006-01-02"),
		Paid:             i.Paid,
		ActualPaidAmount: i.ActualPaidAmount.StringFixed(2),
		PaidDate:         i.PaidDate,
	}
}
