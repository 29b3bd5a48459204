package dto

import (
	"time"

	"github.com/quinzena/backend/internal/application/usecase/period"
)

// PeriodMonthResponse identifies the owning month in a period response.
type PeriodMonthResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
}

// PeriodRevenueResponse represents one revenue entry in a period response.
type PeriodRevenueResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
}

// PeriodInstallmentResponse represents one installment in a period response.
type PeriodInstallmentResponse struct {
	ID                 string     `json:"id"`
	ExpenseID          string     `json:"expense_id"`
	ExpenseDescription string     `json:"expense_description"`
	ExpenseCategory    string     `json:"expense_category"`
	SequenceNumber     int        `json:"sequence_number"`
	InstallmentTotal   int        `json:"installment_total"`
	ScheduledAmount    string     `json:"scheduled_amount"`
	DueDate            string     `json:"due_date"`
	Paid               bool       `json:"paid"`
	ActualPaidAmount   *string    `json:"actual_paid_amount,omitempty"`
	PaidDate           *time.Time `json:"paid_date,omitempty"`
}

// PeriodSummaryFigures represents the computed figures of a period.
type PeriodSummaryFigures struct {
	TotalRevenue      string `json:"total_revenue"`
	TotalPaidExpenses string `json:"total_paid_expenses"`
	AvailableBalance  string `json:"available_balance"`
}

// PeriodDetailResponse represents a period with entries and computed figures.
type PeriodDetailResponse struct {
	ID             string                      `json:"id"`
	Kind           string                      `json:"kind"`
	CarriedBalance string                      `json:"carried_balance"`
	Month          PeriodMonthResponse         `json:"month"`
	Revenues       []PeriodRevenueResponse     `json:"revenues"`
	Installments   []PeriodInstallmentResponse `json:"installments"`
	Summary        PeriodSummaryFigures        `json:"summary"`
}

// ToPeriodDetailResponse converts a get period output to its API response.
func ToPeriodDetailResponse(output *period.GetPeriodOutput) PeriodDetailResponse {
	response := PeriodDetailResponse{
		ID:             output.ID.String(),
		Kind:           string(output.Kind),
		CarriedBalance: output.CarriedBalance.StringFixed(2),
		Month: PeriodMonthResponse{
			ID:      output.Month.ID.String(),
			OwnerID: output.Month.OwnerID.String(),
			Year:    output.Month.Year,
			Month:   output.Month.Month,
		},
		Revenues:     []PeriodRevenueResponse{},
		Installments: []PeriodInstallmentResponse{},
		Summary: PeriodSummaryFigures{
			TotalRevenue:      output.Summary.TotalRevenue.StringFixed(2),
			TotalPaidExpenses: output.Summary.TotalPaidExpenses.StringFixed(2),
			AvailableBalance:  output.Summary.AvailableBalance.StringFixed(2),
		},
	}

	for _, r := range output.Revenues {
		response.Revenues = append(response.Revenues, PeriodRevenueResponse{
			ID:          r.ID.String(),
			Description: r.Description,
			Amount:      r.Amount.StringFixed(2),
			Kind:        string(r.Kind),
			CreatedAt:   r.CreatedAt,
		})
	}

	for _, i := range output.Installments {
		entry := PeriodInstallmentResponse{
			ID:                 i.ID.String(),
			ExpenseID:          i.ExpenseID.String(),
			ExpenseDescription: i.ExpenseDescription,
			ExpenseCategory:    i.ExpenseCategory,
			SequenceNumber:     i.SequenceNumber,
			InstallmentTotal:   i.InstallmentTotal,
			ScheduledAmount:    i.ScheduledAmount.StringFixed(2),
			DueDate:            i.DueDate.Format("2006-01-02"),
			Paid:               i.Paid,
			PaidDate:           i.PaidDate,
		}
		if i.ActualPaidAmount != nil {
			paid := i.ActualPaidAmount.StringFixed(2)
			entry.ActualPaidAmount = &paid
		}
		response.Installments = append(response.Installments, entry)
	}

	return response
}
