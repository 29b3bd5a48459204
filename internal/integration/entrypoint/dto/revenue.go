package dto

import (
	"time"

	"github.com/quinzena/backend/internal/application/usecase/revenue"
)

// AddRevenueRequest represents the request body for recording a revenue.
// The amount is validated in the use case so non-positive or over-precise
// values surface with the domain error codes.
type AddRevenueRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount"`
	Kind        string  `json:"kind" binding:"required"`
}

// RevenueResponse represents a revenue entry in API responses.
type RevenueResponse struct {
	ID          string    `json:"id"`
	PeriodID    string    `json:"period_id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToRevenueResponse converts an add revenue output to its API response.
func ToRevenueResponse(output *revenue.AddRevenueOutput) RevenueResponse {
	r := output.Revenue
	return RevenueResponse{
		ID:          r.ID.String(),
		PeriodID:    r.PeriodID.String(),
		Description: r.Description,
		Amount:      r.Amount.StringFixed(2),
		Kind:        string(r.Kind),
		CreatedAt:   r.CreatedAt,
	}
}
