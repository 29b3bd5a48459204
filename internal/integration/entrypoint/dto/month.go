package dto

import (
	"time"

	"github.com/quinzena/backend/internal/application/usecase/month"
)

// CreateMonthRequest represents the request body for month creation.
// Year and month range checks happen in the use case so violations surface
// with the domain error codes.
type CreateMonthRequest struct {
	OwnerID string `json:"owner_id" binding:"required,uuid"`
	Year    int    `json:"year" binding:"required"`
	Month   int    `json:"month"`
}

// PeriodSummaryResponse represents a period inside a month response.
type PeriodSummaryResponse struct {
	ID             string    `json:"id"`
	MonthID        string    `json:"month_id"`
	Kind           string    `json:"kind"`
	CarriedBalance string    `json:"carried_balance"`
	CreatedAt      time.Time `json:"created_at"`
}

// MonthResponse represents a month in API responses.
type MonthResponse struct {
	ID        string                  `json:"id"`
	OwnerID   string                  `json:"owner_id"`
	Year      int                     `json:"year"`
	Month     int                     `json:"month"`
	Periods   []PeriodSummaryResponse `json:"periods"`
	CreatedAt time.Time               `json:"created_at"`
}

// MonthListResponse represents the response for listing months.
type MonthListResponse struct {
	Months []MonthResponse `json:"months"`
}

// ToMonthResponse converts a month use case output to its API response.
func ToMonthResponse(m *month.MonthOutput) MonthResponse {
	response := MonthResponse{
		ID:        m.ID.String(),
		OwnerID:   m.OwnerID.String(),
		Year:      m.Year,
		Month:     m.Month,
		Periods:   []PeriodSummaryResponse{},
		CreatedAt: m.CreatedAt,
	}
	for _, p := range m.Periods {
		response.Periods = append(response.Periods, PeriodSummaryResponse{
			ID:             p.ID.String(),
			MonthID:        p.MonthID.String(),
			Kind:           string(p.Kind),
			CarriedBalance: p.CarriedBalance.StringFixed(2),
			CreatedAt:      p.CreatedAt,
		})
	}
	return response
}

// ToMonthListResponse converts a list months output to its API response.
func ToMonthListResponse(output *month.ListMonthsOutput) MonthListResponse {
	response := MonthListResponse{Months: []MonthResponse{}}
	for _, m := range output.Months {
		response.Months = append(response.Months, ToMonthResponse(m))
	}
	return response
}
