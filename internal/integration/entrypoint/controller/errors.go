// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/quinzena/backend/internal/domain/error"
	"github.com/quinzena/backend/internal/integration/entrypoint/dto"
)

// respondError maps a use case error onto an HTTP response. Validation
// failures map to 400, missing resources to 404, conflicts to 409; anything
// unrecognized (storage failures included) becomes an opaque 500.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domainerror.ErrInvalidAmount),
		errors.Is(err, domainerror.ErrInvalidInstallmentCount),
		errors.Is(err, domainerror.ErrInvalidMonth),
		errors.Is(err, domainerror.ErrInvalidRevenueKind),
		errors.Is(err, domainerror.ErrInvalidPeriodKind):
		status = http.StatusBadRequest
	case errors.Is(err, domainerror.ErrMonthNotFound),
		errors.Is(err, domainerror.ErrPeriodNotFound),
		errors.Is(err, domainerror.ErrInstallmentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainerror.ErrDuplicatePeriod),
		errors.Is(err, domainerror.ErrAlreadySettled),
		errors.Is(err, domainerror.ErrConcurrentModification):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		ctx.JSON(status, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	response := dto.ErrorResponse{Error: err.Error()}
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		response.Error = ledgerErr.Message
		response.Code = string(ledgerErr.Code)
	}
	ctx.JSON(status, response)
}
