package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quinzena/backend/internal/application/usecase/installment"
	"github.com/quinzena/backend/internal/domain/money"
	"github.com/quinzena/backend/internal/integration/entrypoint/dto"
)

// InstallmentController handles installment endpoints.
type InstallmentController struct {
	settleUseCase *installment.SettleInstallmentUseCase
}

// NewInstallmentController creates a new installment controller instance.
func NewInstallmentController(settleUseCase *installment.SettleInstallmentUseCase) *InstallmentController {
	return &InstallmentController{
		settleUseCase: settleUseCase,
	}
}

// Settle handles PATCH /api/installments/:id/settle requests.
func (c *InstallmentController) Settle(ctx *gin.Context) {
	installmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid installment ID"})
		return
	}

	// The body is optional; settling without one records the scheduled amount.
	var req dto.SettleInstallmentRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Invalid request body",
				Details: err.Error(),
			})
			return
		}
	}

	input := installment.SettleInstallmentInput{InstallmentID: installmentID}
	if req.PaidAmount != nil {
		amount, err := money.FromFloat(*req.PaidAmount)
		if err != nil {
			respondError(ctx, err)
			return
		}
		input.PaidAmount = &amount
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettledInstallmentResponse(output))
}
