package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quinzena/backend/internal/application/usecase/expense"
	"github.com/quinzena/backend/internal/application/usecase/period"
	"github.com/quinzena/backend/internal/application/usecase/revenue"
	"github.com/quinzena/backend/internal/domain/entity"
	"github.com/quinzena/backend/internal/domain/money"
	"github.com/quinzena/backend/internal/integration/entrypoint/dto"
)

// PeriodController handles period endpoints, including the nested revenue
// and expense creation routes.
type PeriodController struct {
	getUseCase        *period.GetPeriodUseCase
	addRevenueUseCase *revenue.AddRevenueUseCase
	addExpenseUseCase *expense.AddExpenseUseCase
}

// NewPeriodController creates a new period controller instance.
func NewPeriodController(
	getUseCase *period.GetPeriodUseCase,
	addRevenueUseCase *revenue.AddRevenueUseCase,
	addExpenseUseCase *expense.AddExpenseUseCase,
) *PeriodController {
	return &PeriodController{
		getUseCase:        getUseCase,
		addRevenueUseCase: addRevenueUseCase,
		addExpenseUseCase: addExpenseUseCase,
	}
}

// Get handles GET /api/periods/:id requests. The computed figures are
// evaluated on every call so settlements are always reflected.
func (c *PeriodController) Get(ctx *gin.Context) {
	periodID, ok := parsePeriodID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), period.GetPeriodInput{PeriodID: periodID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodDetailResponse(output))
}

// AddRevenue handles POST /api/periods/:id/revenues requests.
func (c *PeriodController) AddRevenue(ctx *gin.Context) {
	periodID, ok := parsePeriodID(ctx)
	if !ok {
		return
	}

	var req dto.AddRevenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	amount, err := money.FromFloat(req.Amount)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.addRevenueUseCase.Execute(ctx.Request.Context(), revenue.AddRevenueInput{
		PeriodID:    periodID,
		Description: req.Description,
		Amount:      amount,
		Kind:        entity.RevenueKind(req.Kind),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRevenueResponse(output))
}

// AddExpense handles POST /api/periods/:id/expenses requests.
func (c *PeriodController) AddExpense(ctx *gin.Context) {
	periodID, ok := parsePeriodID(ctx)
	if !ok {
		return
	}

	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	totalAmount, err := money.FromFloat(req.TotalAmount)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.addExpenseUseCase.Execute(ctx.Request.Context(), expense.AddExpenseInput{
		PeriodID:         periodID,
		Description:      req.Description,
		TotalAmount:      totalAmount,
		InstallmentCount: req.InstallmentCount,
		Category:         req.Category,
		Note:             req.Note,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output))
}

// parsePeriodID parses the :id route parameter, responding 400 on failure.
func parsePeriodID(ctx *gin.Context) (uuid.UUID, bool) {
	periodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid period ID"})
		return uuid.Nil, false
	}
	return periodID, true
}
