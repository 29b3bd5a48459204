package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quinzena/backend/internal/application/usecase/month"
	"github.com/quinzena/backend/internal/integration/entrypoint/dto"
)

// MonthController handles month endpoints.
type MonthController struct {
	createUseCase *month.CreateMonthUseCase
	listUseCase   *month.ListMonthsUseCase
}

// NewMonthController creates a new month controller instance.
func NewMonthController(createUseCase *month.CreateMonthUseCase, listUseCase *month.ListMonthsUseCase) *MonthController {
	return &MonthController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /api/months requests.
func (c *MonthController) Create(ctx *gin.Context) {
	var req dto.CreateMonthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid owner ID"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), month.CreateMonthInput{
		OwnerID: ownerID,
		Year:    req.Year,
		Month:   req.Month,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMonthResponse(output.Month))
}

// List handles GET /api/months requests.
func (c *MonthController) List(ctx *gin.Context) {
	ownerID, err := uuid.Parse(ctx.Query("ownerId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing ownerId query parameter"})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), month.ListMonthsInput{OwnerID: ownerID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthListResponse(output))
}
