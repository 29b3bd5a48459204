// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/quinzena/backend/internal/integration/entrypoint/controller"
	"github.com/quinzena/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	monthController       *controller.MonthController
	periodController      *controller.PeriodController
	installmentController *controller.InstallmentController
	writeRateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	monthController *controller.MonthController,
	periodController *controller.PeriodController,
	installmentController *controller.InstallmentController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		monthController:       monthController,
		periodController:      periodController,
		installmentController: installmentController,
		writeRateLimiter:      writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")

	var limit gin.HandlerFunc
	if r.writeRateLimiter != nil {
		limit = r.writeRateLimiter.Middleware()
	} else {
		limit = func(c *gin.Context) { c.Next() }
	}

	if r.monthController != nil {
		api.GET("/months", r.monthController.List)
		api.POST("/months", limit, r.monthController.Create)
	}

	if r.periodController != nil {
		api.GET("/periods/:id", r.periodController.Get)
		api.POST("/periods/:id/revenues", limit, r.periodController.AddRevenue)
		api.POST("/periods/:id/expenses", limit, r.periodController.AddExpense)
	}

	if r.installmentController != nil {
		api.PATCH("/installments/:id/settle", limit, r.installmentController.Settle)
	}
}
