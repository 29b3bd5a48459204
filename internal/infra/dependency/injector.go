// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/quinzena/backend/config"
	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/application/usecase/expense"
	"github.com/quinzena/backend/internal/application/usecase/installment"
	"github.com/quinzena/backend/internal/application/usecase/month"
	"github.com/quinzena/backend/internal/application/usecase/period"
	"github.com/quinzena/backend/internal/application/usecase/revenue"
	"github.com/quinzena/backend/internal/infra/server/router"
	"github.com/quinzena/backend/internal/integration/entrypoint/controller"
	"github.com/quinzena/backend/internal/integration/entrypoint/middleware"
	"github.com/quinzena/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The dbHealthChecker is separate from db so callers without a live
// connection can still serve health checks.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool, clock adapter.Clock) *Injector {
	// Create repositories
	monthRepo := persistence.NewMonthRepository(db)
	periodRepo := persistence.NewPeriodRepository(db)
	revenueRepo := persistence.NewRevenueRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	installmentRepo := persistence.NewInstallmentRepository(db)

	// Create use cases
	createMonthUseCase := month.NewCreateMonthUseCase(monthRepo, periodRepo)
	listMonthsUseCase := month.NewListMonthsUseCase(monthRepo)
	getPeriodUseCase := period.NewGetPeriodUseCase(periodRepo)
	addRevenueUseCase := revenue.NewAddRevenueUseCase(revenueRepo, periodRepo)
	addExpenseUseCase := expense.NewAddExpenseUseCase(expenseRepo, periodRepo, clock)
	settleInstallmentUseCase := installment.NewSettleInstallmentUseCase(installmentRepo, clock)

	// Create controllers and middleware
	healthController := controller.NewHealthController(dbHealthChecker)
	monthController := controller.NewMonthController(createMonthUseCase, listMonthsUseCase)
	periodController := controller.NewPeriodController(getPeriodUseCase, addRevenueUseCase, addExpenseUseCase)
	installmentController := controller.NewInstallmentController(settleInstallmentUseCase)
	writeRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.WindowDuration)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: router.NewRouter(
			healthController,
			monthController,
			periodController,
			installmentController,
			writeRateLimiter,
		),
	}
}
