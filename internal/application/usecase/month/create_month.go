// Package month contains month-related use cases.
package month

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/application/adapter"
	"github.com/quinzena/backend/internal/domain/entity"
	domainerror "github.com/quinzena/backend/internal/domain/error"
	"github.com/quinzena/backend/internal/domain/ledger"
)

// CreateMonthInput represents the input for month creation.
type CreateMonthInput struct {
	OwnerID uuid.UUID
	Year    int
	Month   int
}

// CreateMonthOutput represents the output of month creation.
type CreateMonthOutput struct {
	Month *MonthOutput
}

// MonthOutput represents a month in use case outputs.
type MonthOutput struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Year      int
	Month     int
	Periods   []*PeriodOutput
	CreatedAt time.Time
}

// PeriodOutput represents a period in use case outputs.
type PeriodOutput struct {
	ID             uuid.UUID
	MonthID        uuid.UUID
	Kind           entity.PeriodKind
	CarriedBalance decimal.Decimal
	CreatedAt      time.Time
}

// CreateMonthUseCase handles month creation, including the carry-forward
// linking of the new periods into the owner's period chain.
type CreateMonthUseCase struct {
	monthRepo  adapter.MonthRepository
	periodRepo adapter.PeriodRepository
}

// NewCreateMonthUseCase creates a new CreateMonthUseCase instance.
func NewCreateMonthUseCase(monthRepo adapter.MonthRepository, periodRepo adapter.PeriodRepository) *CreateMonthUseCase {
	return &CreateMonthUseCase{
		monthRepo:  monthRepo,
		periodRepo: periodRepo,
	}
}

// Execute performs the month creation.
//
// The first-half period inherits the available balance of the owner's
// chronologically last period before the new month (0 when none exists).
// The second-half period inherits the available balance of the just-created,
// still empty first half. Both carried balances are frozen at creation time
// and are not recomputed when earlier periods change afterwards.
func (uc *CreateMonthUseCase) Execute(ctx context.Context, input CreateMonthInput) (*CreateMonthOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMonth,
			"calendar month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	preceding, err := uc.periodRepo.FindPreceding(ctx, input.OwnerID, input.Year, input.Month, entity.PeriodKindFirstHalf)
	if err != nil {
		return nil, fmt.Errorf("failed to look up preceding period: %w", err)
	}

	firstCarried := decimal.Zero
	if preceding != nil {
		firstCarried = ledger.EvaluatePeriod(preceding).AvailableBalance
	}
	secondCarried := ledger.Evaluate(firstCarried, nil, nil).AvailableBalance

	month := entity.NewMonth(input.OwnerID, input.Year, input.Month, firstCarried, secondCarried)

	if err := uc.monthRepo.Create(ctx, month); err != nil {
		return nil, err
	}

	slog.Info("Month created",
		"monthID", month.ID,
		"ownerID", month.OwnerID,
		"year", month.Year,
		"month", month.Month,
		"carriedBalance", firstCarried.String(),
	)

	return &CreateMonthOutput{Month: toMonthOutput(month)}, nil
}

// toMonthOutput converts a month entity to its use case output.
func toMonthOutput(m *entity.Month) *MonthOutput {
	out := &MonthOutput{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Year:      m.Year,
		Month:     m.Month,
		CreatedAt: m.CreatedAt,
	}
	for _, p := range m.Periods {
		out.Periods = append(out.Periods, &PeriodOutput{
			ID:             p.ID,
			MonthID:        p.MonthID,
			Kind:           p.Kind,
			CarriedBalance: p.CarriedBalance,
			CreatedAt:      p.CreatedAt,
		})
	}
	return out
}
