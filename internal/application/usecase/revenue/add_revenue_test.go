package revenue

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/domain/entity"
	domainerror "github.com/quinzena/backend/internal/domain/error"
)

type fakeRevenueRepo struct {
	created []*entity.Revenue
}

func (f *fakeRevenueRepo) Create(_ context.Context, r *entity.Revenue) error {
	f.created = append(f.created, r)
	return nil
}

type fakePeriodRepo struct {
	period *entity.Period
}

func (f *fakePeriodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Period, error) {
	if f.period != nil && f.period.ID == id {
		return f.period, nil
	}
	return nil, domainerror.NewLedgerError(
		domainerror.ErrCodePeriodNotFound,
		"period not found",
		domainerror.ErrPeriodNotFound,
	)
}

func (f *fakePeriodRepo) FindByIDWithMonth(_ context.Context, _ uuid.UUID) (*entity.PeriodWithMonth, error) {
	return nil, domainerror.ErrPeriodNotFound
}

func (f *fakePeriodRepo) FindPreceding(_ context.Context, _ uuid.UUID, _, _ int, _ entity.PeriodKind) (*entity.Period, error) {
	return nil, nil
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestAddRevenue(t *testing.T) {
	period := entity.NewPeriod(uuid.New(), entity.PeriodKindFirstHalf, decimal.Zero)
	revenueRepo := &fakeRevenueRepo{}
	uc := NewAddRevenueUseCase(revenueRepo, &fakePeriodRepo{period: period})

	out, err := uc.Execute(context.Background(), AddRevenueInput{
		PeriodID:    period.ID,
		Description: "salary",
		Amount:      mustDec(t, "2500.00"),
		Kind:        entity.RevenueKindFixed,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out.Revenue.PeriodID != period.ID {
		t.Errorf("period ID = %s, want %s", out.Revenue.PeriodID, period.ID)
	}
	if !out.Revenue.Amount.Equal(mustDec(t, "2500.00")) {
		t.Errorf("amount = %s, want 2500.00", out.Revenue.Amount)
	}
	if len(revenueRepo.created) != 1 {
		t.Errorf("persisted %d revenues, want 1", len(revenueRepo.created))
	}
}

func TestAddRevenueRejectsNonPositiveAmount(t *testing.T) {
	period := entity.NewPeriod(uuid.New(), entity.PeriodKindFirstHalf, decimal.Zero)
	repo := &fakeRevenueRepo{}
	uc := NewAddRevenueUseCase(repo, &fakePeriodRepo{period: period})

	for _, s := range []string{"0", "-10"} {
		_, err := uc.Execute(context.Background(), AddRevenueInput{
			PeriodID:    period.ID,
			Description: "bad",
			Amount:      mustDec(t, s),
			Kind:        entity.RevenueKindVariable,
		})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("amount %s: error = %v, want ErrInvalidAmount", s, err)
		}
	}
	if len(repo.created) != 0 {
		t.Errorf("persisted %d revenues, want 0", len(repo.created))
	}
}

func TestAddRevenueRejectsUnknownKind(t *testing.T) {
	period := entity.NewPeriod(uuid.New(), entity.PeriodKindFirstHalf, decimal.Zero)
	uc := NewAddRevenueUseCase(&fakeRevenueRepo{}, &fakePeriodRepo{period: period})

	_, err := uc.Execute(context.Background(), AddRevenueInput{
		PeriodID:    period.ID,
		Description: "mystery",
		Amount:      mustDec(t, "10"),
		Kind:        entity.RevenueKind("windfall"),
	})
	if !errors.Is(err, domainerror.ErrInvalidRevenueKind) {
		t.Errorf("error = %v, want ErrInvalidRevenueKind", err)
	}
}

func TestAddRevenueUnknownPeriod(t *testing.T) {
	uc := NewAddRevenueUseCase(&fakeRevenueRepo{}, &fakePeriodRepo{})

	_, err := uc.Execute(context.Background(), AddRevenueInput{
		PeriodID:    uuid.New(),
		Description: "salary",
		Amount:      mustDec(t, "10"),
		Kind:        entity.RevenueKindFixed,
	})
	if !errors.Is(err, domainerror.ErrPeriodNotFound) {
		t.Errorf("error = %v, want ErrPeriodNotFound", err)
	}
}
