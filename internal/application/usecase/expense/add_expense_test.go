package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/domain/entity"
	domainerror "github.com/quinzena/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	created []*entity.Expense
}

func (f *fakeExpenseRepo) CreateWithInstallments(_ context.Context, e *entity.Expense) error {
	f.created = append(f.created, e)
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

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestAddExpenseAmortizesIntoOriginatingPeriod(t *testing.T) {
	period := entity.NewPeriod(uuid.New(), entity.PeriodKindFirstHalf, decimal.Zero)
	expenseRepo := &fakeExpenseRepo{}
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	uc := NewAddExpenseUseCase(expenseRepo, &fakePeriodRepo{period: period}, fixedClock{now: now})

	out, err := uc.Execute(context.Background(), AddExpenseInput{
		PeriodID:         period.ID,
		Description:      "notebook",
		TotalAmount:      mustDec(t, "100"),
		InstallmentCount: 3,
		Category:         "electronics",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	installments := out.Expense.Installments
	if len(installments) != 3 {
		t.Fatalf("got %d installments, want 3", len(installments))
	}

	want := []string{"33.33", "33.33", "33.34"}
	for i, inst := range installments {
		if !inst.ScheduledAmount.Equal(mustDec(t, want[i])) {
			t.Errorf("installment %d amount = %s, want %s", i+1, inst.ScheduledAmount, want[i])
		}
		if inst.SequenceNumber != i+1 {
			t.Errorf("installment %d sequence = %d, want %d", i, inst.SequenceNumber, i+1)
		}
		// All installments live in the expense's own period regardless of
		// how far their due dates reach.
		if inst.PeriodID != period.ID {
			t.Errorf("installment %d period = %s, want %s", i+1, inst.PeriodID, period.ID)
		}
		wantDue := now.AddDate(0, 0, (i+1)*15)
		if !inst.DueDate.Equal(wantDue) {
			t.Errorf("installment %d due = %s, want %s", i+1, inst.DueDate, wantDue)
		}
		if inst.Paid {
			t.Errorf("installment %d created paid", i+1)
		}
	}

	if len(expenseRepo.created) != 1 {
		t.Fatalf("persisted %d expenses, want 1", len(expenseRepo.created))
	}
	if got := len(expenseRepo.created[0].Installments); got != 3 {
		t.Errorf("persisted expense carries %d installments, want 3", got)
	}
}

func TestAddExpenseInvalidInput(t *testing.T) {
	period := entity.NewPeriod(uuid.New(), entity.PeriodKindFirstHalf, decimal.Zero)
	repo := &fakeExpenseRepo{}
	uc := NewAddExpenseUseCase(repo, &fakePeriodRepo{period: period}, fixedClock{now: time.Now().UTC()})

	tests := []struct {
		name    string
		total   string
		count   int
		wantErr error
	}{
		{"zero total", "0", 2, domainerror.ErrInvalidAmount},
		{"negative total", "-50", 2, domainerror.ErrInvalidAmount},
		{"zero installments", "100", 0, domainerror.ErrInvalidInstallmentCount},
		{"negative installments", "100", -1, domainerror.ErrInvalidInstallmentCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), AddExpenseInput{
				PeriodID:         period.ID,
				Description:      "bad",
				TotalAmount:      mustDec(t, tt.total),
				InstallmentCount: tt.count,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if len(repo.created) != 0 {
		t.Errorf("persisted %d expenses, want 0", len(repo.created))
	}
}

func TestAddExpenseUnknownPeriod(t *testing.T) {
	uc := NewAddExpenseUseCase(&fakeExpenseRepo{}, &fakePeriodRepo{}, fixedClock{now: time.Now().UTC()})

	_, err := uc.Execute(context.Background(), AddExpenseInput{
		PeriodID:         uuid.New(),
		Description:      "orphan",
		TotalAmount:      mustDec(t, "100"),
		InstallmentCount: 1,
	})
	if !errors.Is(err, domainerror.ErrPeriodNotFound) {
		t.Errorf("error = %v, want ErrPeriodNotFound", err)
	}
}
