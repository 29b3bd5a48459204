package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quinzena/backend/internal/domain/entity"
	domainerror "github.com/quinzena/backend/internal/domain/error"
	"github.com/quinzena/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory database with the ledger schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&model.MonthModel{},
		&model.PeriodModel{},
		&model.RevenueModel{},
		&model.ExpenseModel{},
		&model.InstallmentModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func createMonth(t *testing.T, db *gorm.DB, owner uuid.UUID, year, monthNum int) *entity.Month {
	t.Helper()
	m := entity.NewMonth(owner, year, monthNum, decimal.Zero, decimal.Zero)
	if err := NewMonthRepository(db).Create(context.Background(), m); err != nil {
		t.Fatalf("failed to create month %d/%d: %v", year, monthNum, err)
	}
	return m
}

func TestMonthRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewMonthRepository(db)
	owner := uuid.New()

	created := createMonth(t, db, owner, 2026, 4)

	found, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(found.Periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(found.Periods))
	}
	if found.Periods[0].Kind != entity.PeriodKindFirstHalf {
		t.Errorf("first period kind = %s, want first_half", found.Periods[0].Kind)
	}
	if found.Periods[1].Kind != entity.PeriodKindSecondHalf {
		t.Errorf("second period kind = %s, want second_half", found.Periods[1].Kind)
	}
}

func TestMonthRepositoryDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewMonthRepository(db)
	owner := uuid.New()

	createMonth(t, db, owner, 2026, 4)

	dup := entity.NewMonth(owner, 2026, 4, decimal.Zero, decimal.Zero)
	err := repo.Create(context.Background(), dup)
	if !errors.Is(err, domainerror.ErrDuplicatePeriod) {
		t.Fatalf("error = %v, want ErrDuplicatePeriod", err)
	}

	// A different owner may own the same calendar month.
	other := entity.NewMonth(uuid.New(), 2026, 4, decimal.Zero, decimal.Zero)
	if err := repo.Create(context.Background(), other); err != nil {
		t.Errorf("same month for another owner failed: %v", err)
	}
}

func TestMonthRepositoryListByOwnerNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewMonthRepository(db)
	owner := uuid.New()

	createMonth(t, db, owner, 2025, 12)
	createMonth(t, db, owner, 2026, 4)
	createMonth(t, db, owner, 2026, 1)
	createMonth(t, db, uuid.New(), 2026, 2) // someone else's

	months, err := repo.ListByOwner(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if len(months) != 3 {
		t.Fatalf("got %d months, want 3", len(months))
	}
	want := [][2]int{{2026, 4}, {2026, 1}, {2025, 12}}
	for i, m := range months {
		if m.Year != want[i][0] || m.Month != want[i][1] {
			t.Errorf("months[%d] = %d/%d, want %d/%d", i, m.Year, m.Month, want[i][0], want[i][1])
		}
	}
}

func TestMonthRepositoryFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewMonthRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrMonthNotFound) {
		t.Errorf("error = %v, want ErrMonthNotFound", err)
	}
}

func TestPeriodRepositoryFindPrecedingOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewPeriodRepository(db)
	owner := uuid.New()
	ctx := context.Background()

	march := createMonth(t, db, owner, 2026, 3)
	april := createMonth(t, db, owner, 2026, 4)

	t.Run("first half follows previous month's second half", func(t *testing.T) {
		preceding, err := repo.FindPreceding(ctx, owner, 2026, 4, entity.PeriodKindFirstHalf)
		if err != nil {
			t.Fatalf("FindPreceding() error = %v", err)
		}
		if preceding == nil {
			t.Fatal("got nil, want the second half of 2026/03")
		}
		if preceding.ID != march.PeriodByKind(entity.PeriodKindSecondHalf).ID {
			t.Errorf("got period %s, want second half of 2026/03", preceding.ID)
		}
	})

	t.Run("second half follows its own first half", func(t *testing.T) {
		preceding, err := repo.FindPreceding(ctx, owner, 2026, 4, entity.PeriodKindSecondHalf)
		if err != nil {
			t.Fatalf("FindPreceding() error = %v", err)
		}
		if preceding == nil {
			t.Fatal("got nil, want the first half of 2026/04")
		}
		if preceding.ID != april.PeriodByKind(entity.PeriodKindFirstHalf).ID {
			t.Errorf("got period %s, want first half of 2026/04", preceding.ID)
		}
	})

	t.Run("nothing precedes the earliest period", func(t *testing.T) {
		preceding, err := repo.FindPreceding(ctx, owner, 2026, 3, entity.PeriodKindFirstHalf)
		if err != nil {
			t.Fatalf("FindPreceding() error = %v", err)
		}
		if preceding != nil {
			t.Errorf("got period %s, want nil", preceding.ID)
		}
	})

	t.Run("other owners' periods are invisible", func(t *testing.T) {
		preceding, err := repo.FindPreceding(ctx, uuid.New(), 2026, 4, entity.PeriodKindFirstHalf)
		if err != nil {
			t.Fatalf("FindPreceding() error = %v", err)
		}
		if preceding != nil {
			t.Errorf("got period %s, want nil", preceding.ID)
		}
	})

	t.Run("gaps in the chain are skipped over", func(t *testing.T) {
		// No May exists; June's first half still links back to April.
		preceding, err := repo.FindPreceding(ctx, owner, 2026, 6, entity.PeriodKindFirstHalf)
		if err != nil {
			t.Fatalf("FindPreceding() error = %v", err)
		}
		if preceding == nil {
			t.Fatal("got nil, want the second half of 2026/04")
		}
		if preceding.ID != april.PeriodByKind(entity.PeriodKindSecondHalf).ID {
			t.Errorf("got period %s, want second half of 2026/04", preceding.ID)
		}
	})
}

func TestPeriodRepositoryFindPrecedingLoadsEntries(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	ctx := context.Background()

	march := createMonth(t, db, owner, 2026, 3)
	secondHalf := march.PeriodByKind(entity.PeriodKindSecondHalf)

	revenue := entity.NewRevenue(secondHalf.ID, "salary", mustDec(t, "500"), entity.RevenueKindFixed)
	if err := NewRevenueRepository(db).Create(ctx, revenue); err != nil {
		t.Fatalf("failed to create revenue: %v", err)
	}

	preceding, err := NewPeriodRepository(db).FindPreceding(ctx, owner, 2026, 4, entity.PeriodKindFirstHalf)
	if err != nil {
		t.Fatalf("FindPreceding() error = %v", err)
	}
	if preceding == nil {
		t.Fatal("got nil preceding period")
	}
	if len(preceding.Revenues) != 1 {
		t.Fatalf("preceding period loaded %d revenues, want 1", len(preceding.Revenues))
	}
	if !preceding.Revenues[0].Amount.Equal(mustDec(t, "500")) {
		t.Errorf("revenue amount = %s, want 500", preceding.Revenues[0].Amount)
	}
}

func TestExpenseRepositoryCreateWithInstallments(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	ctx := context.Background()

	month := createMonth(t, db, owner, 2026, 4)
	period := month.PeriodByKind(entity.PeriodKindFirstHalf)

	expense := entity.NewExpense(period.ID, "notebook", mustDec(t, "100"), 3, "electronics", "")
	due := time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC)
	amounts := []string{"33.33", "33.33", "33.34"}
	for i, a := range amounts {
		expense.Installments = append(expense.Installments,
			entity.NewInstallment(expense.ID, period.ID, i+1, mustDec(t, a), due.AddDate(0, 0, i*15)))
	}

	if err := NewExpenseRepository(db).CreateWithInstallments(ctx, expense); err != nil {
		t.Fatalf("CreateWithInstallments() error = %v", err)
	}

	loaded, err := NewPeriodRepository(db).FindByID(ctx, period.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(loaded.Installments) != 3 {
		t.Fatalf("period loaded %d installments, want 3", len(loaded.Installments))
	}
	sum := decimal.Zero
	for _, inst := range loaded.Installments {
		sum = sum.Add(inst.ScheduledAmount)
	}
	if !sum.Equal(mustDec(t, "100")) {
		t.Errorf("installment amounts sum to %s, want 100", sum)
	}
}

func TestPeriodRepositoryFindByIDWithMonth(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	ctx := context.Background()

	month := createMonth(t, db, owner, 2026, 4)
	period := month.PeriodByKind(entity.PeriodKindFirstHalf)

	expense := entity.NewExpense(period.ID, "notebook", mustDec(t, "60"), 2, "electronics", "")
	due := time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC)
	expense.Installments = append(expense.Installments,
		entity.NewInstallment(expense.ID, period.ID, 1, mustDec(t, "30"), due),
		entity.NewInstallment(expense.ID, period.ID, 2, mustDec(t, "30"), due.AddDate(0, 0, 15)),
	)
	if err := NewExpenseRepository(db).CreateWithInstallments(ctx, expense); err != nil {
		t.Fatalf("CreateWithInstallments() error = %v", err)
	}

	pm, err := NewPeriodRepository(db).FindByIDWithMonth(ctx, period.ID)
	if err != nil {
		t.Fatalf("FindByIDWithMonth() error = %v", err)
	}
	if pm.Month == nil || pm.Month.ID != month.ID {
		t.Error("owning month not loaded")
	}
	if len(pm.Period.Installments) != 2 {
		t.Errorf("loaded %d installments, want 2", len(pm.Period.Installments))
	}
	// The two installments share one expense; it must appear once.
	if len(pm.Expenses) != 1 {
		t.Fatalf("loaded %d expenses, want 1", len(pm.Expenses))
	}
	if got := pm.ExpenseByID(expense.ID); got == nil || got.Description != "notebook" {
		t.Errorf("ExpenseByID(%s) = %v, want the notebook expense", expense.ID, got)
	}
}

func TestInstallmentRepositorySettle(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	ctx := context.Background()

	month := createMonth(t, db, owner, 2026, 4)
	period := month.PeriodByKind(entity.PeriodKindFirstHalf)

	expense := entity.NewExpense(period.ID, "rent", mustDec(t, "100"), 1, "housing", "")
	due := time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC)
	expense.Installments = append(expense.Installments,
		entity.NewInstallment(expense.ID, period.ID, 1, mustDec(t, "100"), due))
	if err := NewExpenseRepository(db).CreateWithInstallments(ctx, expense); err != nil {
		t.Fatalf("CreateWithInstallments() error = %v", err)
	}
	instID := expense.Installments[0].ID

	repo := NewInstallmentRepository(db)
	paidDate := time.Date(2026, 4, 17, 10, 0, 0, 0, time.UTC)

	settled, err := repo.Settle(ctx, instID, mustDec(t, "90"), paidDate)
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	if !settled.Paid {
		t.Error("installment not marked paid")
	}
	if settled.ActualPaidAmount == nil || !settled.ActualPaidAmount.Equal(mustDec(t, "90")) {
		t.Errorf("actual paid amount = %v, want 90", settled.ActualPaidAmount)
	}
	if settled.PaidDate == nil || !settled.PaidDate.Equal(paidDate) {
		t.Errorf("paid date = %v, want %s", settled.PaidDate, paidDate)
	}

	// The second settlement must lose and leave the first one intact.
	_, err = repo.Settle(ctx, instID, mustDec(t, "100"), paidDate.Add(time.Hour))
	if !errors.Is(err, domainerror.ErrAlreadySettled) {
		t.Fatalf("second Settle() error = %v, want ErrAlreadySettled", err)
	}

	reloaded, err := repo.FindByID(ctx, instID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !reloaded.ActualPaidAmount.Equal(mustDec(t, "90")) {
		t.Errorf("paid amount after lost race = %s, want 90", reloaded.ActualPaidAmount)
	}
}

func TestInstallmentRepositorySettleNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewInstallmentRepository(db)

	_, err := repo.Settle(context.Background(), uuid.New(), mustDec(t, "10"), time.Now().UTC())
	if !errors.Is(err, domainerror.ErrInstallmentNotFound) {
		t.Errorf("error = %v, want ErrInstallmentNotFound", err)
	}
}
