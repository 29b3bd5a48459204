package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/domain/entity"
)

func revenueOf(t *testing.T, amount string) *entity.Revenue {
	t.Helper()
	return entity.NewRevenue(uuid.New(), "revenue", dec(t, amount), entity.RevenueKindFixed)
}

func installmentOf(t *testing.T, scheduled string) *entity.Installment {
	t.Helper()
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	return entity.NewInstallment(uuid.New(), uuid.New(), 1, dec(t, scheduled), due)
}

func settle(inst *entity.Installment, actual *decimal.Decimal) *entity.Installment {
	now := time.Date(2026, 4, 16, 12, 0, 0, 0, time.UTC)
	inst.Paid = true
	inst.PaidDate = &now
	inst.ActualPaidAmount = actual
	return inst
}

func TestEvaluateEmptyPeriod(t *testing.T) {
	summary := Evaluate(dec(t, "42.50"), nil, nil)

	if !summary.TotalRevenue.IsZero() {
		t.Errorf("total revenue = %s, want 0", summary.TotalRevenue)
	}
	if !summary.TotalPaidExpenses.IsZero() {
		t.Errorf("total paid expenses = %s, want 0", summary.TotalPaidExpenses)
	}
	if !summary.AvailableBalance.Equal(dec(t, "42.50")) {
		t.Errorf("available balance = %s, want 42.50", summary.AvailableBalance)
	}
}

func TestEvaluateUnpaidInstallmentsExcluded(t *testing.T) {
	carried := dec(t, "200")
	installments := []*entity.Installment{installmentOf(t, "50")}

	summary := Evaluate(carried, nil, installments)

	if !summary.TotalPaidExpenses.IsZero() {
		t.Errorf("total paid expenses = %s, want 0", summary.TotalPaidExpenses)
	}
	if !summary.AvailableBalance.Equal(carried) {
		t.Errorf("available balance = %s, want %s (unpaid installments must not reduce it)",
			summary.AvailableBalance, carried)
	}
}

func TestEvaluateActualPaidAmountOverridesScheduled(t *testing.T) {
	actual := dec(t, "90")
	installments := []*entity.Installment{
		settle(installmentOf(t, "100"), &actual),
	}

	summary := Evaluate(decimal.Zero, nil, installments)

	if !summary.TotalPaidExpenses.Equal(dec(t, "90")) {
		t.Errorf("total paid expenses = %s, want 90", summary.TotalPaidExpenses)
	}
	if !summary.AvailableBalance.Equal(dec(t, "-90")) {
		t.Errorf("available balance = %s, want -90", summary.AvailableBalance)
	}
}

func TestEvaluateSettledWithoutActualUsesScheduled(t *testing.T) {
	installments := []*entity.Installment{
		settle(installmentOf(t, "75.25"), nil),
	}

	summary := Evaluate(decimal.Zero, nil, installments)

	if !summary.TotalPaidExpenses.Equal(dec(t, "75.25")) {
		t.Errorf("total paid expenses = %s, want 75.25", summary.TotalPaidExpenses)
	}
}

func TestEvaluateAllRevenueKindsCount(t *testing.T) {
	revenues := []*entity.Revenue{
		entity.NewRevenue(uuid.New(), "salary", dec(t, "1000"), entity.RevenueKindFixed),
		entity.NewRevenue(uuid.New(), "freelance", dec(t, "250.50"), entity.RevenueKindVariable),
	}

	summary := Evaluate(dec(t, "10"), revenues, nil)

	if !summary.TotalRevenue.Equal(dec(t, "1250.50")) {
		t.Errorf("total revenue = %s, want 1250.50", summary.TotalRevenue)
	}
	if !summary.AvailableBalance.Equal(dec(t, "1260.50")) {
		t.Errorf("available balance = %s, want 1260.50", summary.AvailableBalance)
	}
}

func TestEvaluateMixedPeriod(t *testing.T) {
	actual := dec(t, "30")
	revenues := []*entity.Revenue{revenueOf(t, "500")}
	installments := []*entity.Installment{
		settle(installmentOf(t, "100"), nil),     // paid at schedule
		settle(installmentOf(t, "40"), &actual),  // paid 30 instead of 40
		installmentOf(t, "999.99"),               // unpaid, ignored
	}

	summary := Evaluate(dec(t, "-20"), revenues, installments)

	if !summary.TotalPaidExpenses.Equal(dec(t, "130")) {
		t.Errorf("total paid expenses = %s, want 130", summary.TotalPaidExpenses)
	}
	if !summary.AvailableBalance.Equal(dec(t, "350")) {
		t.Errorf("available balance = %s, want 350", summary.AvailableBalance)
	}
}
