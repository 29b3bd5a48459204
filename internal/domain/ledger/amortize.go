// Package ledger implements the pure computation engine of the half-month
// ledger: installment amortization and period balance evaluation. Functions
// here are deterministic, side-effect free and safe to test in isolation.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/quinzena/backend/internal/domain/error"
	"github.com/quinzena/backend/internal/domain/money"
)

// installmentCadenceDays is the fixed gap between consecutive installment
// due dates. A flat 15-day cadence rather than true calendar half-months;
// preserved from the original design.
const installmentCadenceDays = 15

// ScheduledInstallment is one dated obligation produced by Amortize.
type ScheduledInstallment struct {
	SequenceNumber int
	Amount         decimal.Decimal
	DueDate        time.Time
}

// Amortize decomposes a total amount into count dated installments starting
// from startDate. The per-installment amount is the total divided by count
// truncated to the money scale; the rounding remainder is added entirely to
// the last installment so the amounts always sum exactly to the total.
func Amortize(total decimal.Decimal, count int, startDate time.Time) ([]ScheduledInstallment, error) {
	if count < 1 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installment count must be at least 1",
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	if err := money.RequirePositive(total); err != nil {
		return nil, err
	}

	countDec := decimal.NewFromInt(int64(count))
	base := total.Div(countDec).Truncate(money.Scale)
	remainder := total.Sub(base.Mul(countDec))

	installments := make([]ScheduledInstallment, count)
	for i := 1; i <= count; i++ {
		amount := base
		if i == count {
			amount = base.Add(remainder)
		}
		installments[i-1] = ScheduledInstallment{
			SequenceNumber: i,
			Amount:         amount,
			DueDate:        startDate.AddDate(0, 0, i*installmentCadenceDays),
		}
	}
	return installments, nil
}
