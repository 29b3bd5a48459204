package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/domain/entity"
)

// Summary holds the computed figures of one period.
type Summary struct {
	TotalRevenue      decimal.Decimal
	TotalPaidExpenses decimal.Decimal
	AvailableBalance  decimal.Decimal
}

// Evaluate computes a period's totals and available balance from its carried
// balance, revenue entries and assigned installments.
//
// Only settled installments count against the balance: the ledger tracks
// realized cash movement, not accrual, so unpaid obligations never reduce
// what is available. A settled installment contributes its actual paid
// amount when one was recorded, otherwise its scheduled amount.
func Evaluate(carried decimal.Decimal, revenues []*entity.Revenue, installments []*entity.Installment) Summary {
	totalRevenue := decimal.Zero
	for _, r := range revenues {
		totalRevenue = totalRevenue.Add(r.Amount)
	}

	totalPaid := decimal.Zero
	for _, i := range installments {
		if i.Paid {
			totalPaid = totalPaid.Add(i.PaidAmount())
		}
	}

	return Summary{
		TotalRevenue:      totalRevenue,
		TotalPaidExpenses: totalPaid,
		AvailableBalance:  carried.Add(totalRevenue).Sub(totalPaid),
	}
}

// EvaluatePeriod is a convenience wrapper over Evaluate for a loaded period.
func EvaluatePeriod(p *entity.Period) Summary {
	return Evaluate(p.CarriedBalance, p.Revenues, p.Installments)
}
