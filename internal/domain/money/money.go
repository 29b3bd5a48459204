// Package money provides fixed-point monetary value handling on top of
// shopspring/decimal. All amounts in the system carry at most Scale decimal
// digits and are computed with exact decimal arithmetic, never binary floats.
package money

import (
	"math"

	"github.com/shopspring/decimal"

	domainerror "github.com/quinzena/backend/internal/domain/error"
)

// Scale is the number of minor-unit digits every amount is limited to,
// matching currency subunits.
const Scale = 2

// Zero is the zero amount.
var Zero = decimal.Zero

// Parse parses a decimal-string amount. It fails with ErrInvalidAmount when
// the input is not a valid decimal or carries more than Scale digits after
// the decimal point.
func Parse(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount is not a valid decimal number",
			domainerror.ErrInvalidAmount,
		)
	}
	return validateScale(d)
}

// FromFloat converts a numeric amount. It fails with ErrInvalidAmount when
// the value is not finite or carries more than Scale decimal digits.
func FromFloat(value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be a finite number",
			domainerror.ErrInvalidAmount,
		)
	}
	return validateScale(decimal.NewFromFloat(value))
}

// RequirePositive fails with ErrInvalidAmount unless amount > 0.
func RequirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func validateScale(d decimal.Decimal) (decimal.Decimal, error) {
	truncated := d.Truncate(Scale)
	if !d.Equal(truncated) {
		return decimal.Zero, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount has more precision than the supported 2 decimal digits",
			domainerror.ErrInvalidAmount,
		)
	}
	return truncated, nil
}
