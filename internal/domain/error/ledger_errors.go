// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidAmount is returned when a monetary value is non-positive,
	// not finite, or carries more precision than the configured scale.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidInstallmentCount is returned when an expense is created with
	// fewer than one installment.
	ErrInvalidInstallmentCount = errors.New("invalid installment count")

	// ErrInvalidMonth is returned when the calendar month is outside 1..12.
	ErrInvalidMonth = errors.New("invalid calendar month")

	// ErrInvalidRevenueKind is returned when the revenue kind is unknown.
	ErrInvalidRevenueKind = errors.New("invalid revenue kind")

	// ErrInvalidPeriodKind is returned when the period kind is unknown.
	ErrInvalidPeriodKind = errors.New("invalid period kind")

	// ErrMonthNotFound is returned when a month is not found in the system.
	ErrMonthNotFound = errors.New("month not found")

	// ErrPeriodNotFound is returned when a period is not found in the system.
	ErrPeriodNotFound = errors.New("period not found")

	// ErrInstallmentNotFound is returned when an installment is not found.
	ErrInstallmentNotFound = errors.New("installment not found")

	// ErrDuplicatePeriod is returned when a month already exists for the
	// same owner, year and calendar month.
	ErrDuplicatePeriod = errors.New("month already exists for owner and calendar month")

	// ErrAlreadySettled is returned when settling an installment that has
	// already been paid.
	ErrAlreadySettled = errors.New("installment already settled")

	// ErrConcurrentModification is returned when a settlement attempt loses
	// a race against a concurrent modification of the same installment.
	ErrConcurrentModification = errors.New("installment modified concurrently")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount           LedgerErrorCode = "LGR-010001"
	ErrCodeInvalidInstallmentCount LedgerErrorCode = "LGR-010002"
	ErrCodeInvalidMonth            LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidRevenueKind      LedgerErrorCode = "LGR-010004"
	ErrCodeInvalidPeriodKind       LedgerErrorCode = "LGR-010005"
	ErrCodeMonthNotFound           LedgerErrorCode = "LGR-010006"
	ErrCodePeriodNotFound          LedgerErrorCode = "LGR-010007"
	ErrCodeInstallmentNotFound     LedgerErrorCode = "LGR-010008"

	// Conflict errors (02XXXX)
	ErrCodeDuplicatePeriod        LedgerErrorCode = "LGR-020001"
	ErrCodeAlreadySettled         LedgerErrorCode = "LGR-020002"
	ErrCodeConcurrentModification LedgerErrorCode = "LGR-020003"

	// Transport errors (03XXXX)
	ErrCodeRateLimited LedgerErrorCode = "LGR-030001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
