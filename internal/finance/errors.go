package finance

import (
	"errors"
	"fmt"
)

// Sentinel errors for the billing validation failures. All of them come from
// invalid input, never from transient conditions, so callers must not retry.
var (
	// ErrInvalidSchedule covers non-positive tenure, non-positive principal,
	// or a negative interest rate passed to the EMI scheduler.
	ErrInvalidSchedule = errors.New("invalid EMI schedule parameters")

	// ErrPaymentExceedsBalance is returned when a recorded payment would push
	// the paid amount above the invoice final amount.
	ErrPaymentExceedsBalance = errors.New("payment exceeds outstanding balance")

	// ErrDiscountExceedsTotal is returned when an additional discount is
	// larger than the current invoice final amount.
	ErrDiscountExceedsTotal = errors.New("discount exceeds invoice total")

	// ErrInvalidDiscount covers percentage discounts outside [0,100] and
	// negative fixed discounts.
	ErrInvalidDiscount = errors.New("invalid discount")

	// ErrInvalidPayment is returned for negative payment amounts.
	ErrInvalidPayment = errors.New("invalid payment amount")

	// ErrInstallmentNotFound is returned when an installment number does not
	// exist in the invoice schedule.
	ErrInstallmentNotFound = errors.New("installment not found")
)

// ValidationError wraps a sentinel error with human-readable details.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(sentinel error, format string, args ...interface{}) error {
	return &ValidationError{Err: sentinel, Details: fmt.Sprintf(format, args...)}
}
