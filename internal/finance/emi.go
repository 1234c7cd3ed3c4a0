package finance

import (
	"math"
	"time"

	"garage-backend/internal/timeutil"
)

// InstallmentStatus is the state of a single scheduled installment.
// There is no partial-installment state; the aggregate invoice paid amount
// carries partial payments.
type InstallmentStatus string

const (
	InstallmentPaid    InstallmentStatus = "Paid"
	InstallmentPending InstallmentStatus = "Pending"
)

// Installment is one scheduled payment within an EMI plan.
type Installment struct {
	Number           int               `json:"number"`
	DueDate          time.Time         `json:"due_date"`
	Amount           Money             `json:"amount"`
	PrincipalPortion Money             `json:"principal_portion"`
	InterestPortion  Money             `json:"interest_portion"`
	Status           InstallmentStatus `json:"status"`
	PaidDate         *time.Time        `json:"paid_date,omitempty"`
}

// EMIPlan holds the installment parameters chosen by the client.
type EMIPlan struct {
	TenureMonths      int     `json:"tenure_months"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
}

func validateSchedule(principal Money, annualRatePercent float64, tenureMonths int) error {
	if principal <= 0 {
		return invalid(ErrInvalidSchedule, "principal %d must be positive", principal)
	}
	if tenureMonths < 1 {
		return invalid(ErrInvalidSchedule, "tenure %d months must be at least 1", tenureMonths)
	}
	if annualRatePercent < 0 {
		return invalid(ErrInvalidSchedule, "annual rate %.2f is negative", annualRatePercent)
	}
	return nil
}

// MonthlyInstallment computes the fixed monthly payment for an amortizing
// plan. Zero-interest plans divide the principal evenly, rounding up so the
// schedule never under-collects; the last installment absorbs the difference.
func MonthlyInstallment(principal Money, annualRatePercent float64, tenureMonths int) (Money, error) {
	if err := validateSchedule(principal, annualRatePercent, tenureMonths); err != nil {
		return 0, err
	}
	r := annualRatePercent / 12 / 100
	if r == 0 {
		return RoundUp(float64(principal) / float64(tenureMonths)), nil
	}
	factor := math.Pow(1+r, float64(tenureMonths))
	return Round(float64(principal) * r * factor / (factor - 1)), nil
}

// BuildSchedule generates the full amortization schedule. Due dates fall on
// startDate plus i calendar months, with the day-of-month clamped to the
// target month's length (Jan 31 + 1 month = Feb 28/29).
//
// The final installment takes the exact remaining balance as its principal
// portion, so the principal portions always sum to the principal with no
// rounding drift; its amount adjusts accordingly.
//
// Installment #1 is marked Paid with PaidDate = startDate: the shop collects
// the first installment at signing. The invoice aggregate paid amount is
// tracked separately and is only credited when the caller records it.
func BuildSchedule(principal Money, annualRatePercent float64, tenureMonths int, startDate time.Time) ([]Installment, error) {
	amount, err := MonthlyInstallment(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return nil, err
	}

	r := annualRatePercent / 12 / 100
	schedule := make([]Installment, 0, tenureMonths)
	balance := principal

	for i := 1; i <= tenureMonths; i++ {
		interest := Round(float64(balance) * r)
		var principalPart Money
		installmentAmount := amount
		if i == tenureMonths {
			// Reconciliation: the last installment clears the balance exactly.
			principalPart = balance
			installmentAmount = principalPart + interest
		} else {
			principalPart = amount - interest
			if principalPart > balance {
				// Rounded-up installments on tiny principals can overshoot.
				principalPart = balance
				installmentAmount = principalPart + interest
			}
		}
		balance -= principalPart

		inst := Installment{
			Number:           i,
			DueDate:          timeutil.AddMonths(startDate, i),
			Amount:           installmentAmount,
			PrincipalPortion: principalPart,
			InterestPortion:  interest,
			Status:           InstallmentPending,
		}
		if i == 1 {
			paid := startDate
			inst.Status = InstallmentPaid
			inst.PaidDate = &paid
		}
		schedule = append(schedule, inst)
	}
	return schedule, nil
}
