package finance

import (
	"time"
)

// PaymentStatus is the derived settlement state of an invoice.
// Transitions are monotonic: Due -> Partial -> Paid.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "Paid"
	StatusDue     PaymentStatus = "Due"
	StatusPartial PaymentStatus = "Partial"
)

// PaymentPlanKind selects between one-shot and installment settlement.
type PaymentPlanKind string

const (
	PlanFull PaymentPlanKind = "Full"
	PlanEMI  PaymentPlanKind = "EMI"
)

// PaymentPlan is how the client settles the invoice. EMI fields are only
// meaningful when Kind is PlanEMI.
type PaymentPlan struct {
	Kind PaymentPlanKind `json:"kind"`
	EMI  *EMIPlan        `json:"emi,omitempty"`
}

// Invoice is one billable service transaction. All monetary fields are
// integers in the smallest currency unit; derived fields are computed once at
// creation and thereafter mutated only through RecordPayment,
// ApplyAdditionalDiscount and MarkInstallmentPaid.
type Invoice struct {
	ID             string        `json:"id"`
	BaseAmount     Money         `json:"base_amount"`
	Discount       *Discount     `json:"discount,omitempty"`
	DiscountAmount Money         `json:"discount_amount"`
	TaxRatePercent float64       `json:"tax_rate_percent"`
	TaxAmount      Money         `json:"tax_amount"`
	FinalAmount    Money         `json:"final_amount"`
	PaymentPlan    PaymentPlan   `json:"payment_plan"`
	PaidAmount     Money         `json:"paid_amount"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	Schedule       []Installment `json:"schedule,omitempty"`
	StartDate      time.Time     `json:"start_date"`
}

// CreateInvoiceInput is the raw input accepted by NewInvoice.
type CreateInvoiceInput struct {
	ID             string      `json:"id"`
	BaseAmount     Money       `json:"base_amount"`
	Discount       *Discount   `json:"discount,omitempty"`
	TaxRatePercent float64     `json:"tax_rate_percent"`
	PaymentPlan    PaymentPlan `json:"payment_plan"`
	StartDate      time.Time   `json:"start_date"`
	// InitialPayment is credited at creation, e.g. the first EMI installment
	// collected at signing. Zero when absent.
	InitialPayment Money `json:"initial_payment"`
}

// FinancialSummary aggregates a collection of invoices for reporting.
type FinancialSummary struct {
	InvoiceCount     int   `json:"invoice_count"`
	GrossRevenue     Money `json:"gross_revenue"`
	TotalReceived    Money `json:"total_received"`
	TotalOutstanding Money `json:"total_outstanding"`
	TotalDiscounts   Money `json:"total_discounts"`
	PaidCount        int   `json:"paid_count"`
	DueCount         int   `json:"due_count"`
	PartialCount     int   `json:"partial_count"`
}

// statusFor derives the payment status from the aggregate paid amount.
// A zero-total invoice counts as Paid: the paid == final rule wins.
func statusFor(paid, final Money) PaymentStatus {
	switch {
	case paid == final:
		return StatusPaid
	case paid == 0:
		return StatusDue
	default:
		return StatusPartial
	}
}

// NewInvoice validates the input, computes the discount/tax breakdown and,
// for EMI plans, generates the amortization schedule over the final amount.
func NewInvoice(input CreateInvoiceInput) (Invoice, error) {
	breakdown, err := ComputeFinal(input.BaseAmount, input.Discount, input.TaxRatePercent)
	if err != nil {
		return Invoice{}, err
	}
	if input.InitialPayment < 0 {
		return Invoice{}, invalid(ErrInvalidPayment, "initial payment %d is negative", input.InitialPayment)
	}
	if input.InitialPayment > breakdown.FinalAmount {
		return Invoice{}, invalid(ErrPaymentExceedsBalance,
			"initial payment %d exceeds final amount %d", input.InitialPayment, breakdown.FinalAmount)
	}

	inv := Invoice{
		ID:             input.ID,
		BaseAmount:     input.BaseAmount,
		Discount:       input.Discount,
		DiscountAmount: breakdown.DiscountAmount,
		TaxRatePercent: input.TaxRatePercent,
		TaxAmount:      breakdown.TaxAmount,
		FinalAmount:    breakdown.FinalAmount,
		PaymentPlan:    input.PaymentPlan,
		PaidAmount:     input.InitialPayment,
		StartDate:      input.StartDate,
	}

	if input.PaymentPlan.Kind == PlanEMI {
		if input.PaymentPlan.EMI == nil {
			return Invoice{}, invalid(ErrInvalidSchedule, "EMI plan missing tenure and rate")
		}
		schedule, err := BuildSchedule(
			breakdown.FinalAmount,
			input.PaymentPlan.EMI.AnnualRatePercent,
			input.PaymentPlan.EMI.TenureMonths,
			input.StartDate,
		)
		if err != nil {
			return Invoice{}, err
		}
		inv.Schedule = schedule
	}

	inv.PaymentStatus = statusFor(inv.PaidAmount, inv.FinalAmount)
	return inv, nil
}

// RecordPayment credits a payment against the invoice and recomputes the
// payment status. Payments that would exceed the final amount are rejected,
// never clamped. For EMI invoices this is independent of per-installment
// status, which is flipped separately via MarkInstallmentPaid.
func RecordPayment(inv Invoice, amount Money) (Invoice, error) {
	if amount < 0 {
		return inv, invalid(ErrInvalidPayment, "payment %d is negative", amount)
	}
	if inv.PaidAmount+amount > inv.FinalAmount {
		return inv, invalid(ErrPaymentExceedsBalance,
			"payment %d on balance %d", amount, inv.FinalAmount-inv.PaidAmount)
	}
	inv.PaidAmount += amount
	inv.PaymentStatus = statusFor(inv.PaidAmount, inv.FinalAmount)
	return inv, nil
}

// ApplyAdditionalDiscount reduces the final amount after creation (manual
// adjustment before settlement). The second return value is the amount the
// client has already paid beyond the new total; it is not refunded
// automatically, only surfaced so the caller can flag it.
func ApplyAdditionalDiscount(inv Invoice, extra Money) (Invoice, Money, error) {
	if extra < 0 {
		return inv, 0, invalid(ErrInvalidDiscount, "additional discount %d is negative", extra)
	}
	if extra > inv.FinalAmount {
		return inv, 0, invalid(ErrDiscountExceedsTotal,
			"discount %d exceeds total %d", extra, inv.FinalAmount)
	}
	inv.FinalAmount -= extra
	inv.DiscountAmount += extra

	var excess Money
	if inv.PaidAmount > inv.FinalAmount {
		excess = inv.PaidAmount - inv.FinalAmount
		inv.PaymentStatus = StatusPaid
		return inv, excess, nil
	}
	inv.PaymentStatus = statusFor(inv.PaidAmount, inv.FinalAmount)
	return inv, 0, nil
}

// MarkInstallmentPaid flips one scheduled installment to Paid. The aggregate
// paid amount is not touched; record the money through RecordPayment.
func MarkInstallmentPaid(inv Invoice, number int, paidDate time.Time) (Invoice, error) {
	for i := range inv.Schedule {
		if inv.Schedule[i].Number != number {
			continue
		}
		schedule := make([]Installment, len(inv.Schedule))
		copy(schedule, inv.Schedule)
		d := paidDate
		schedule[i].Status = InstallmentPaid
		schedule[i].PaidDate = &d
		inv.Schedule = schedule
		return inv, nil
	}
	return inv, invalid(ErrInstallmentNotFound, "installment %d of %d", number, len(inv.Schedule))
}

// NextDueInstallment returns the first Pending installment in sequence, or
// nil when the schedule is absent or fully paid. Relies on the ascending
// ordering guaranteed by BuildSchedule.
func NextDueInstallment(inv Invoice) *Installment {
	for i := range inv.Schedule {
		if inv.Schedule[i].Status == InstallmentPending {
			next := inv.Schedule[i]
			return &next
		}
	}
	return nil
}

// Summarize aggregates invoices for reporting. Pure: no mutation of inputs.
func Summarize(invoices []Invoice) FinancialSummary {
	summary := FinancialSummary{InvoiceCount: len(invoices)}
	for _, inv := range invoices {
		summary.GrossRevenue += inv.FinalAmount
		summary.TotalReceived += inv.PaidAmount
		summary.TotalOutstanding += inv.FinalAmount - inv.PaidAmount
		summary.TotalDiscounts += inv.DiscountAmount
		switch inv.PaymentStatus {
		case StatusPaid:
			summary.PaidCount++
		case StatusDue:
			summary.DueCount++
		default:
			summary.PartialCount++
		}
	}
	return summary
}
