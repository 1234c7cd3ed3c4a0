package services

import (
	"testing"

	"garage-backend/internal/finance"
	"garage-backend/internal/models"
	"garage-backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBillingFixture() *BillingService {
	return NewBillingService(repositories.NewInvoiceRepository("INV"), 18)
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateInvoiceFullPlan(t *testing.T) {
	billing := newBillingFixture()

	inv, err := billing.CreateInvoice(&models.CreateInvoiceRequest{
		WorkflowTitle: "Insurance Claim",
		ClientName:    "Rajesh Kumar",
		Vehicle:       "Honda City",
		BaseAmount:    2500,
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-000001", inv.ID)
	assert.Equal(t, finance.Money(450), inv.TaxAmount) // default 18%
	assert.Equal(t, finance.Money(2950), inv.FinalAmount)
	assert.Equal(t, finance.StatusDue, inv.PaymentStatus)
	assert.Empty(t, inv.Schedule)
}

func TestCreateInvoiceEMIPlan(t *testing.T) {
	billing := newBillingFixture()

	inv, err := billing.CreateInvoice(&models.CreateInvoiceRequest{
		WorkflowTitle:  "Engine Overhaul",
		ClientName:     "Priya Sharma",
		BaseAmount:     16520,
		TaxRatePercent: floatPtr(0),
		PaymentPlan: &finance.PaymentPlan{
			Kind: finance.PlanEMI,
			EMI:  &finance.EMIPlan{TenureMonths: 3, AnnualRatePercent: 12},
		},
		StartDate: "2026-01-15",
	})
	require.NoError(t, err)

	require.Len(t, inv.Schedule, 3)
	assert.Equal(t, finance.Money(5617), inv.Schedule[0].Amount)
	// First installment collected at signing
	assert.Equal(t, finance.InstallmentPaid, inv.Schedule[0].Status)
	assert.Equal(t, finance.InstallmentPending, inv.Schedule[1].Status)

	var principal finance.Money
	for _, inst := range inv.Schedule {
		principal += inst.PrincipalPortion
	}
	assert.Equal(t, inv.FinalAmount, principal)
}

func TestCreateInvoiceBadStartDate(t *testing.T) {
	billing := newBillingFixture()

	_, err := billing.CreateInvoice(&models.CreateInvoiceRequest{
		BaseAmount: 1000,
		StartDate:  "15/01/2026",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordPaymentLifecycle(t *testing.T) {
	billing := newBillingFixture()
	inv, err := billing.CreateInvoice(&models.CreateInvoiceRequest{
		ClientName:     "Rajesh Kumar",
		BaseAmount:     2500,
		TaxRatePercent: floatPtr(18),
	})
	require.NoError(t, err)

	partial, err := billing.RecordPayment(inv.ID, &models.RecordPaymentRequest{Amount: 1000, Method: "UPI"})
	require.NoError(t, err)
	assert.Equal(t, finance.StatusPartial, partial.PaymentStatus)
	assert.Equal(t, "UPI", partial.PaymentMethod)

	// Overpayment is rejected, not clamped
	_, err = billing.RecordPayment(inv.ID, &models.RecordPaymentRequest{Amount: 5000})
	assert.ErrorIs(t, err, finance.ErrPaymentExceedsBalance)

	settled, err := billing.RecordPayment(inv.ID, &models.RecordPaymentRequest{Amount: 1950})
	require.NoError(t, err)
	assert.Equal(t, finance.StatusPaid, settled.PaymentStatus)
	assert.Equal(t, settled.FinalAmount, settled.PaidAmount)

	_, err = billing.RecordPayment("INV-999999", &models.RecordPaymentRequest{Amount: 100})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestApplyDiscountSurfacesExcess(t *testing.T) {
	billing := newBillingFixture()
	inv, err := billing.CreateInvoice(&models.CreateInvoiceRequest{
		ClientName:     "Rajesh Kumar",
		BaseAmount:     1000,
		TaxRatePercent: floatPtr(0),
	})
	require.NoError(t, err)

	_, err = billing.RecordPayment(inv.ID, &models.RecordPaymentRequest{Amount: 900})
	require.NoError(t, err)

	result, err := billing.ApplyDiscount(inv.ID, 300)
	require.NoError(t, err)
	assert.Equal(t, finance.Money(700), result.Invoice.FinalAmount)
	assert.Equal(t, finance.Money(200), result.ExcessPaid)
	assert.Equal(t, finance.StatusPaid, result.Invoice.PaymentStatus)
	assert.NotEmpty(t, result.Warning)

	// A discount beyond the remaining total is rejected
	_, err = billing.ApplyDiscount(inv.ID, 10000)
	assert.ErrorIs(t, err, finance.ErrDiscountExceedsTotal)
}

func TestMarkInstallmentPaid(t *testing.T) {
	billing := newBillingFixture()
	inv, err := billing.CreateInvoice(&models.CreateInvoiceRequest{
		ClientName:     "Priya Sharma",
		BaseAmount:     6000,
		TaxRatePercent: floatPtr(0),
		PaymentPlan: &finance.PaymentPlan{
			Kind: finance.PlanEMI,
			EMI:  &finance.EMIPlan{TenureMonths: 6, AnnualRatePercent: 10},
		},
	})
	require.NoError(t, err)

	updated, err := billing.MarkInstallmentPaid(inv.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, finance.InstallmentPaid, updated.Schedule[1].Status)
	require.NotNil(t, updated.Schedule[1].PaidDate)
	// Aggregate paid amount moves only through RecordPayment
	assert.Equal(t, inv.PaidAmount, updated.PaidAmount)

	_, err = billing.MarkInstallmentPaid(inv.ID, 99)
	assert.ErrorIs(t, err, finance.ErrInstallmentNotFound)
}

func TestSummarize(t *testing.T) {
	billing := newBillingFixture()

	first, err := billing.CreateInvoice(&models.CreateInvoiceRequest{BaseAmount: 1000, TaxRatePercent: floatPtr(0)})
	require.NoError(t, err)
	_, err = billing.CreateInvoice(&models.CreateInvoiceRequest{BaseAmount: 2000, TaxRatePercent: floatPtr(0)})
	require.NoError(t, err)
	third, err := billing.CreateInvoice(&models.CreateInvoiceRequest{BaseAmount: 4000, TaxRatePercent: floatPtr(0)})
	require.NoError(t, err)

	_, err = billing.RecordPayment(first.ID, &models.RecordPaymentRequest{Amount: 1000})
	require.NoError(t, err)
	_, err = billing.ApplyDiscount(third.ID, 500)
	require.NoError(t, err)

	summary, err := billing.Summarize(models.InvoiceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.InvoiceCount)
	assert.Equal(t, finance.Money(6500), summary.GrossRevenue)
	assert.Equal(t, finance.Money(1000), summary.TotalReceived)
	assert.Equal(t, finance.Money(5500), summary.TotalOutstanding)
	assert.Equal(t, finance.Money(500), summary.TotalDiscounts)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 2, summary.DueCount)
}
