package repositories

import (
	"errors"
	"testing"
	"time"

	"garage-backend/internal/finance"
	"garage-backend/internal/models"
	"garage-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T, repo *InvoiceRepository, base finance.Money, client string) *models.InvoiceRecord {
	t.Helper()
	inv, err := finance.NewInvoice(finance.CreateInvoiceInput{
		ID:             repo.NextInvoiceNumber(),
		BaseAmount:     base,
		TaxRatePercent: 18,
		PaymentPlan:    finance.PaymentPlan{Kind: finance.PlanFull},
		StartDate:      time.Date(2026, time.January, 10, 0, 0, 0, 0, timeutil.IST),
	})
	require.NoError(t, err)
	record, err := repo.Create(models.InvoiceRecord{
		Invoice:       inv,
		WorkflowTitle: "General Service",
		ClientName:    client,
		Vehicle:       "Honda City",
	})
	require.NoError(t, err)
	return record
}

func TestInvoiceNumberSequence(t *testing.T) {
	repo := NewInvoiceRepository("INV")
	assert.Equal(t, "INV-000001", repo.NextInvoiceNumber())
	assert.Equal(t, "INV-000002", repo.NextInvoiceNumber())

	custom := NewInvoiceRepository("GAR")
	assert.Equal(t, "GAR-000001", custom.NextInvoiceNumber())
}

func TestInvoiceCreateAndGet(t *testing.T) {
	repo := NewInvoiceRepository("INV")
	record := newTestRecord(t, repo, 2500, "Rajesh Kumar")

	got, err := repo.GetByNumber(record.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.Money(2950), got.FinalAmount)
	assert.Equal(t, "Rajesh Kumar", got.ClientName)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repo.GetByNumber("INV-999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceListFilters(t *testing.T) {
	repo := NewInvoiceRepository("INV")
	first := newTestRecord(t, repo, 1000, "Rajesh Kumar")
	second := newTestRecord(t, repo, 2000, "Priya Sharma")

	// Mark the second one paid
	_, err := repo.Mutate(second.ID, func(rec models.InvoiceRecord) (models.InvoiceRecord, error) {
		updated, err := finance.RecordPayment(rec.Invoice, rec.FinalAmount)
		if err != nil {
			return rec, err
		}
		rec.Invoice = updated
		return rec, nil
	})
	require.NoError(t, err)

	all, err := repo.List(models.InvoiceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first
	assert.Equal(t, second.ID, all[0].ID)

	due, err := repo.List(models.InvoiceFilter{Status: "Due"})
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, first.ID, due[0].ID)

	paid, err := repo.List(models.InvoiceFilter{Status: "Paid"})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, second.ID, paid[0].ID)

	byName, err := repo.List(models.InvoiceFilter{Query: "priya"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, second.ID, byName[0].ID)

	byNumber, err := repo.List(models.InvoiceFilter{Query: first.ID})
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
}

func TestInvoiceMutateErrorLeavesRecordUntouched(t *testing.T) {
	repo := NewInvoiceRepository("INV")
	record := newTestRecord(t, repo, 1000, "Rajesh Kumar")

	boom := errors.New("boom")
	_, err := repo.Mutate(record.ID, func(rec models.InvoiceRecord) (models.InvoiceRecord, error) {
		rec.ClientName = "changed"
		return rec, boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByNumber(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Kumar", got.ClientName)
}

func TestInvoiceDelete(t *testing.T) {
	repo := NewInvoiceRepository("INV")
	record := newTestRecord(t, repo, 1000, "Rajesh Kumar")

	require.NoError(t, repo.Delete(record.ID))
	_, err := repo.GetByNumber(record.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(record.ID), ErrNotFound)

	all, err := repo.List(models.InvoiceFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}
