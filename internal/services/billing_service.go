package services

import (
	"fmt"
	"log"
	"time"

	"garage-backend/internal/finance"
	"garage-backend/internal/metrics"
	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
	"garage-backend/internal/timeutil"
)

// BillingService owns the ledger. All money math is delegated to the finance
// package; this layer adds invoice numbering, the workflow/client context and
// persistence into the owned store.
type BillingService struct {
	Repo           *repositories.InvoiceRepository
	DefaultTaxRate float64
}

func NewBillingService(repo *repositories.InvoiceRepository, defaultTaxRate float64) *BillingService {
	return &BillingService{Repo: repo, DefaultTaxRate: defaultTaxRate}
}

// CreateInvoice computes and stores a new invoice
func (s *BillingService) CreateInvoice(req *models.CreateInvoiceRequest) (*models.InvoiceRecord, error) {
	taxRate := s.DefaultTaxRate
	if req.TaxRatePercent != nil {
		taxRate = *req.TaxRatePercent
	}

	plan := finance.PaymentPlan{Kind: finance.PlanFull}
	if req.PaymentPlan != nil {
		plan = *req.PaymentPlan
	}

	startDate := timeutil.Now()
	if req.StartDate != "" {
		parsed, err := time.ParseInLocation(timeutil.DateLayout, req.StartDate, timeutil.IST)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, req.StartDate)
		}
		startDate = parsed
	}

	number := s.Repo.NextInvoiceNumber()
	inv, err := finance.NewInvoice(finance.CreateInvoiceInput{
		ID:             number,
		BaseAmount:     req.BaseAmount,
		Discount:       req.Discount,
		TaxRatePercent: taxRate,
		PaymentPlan:    plan,
		StartDate:      startDate,
		InitialPayment: req.InitialPayment,
	})
	if err != nil {
		return nil, err
	}

	record, err := s.Repo.Create(models.InvoiceRecord{
		Invoice:       inv,
		WorkflowTitle: req.WorkflowTitle,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		Vehicle:       req.Vehicle,
		CompletedBy:   req.CompletedBy,
		PaymentMethod: req.PaymentMethod,
		Documents:     req.Documents,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, err
	}

	metrics.InvoicesCreatedTotal.WithLabelValues(string(plan.Kind)).Inc()
	log.Printf("[Billing] Created invoice %s for %s (final %d)", number, req.ClientName, inv.FinalAmount)
	return record, nil
}

func (s *BillingService) GetInvoice(number string) (*models.InvoiceRecord, error) {
	return s.Repo.GetByNumber(number)
}

func (s *BillingService) ListInvoices(filter models.InvoiceFilter) ([]*models.InvoiceRecord, error) {
	return s.Repo.List(filter)
}

// Summarize aggregates the invoices matching the filter for the ledger
// stat cards
func (s *BillingService) Summarize(filter models.InvoiceFilter) (finance.FinancialSummary, error) {
	records, err := s.Repo.List(filter)
	if err != nil {
		return finance.FinancialSummary{}, err
	}
	invoices := make([]finance.Invoice, 0, len(records))
	for _, record := range records {
		invoices = append(invoices, record.Invoice)
	}
	return finance.Summarize(invoices), nil
}

// RecordPayment credits a payment against an invoice inside the store's
// write lock
func (s *BillingService) RecordPayment(number string, req *models.RecordPaymentRequest) (*models.InvoiceRecord, error) {
	record, err := s.Repo.Mutate(number, func(rec models.InvoiceRecord) (models.InvoiceRecord, error) {
		updated, err := finance.RecordPayment(rec.Invoice, req.Amount)
		if err != nil {
			return rec, err
		}
		rec.Invoice = updated
		if req.Method != "" {
			rec.PaymentMethod = req.Method
		}
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	metrics.PaymentsRecordedTotal.Inc()
	log.Printf("[Billing] Payment of %d on %s, status %s", req.Amount, number, record.PaymentStatus)
	return record, nil
}

// ApplyDiscount applies a manual adjustment. When the client already paid
// more than the reduced total, the excess is surfaced in the result instead
// of being refunded or dropped.
func (s *BillingService) ApplyDiscount(number string, amount finance.Money) (*models.DiscountResult, error) {
	var excess finance.Money
	record, err := s.Repo.Mutate(number, func(rec models.InvoiceRecord) (models.InvoiceRecord, error) {
		updated, over, err := finance.ApplyAdditionalDiscount(rec.Invoice, amount)
		if err != nil {
			return rec, err
		}
		rec.Invoice = updated
		excess = over
		return rec, nil
	})
	if err != nil {
		return nil, err
	}

	result := &models.DiscountResult{Invoice: record, ExcessPaid: excess}
	if excess > 0 {
		result.Warning = fmt.Sprintf("client has already paid %d beyond the adjusted total; refund must be handled manually", excess)
		log.Printf("[Billing] Discount on %s leaves %d overpaid", number, excess)
	}
	return result, nil
}

// MarkInstallmentPaid flips one EMI installment to paid. Independent of the
// aggregate paid amount, which only moves through RecordPayment.
func (s *BillingService) MarkInstallmentPaid(number string, installment int) (*models.InvoiceRecord, error) {
	return s.Repo.Mutate(number, func(rec models.InvoiceRecord) (models.InvoiceRecord, error) {
		updated, err := finance.MarkInstallmentPaid(rec.Invoice, installment, timeutil.Now())
		if err != nil {
			return rec, err
		}
		rec.Invoice = updated
		return rec, nil
	})
}

func (s *BillingService) DeleteInvoice(number string) error {
	return s.Repo.Delete(number)
}
