package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"garage-backend/internal/finance"
	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
	"garage-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService handles printable output: invoice PDFs and ledger exports
type ReportService struct {
	InvoiceRepo    *repositories.InvoiceRepository
	ShopName       string
	CurrencySymbol string
}

// NewReportService creates a new report service
func NewReportService(invoiceRepo *repositories.InvoiceRepository, shopName, currencySymbol string) *ReportService {
	return &ReportService{
		InvoiceRepo:    invoiceRepo,
		ShopName:       shopName,
		CurrencySymbol: currencySymbol,
	}
}

func (s *ReportService) money(m finance.Money) string {
	return fmt.Sprintf("%s %d", s.CurrencySymbol, m)
}

// GenerateInvoicePDF renders one invoice, including the installment schedule
// when the invoice is financed
func (s *ReportService) GenerateInvoicePDF(number string) ([]byte, error) {
	record, err := s.InvoiceRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s - Invoice %s", s.ShopName, record.ID), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Client Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Client Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", record.ClientName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", record.ClientPhone), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Vehicle: %s", record.Vehicle), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Service: %s", record.WorkflowTitle), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Financial Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Financial Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, "Base Amount", "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, s.money(record.BaseAmount), "1", 1, "R", false, 0, "")
	if record.DiscountAmount > 0 {
		pdf.CellFormat(95, 7, "Discount", "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, "- "+s.money(record.DiscountAmount), "1", 1, "R", false, 0, "")
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Tax (%.1f%%)", record.TaxRatePercent), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, s.money(record.TaxAmount), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 8, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 8, s.money(record.FinalAmount), "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, "Paid", "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, s.money(record.PaidAmount), "1", 1, "R", false, 0, "")
	pdf.Ln(5)

	// Status banner
	outstanding := record.FinalAmount - record.PaidAmount
	pdf.SetFont("Arial", "B", 14)
	var statusText string
	if outstanding > 0 {
		pdf.SetFillColor(255, 200, 200) // Light red for outstanding
		statusText = fmt.Sprintf("Outstanding: %s", s.money(outstanding))
	} else {
		pdf.SetFillColor(200, 255, 200) // Light green for paid
		statusText = "FULLY PAID"
	}
	pdf.CellFormat(190, 10, statusText, "1", 1, "C", true, 0, "")

	// EMI Schedule
	if len(record.Schedule) > 0 {
		pdf.Ln(5)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(190, 8, "Installment Schedule", "1", 1, "L", true, 0, "")

		pdf.SetFillColor(200, 200, 200)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(15, 7, "#", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 7, "Due Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(45, 7, "Principal", "1", 0, "C", true, 0, "")
		pdf.CellFormat(45, 7, "Interest", "1", 0, "C", true, 0, "")
		pdf.CellFormat(45, 7, "Amount", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, inst := range record.Schedule {
			pdf.CellFormat(15, 6, fmt.Sprintf("%d", inst.Number), "1", 0, "C", false, 0, "")
			due := inst.DueDate.Format("02-Jan-2006")
			if inst.Status == finance.InstallmentPaid {
				due += " (paid)"
			}
			pdf.CellFormat(40, 6, due, "1", 0, "C", false, 0, "")
			pdf.CellFormat(45, 6, s.money(inst.PrincipalPortion), "1", 0, "R", false, 0, "")
			pdf.CellFormat(45, 6, s.money(inst.InterestPortion), "1", 0, "R", false, 0, "")
			pdf.CellFormat(45, 6, s.money(inst.Amount), "1", 1, "R", false, 0, "")
		}
	}

	if record.Notes != "" {
		pdf.Ln(5)
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(190, 5, "Notes: "+record.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf generation failed: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateLedgerCSV exports the filtered invoice ledger as CSV
func (s *ReportService) GenerateLedgerCSV(filter models.InvoiceFilter) ([]byte, error) {
	records, err := s.InvoiceRepo.List(filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Invoice", "Client", "Vehicle", "Service", "Base", "Discount", "Tax", "Total", "Paid", "Status", "Plan", "Date"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.ClientName,
			r.Vehicle,
			r.WorkflowTitle,
			fmt.Sprintf("%d", r.BaseAmount),
			fmt.Sprintf("%d", r.DiscountAmount),
			fmt.Sprintf("%d", r.TaxAmount),
			fmt.Sprintf("%d", r.FinalAmount),
			fmt.Sprintf("%d", r.PaidAmount),
			string(r.PaymentStatus),
			string(r.PaymentPlan.Kind),
			r.CreatedAt.Format("02-Jan-2006"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
