package models

import (
	"time"

	"garage-backend/internal/finance"
)

// InvoiceRecord wraps the computed invoice with the workflow/client context
// shown in the ledger views. The embedded finance.Invoice carries all
// monetary fields; its ID is the invoice number (INV-000001).
type InvoiceRecord struct {
	finance.Invoice
	WorkflowTitle string    `json:"workflow_title"`
	ClientName    string    `json:"client_name"`
	ClientPhone   string    `json:"client_phone"`
	Vehicle       string    `json:"vehicle"`
	CompletedBy   string    `json:"completed_by"`
	PaymentMethod string    `json:"payment_method"`
	Documents     []string  `json:"documents"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateInvoiceRequest represents the request body for raising an invoice.
// TaxRatePercent falls back to the configured default rate when omitted.
type CreateInvoiceRequest struct {
	WorkflowTitle  string               `json:"workflow_title"`
	ClientName     string               `json:"client_name"`
	ClientPhone    string               `json:"client_phone"`
	Vehicle        string               `json:"vehicle"`
	CompletedBy    string               `json:"completed_by"`
	PaymentMethod  string               `json:"payment_method"`
	Documents      []string             `json:"documents"`
	Notes          string               `json:"notes"`
	BaseAmount     finance.Money        `json:"base_amount"`
	Discount       *finance.Discount    `json:"discount,omitempty"`
	TaxRatePercent *float64             `json:"tax_rate_percent,omitempty"`
	PaymentPlan    *finance.PaymentPlan `json:"payment_plan,omitempty"`
	StartDate      string               `json:"start_date"` // YYYY-MM-DD, defaults to today
	InitialPayment finance.Money        `json:"initial_payment"`
}

// RecordPaymentRequest represents the request body for recording a payment
type RecordPaymentRequest struct {
	Amount finance.Money `json:"amount"`
	Method string        `json:"method"`
	Notes  string        `json:"notes"`
}

// ApplyDiscountRequest represents the request body for a manual adjustment
type ApplyDiscountRequest struct {
	Amount finance.Money `json:"amount"`
}

// DiscountResult reports the adjusted invoice plus any amount the client had
// already paid beyond the new total (never refunded automatically)
type DiscountResult struct {
	Invoice    *InvoiceRecord `json:"invoice"`
	ExcessPaid finance.Money  `json:"excess_paid"`
	Warning    string         `json:"warning,omitempty"`
}

// InvoiceFilter narrows the ledger listing
type InvoiceFilter struct {
	Status string     `json:"status"` // Paid, Due, Partial or empty
	Query  string     `json:"query"`  // matches number, workflow, client, vehicle
	From   *time.Time `json:"from"`
	To     *time.Time `json:"to"`
}

// DashboardStats is the landing-page summary block
type DashboardStats struct {
	TotalClients      int                      `json:"total_clients"`
	TotalVehicles     int                      `json:"total_vehicles"`
	UpcomingReminders int                      `json:"upcoming_reminders"`
	OpenEnquiries     int                      `json:"open_enquiries"`
	ActiveWorkflows   int                      `json:"active_workflows"`
	Billing           finance.FinancialSummary `json:"billing"`
}
