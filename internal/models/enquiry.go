package models

import (
	"time"

	"garage-backend/internal/finance"
)

// EnquiryStatus tracks the wizard stage: an enquiry is evaluated, estimated
// and finally converted into an invoice
type EnquiryStatus string

const (
	EnquiryPending    EnquiryStatus = "pending"
	EnquiryInProgress EnquiryStatus = "in-progress"
	EnquiryCompleted  EnquiryStatus = "completed"
)

// ServiceOption is one requested service on an enquiry
type ServiceOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ChecklistItem is one document in the evaluation checklist
type ChecklistItem struct {
	Name     string `json:"name"`
	Received bool   `json:"received"`
}

// Evaluation captures the document checklist and inspection notes attached
// during the evaluation step
type Evaluation struct {
	Documents   []ChecklistItem `json:"documents"`
	Notes       string          `json:"notes"`
	CompletedAt time.Time       `json:"completed_at"`
}

// ServiceEstimate is a per-service price set during estimation
type ServiceEstimate struct {
	ServiceID   string        `json:"service_id"`
	ServiceName string        `json:"service_name"`
	Price       finance.Money `json:"price"`
}

type Enquiry struct {
	ID            int               `json:"id"`
	ClientID      int               `json:"client_id"`
	VehicleID     *int              `json:"vehicle_id,omitempty"`
	Services      []ServiceOption   `json:"services"`
	Notes         string            `json:"notes"`
	Status        EnquiryStatus     `json:"status"`
	Evaluation    *Evaluation       `json:"evaluation,omitempty"`
	Estimates     []ServiceEstimate `json:"estimates,omitempty"`
	InvoiceNumber string            `json:"invoice_number,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// CreateEnquiryRequest represents the request body for creating an enquiry
type CreateEnquiryRequest struct {
	ClientID  int             `json:"client_id"`
	VehicleID *int            `json:"vehicle_id"`
	Services  []ServiceOption `json:"services"`
	Notes     string          `json:"notes"`
}

// UpdateEnquiryRequest represents the request body for editing an enquiry
type UpdateEnquiryRequest struct {
	VehicleID *int            `json:"vehicle_id"`
	Services  []ServiceOption `json:"services"`
	Notes     string          `json:"notes"`
}

// UpdateEnquiryStatusRequest moves an enquiry along the wizard
type UpdateEnquiryStatusRequest struct {
	Status EnquiryStatus `json:"status"`
}

// SaveEvaluationRequest represents the evaluation step payload
type SaveEvaluationRequest struct {
	Documents []ChecklistItem `json:"documents"`
	Notes     string          `json:"notes"`
}

// SaveEstimatesRequest represents the estimation step payload
type SaveEstimatesRequest struct {
	Estimates []ServiceEstimate `json:"estimates"`
}

// ConvertEnquiryRequest turns a completed estimation into an invoice; the
// estimate total becomes the invoice base amount
type ConvertEnquiryRequest struct {
	Discount       *finance.Discount    `json:"discount,omitempty"`
	TaxRatePercent *float64             `json:"tax_rate_percent,omitempty"`
	PaymentPlan    *finance.PaymentPlan `json:"payment_plan,omitempty"`
	PaymentMethod  string               `json:"payment_method"`
	Notes          string               `json:"notes"`
}
