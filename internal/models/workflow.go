package models

import "time"

// WorkflowStatus is the tracking state of a work item
type WorkflowStatus string

const (
	WorkflowPending    WorkflowStatus = "Pending"
	WorkflowInProgress WorkflowStatus = "In Progress"
	WorkflowComplete   WorkflowStatus = "Complete"
)

// WorkflowPriority orders the board columns
type WorkflowPriority string

const (
	PriorityLow    WorkflowPriority = "Low"
	PriorityMedium WorkflowPriority = "Medium"
	PriorityHigh   WorkflowPriority = "High"
)

// Workflow is one trackable work item (registration, insurance claim,
// transfer, ...) shown on the workflow board; completed items feed the ledger
type Workflow struct {
	ID            int              `json:"id"`
	Title         string           `json:"title"`
	ClientID      int              `json:"client_id"`
	VehicleID     int              `json:"vehicle_id"`
	Status        WorkflowStatus   `json:"status"`
	Priority      WorkflowPriority `json:"priority"`
	Description   string           `json:"description"`
	CompletedBy   string           `json:"completed_by,omitempty"`
	CompletedDate *time.Time       `json:"completed_date,omitempty"`
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CreateWorkflowRequest represents the request body for creating a work item
type CreateWorkflowRequest struct {
	Title       string           `json:"title"`
	ClientID    int              `json:"client_id"`
	VehicleID   int              `json:"vehicle_id"`
	Priority    WorkflowPriority `json:"priority"`
	Description string           `json:"description"`
}

// UpdateWorkflowRequest represents the request body for editing a work item
type UpdateWorkflowRequest struct {
	Title       string           `json:"title"`
	Priority    WorkflowPriority `json:"priority"`
	Description string           `json:"description"`
}

// UpdateWorkflowStatusRequest moves a work item across the board. CompletedBy
// is recorded when the status becomes Complete.
type UpdateWorkflowStatusRequest struct {
	Status      WorkflowStatus `json:"status"`
	CompletedBy string         `json:"completed_by"`
}
