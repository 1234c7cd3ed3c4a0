package models

import (
	"time"

	"garage-backend/internal/finance"
)

// ServiceStatus is the lifecycle state of a service record
type ServiceStatus string

const (
	ServiceCompleted ServiceStatus = "completed"
	ServiceUpcoming  ServiceStatus = "upcoming"
	ServiceScheduled ServiceStatus = "scheduled"
)

// ServiceRecord is one service performed (or booked) for a vehicle, with the
// next-due date that drives the reminder views
type ServiceRecord struct {
	ID        int           `json:"id"`
	VehicleID int           `json:"vehicle_id"`
	Type      string        `json:"type"`
	Date      time.Time     `json:"date"`
	NextDue   time.Time     `json:"next_due"`
	Status    ServiceStatus `json:"status"`
	Cost      finance.Money `json:"cost"`
	Documents []string      `json:"documents"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// CreateServiceRecordRequest represents the request body for adding a service record
type CreateServiceRecordRequest struct {
	VehicleID int           `json:"vehicle_id"`
	Type      string        `json:"type"`
	Date      string        `json:"date"`     // YYYY-MM-DD
	NextDue   string        `json:"next_due"` // YYYY-MM-DD
	Status    ServiceStatus `json:"status"`
	Cost      finance.Money `json:"cost"`
	Documents []string      `json:"documents"`
}

// ReminderWindow filters reminders by how close the next-due date is
type ReminderWindow string

const (
	WindowAll     ReminderWindow = "all"
	Window15Days  ReminderWindow = "15days"
	Window60Days  ReminderWindow = "60days"
	WindowOverdue ReminderWindow = "overdue"
)

// Reminder is a service record joined with its vehicle and client for the
// reminder views
type Reminder struct {
	ServiceRecord
	VehicleModel string `json:"vehicle_model"`
	VehiclePlate string `json:"vehicle_plate"`
	ClientName   string `json:"client_name"`
	ClientPhone  string `json:"client_phone"`
	DaysUntilDue int    `json:"days_until_due"`
}
