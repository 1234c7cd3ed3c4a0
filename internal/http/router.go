package http

import (
	"garage-backend/internal/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	clientHandler *handlers.ClientHandler,
	vehicleHandler *handlers.VehicleHandler,
	reminderHandler *handlers.ReminderHandler,
	enquiryHandler *handlers.EnquiryHandler,
	workflowHandler *handlers.WorkflowHandler,
	invoiceHandler *handlers.InvoiceHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// API routes - Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// API routes - Vehicles
	vehiclesAPI := r.PathPrefix("/api/vehicles").Subrouter()
	vehiclesAPI.HandleFunc("", vehicleHandler.ListVehicles).Methods("GET")
	vehiclesAPI.HandleFunc("", vehicleHandler.RegisterVehicle).Methods("POST")
	vehiclesAPI.HandleFunc("/{id}", vehicleHandler.GetVehicle).Methods("GET")
	vehiclesAPI.HandleFunc("/{id}", vehicleHandler.UpdateVehicle).Methods("PUT")
	vehiclesAPI.HandleFunc("/{id}", vehicleHandler.DeleteVehicle).Methods("DELETE")

	// API routes - Service records and reminders
	servicesAPI := r.PathPrefix("/api/services").Subrouter()
	servicesAPI.HandleFunc("", reminderHandler.ListRecords).Methods("GET")
	servicesAPI.HandleFunc("", reminderHandler.CreateRecord).Methods("POST")
	servicesAPI.HandleFunc("/{id}", reminderHandler.DeleteRecord).Methods("DELETE")

	r.HandleFunc("/api/reminders", reminderHandler.ListReminders).Methods("GET")

	// API routes - Enquiries (three-step wizard)
	enquiriesAPI := r.PathPrefix("/api/enquiries").Subrouter()
	enquiriesAPI.HandleFunc("", enquiryHandler.ListEnquiries).Methods("GET")
	enquiriesAPI.HandleFunc("", enquiryHandler.CreateEnquiry).Methods("POST")
	enquiriesAPI.HandleFunc("/{id}", enquiryHandler.GetEnquiry).Methods("GET")
	enquiriesAPI.HandleFunc("/{id}", enquiryHandler.UpdateEnquiry).Methods("PUT")
	enquiriesAPI.HandleFunc("/{id}", enquiryHandler.DeleteEnquiry).Methods("DELETE")
	enquiriesAPI.HandleFunc("/{id}/status", enquiryHandler.UpdateStatus).Methods("PATCH")
	enquiriesAPI.HandleFunc("/{id}/evaluation", enquiryHandler.SaveEvaluation).Methods("PUT")
	enquiriesAPI.HandleFunc("/{id}/estimates", enquiryHandler.SaveEstimates).Methods("PUT")
	enquiriesAPI.HandleFunc("/{id}/invoice", enquiryHandler.ConvertToInvoice).Methods("POST")

	// API routes - Workflows
	workflowsAPI := r.PathPrefix("/api/workflows").Subrouter()
	workflowsAPI.HandleFunc("", workflowHandler.ListWorkflows).Methods("GET")
	workflowsAPI.HandleFunc("", workflowHandler.CreateWorkflow).Methods("POST")
	workflowsAPI.HandleFunc("/{id}", workflowHandler.GetWorkflow).Methods("GET")
	workflowsAPI.HandleFunc("/{id}", workflowHandler.UpdateWorkflow).Methods("PUT")
	workflowsAPI.HandleFunc("/{id}/status", workflowHandler.UpdateStatus).Methods("PATCH")

	// API routes - Invoices (the ledger)
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.HandleFunc("", invoiceHandler.ListInvoices).Methods("GET")
	invoicesAPI.HandleFunc("", invoiceHandler.CreateInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/summary", invoiceHandler.Summary).Methods("GET")
	invoicesAPI.HandleFunc("/export", invoiceHandler.ExportCSV).Methods("GET")
	invoicesAPI.HandleFunc("/{number}", invoiceHandler.GetInvoice).Methods("GET")
	invoicesAPI.HandleFunc("/{number}", invoiceHandler.DeleteInvoice).Methods("DELETE")
	invoicesAPI.HandleFunc("/{number}/payments", invoiceHandler.RecordPayment).Methods("POST")
	invoicesAPI.HandleFunc("/{number}/discount", invoiceHandler.ApplyDiscount).Methods("POST")
	invoicesAPI.HandleFunc("/{number}/installments/{installment}/paid", invoiceHandler.MarkInstallmentPaid).Methods("POST")
	invoicesAPI.HandleFunc("/{number}/schedule", invoiceHandler.Schedule).Methods("GET")
	invoicesAPI.HandleFunc("/{number}/pdf", invoiceHandler.DownloadPDF).Methods("GET")

	// API routes - Dashboard
	r.HandleFunc("/api/dashboard/stats", dashboardHandler.Stats).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
