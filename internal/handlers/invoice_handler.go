package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"garage-backend/internal/models"
	"garage-backend/internal/services"
	"garage-backend/internal/timeutil"
	"garage-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	Billing *services.BillingService
	Reports *services.ReportService
}

func NewInvoiceHandler(billing *services.BillingService, reports *services.ReportService) *InvoiceHandler {
	return &InvoiceHandler{Billing: billing, Reports: reports}
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	invoice, err := h.Billing.CreateInvoice(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, invoice)
}

// parseFilter reads the ledger query parameters: status, q, from, to
func parseFilter(r *http.Request) (models.InvoiceFilter, error) {
	filter := models.InvoiceFilter{
		Status: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
	}
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, v, timeutil.IST)
		if err != nil {
			return filter, fmt.Errorf("invalid from date %q", v)
		}
		filter.From = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, v, timeutil.IST)
		if err != nil {
			return filter, fmt.Errorf("invalid to date %q", v)
		}
		filter.To = &t
	}
	return filter, nil
}

func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	invoices, err := h.Billing.ListInvoices(filter)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, invoices)
}

// Summary returns the aggregate figures for the ledger stat cards
func (h *InvoiceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.Billing.Summarize(filter)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, summary)
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	invoice, err := h.Billing.GetInvoice(number)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	var req models.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	invoice, err := h.Billing.RecordPayment(number, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	var req models.ApplyDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.Billing.ApplyDiscount(number, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, result)
}

func (h *InvoiceHandler) MarkInstallmentPaid(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number := vars["number"]
	installment, err := strconv.Atoi(vars["installment"])
	if err != nil {
		http.Error(w, "installment must be a number", http.StatusBadRequest)
		return
	}

	invoice, err := h.Billing.MarkInstallmentPaid(number, installment)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, invoice)
}

// Schedule returns just the installment table for an invoice
func (h *InvoiceHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	invoice, err := h.Billing.GetInvoice(number)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, invoice.Schedule)
}

func (h *InvoiceHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	pdf, err := h.Reports.GenerateInvoicePDF(number)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", number))
	w.Write(pdf)
}

// ExportCSV downloads the filtered ledger as CSV
func (h *InvoiceHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.Reports.GenerateLedgerCSV(filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=ledger.csv")
	w.Write(data)
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	if err := h.Billing.DeleteInvoice(number); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
