package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"garage-backend/internal/finance"
	"garage-backend/internal/handlers"
	"garage-backend/internal/health"
	ihttp "garage-backend/internal/http"
	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
	"garage-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	stores := repositories.NewStores("INV")

	billing := services.NewBillingService(stores.Invoices, 18)
	reminders := services.NewReminderService(stores.Services, stores.Vehicles, stores.Clients, 15, 60)
	reports := services.NewReportService(stores.Invoices, "Garage Admin", "Rs.")
	dashboard := services.NewDashboardService(
		stores.Clients, stores.Vehicles, stores.Enquiries, stores.Workflows,
		reminders, billing,
	)

	return ihttp.NewRouter(
		handlers.NewClientHandler(services.NewClientService(stores.Clients, stores.Vehicles)),
		handlers.NewVehicleHandler(services.NewVehicleService(stores.Vehicles, stores.Clients)),
		handlers.NewReminderHandler(reminders),
		handlers.NewEnquiryHandler(services.NewEnquiryService(stores.Enquiries, stores.Clients, stores.Vehicles, billing)),
		handlers.NewWorkflowHandler(services.NewWorkflowService(stores.Workflows, stores.Clients, stores.Vehicles)),
		handlers.NewInvoiceHandler(billing, reports),
		handlers.NewDashboardHandler(dashboard),
		handlers.NewHealthHandler(health.NewHealthChecker("test")),
	)
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createInvoice(t *testing.T, router *mux.Router, body models.CreateInvoiceRequest) models.InvoiceRecord {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/invoices", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var invoice models.InvoiceRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&invoice))
	return invoice
}

func TestInvoiceCreateAndFetch(t *testing.T) {
	router := newTestRouter(t)

	invoice := createInvoice(t, router, models.CreateInvoiceRequest{
		WorkflowTitle: "General Service",
		ClientName:    "Rajesh Kumar",
		Vehicle:       "Honda City",
		BaseAmount:    2500,
	})
	assert.Equal(t, "INV-000001", invoice.ID)
	assert.Equal(t, finance.Money(2950), invoice.FinalAmount)

	rec := doJSON(t, router, http.MethodGet, "/api/invoices/"+invoice.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/invoices/INV-999999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvoiceBadRequestBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvoicePaymentFlow(t *testing.T) {
	router := newTestRouter(t)
	invoice := createInvoice(t, router, models.CreateInvoiceRequest{
		ClientName: "Rajesh Kumar",
		BaseAmount: 2500,
	})

	rec := doJSON(t, router, http.MethodPost, "/api/invoices/"+invoice.ID+"/payments",
		models.RecordPaymentRequest{Amount: 1000, Method: "UPI"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.InvoiceRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, finance.StatusPartial, updated.PaymentStatus)

	// Overpayment gets 422
	rec = doJSON(t, router, http.MethodPost, "/api/invoices/"+invoice.ID+"/payments",
		models.RecordPaymentRequest{Amount: 99999})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Negative payment is a validation failure
	rec = doJSON(t, router, http.MethodPost, "/api/invoices/"+invoice.ID+"/payments",
		models.RecordPaymentRequest{Amount: -5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvoiceDiscountEndpoint(t *testing.T) {
	router := newTestRouter(t)
	invoice := createInvoice(t, router, models.CreateInvoiceRequest{
		ClientName:     "Rajesh Kumar",
		BaseAmount:     1000,
		TaxRatePercent: floatPtr(0),
	})

	rec := doJSON(t, router, http.MethodPost, "/api/invoices/"+invoice.ID+"/payments",
		models.RecordPaymentRequest{Amount: 900})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/invoices/"+invoice.ID+"/discount",
		models.ApplyDiscountRequest{Amount: 300})
	require.Equal(t, http.StatusOK, rec.Code)
	var result models.DiscountResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, finance.Money(200), result.ExcessPaid)
	assert.NotEmpty(t, result.Warning)

	rec = doJSON(t, router, http.MethodPost, "/api/invoices/"+invoice.ID+"/discount",
		models.ApplyDiscountRequest{Amount: 99999})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInvoiceScheduleEndpoints(t *testing.T) {
	router := newTestRouter(t)
	invoice := createInvoice(t, router, models.CreateInvoiceRequest{
		ClientName:     "Priya Sharma",
		BaseAmount:     16520,
		TaxRatePercent: floatPtr(0),
		PaymentPlan: &finance.PaymentPlan{
			Kind: finance.PlanEMI,
			EMI:  &finance.EMIPlan{TenureMonths: 3, AnnualRatePercent: 12},
		},
	})

	rec := doJSON(t, router, http.MethodGet, "/api/invoices/"+invoice.ID+"/schedule", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var schedule []finance.Installment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&schedule))
	require.Len(t, schedule, 3)
	assert.Equal(t, finance.Money(5617), schedule[0].Amount)

	rec = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/invoices/%s/installments/2/paid", invoice.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/invoices/%s/installments/99/paid", invoice.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvoiceSummaryEndpoint(t *testing.T) {
	router := newTestRouter(t)
	createInvoice(t, router, models.CreateInvoiceRequest{BaseAmount: 1000, TaxRatePercent: floatPtr(0)})
	createInvoice(t, router, models.CreateInvoiceRequest{BaseAmount: 2000, TaxRatePercent: floatPtr(0)})

	rec := doJSON(t, router, http.MethodGet, "/api/invoices/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary finance.FinancialSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	assert.Equal(t, 2, summary.InvoiceCount)
	assert.Equal(t, finance.Money(3000), summary.GrossRevenue)
}

func TestInvoicePDFDownload(t *testing.T) {
	router := newTestRouter(t)
	invoice := createInvoice(t, router, models.CreateInvoiceRequest{
		ClientName: "Rajesh Kumar",
		BaseAmount: 2500,
	})

	rec := doJSON(t, router, http.MethodGet, "/api/invoices/"+invoice.ID+"/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHealthAndDashboard(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.DashboardStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Zero(t, stats.TotalClients)
}

func floatPtr(v float64) *float64 { return &v }
