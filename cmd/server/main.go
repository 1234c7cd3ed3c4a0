package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"garage-backend/internal/config"
	"garage-backend/internal/handlers"
	"garage-backend/internal/health"
	ihttp "garage-backend/internal/http"
	"garage-backend/internal/middleware"
	"garage-backend/internal/monitoring"
	"garage-backend/internal/repositories"
	"garage-backend/internal/services"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	// In-memory stores
	stores := repositories.NewStores(cfg.Billing.InvoicePrefix)
	if cfg.SeedDemoData {
		if err := stores.Seed(); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		log.Printf("[Main] Seeded demo data")
	}

	// Services
	billingService := services.NewBillingService(stores.Invoices, cfg.Billing.DefaultTaxRatePercent)
	clientService := services.NewClientService(stores.Clients, stores.Vehicles)
	vehicleService := services.NewVehicleService(stores.Vehicles, stores.Clients)
	reminderService := services.NewReminderService(
		stores.Services, stores.Vehicles, stores.Clients,
		cfg.Reminders.SoonWindowDays, cfg.Reminders.LaterWindowDays,
	)
	enquiryService := services.NewEnquiryService(stores.Enquiries, stores.Clients, stores.Vehicles, billingService)
	workflowService := services.NewWorkflowService(stores.Workflows, stores.Clients, stores.Vehicles)
	reportService := services.NewReportService(stores.Invoices, cfg.Billing.ShopName, cfg.Billing.CurrencySymbol)
	dashboardService := services.NewDashboardService(
		stores.Clients, stores.Vehicles, stores.Enquiries, stores.Workflows,
		reminderService, billingService,
	)

	// Handlers
	clientHandler := handlers.NewClientHandler(clientService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	workflowHandler := handlers.NewWorkflowHandler(workflowService)
	invoiceHandler := handlers.NewInvoiceHandler(billingService, reportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(version))

	router := ihttp.NewRouter(
		clientHandler,
		vehicleHandler,
		reminderHandler,
		enquiryHandler,
		workflowHandler,
		invoiceHandler,
		dashboardHandler,
		healthHandler,
	)

	// Middleware chain: recovery outermost, then CORS, metrics, logging
	var handler http.Handler = router
	handler = middleware.RequestLogging(handler)
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.NewCORS(cfg)(handler)
	handler = middleware.PanicRecovery(handler)

	// Monitoring dashboard on its own port
	if cfg.Monitoring.Enabled {
		monServer := monitoring.NewMonitoringServer(cfg.Monitoring.Port)
		go monServer.Start()
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("[Main] Garage backend v%s listening on %s", version, addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
