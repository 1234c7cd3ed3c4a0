package repositories

import (
	"fmt"
	"time"

	"garage-backend/internal/finance"
	"garage-backend/internal/models"
	"garage-backend/internal/timeutil"
)

// Stores bundles the owned in-memory repositories. The hosting service is
// the single owner of all mutable state; the finance package stays pure.
type Stores struct {
	Clients   *ClientRepository
	Vehicles  *VehicleRepository
	Services  *ServiceRecordRepository
	Enquiries *EnquiryRepository
	Workflows *WorkflowRepository
	Invoices  *InvoiceRepository
}

func NewStores(invoicePrefix string) *Stores {
	return &Stores{
		Clients:   NewClientRepository(),
		Vehicles:  NewVehicleRepository(),
		Services:  NewServiceRecordRepository(),
		Enquiries: NewEnquiryRepository(),
		Workflows: NewWorkflowRepository(),
		Invoices:  NewInvoiceRepository(invoicePrefix),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, timeutil.IST)
}

// Seed loads the demo data set so a fresh deployment has a populated
// dashboard. Errors here are programming errors in the fixture data.
func (s *Stores) Seed() error {
	clients := []models.CreateClientRequest{
		{Name: "John Doe", Email: "john@email.com", Phone: "+1234567890"},
		{Name: "Sarah Smith", Email: "sarah@email.com", Phone: "+1234567891"},
		{Name: "Mike Johnson", Email: "mike@email.com", Phone: "+1234567892"},
	}
	for i := range clients {
		if _, err := s.Clients.Create(&clients[i]); err != nil {
			return err
		}
	}

	vehicles := []models.CreateVehicleRequest{
		{ClientID: 1, Model: "Toyota Camry", Plate: "ABC123", Year: 2020},
		{ClientID: 1, Model: "Honda CR-V", Plate: "XYZ789", Year: 2021},
		{ClientID: 2, Model: "Tesla Model 3", Plate: "TES001", Year: 2022},
		{ClientID: 3, Model: "BMW X5", Plate: "BMW555", Year: 2019},
		{ClientID: 3, Model: "Maruti Swift", Plate: "IND789", Year: 2023},
		{ClientID: 3, Model: "Tata Nexon EV", Plate: "ECO222", Year: 2024},
	}
	for i := range vehicles {
		if _, err := s.Vehicles.Create(&vehicles[i]); err != nil {
			return err
		}
	}

	services := []models.ServiceRecord{
		{VehicleID: 1, Type: "PUC Renewal", Date: date(2025, 9, 15), NextDue: date(2026, 3, 15), Status: models.ServiceCompleted, Cost: 150, Documents: []string{"puc-certificate.pdf"}},
		{VehicleID: 2, Type: "Insurance Renewal", Date: date(2025, 10, 1), NextDue: date(2026, 10, 1), Status: models.ServiceUpcoming, Cost: 12000, Documents: []string{"policy2025.pdf"}},
		{VehicleID: 3, Type: "Ownership Transfer", Date: date(2025, 8, 12), NextDue: date(2025, 10, 12), Status: models.ServiceCompleted, Cost: 800, Documents: []string{"form29.pdf", "form30.pdf"}},
		{VehicleID: 3, Type: "RC Smart Card Update", Date: date(2025, 11, 5), NextDue: date(2025, 11, 5), Status: models.ServiceScheduled, Cost: 350},
		{VehicleID: 4, Type: "Permit Renewal", Date: date(2025, 7, 20), NextDue: date(2026, 7, 20), Status: models.ServiceCompleted, Cost: 5000, Documents: []string{"permit2025.pdf"}},
		{VehicleID: 5, Type: "PUC Expiry Check", Date: date(2025, 10, 10), NextDue: date(2026, 4, 10), Status: models.ServiceUpcoming, Cost: 150, Documents: []string{"puc-swift.pdf"}},
		{VehicleID: 6, Type: "Insurance Policy Update", Date: date(2025, 11, 15), NextDue: date(2026, 11, 15), Status: models.ServiceScheduled, Cost: 14500},
		{VehicleID: 6, Type: "Green Tax Payment", Date: date(2025, 6, 30), NextDue: date(2030, 6, 30), Status: models.ServiceCompleted, Cost: 2500, Documents: []string{"green-tax-receipt.pdf"}},
	}
	for _, record := range services {
		if _, err := s.Services.Create(record); err != nil {
			return err
		}
	}

	workflows := []models.CreateWorkflowRequest{
		{Title: "Vehicle Registration", ClientID: 1, VehicleID: 1, Priority: models.PriorityHigh, Description: "New registration processing"},
		{Title: "Insurance Claim", ClientID: 2, VehicleID: 3, Priority: models.PriorityMedium, Description: "Claim processed, awaiting payment"},
		{Title: "Ownership Transfer", ClientID: 3, VehicleID: 4, Priority: models.PriorityHigh, Description: "Transfer documents under review"},
	}
	for i := range workflows {
		if _, err := s.Workflows.Create(&workflows[i]); err != nil {
			return err
		}
	}

	type seedInvoice struct {
		workflow string
		client   string
		phone    string
		vehicle  string
		method   string
		base     finance.Money
		paid     finance.Money
		notes    string
	}
	invoices := []seedInvoice{
		{workflow: "Full Service", client: "Rajesh Kumar", phone: "+91 98765 43210", vehicle: "Honda City 2020 - KA-01-MN-1234", method: "UPI", base: 8300, paid: 5000, notes: "Partial payment received"},
		{workflow: "Engine Tune-up", client: "Priya Sharma", phone: "+91 87654 32109", vehicle: "Maruti Swift 2019 - KA-02-AB-5678", method: "Bank Transfer", base: 7300, paid: 0, notes: "Awaiting payment"},
		{workflow: "Wheel Alignment", client: "Amit Patel", phone: "+91 76543 21098", vehicle: "Hyundai Creta 2021 - KA-03-CD-9012", method: "Cash", base: 6700, paid: 6700, notes: "Settled in full"},
	}
	for _, si := range invoices {
		number := s.Invoices.NextInvoiceNumber()
		inv, err := finance.NewInvoice(finance.CreateInvoiceInput{
			ID:          number,
			BaseAmount:  si.base,
			PaymentPlan: finance.PaymentPlan{Kind: finance.PlanFull},
			StartDate:   timeutil.Now(),
		})
		if err != nil {
			return fmt.Errorf("seed invoice %s: %w", number, err)
		}
		if si.paid > 0 {
			if inv, err = finance.RecordPayment(inv, si.paid); err != nil {
				return fmt.Errorf("seed invoice %s: %w", number, err)
			}
		}
		record := models.InvoiceRecord{
			Invoice:       inv,
			WorkflowTitle: si.workflow,
			ClientName:    si.client,
			ClientPhone:   si.phone,
			Vehicle:       si.vehicle,
			CompletedBy:   "Admin User",
			PaymentMethod: si.method,
			Notes:         si.notes,
		}
		if _, err := s.Invoices.Create(record); err != nil {
			return err
		}
	}
	return nil
}
