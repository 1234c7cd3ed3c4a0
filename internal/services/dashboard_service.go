package services

import (
	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
)

// DashboardService assembles the landing-page summary from the other stores
type DashboardService struct {
	Clients   *repositories.ClientRepository
	Vehicles  *repositories.VehicleRepository
	Enquiries *repositories.EnquiryRepository
	Workflows *repositories.WorkflowRepository
	Reminders *ReminderService
	Billing   *BillingService
}

func NewDashboardService(
	clients *repositories.ClientRepository,
	vehicles *repositories.VehicleRepository,
	enquiries *repositories.EnquiryRepository,
	workflows *repositories.WorkflowRepository,
	reminders *ReminderService,
	billing *BillingService,
) *DashboardService {
	return &DashboardService{
		Clients:   clients,
		Vehicles:  vehicles,
		Enquiries: enquiries,
		Workflows: workflows,
		Reminders: reminders,
		Billing:   billing,
	}
}

func (s *DashboardService) Stats() (*models.DashboardStats, error) {
	summary, err := s.Billing.Summarize(models.InvoiceFilter{})
	if err != nil {
		return nil, err
	}
	return &models.DashboardStats{
		TotalClients:      s.Clients.Count(),
		TotalVehicles:     s.Vehicles.Count(),
		UpcomingReminders: s.Reminders.CountUpcoming(),
		OpenEnquiries:     s.Enquiries.CountOpen(),
		ActiveWorkflows:   s.Workflows.CountActive(),
		Billing:           summary,
	}, nil
}
