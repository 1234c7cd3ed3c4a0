package services

import (
	"fmt"
	"log"

	"garage-backend/internal/finance"
	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
	"garage-backend/internal/timeutil"
)

// EnquiryService drives the Enquiry -> Evaluation -> Estimation wizard and
// the final conversion into an invoice.
type EnquiryService struct {
	Repo     *repositories.EnquiryRepository
	Clients  *repositories.ClientRepository
	Vehicles *repositories.VehicleRepository
	Billing  *BillingService
}

func NewEnquiryService(
	repo *repositories.EnquiryRepository,
	clients *repositories.ClientRepository,
	vehicles *repositories.VehicleRepository,
	billing *BillingService,
) *EnquiryService {
	return &EnquiryService{Repo: repo, Clients: clients, Vehicles: vehicles, Billing: billing}
}

func (s *EnquiryService) CreateEnquiry(req *models.CreateEnquiryRequest) (*models.Enquiry, error) {
	if _, err := s.Clients.GetByID(req.ClientID); err != nil {
		return nil, fmt.Errorf("client %d: %w", req.ClientID, err)
	}
	if req.VehicleID != nil {
		if _, err := s.Vehicles.GetByID(*req.VehicleID); err != nil {
			return nil, fmt.Errorf("vehicle %d: %w", *req.VehicleID, err)
		}
	}
	return s.Repo.Create(req)
}

func (s *EnquiryService) GetEnquiry(id int) (*models.Enquiry, error) {
	return s.Repo.GetByID(id)
}

func (s *EnquiryService) ListEnquiries() ([]*models.Enquiry, error) {
	return s.Repo.List()
}

func (s *EnquiryService) UpdateEnquiry(id int, req *models.UpdateEnquiryRequest) (*models.Enquiry, error) {
	return s.Repo.Mutate(id, func(e models.Enquiry) (models.Enquiry, error) {
		if req.Services != nil {
			e.Services = req.Services
		}
		e.VehicleID = req.VehicleID
		e.Notes = req.Notes
		return e, nil
	})
}

// UpdateStatus moves the enquiry along pending -> in-progress -> completed.
// Backward moves are rejected; the wizard never runs in reverse.
func (s *EnquiryService) UpdateStatus(id int, status models.EnquiryStatus) (*models.Enquiry, error) {
	return s.Repo.Mutate(id, func(e models.Enquiry) (models.Enquiry, error) {
		if rank(status) < 0 {
			return e, fmt.Errorf("%w: unknown enquiry status %q", ErrInvalidInput, status)
		}
		if rank(status) < rank(e.Status) {
			return e, fmt.Errorf("%w: cannot move enquiry from %s back to %s", ErrInvalidInput, e.Status, status)
		}
		e.Status = status
		return e, nil
	})
}

func rank(status models.EnquiryStatus) int {
	switch status {
	case models.EnquiryPending:
		return 0
	case models.EnquiryInProgress:
		return 1
	case models.EnquiryCompleted:
		return 2
	default:
		return -1
	}
}

// SaveEvaluation attaches the document checklist from the evaluation step
// and moves a pending enquiry to in-progress
func (s *EnquiryService) SaveEvaluation(id int, req *models.SaveEvaluationRequest) (*models.Enquiry, error) {
	return s.Repo.Mutate(id, func(e models.Enquiry) (models.Enquiry, error) {
		e.Evaluation = &models.Evaluation{
			Documents:   req.Documents,
			Notes:       req.Notes,
			CompletedAt: timeutil.Now(),
		}
		if e.Status == models.EnquiryPending {
			e.Status = models.EnquiryInProgress
		}
		return e, nil
	})
}

// SaveEstimates attaches per-service prices from the estimation step
func (s *EnquiryService) SaveEstimates(id int, req *models.SaveEstimatesRequest) (*models.Enquiry, error) {
	return s.Repo.Mutate(id, func(e models.Enquiry) (models.Enquiry, error) {
		for _, est := range req.Estimates {
			if est.Price < 0 {
				return e, fmt.Errorf("%w: estimate for %s is negative", ErrInvalidInput, est.ServiceName)
			}
		}
		e.Estimates = req.Estimates
		if e.Status == models.EnquiryPending {
			e.Status = models.EnquiryInProgress
		}
		return e, nil
	})
}

// EstimateTotal sums the saved per-service estimates
func EstimateTotal(e *models.Enquiry) finance.Money {
	var total finance.Money
	for _, est := range e.Estimates {
		total += est.Price
	}
	return total
}

// ConvertToInvoice completes the wizard: the estimate total becomes the
// invoice base amount and the enquiry is marked completed with a reference
// to the raised invoice. An enquiry converts at most once.
func (s *EnquiryService) ConvertToInvoice(id int, req *models.ConvertEnquiryRequest) (*models.InvoiceRecord, error) {
	enquiry, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if enquiry.InvoiceNumber != "" {
		return nil, fmt.Errorf("%w: enquiry %d already converted to %s", ErrInvalidInput, id, enquiry.InvoiceNumber)
	}
	if len(enquiry.Estimates) == 0 {
		return nil, fmt.Errorf("%w: enquiry %d has no estimates to invoice", ErrInvalidInput, id)
	}

	client, err := s.Clients.GetByID(enquiry.ClientID)
	if err != nil {
		return nil, err
	}
	vehicle := ""
	if enquiry.VehicleID != nil {
		if v, err := s.Vehicles.GetByID(*enquiry.VehicleID); err == nil {
			vehicle = fmt.Sprintf("%s - %s", v.Model, v.Plate)
		}
	}

	invoiceReq := &models.CreateInvoiceRequest{
		WorkflowTitle:  fmt.Sprintf("Enquiry #%d", id),
		ClientName:     client.Name,
		ClientPhone:    client.Phone,
		Vehicle:        vehicle,
		PaymentMethod:  req.PaymentMethod,
		Notes:          req.Notes,
		BaseAmount:     EstimateTotal(enquiry),
		Discount:       req.Discount,
		TaxRatePercent: req.TaxRatePercent,
		PaymentPlan:    req.PaymentPlan,
	}
	record, err := s.Billing.CreateInvoice(invoiceReq)
	if err != nil {
		return nil, err
	}

	if _, err := s.Repo.Mutate(id, func(e models.Enquiry) (models.Enquiry, error) {
		e.Status = models.EnquiryCompleted
		e.InvoiceNumber = record.ID
		return e, nil
	}); err != nil {
		return nil, err
	}

	log.Printf("[Enquiry] Converted enquiry %d into invoice %s", id, record.ID)
	return record, nil
}

func (s *EnquiryService) DeleteEnquiry(id int) error {
	return s.Repo.Delete(id)
}
