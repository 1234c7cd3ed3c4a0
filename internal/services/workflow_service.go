package services

import (
	"fmt"

	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
	"garage-backend/internal/timeutil"
)

type WorkflowService struct {
	Repo     *repositories.WorkflowRepository
	Clients  *repositories.ClientRepository
	Vehicles *repositories.VehicleRepository
}

func NewWorkflowService(
	repo *repositories.WorkflowRepository,
	clients *repositories.ClientRepository,
	vehicles *repositories.VehicleRepository,
) *WorkflowService {
	return &WorkflowService{Repo: repo, Clients: clients, Vehicles: vehicles}
}

func (s *WorkflowService) CreateWorkflow(req *models.CreateWorkflowRequest) (*models.Workflow, error) {
	if _, err := s.Clients.GetByID(req.ClientID); err != nil {
		return nil, fmt.Errorf("client %d: %w", req.ClientID, err)
	}
	if _, err := s.Vehicles.GetByID(req.VehicleID); err != nil {
		return nil, fmt.Errorf("vehicle %d: %w", req.VehicleID, err)
	}
	return s.Repo.Create(req)
}

func (s *WorkflowService) GetWorkflow(id int) (*models.Workflow, error) {
	return s.Repo.GetByID(id)
}

func (s *WorkflowService) ListWorkflows() ([]*models.Workflow, error) {
	return s.Repo.List()
}

func (s *WorkflowService) UpdateWorkflow(id int, req *models.UpdateWorkflowRequest) (*models.Workflow, error) {
	return s.Repo.Mutate(id, func(w models.Workflow) (models.Workflow, error) {
		w.Title = req.Title
		w.Priority = req.Priority
		w.Description = req.Description
		return w, nil
	})
}

// UpdateStatus moves a work item across the board; completion stamps who
// finished it and when, which is what the ledger view displays
func (s *WorkflowService) UpdateStatus(id int, req *models.UpdateWorkflowStatusRequest) (*models.Workflow, error) {
	switch req.Status {
	case models.WorkflowPending, models.WorkflowInProgress, models.WorkflowComplete:
	default:
		return nil, fmt.Errorf("%w: unknown workflow status %q", ErrInvalidInput, req.Status)
	}
	return s.Repo.Mutate(id, func(w models.Workflow) (models.Workflow, error) {
		w.Status = req.Status
		if req.Status == models.WorkflowComplete {
			now := timeutil.Now()
			w.CompletedDate = &now
			w.CompletedBy = req.CompletedBy
		} else {
			w.CompletedDate = nil
			w.CompletedBy = ""
		}
		return w, nil
	})
}
