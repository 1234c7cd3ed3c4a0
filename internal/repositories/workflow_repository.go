package repositories

import (
	"sort"
	"sync"

	"garage-backend/internal/models"
	"garage-backend/internal/timeutil"
)

// WorkflowRepository is the owned in-memory store for work items.
type WorkflowRepository struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]models.Workflow
}

func NewWorkflowRepository() *WorkflowRepository {
	return &WorkflowRepository{nextID: 1, items: make(map[int]models.Workflow)}
}

// Create stores a new work item in the pending state
func (r *WorkflowRepository) Create(req *models.CreateWorkflowRequest) (*models.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeutil.Now()
	workflow := models.Workflow{
		ID:          r.nextID,
		Title:       req.Title,
		ClientID:    req.ClientID,
		VehicleID:   req.VehicleID,
		Status:      models.WorkflowPending,
		Priority:    req.Priority,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if workflow.Priority == "" {
		workflow.Priority = models.PriorityMedium
	}
	r.items[workflow.ID] = workflow
	r.nextID++
	return &workflow, nil
}

// GetByID retrieves a work item by ID
func (r *WorkflowRepository) GetByID(id int) (*models.Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workflow, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &workflow, nil
}

// List returns all work items, newest first
func (r *WorkflowRepository) List() ([]*models.Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workflows := make([]*models.Workflow, 0, len(r.items))
	for _, workflow := range r.items {
		w := workflow
		workflows = append(workflows, &w)
	}
	sort.Slice(workflows, func(i, j int) bool { return workflows[i].ID > workflows[j].ID })
	return workflows, nil
}

// Mutate applies fn to the stored work item under the write lock
func (r *WorkflowRepository) Mutate(id int, fn func(models.Workflow) (models.Workflow, error)) (*models.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	workflow, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	updated, err := fn(workflow)
	if err != nil {
		return nil, err
	}
	updated.ID = id
	updated.UpdatedAt = timeutil.Now()
	r.items[id] = updated
	return &updated, nil
}

// CountActive returns the number of work items not yet complete
func (r *WorkflowRepository) CountActive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, workflow := range r.items {
		if workflow.Status != models.WorkflowComplete {
			count++
		}
	}
	return count
}
