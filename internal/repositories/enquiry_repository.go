package repositories

import (
	"sort"
	"sync"

	"garage-backend/internal/models"
	"garage-backend/internal/timeutil"
)

// EnquiryRepository is the owned in-memory store for the enquiry wizard.
// Mutations that depend on current state (status moves, evaluation and
// estimate attachment) go through Mutate so the read-modify-write happens
// inside the lock.
type EnquiryRepository struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]models.Enquiry
}

func NewEnquiryRepository() *EnquiryRepository {
	return &EnquiryRepository{nextID: 1, items: make(map[int]models.Enquiry)}
}

// Create stores a new enquiry in the pending state
func (r *EnquiryRepository) Create(req *models.CreateEnquiryRequest) (*models.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeutil.Now()
	enquiry := models.Enquiry{
		ID:        r.nextID,
		ClientID:  req.ClientID,
		VehicleID: req.VehicleID,
		Services:  req.Services,
		Notes:     req.Notes,
		Status:    models.EnquiryPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if enquiry.Services == nil {
		enquiry.Services = []models.ServiceOption{}
	}
	r.items[enquiry.ID] = enquiry
	r.nextID++
	return &enquiry, nil
}

// GetByID retrieves an enquiry by ID
func (r *EnquiryRepository) GetByID(id int) (*models.Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enquiry, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &enquiry, nil
}

// List returns all enquiries, newest first
func (r *EnquiryRepository) List() ([]*models.Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enquiries := make([]*models.Enquiry, 0, len(r.items))
	for _, enquiry := range r.items {
		e := enquiry
		enquiries = append(enquiries, &e)
	}
	sort.Slice(enquiries, func(i, j int) bool { return enquiries[i].ID > enquiries[j].ID })
	return enquiries, nil
}

// Mutate applies fn to the stored enquiry under the write lock and persists
// the result. fn receives a copy and returns the updated value or an error.
func (r *EnquiryRepository) Mutate(id int, fn func(models.Enquiry) (models.Enquiry, error)) (*models.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	enquiry, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	updated, err := fn(enquiry)
	if err != nil {
		return nil, err
	}
	updated.ID = id
	updated.UpdatedAt = timeutil.Now()
	r.items[id] = updated
	return &updated, nil
}

// Delete removes an enquiry
func (r *EnquiryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// CountOpen returns the number of enquiries not yet completed
func (r *EnquiryRepository) CountOpen() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, enquiry := range r.items {
		if enquiry.Status != models.EnquiryCompleted {
			count++
		}
	}
	return count
}
