package repositories

import (
	"sort"
	"sync"

	"garage-backend/internal/models"
	"garage-backend/internal/timeutil"
)

// ServiceRecordRepository is the owned in-memory store for service history.
type ServiceRecordRepository struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]models.ServiceRecord
}

func NewServiceRecordRepository() *ServiceRecordRepository {
	return &ServiceRecordRepository{nextID: 1, items: make(map[int]models.ServiceRecord)}
}

// Create stores a new service record and assigns its ID
func (r *ServiceRecordRepository) Create(record models.ServiceRecord) (*models.ServiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeutil.Now()
	record.ID = r.nextID
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.Documents == nil {
		record.Documents = []string{}
	}
	r.items[record.ID] = record
	r.nextID++
	rec := record
	return &rec, nil
}

// GetByID retrieves a service record by ID
func (r *ServiceRecordRepository) GetByID(id int) (*models.ServiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// List returns all service records ordered by next-due date, soonest first
func (r *ServiceRecordRepository) List() ([]*models.ServiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*models.ServiceRecord, 0, len(r.items))
	for _, record := range r.items {
		rec := record
		records = append(records, &rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].NextDue.Before(records[j].NextDue) })
	return records, nil
}

// ListByVehicle returns a vehicle's service history ordered by date
func (r *ServiceRecordRepository) ListByVehicle(vehicleID int) ([]*models.ServiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*models.ServiceRecord, 0)
	for _, record := range r.items {
		if record.VehicleID != vehicleID {
			continue
		}
		rec := record
		records = append(records, &rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}

// Delete removes a service record
func (r *ServiceRecordRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
