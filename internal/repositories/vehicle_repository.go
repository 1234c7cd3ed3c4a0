package repositories

import (
	"sort"
	"sync"

	"garage-backend/internal/models"
	"garage-backend/internal/timeutil"
)

// VehicleRepository is the owned in-memory store for vehicle records.
type VehicleRepository struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]models.Vehicle
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{nextID: 1, items: make(map[int]models.Vehicle)}
}

// Create stores a new vehicle and assigns its ID
func (r *VehicleRepository) Create(req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeutil.Now()
	vehicle := models.Vehicle{
		ID:        r.nextID,
		ClientID:  req.ClientID,
		Model:     req.Model,
		Plate:     req.Plate,
		Year:      req.Year,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items[vehicle.ID] = vehicle
	r.nextID++
	return &vehicle, nil
}

// GetByID retrieves a vehicle by ID
func (r *VehicleRepository) GetByID(id int) (*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicle, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &vehicle, nil
}

// List returns all vehicles ordered by ID
func (r *VehicleRepository) List() ([]*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicles := make([]*models.Vehicle, 0, len(r.items))
	for _, vehicle := range r.items {
		v := vehicle
		vehicles = append(vehicles, &v)
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return vehicles, nil
}

// ListByClient returns a client's vehicles ordered by ID
func (r *VehicleRepository) ListByClient(clientID int) ([]*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicles := make([]*models.Vehicle, 0)
	for _, vehicle := range r.items {
		if vehicle.ClientID != clientID {
			continue
		}
		v := vehicle
		vehicles = append(vehicles, &v)
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return vehicles, nil
}

// CountByClient returns the number of vehicles registered to a client
func (r *VehicleRepository) CountByClient(clientID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, vehicle := range r.items {
		if vehicle.ClientID == clientID {
			count++
		}
	}
	return count
}

// Update edits a vehicle in place
func (r *VehicleRepository) Update(id int, req *models.UpdateVehicleRequest) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicle, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	vehicle.Model = req.Model
	vehicle.Plate = req.Plate
	vehicle.Year = req.Year
	vehicle.UpdatedAt = timeutil.Now()
	r.items[id] = vehicle
	return &vehicle, nil
}

// Delete removes a vehicle
func (r *VehicleRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Count returns the number of stored vehicles
func (r *VehicleRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
