package repositories

import (
	"sort"
	"sync"

	"garage-backend/internal/models"
	"garage-backend/internal/timeutil"
)

// ClientRepository is the owned in-memory store for client records. All
// mutation happens inside the write lock; values are copied on the way out so
// callers never share the stored structs.
type ClientRepository struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]models.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{nextID: 1, items: make(map[int]models.Client)}
}

// Create stores a new client and assigns its ID
func (r *ClientRepository) Create(req *models.CreateClientRequest) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeutil.Now()
	client := models.Client{
		ID:        r.nextID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items[client.ID] = client
	r.nextID++
	return &client, nil
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(id int) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &client, nil
}

// List returns all clients ordered by ID
func (r *ClientRepository) List() ([]*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*models.Client, 0, len(r.items))
	for _, client := range r.items {
		c := client
		clients = append(clients, &c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients, nil
}

// Update edits a client in place
func (r *ClientRepository) Update(id int, req *models.UpdateClientRequest) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.UpdatedAt = timeutil.Now()
	r.items[id] = client
	return &client, nil
}

// Delete removes a client
func (r *ClientRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Count returns the number of stored clients
func (r *ClientRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
