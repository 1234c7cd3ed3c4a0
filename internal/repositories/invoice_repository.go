package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"garage-backend/internal/models"
	"garage-backend/internal/timeutil"
)

// InvoiceRepository is the owned in-memory store for the ledger. Every
// invoice mutation (payments, adjustments, installment flips) runs inside
// Mutate's write lock, so concurrent payment and discount mutations on one
// invoice cannot interleave.
type InvoiceRepository struct {
	mu      sync.RWMutex
	nextNum int
	prefix  string
	items   map[string]models.InvoiceRecord
	order   []string // invoice numbers in creation order
}

func NewInvoiceRepository(prefix string) *InvoiceRepository {
	if prefix == "" {
		prefix = "INV"
	}
	return &InvoiceRepository{
		nextNum: 1,
		prefix:  prefix,
		items:   make(map[string]models.InvoiceRecord),
	}
}

// NextInvoiceNumber reserves the next number in the INV-000001 sequence
func (r *InvoiceRepository) NextInvoiceNumber() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	num := fmt.Sprintf("%s-%06d", r.prefix, r.nextNum)
	r.nextNum++
	return num
}

// Create stores a newly computed invoice record
func (r *InvoiceRepository) Create(record models.InvoiceRecord) (*models.InvoiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeutil.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.Documents == nil {
		record.Documents = []string{}
	}
	r.items[record.ID] = record
	r.order = append(r.order, record.ID)
	rec := record
	return &rec, nil
}

// GetByNumber retrieves an invoice by its number
func (r *InvoiceRepository) GetByNumber(number string) (*models.InvoiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[number]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// List returns invoices matching the filter, newest first
func (r *InvoiceRepository) List(filter models.InvoiceFilter) ([]*models.InvoiceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*models.InvoiceRecord, 0, len(r.order))
	query := strings.ToLower(filter.Query)
	for _, number := range r.order {
		record := r.items[number]
		if filter.Status != "" && string(record.PaymentStatus) != filter.Status {
			continue
		}
		if query != "" && !matchesQuery(&record, query) {
			continue
		}
		if filter.From != nil && record.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && record.CreatedAt.After(*filter.To) {
			continue
		}
		rec := record
		records = append(records, &rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	return records, nil
}

func matchesQuery(record *models.InvoiceRecord, query string) bool {
	for _, field := range []string{record.ID, record.WorkflowTitle, record.ClientName, record.Vehicle} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Mutate applies fn to the stored invoice under the write lock and persists
// the result. fn receives a copy and returns the updated record or an error.
func (r *InvoiceRepository) Mutate(number string, fn func(models.InvoiceRecord) (models.InvoiceRecord, error)) (*models.InvoiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.items[number]
	if !ok {
		return nil, ErrNotFound
	}
	updated, err := fn(record)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = timeutil.Now()
	r.items[number] = updated
	return &updated, nil
}

// Delete removes an invoice from the ledger
func (r *InvoiceRepository) Delete(number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[number]; !ok {
		return ErrNotFound
	}
	delete(r.items, number)
	for i, n := range r.order {
		if n == number {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
