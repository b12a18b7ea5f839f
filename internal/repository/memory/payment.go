// Package memory holds process-local stores. Records live until the process exits.
package memory

import (
	"context"
	"sync"
	"time"

	"mockapi/internal/domain"
	"mockapi/internal/repository"
)

type paymentKey struct {
	provider domain.Provider
	id       string
}

// PaymentRepository is a map-backed implementation of repository.PaymentRepository.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[paymentKey]*domain.Payment
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)

// NewPaymentRepository creates an empty in-memory payment store.
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: make(map[paymentKey]*domain.Payment)}
}

// Create persists a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := paymentKey{payment.Provider, payment.ID}
	if _, exists := r.payments[key]; exists {
		return repository.ErrDuplicate
	}
	stored := *payment
	r.payments[key] = &stored
	return nil
}

// GetByID retrieves a copy of the payment.
func (r *PaymentRepository) GetByID(ctx context.Context, provider domain.Provider, id string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payment, ok := r.payments[paymentKey{provider, id}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *payment
	return &copy, nil
}

// UpdateStatus sets the status and update time of a payment.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, provider domain.Provider, id string, status domain.PaymentStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[paymentKey{provider, id}]
	if !ok {
		return repository.ErrNotFound
	}
	payment.Status = status
	payment.UpdatedAt = updatedAt
	return nil
}

// Len returns the number of stored payments.
func (r *PaymentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.payments)
}
