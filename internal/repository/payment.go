package repository

import (
	"context"
	"time"

	"mockapi/internal/domain"
)

// PaymentRepository defines the persistence operations for mock payments.
// Ids are scoped per provider.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByID retrieves a payment by provider and ID.
	GetByID(ctx context.Context, provider domain.Provider, id string) (*domain.Payment, error)

	// UpdateStatus sets the status and update time of a payment.
	UpdateStatus(ctx context.Context, provider domain.Provider, id string, status domain.PaymentStatus, updatedAt time.Time) error
}
