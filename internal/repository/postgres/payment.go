package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mockapi/internal/domain"
	"mockapi/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// Create persists a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO mock_payments
			(id, provider, reference, item_name, amount, currency, status, link, request, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	request := []byte(payment.Request)
	if len(request) == 0 {
		request = []byte("{}")
	}

	_, err := r.q.ExecContext(ctx, query,
		payment.ID,
		payment.Provider,
		payment.Reference,
		payment.ItemName,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.Link,
		request,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

// GetByID retrieves a payment by provider and ID.
func (r *PaymentRepository) GetByID(ctx context.Context, provider domain.Provider, id string) (*domain.Payment, error) {
	query := `
		SELECT id, provider, reference, item_name, amount, currency, status, link, request, created_at, updated_at
		FROM mock_payments WHERE provider = $1 AND id = $2
	`

	var payment domain.Payment
	var request []byte
	err := r.q.QueryRowContext(ctx, query, provider, id).Scan(
		&payment.ID,
		&payment.Provider,
		&payment.Reference,
		&payment.ItemName,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.Link,
		&request,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	payment.Request = request

	return &payment, nil
}

// UpdateStatus updates the status of a payment.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, provider domain.Provider, id string, status domain.PaymentStatus, updatedAt time.Time) error {
	query := `UPDATE mock_payments SET status = $1, updated_at = $2 WHERE provider = $3 AND id = $4`

	result, err := r.q.ExecContext(ctx, query, status, updatedAt, provider, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
