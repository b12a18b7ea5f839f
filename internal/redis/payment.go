package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"mockapi/internal/domain"
	"mockapi/internal/repository"
)

const paymentKeyPrefix = "mock:payment:"

// PaymentStore keeps mock payments in Redis as JSON documents.
type PaymentStore struct {
	client *redis.Client
	ttl    time.Duration // 0 keeps records until evicted by redis itself
}

// NewPaymentStore creates a new PaymentStore.
func NewPaymentStore(client *redis.Client, ttl time.Duration) *PaymentStore {
	return &PaymentStore{client: client, ttl: ttl}
}

// cachedPayment is the stored representation of a payment.
type cachedPayment struct {
	ID        string          `json:"id"`
	Provider  string          `json:"provider"`
	Reference string          `json:"reference"`
	ItemName  string          `json:"item_name,omitempty"`
	Amount    float64         `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	Link      string          `json:"link"`
	Request   json.RawMessage `json:"request,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func paymentKey(provider domain.Provider, id string) string {
	return paymentKeyPrefix + string(provider) + ":" + id
}

// Create persists a new payment.
func (s *PaymentStore) Create(ctx context.Context, payment *domain.Payment) error {
	data, err := json.Marshal(toCached(payment))
	if err != nil {
		return err
	}
	created, err := s.client.SetNX(ctx, paymentKey(payment.Provider, payment.ID), data, s.ttl).Result()
	if err != nil {
		return err
	}
	if !created {
		return repository.ErrDuplicate
	}
	return nil
}

// GetByID retrieves a payment by provider and ID.
func (s *PaymentStore) GetByID(ctx context.Context, provider domain.Provider, id string) (*domain.Payment, error) {
	cached, err := s.get(ctx, paymentKey(provider, id))
	if err != nil {
		return nil, err
	}
	return cached.toDomain(), nil
}

// UpdateStatus rewrites the stored document with the new status, keeping its TTL.
func (s *PaymentStore) UpdateStatus(ctx context.Context, provider domain.Provider, id string, status domain.PaymentStatus, updatedAt time.Time) error {
	key := paymentKey(provider, id)
	cached, err := s.get(ctx, key)
	if err != nil {
		return err
	}

	cached.Status = string(status)
	cached.UpdatedAt = updatedAt

	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, redis.KeepTTL).Err()
}

func (s *PaymentStore) get(ctx context.Context, key string) (*cachedPayment, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var cached cachedPayment
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func toCached(p *domain.Payment) *cachedPayment {
	return &cachedPayment{
		ID:        p.ID,
		Provider:  string(p.Provider),
		Reference: p.Reference,
		ItemName:  p.ItemName,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    string(p.Status),
		Link:      p.Link,
		Request:   p.Request,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (c *cachedPayment) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:        c.ID,
		Provider:  domain.Provider(c.Provider),
		Reference: c.Reference,
		ItemName:  c.ItemName,
		Amount:    c.Amount,
		Currency:  c.Currency,
		Status:    domain.PaymentStatus(c.Status),
		Link:      c.Link,
		Request:   c.Request,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
