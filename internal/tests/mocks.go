package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"mockapi/internal/domain"
	"mockapi/internal/repository"
	"mockapi/internal/service"
)

// ──────────────────────────────────────────────
// SCRIPTED RANDOM SOURCE
// ──────────────────────────────────────────────

// ScriptedRandom replays fixed draws. Once a queue is exhausted it keeps
// returning the fallback value.
type ScriptedRandom struct {
	mu     sync.Mutex
	floats []float64
	ints   []int

	FloatFallback float64
	IntFallback   int

	FloatCalls int32
	IntCalls   int32
}

var _ service.Random = (*ScriptedRandom)(nil)

// NewScriptedRandom returns a source that yields floats in order.
func NewScriptedRandom(floats ...float64) *ScriptedRandom {
	return &ScriptedRandom{floats: floats, FloatFallback: 0.5}
}

// WithInts queues IntN results. Each is reduced modulo n when drawn.
func (r *ScriptedRandom) WithInts(ints ...int) *ScriptedRandom {
	r.ints = ints
	return r
}

func (r *ScriptedRandom) Float64() float64 {
	atomic.AddInt32(&r.FloatCalls, 1)
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.floats) == 0 {
		return r.FloatFallback
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *ScriptedRandom) IntN(n int) int {
	atomic.AddInt32(&r.IntCalls, 1)
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.IntFallback
	if len(r.ints) > 0 {
		v = r.ints[0]
		r.ints = r.ints[1:]
	}
	return v % n
}

// ──────────────────────────────────────────────
// FIXED CLOCK
// ──────────────────────────────────────────────

// FixedClock returns a settable instant.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ service.Clock = (*FixedClock)(nil)

// NewFixedClock creates a clock stopped at now.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// ──────────────────────────────────────────────
// FIXED STAGE SOURCE
// ──────────────────────────────────────────────

// FixedStage always reports the same load-shedding stage.
type FixedStage int

func (s FixedStage) Current() int { return int(s) }

// ──────────────────────────────────────────────
// MOCK PAYMENT REPOSITORY
// ──────────────────────────────────────────────

type paymentKey struct {
	provider domain.Provider
	id       string
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[paymentKey]*domain.Payment

	// Counters
	CreateCallCount       int32
	UpdateStatusCallCount int32

	// Error injection
	CreateError       error
	GetByIDError      error
	UpdateStatusError error
}

var _ repository.PaymentRepository = (*MockPaymentRepository)(nil)

// NewMockPaymentRepository creates a new mock payment repository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[paymentKey]*domain.Payment),
	}
}

// AddPayment seeds a payment.
func (m *MockPaymentRepository) AddPayment(payment *domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *payment
	m.payments[paymentKey{payment.Provider, payment.ID}] = &copy
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.AddPayment(payment)
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, provider domain.Provider, id string) (*domain.Payment, error) {
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	payment, ok := m.payments[paymentKey{provider, id}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *payment
	return &copy, nil
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, provider domain.Provider, id string, status domain.PaymentStatus, updatedAt time.Time) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[paymentKey{provider, id}]
	if !ok {
		return repository.ErrNotFound
	}
	payment.Status = status
	payment.UpdatedAt = updatedAt
	return nil
}

// GetPayment returns the stored payment for assertions.
func (m *MockPaymentRepository) GetPayment(provider domain.Provider, id string) *domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payments[paymentKey{provider, id}]
}

// CountPayments returns the number of payments.
func (m *MockPaymentRepository) CountPayments() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.payments)
}
