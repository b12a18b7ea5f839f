package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"mockapi/internal/domain"
	"mockapi/internal/observability"
	"mockapi/internal/repository"
)

// Routes served by the payment mocks. Payment links point back at them.
const (
	PayFastPath = "/api/mocks/payment/payfast"
	OzowPath    = "/api/mocks/payment/ozow"
)

// PaymentConfig contains settings shared by the payment mocks.
type PaymentConfig struct {
	BaseURL  string // public origin used in payment links
	Currency string
}

// paymentMock holds what both gateway variants need.
type paymentMock struct {
	provider    domain.Provider
	paymentRepo repository.PaymentRepository
	rnd         Random
	clock       Clock
	cfg         PaymentConfig
	logger      *slog.Logger
}

// newPaymentID returns <prefix>_<unix-ms>_<9 char suffix>.
func newPaymentID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), suffix)
}

// statusLink builds the redirect link for a payment.
func (m *paymentMock) statusLink(path, param, id string) string {
	return strings.TrimRight(m.cfg.BaseURL, "/") + path + "?" + param + "=" + url.QueryEscape(id)
}

// create stores a freshly initiated payment.
func (m *paymentMock) create(ctx context.Context, payment *domain.Payment) error {
	if err := m.paymentRepo.Create(ctx, payment); err != nil {
		return err
	}
	observability.PaymentsInitiated.WithLabelValues(string(m.provider)).Inc()
	m.logger.Info("mock payment initiated",
		"provider", m.provider,
		"payment_id", payment.ID,
		"amount", payment.Amount,
	)
	return nil
}

// load fetches a payment, translating a store miss into ErrPaymentNotFound.
func (m *paymentMock) load(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := m.paymentRepo.GetByID(ctx, m.provider, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

// transition moves a payment to status and mutates the caller's copy.
func (m *paymentMock) transition(ctx context.Context, payment *domain.Payment, status domain.PaymentStatus, now time.Time) error {
	if err := m.paymentRepo.UpdateStatus(ctx, m.provider, payment.ID, status, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}

	m.logger.Info("mock payment status changed",
		"provider", m.provider,
		"payment_id", payment.ID,
		"from", payment.Status,
		"to", status,
	)
	observability.PaymentTransitions.WithLabelValues(string(m.provider), string(status)).Inc()

	payment.Status = status
	payment.UpdatedAt = now
	return nil
}
