package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"mockapi/internal/domain"
	"mockapi/internal/repository"
)

// Ozow progression: after ozowCompleteAfter seconds a pending payment completes
// on a roll above 0.2 (80%); failing that, after ozowCancelAfter seconds it is
// cancelled on an independent roll above 0.8 (20%).
const (
	ozowCompleteAfter     = 30.0
	ozowCancelAfter       = 60.0
	ozowCompleteThreshold = 0.2
	ozowCancelThreshold   = 0.8
)

// OzowInitiateRequest contains the parameters for an Ozow-style initiation.
type OzowInitiateRequest struct {
	Amount        float64
	BankReference string
	Raw           json.RawMessage // full request body, including optional urls and customer
}

// OzowService simulates the Ozow instant EFT flow.
type OzowService struct {
	paymentMock
}

// NewOzowService creates a new OzowService.
func NewOzowService(
	paymentRepo repository.PaymentRepository,
	rnd Random,
	clock Clock,
	cfg PaymentConfig,
	logger *slog.Logger,
) *OzowService {
	return &OzowService{paymentMock{
		provider:    domain.ProviderOzow,
		paymentRepo: paymentRepo,
		rnd:         rnd,
		clock:       clock,
		cfg:         cfg,
		logger:      logger,
	}}
}

// Initiate validates the request and stores a PendingPayment transaction.
func (s *OzowService) Initiate(ctx context.Context, req OzowInitiateRequest) (*domain.Payment, error) {
	var missing []string
	if req.Amount <= 0 {
		missing = append(missing, "amount")
	}
	if req.BankReference == "" {
		missing = append(missing, "bankReference")
	}
	if len(missing) > 0 {
		return nil, MissingFieldsError(missing...)
	}

	now := s.clock.Now()
	id := newPaymentID("OZOW_MOCK", now)
	payment := &domain.Payment{
		ID:        id,
		Provider:  domain.ProviderOzow,
		Reference: req.BankReference,
		Amount:    req.Amount,
		Currency:  s.cfg.Currency,
		Status:    domain.OzowStatusPendingPayment,
		Link:      s.statusLink(OzowPath, "transaction_id", id),
		Request:   req.Raw,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// CheckStatus applies the time-gated progression and returns the transaction.
func (s *OzowService) CheckStatus(ctx context.Context, transactionID string) (*domain.Payment, error) {
	if transactionID == "" {
		return nil, &ValidationError{Message: "transaction ID required", Fields: []string{"transaction_id"}}
	}

	payment, err := s.load(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if payment.Status != domain.OzowStatusPendingPayment {
		return payment, nil
	}

	now := s.clock.Now()
	elapsed := now.Sub(payment.CreatedAt).Seconds()

	var next domain.PaymentStatus
	switch {
	case elapsed > ozowCompleteAfter && s.rnd.Float64() > ozowCompleteThreshold:
		next = domain.OzowStatusComplete
	case elapsed > ozowCancelAfter && s.rnd.Float64() > ozowCancelThreshold:
		next = domain.OzowStatusCancelled
	default:
		return payment, nil
	}

	if err := s.transition(ctx, payment, next, now); err != nil {
		return nil, err
	}
	return payment, nil
}
