package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"mockapi/internal/domain"
	"mockapi/internal/repository"
)

// payFastCompletionThreshold: a pending poll completes when a roll exceeds it (70%).
const payFastCompletionThreshold = 0.3

// PayFastInitiateRequest contains the parameters for a PayFast-style initiation.
type PayFastInitiateRequest struct {
	MerchantID string
	Amount     float64 // in cents
	ItemName   string
	Raw        json.RawMessage // full request body, stored alongside the record
}

// PayFastService simulates the PayFast redirect payment flow.
type PayFastService struct {
	paymentMock
}

// NewPayFastService creates a new PayFastService.
func NewPayFastService(
	paymentRepo repository.PaymentRepository,
	rnd Random,
	clock Clock,
	cfg PaymentConfig,
	logger *slog.Logger,
) *PayFastService {
	return &PayFastService{paymentMock{
		provider:    domain.ProviderPayFast,
		paymentRepo: paymentRepo,
		rnd:         rnd,
		clock:       clock,
		cfg:         cfg,
		logger:      logger,
	}}
}

// Initiate validates the request and stores a pending payment.
func (s *PayFastService) Initiate(ctx context.Context, req PayFastInitiateRequest) (*domain.Payment, error) {
	var missing []string
	if req.MerchantID == "" {
		missing = append(missing, "merchant_id")
	}
	if req.Amount <= 0 {
		missing = append(missing, "amount")
	}
	if req.ItemName == "" {
		missing = append(missing, "item_name")
	}
	if len(missing) > 0 {
		return nil, MissingFieldsError(missing...)
	}

	now := s.clock.Now()
	id := newPaymentID("MOCK_PAY", now)
	payment := &domain.Payment{
		ID:        id,
		Provider:  domain.ProviderPayFast,
		Reference: req.MerchantID,
		ItemName:  req.ItemName,
		Amount:    req.Amount,
		Currency:  s.cfg.Currency,
		Status:    domain.PayFastStatusPending,
		Link:      s.statusLink(PayFastPath, "payment_id", id),
		Request:   req.Raw,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// CheckStatus returns the payment, first giving a pending one a 70% chance
// to complete. There is no time gating.
func (s *PayFastService) CheckStatus(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, &ValidationError{Message: "payment ID required", Fields: []string{"payment_id"}}
	}

	payment, err := s.load(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == domain.PayFastStatusPending && s.rnd.Float64() > payFastCompletionThreshold {
		if err := s.transition(ctx, payment, domain.PayFastStatusCompleted, s.clock.Now()); err != nil {
			return nil, err
		}
	}

	return payment, nil
}
