package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"mockapi/internal/domain"
	"mockapi/internal/repository"
)

func TestPaymentRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewPaymentRepository()
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	payment := &domain.Payment{
		ID:        "MOCK_PAY_1",
		Provider:  domain.ProviderPayFast,
		Reference: "M1",
		Amount:    1000,
		Currency:  "ZAR",
		Status:    domain.PayFastStatusPending,
		CreatedAt: created,
		UpdatedAt: created,
	}
	if err := repo.Create(ctx, payment); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating the caller's struct must not leak into the store.
	payment.Status = domain.PayFastStatusFailed

	got, err := repo.GetByID(ctx, domain.ProviderPayFast, "MOCK_PAY_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.PayFastStatusPending {
		t.Errorf("expected pending, got %s", got.Status)
	}
	if repo.Len() != 1 {
		t.Errorf("expected 1 payment, got %d", repo.Len())
	}
}

func TestPaymentRepository_ProviderScopedIDs(t *testing.T) {
	t.Parallel()

	repo := NewPaymentRepository()
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.Payment{ID: "X", Provider: domain.ProviderPayFast})

	if _, err := repo.GetByID(ctx, domain.ProviderOzow, "X"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for other provider, got %v", err)
	}
}

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	repo := NewPaymentRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, &domain.Payment{ID: "T1", Provider: domain.ProviderOzow, Status: domain.OzowStatusPendingPayment})

	later := time.Date(2026, 3, 1, 10, 1, 0, 0, time.UTC)
	if err := repo.UpdateStatus(ctx, domain.ProviderOzow, "T1", domain.OzowStatusComplete, later); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := repo.GetByID(ctx, domain.ProviderOzow, "T1")
	if got.Status != domain.OzowStatusComplete {
		t.Errorf("expected Complete, got %s", got.Status)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Errorf("expected updated_at %v, got %v", later, got.UpdatedAt)
	}

	err := repo.UpdateStatus(ctx, domain.ProviderOzow, "missing", domain.OzowStatusComplete, later)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPaymentRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()

	repo := NewPaymentRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Payment{ID: "D1", Provider: domain.ProviderOzow}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, &domain.Payment{ID: "D1", Provider: domain.ProviderOzow}); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if err := repo.Create(ctx, &domain.Payment{ID: "D1", Provider: domain.ProviderPayFast}); err != nil {
		t.Errorf("same id under another provider: %v", err)
	}
}
