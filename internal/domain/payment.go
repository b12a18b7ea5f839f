package domain

import (
	"encoding/json"
	"time"
)

// Provider identifies which payment gateway a mock payment imitates.
type Provider string

const (
	ProviderPayFast Provider = "payfast"
	ProviderOzow    Provider = "ozow"
)

// PaymentStatus represents the current status of a mock payment.
// The allowed values depend on the provider.
type PaymentStatus string

// PayFast statuses.
const (
	PayFastStatusPending   PaymentStatus = "pending"
	PayFastStatusCompleted PaymentStatus = "completed"
	PayFastStatusFailed    PaymentStatus = "failed"
	PayFastStatusCancelled PaymentStatus = "cancelled"
)

// Ozow statuses.
const (
	OzowStatusPendingPayment PaymentStatus = "PendingPayment"
	OzowStatusComplete       PaymentStatus = "Complete"
	OzowStatusError          PaymentStatus = "Error"
	OzowStatusCancelled      PaymentStatus = "Cancelled"
	OzowStatusAbandoned      PaymentStatus = "Abandoned"
)

// Payment is a mock payment record, created on initiation and mutated in
// place by status polls.
type Payment struct {
	ID        string
	Provider  Provider
	Reference string // merchant_id for PayFast, bankReference for Ozow
	ItemName  string
	Amount    float64
	Currency  string
	Status    PaymentStatus
	Link      string
	Request   json.RawMessage // initiation body as received
	CreatedAt time.Time
	UpdatedAt time.Time
}
