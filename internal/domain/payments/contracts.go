package payments

import (
	"context"
	"time"
)

// PaymentService defines read access to payments for operators
type PaymentService interface {
	List(ctx context.Context, query *PaymentQuery) ([]*Payment, int64, error)
	GetByID(ctx context.Context, paymentID string) (*Payment, error)
}

// WebhookService verifies and applies payment provider webhooks.
// It never returns an error: failures are logged and reported in the result.
type WebhookService interface {
	HandleStripe(ctx context.Context, payload []byte, signatureHeader string) *WebhookResult
}

// PaymentRepository defines the persistence operations for payments
type PaymentRepository interface {
	// Upsert creates the payment or updates the row with the same provider payment id.
	Upsert(ctx context.Context, payment *Payment) error
	List(ctx context.Context, query *PaymentQuery) ([]*Payment, int64, error)
	GetByID(ctx context.Context, paymentID string) (*Payment, error)
	GetByProviderID(ctx context.Context, providerPaymentID string) (*Payment, error)
	Revenue(ctx context.Context) (*Revenue, error)
}

// WebhookEventRepository stores received webhook events
type WebhookEventRepository interface {
	// Claim records the event as processing and reports whether the caller owns it.
	// An id that is already recorded can be claimed again only when its earlier attempt
	// failed or has been processing since before staleBefore.
	Claim(ctx context.Context, event *WebhookEvent, staleBefore time.Time) (bool, error)
	Save(ctx context.Context, event *WebhookEvent) error
}
