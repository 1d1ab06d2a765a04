package payments

import "time"

// Webhook processing outcomes
const (
	EventProcessing = "processing"
	EventProcessed  = "processed"
	EventIgnored    = "ignored"
	EventDuplicate  = "duplicate"
	EventFailed     = "failed"
	EventRejected   = "error"
)

// Stripe event types acted upon
const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.payment_failed"
	EventPaymentIntentCanceled  = "payment_intent.canceled"
	EventChargeRefunded         = "charge.refunded"
)

// WebhookEvent records a received provider event so replays are skipped
type WebhookEvent struct {
	ID         string
	Provider   string
	Type       string
	Status     string
	Error      string
	ReceivedAt time.Time
}

// WebhookResult is what the webhook endpoint reports back; the HTTP status is always 200
type WebhookResult struct {
	EventID string
	Type    string
	Status  string
}
