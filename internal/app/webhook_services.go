package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Metadata keys set on payment intents at checkout
const (
	MetadataReportID = "report_id"
	MetadataUserID   = "user_id"
)

// DefaultWebhookTolerance is the accepted age of a signed webhook payload
const DefaultWebhookTolerance = 300 * time.Second

// webhookClaimTimeout is how long a delivery may hold an event before a retry can take it over
const webhookClaimTimeout = 10 * time.Minute

// WebhookOptions configures webhook verification
type WebhookOptions struct {
	Secret    string
	Tolerance time.Duration
}

// webhookService implements the WebhookService interface
type webhookService struct {
	secret              string
	tolerance           time.Duration
	eventRepository     payments.WebhookEventRepository
	paymentRepository   payments.PaymentRepository
	reportRepository    reports.ReportRepository
	notificationService notifications.NotificationService
	logger              logger.Logger
}

// NewWebhookService creates a new instance of WebhookService
func NewWebhookService(
	options WebhookOptions,
	eventRepository payments.WebhookEventRepository,
	paymentRepository payments.PaymentRepository,
	reportRepository reports.ReportRepository,
	notificationService notifications.NotificationService,
	logger logger.Logger,
) (payments.WebhookService, error) {
	tolerance := options.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultWebhookTolerance
	}

	return &webhookService{
		secret:              options.Secret,
		tolerance:           tolerance,
		eventRepository:     eventRepository,
		paymentRepository:   paymentRepository,
		reportRepository:    reportRepository,
		notificationService: notificationService,
		logger:              logger,
	}, nil
}

// HandleStripe verifies and applies one Stripe event. It never fails: every problem is
// logged and reported through the result status so the endpoint can answer 200.
func (s *webhookService) HandleStripe(ctx context.Context, payload []byte, signatureHeader string) *payments.WebhookResult {
	if s.secret == "" {
		s.logger.Error("Stripe webhook secret is not configured; event dropped")
		return &payments.WebhookResult{Status: payments.EventRejected}
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, s.secret, webhook.ConstructEventOptions{
		Tolerance:                s.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		s.logger.Warn("Rejected Stripe webhook", "error", err)
		return &payments.WebhookResult{Status: payments.EventRejected}
	}

	result := &payments.WebhookResult{EventID: event.ID, Type: string(event.Type)}

	now := time.Now().UTC()
	record := &payments.WebhookEvent{
		ID:         event.ID,
		Provider:   payments.ProviderStripe,
		Type:       string(event.Type),
		Status:     payments.EventProcessing,
		ReceivedAt: now,
	}

	claimed, err := s.eventRepository.Claim(ctx, record, now.Add(-webhookClaimTimeout))
	if err != nil {
		s.logger.Error("Failed to claim Stripe event", "event_id", event.ID, "error", err)
		result.Status = payments.EventRejected
		return result
	}
	if !claimed {
		s.logger.Info("Skipped replayed Stripe event", "event_id", event.ID, "type", event.Type)
		result.Status = payments.EventDuplicate
		return result
	}

	handled, err := s.dispatch(ctx, &event)
	switch {
	case err != nil:
		s.logger.Error("Failed to process Stripe event", "event_id", event.ID, "type", event.Type, "error", err)
		record.Status = payments.EventFailed
		record.Error = err.Error()
		result.Status = payments.EventRejected
	case !handled:
		record.Status = payments.EventIgnored
		result.Status = payments.EventIgnored
	default:
		record.Status = payments.EventProcessed
		result.Status = payments.EventProcessed
	}

	if err := s.eventRepository.Save(ctx, record); err != nil {
		s.logger.Error("Failed to record Stripe event", "event_id", event.ID, "error", err)
	}
	return result
}

// dispatch reports whether the event type is one the platform acts on
func (s *webhookService) dispatch(ctx context.Context, event *stripe.Event) (bool, error) {
	switch string(event.Type) {
	case payments.EventPaymentIntentSucceeded:
		return true, s.handleIntent(ctx, event, payments.StatusSucceeded)
	case payments.EventPaymentIntentFailed:
		return true, s.handleIntent(ctx, event, payments.StatusFailed)
	case payments.EventPaymentIntentCanceled:
		return true, s.handleIntent(ctx, event, payments.StatusCanceled)
	case payments.EventChargeRefunded:
		return true, s.handleRefund(ctx, event)
	default:
		return false, nil
	}
}

func (s *webhookService) handleIntent(ctx context.Context, event *stripe.Event, status string) error {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return fmt.Errorf("failed to decode payment intent: %w", err)
	}
	if intent.ID == "" {
		return fmt.Errorf("payment intent without id")
	}

	now := time.Now().UTC()
	payment := &payments.Payment{
		ID:                uuid.NewString(),
		Provider:          payments.ProviderStripe,
		ProviderPaymentID: intent.ID,
		UserID:            metadataUUID(intent.Metadata, MetadataUserID),
		ReportID:          metadataUUID(intent.Metadata, MetadataReportID),
		AmountCents:       intent.Amount,
		Currency:          strings.ToLower(string(intent.Currency)),
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if payment.Currency == "" {
		payment.Currency = reports.DefaultCurrency
	}
	if status == payments.StatusSucceeded && intent.AmountReceived > 0 {
		payment.AmountCents = intent.AmountReceived
	}
	if status == payments.StatusFailed && intent.LastPaymentError != nil {
		payment.FailureReason = truncate(intent.LastPaymentError.Msg, 1000)
	}
	if status == payments.StatusCanceled && intent.CancellationReason != "" {
		payment.FailureReason = string(intent.CancellationReason)
	}

	if existing, err := s.paymentRepository.GetByProviderID(ctx, intent.ID); err == nil {
		payment.RefundedCents = existing.RefundedCents
		if payment.UserID == nil {
			payment.UserID = existing.UserID
		}
		if payment.ReportID == nil {
			payment.ReportID = existing.ReportID
		}
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	if err := s.paymentRepository.Upsert(ctx, payment); err != nil {
		return err
	}

	if status != payments.StatusSucceeded {
		return nil
	}

	if payment.ReportID != nil {
		if err := s.moveReport(ctx, *payment.ReportID, reports.StatusPendingPayment, reports.StatusPaid); err != nil {
			return err
		}
	}

	notify(ctx, s.notificationService, s.logger, notifications.KindPayment,
		"Payment received",
		fmt.Sprintf("%s received for payment %s", formatCents(payment.AmountCents, payment.Currency), intent.ID))
	return nil
}

func (s *webhookService) handleRefund(ctx context.Context, event *stripe.Event) error {
	var charge stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return fmt.Errorf("failed to decode charge: %w", err)
	}
	if charge.PaymentIntent == nil || charge.PaymentIntent.ID == "" {
		return fmt.Errorf("charge %s has no payment intent", charge.ID)
	}

	payment, err := s.paymentRepository.GetByProviderID(ctx, charge.PaymentIntent.ID)
	if err != nil {
		return err
	}

	payment.RefundedCents = charge.AmountRefunded
	if payment.RefundedCents > payment.AmountCents {
		payment.RefundedCents = payment.AmountCents
	}
	if payment.FullyRefunded() {
		payment.Status = payments.StatusRefunded
	}
	payment.UpdatedAt = time.Now().UTC()

	if err := s.paymentRepository.Upsert(ctx, payment); err != nil {
		return err
	}

	if payment.FullyRefunded() && payment.ReportID != nil {
		if err := s.moveReport(ctx, *payment.ReportID, "", reports.StatusRefunded); err != nil {
			return err
		}
	}

	notify(ctx, s.notificationService, s.logger, notifications.KindPayment,
		"Payment refunded",
		fmt.Sprintf("%s refunded for payment %s", formatCents(payment.RefundedCents, payment.Currency), payment.ProviderPaymentID))
	return nil
}

// moveReport transitions a linked report when it is in from (any status when from is empty)
// and the lifecycle allows it. Unknown reports are logged, not failed.
func (s *webhookService) moveReport(ctx context.Context, reportID, from, to string) error {
	report, err := s.reportRepository.GetByID(ctx, reportID)
	if errors.Is(err, common.ErrNotFound) {
		s.logger.Warn("Payment references an unknown report", "report_id", reportID)
		return nil
	}
	if err != nil {
		return err
	}

	if (from != "" && report.Status != from) || !reports.CanTransition(report.Status, to) {
		s.logger.Info("Report left unchanged by payment event", "report_id", reportID, "status", report.Status, "wanted", to)
		return nil
	}

	if err := report.TransitionTo(to, time.Now().UTC()); err != nil {
		return err
	}
	return s.reportRepository.Update(ctx, report)
}

func metadataUUID(metadata map[string]string, key string) *string {
	value, ok := metadata[key]
	if !ok {
		return nil
	}
	if id, err := uuid.Parse(value); err != nil || id.Version() != 4 {
		return nil
	}
	return &value
}

func formatCents(cents int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, strings.ToUpper(currency))
}
