package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence/models"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"gorm.io/gorm"
)

// capturedStatuses are the payment statuses that moved money
var capturedStatuses = []string{payments.StatusSucceeded, payments.StatusRefunded}

type gormPaymentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaymentRepository creates a new GORM-based PaymentRepository implementation
func NewGormPaymentRepository(db *gorm.DB, logger logger.Logger) (payments.PaymentRepository, error) {
	return &gormPaymentRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert keeps the ID and creation time of an existing row with the same provider payment id.
func (r *gormPaymentRepository) Upsert(ctx context.Context, payment *payments.Payment) error {
	if err := payment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.PaymentModel
		err := tx.Where("provider_payment_id = ?", payment.ProviderPaymentID).First(&existing).Error
		switch {
		case err == nil:
			payment.ID = existing.ID
			payment.CreatedAt = existing.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return fmt.Errorf("failed to look up payment: %w", err)
		}

		model := &models.PaymentModel{}
		model.FromDomain(payment)
		if err := tx.Save(model).Error; err != nil {
			return translate(err, "failed to upsert payment")
		}

		r.logger.Info("Upserted payment", "id", payment.ID, "provider_payment_id", payment.ProviderPaymentID, "status", payment.Status)
		return nil
	})
}

func (r *gormPaymentRepository) List(ctx context.Context, query *payments.PaymentQuery) ([]*payments.Payment, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.PaymentModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.ReportID != "" {
		dbQuery = dbQuery.Where("report_id = ?", query.ReportID)
	}

	dbQuery, total, err := paginate(dbQuery, query.Page)
	if err != nil {
		return nil, 0, err
	}

	var modelList []*models.PaymentModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payments: %w", err)
	}

	domainList := make([]*payments.Payment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormPaymentRepository) GetByID(ctx context.Context, paymentID string) (*payments.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).Where("id = ?", paymentID).First(&model).Error; err != nil {
		return nil, translate(err, "payment with ID %s", paymentID)
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentRepository) GetByProviderID(ctx context.Context, providerPaymentID string) (*payments.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).Where("provider_payment_id = ?", providerPaymentID).First(&model).Error; err != nil {
		return nil, translate(err, "payment with provider ID %s", providerPaymentID)
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentRepository) Revenue(ctx context.Context) (*payments.Revenue, error) {
	var row struct {
		SucceededCount int64
		GrossCents     int64
		RefundedCents  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Select("COUNT(CASE WHEN status = ? THEN 1 END) AS succeeded_count, COALESCE(SUM(amount_cents), 0) AS gross_cents, COALESCE(SUM(refunded_cents), 0) AS refunded_cents", payments.StatusSucceeded).
		Where("status IN ?", capturedStatuses).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return &payments.Revenue{
		SucceededCount: row.SucceededCount,
		GrossCents:     row.GrossCents,
		RefundedCents:  row.RefundedCents,
	}, nil
}

type gormWebhookEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormWebhookEventRepository creates a new GORM-based WebhookEventRepository implementation
func NewGormWebhookEventRepository(db *gorm.DB, logger logger.Logger) (payments.WebhookEventRepository, error) {
	return &gormWebhookEventRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormWebhookEventRepository) Claim(ctx context.Context, event *payments.WebhookEvent, staleBefore time.Time) (bool, error) {
	model := &models.WebhookEventModel{}
	model.FromDomain(event)

	err := r.db.WithContext(ctx).Create(model).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, fmt.Errorf("failed to claim webhook event: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.WebhookEventModel{}).
		Where("id = ?", event.ID).
		Where("status = ? OR (status = ? AND received_at < ?)", payments.EventFailed, payments.EventProcessing, staleBefore).
		Updates(map[string]interface{}{
			"status":      event.Status,
			"error":       "",
			"received_at": event.ReceivedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to reclaim webhook event: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *gormWebhookEventRepository) Save(ctx context.Context, event *payments.WebhookEvent) error {
	model := &models.WebhookEventModel{}
	model.FromDomain(event)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save webhook event: %w", err)
	}

	r.logger.Info("Recorded webhook event", "id", event.ID, "type", event.Type, "status", event.Status)
	return nil
}
