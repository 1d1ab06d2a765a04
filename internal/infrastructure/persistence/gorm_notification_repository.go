package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence/models"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository implementation
func NewGormNotificationRepository(db *gorm.DB, logger logger.Logger) (notifications.NotificationRepository, error) {
	return &gormNotificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

// visibleTo scopes a query to the operator's own and broadcast notifications
func visibleTo(db *gorm.DB, adminID string) *gorm.DB {
	return db.Where("(admin_id = ? OR admin_id IS NULL)", adminID)
}

func (r *gormNotificationRepository) Create(ctx context.Context, notification *notifications.Notification) error {
	if err := notification.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationModel{}
	model.FromDomain(notification)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "failed to create notification")
	}

	r.logger.Info("Created notification", "id", notification.ID, "kind", notification.Kind)
	return nil
}

func (r *gormNotificationRepository) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := visibleTo(r.db.WithContext(ctx).Model(&models.NotificationModel{}), query.AdminID)

	if query.UnreadOnly {
		dbQuery = dbQuery.Where("read_at IS NULL")
	}
	if query.Kind != "" {
		dbQuery = dbQuery.Where("kind = ?", query.Kind)
	}

	dbQuery, total, err := paginate(dbQuery, query.Page)
	if err != nil {
		return nil, 0, err
	}

	var modelList []*models.NotificationModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	domainList := make([]*notifications.Notification, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormNotificationRepository) MarkRead(ctx context.Context, adminID, notificationID string, at time.Time) error {
	result := visibleTo(r.db.WithContext(ctx).Model(&models.NotificationModel{}), adminID).
		Where("id = ?", notificationID).
		Update("read_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "notification with ID %s", notificationID)
	}
	return nil
}

func (r *gormNotificationRepository) MarkAllRead(ctx context.Context, adminID string, at time.Time) (int64, error) {
	result := visibleTo(r.db.WithContext(ctx).Model(&models.NotificationModel{}), adminID).
		Where("read_at IS NULL").
		Update("read_at", at)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormNotificationRepository) CountUnread(ctx context.Context, adminID string) (int64, error) {
	var count int64
	err := visibleTo(r.db.WithContext(ctx).Model(&models.NotificationModel{}), adminID).
		Where("read_at IS NULL").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
