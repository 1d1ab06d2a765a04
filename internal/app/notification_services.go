package app

import (
	"context"
	"fmt"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/google/uuid"
)

// notificationService implements the NotificationService interface
type notificationService struct {
	notificationRepository notifications.NotificationRepository
	logger                 logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(notificationRepository notifications.NotificationRepository, logger logger.Logger) (notifications.NotificationService, error) {
	return &notificationService{
		notificationRepository: notificationRepository,
		logger:                 logger,
	}, nil
}

// Notify stores a notification for adminID, or for every operator when adminID is nil
func (s *notificationService) Notify(ctx context.Context, adminID *string, kind, title, body string) (*notifications.Notification, error) {
	notification := &notifications.Notification{
		ID:        uuid.NewString(),
		AdminID:   adminID,
		Kind:      kind,
		Title:     truncate(title, 255),
		Body:      truncate(body, 2000),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.notificationRepository.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notification, nil
}

// List returns the operator's own and broadcast notifications
func (s *notificationService) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, int64, error) {
	return s.notificationRepository.List(ctx, query)
}

// MarkRead marks one notification visible to adminID as read
func (s *notificationService) MarkRead(ctx context.Context, adminID, notificationID string) error {
	return s.notificationRepository.MarkRead(ctx, adminID, notificationID, time.Now().UTC())
}

// MarkAllRead marks every unread notification visible to adminID as read
func (s *notificationService) MarkAllRead(ctx context.Context, adminID string) (int64, error) {
	return s.notificationRepository.MarkAllRead(ctx, adminID, time.Now().UTC())
}

// CountUnread counts unread notifications visible to adminID
func (s *notificationService) CountUnread(ctx context.Context, adminID string) (int64, error) {
	return s.notificationRepository.CountUnread(ctx, adminID)
}

// notify sends a broadcast and only logs failures; the triggering operation already succeeded
func notify(ctx context.Context, svc notifications.NotificationService, log logger.Logger, kind, title, body string) {
	if svc == nil {
		return
	}
	if _, err := svc.Notify(ctx, nil, kind, title, body); err != nil {
		log.Warn("Failed to create notification", "kind", kind, "error", err)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
