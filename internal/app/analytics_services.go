package app

import (
	"context"
	"fmt"

	"github.com/craneintel/crane-intelligence/internal/domain/analytics"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/users"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"
)

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	userRepository         users.UserRepository
	reportRepository       reports.ReportRepository
	consultationRepository consultations.ConsultationRepository
	paymentRepository      payments.PaymentRepository
	notificationRepository notifications.NotificationRepository
	logger                 logger.Logger
}

// NewAnalyticsService creates a new instance of AnalyticsService
func NewAnalyticsService(
	userRepository users.UserRepository,
	reportRepository reports.ReportRepository,
	consultationRepository consultations.ConsultationRepository,
	paymentRepository payments.PaymentRepository,
	notificationRepository notifications.NotificationRepository,
	logger logger.Logger,
) (analytics.AnalyticsService, error) {
	return &analyticsService{
		userRepository:         userRepository,
		reportRepository:       reportRepository,
		consultationRepository: consultationRepository,
		paymentRepository:      paymentRepository,
		notificationRepository: notificationRepository,
		logger:                 logger,
	}, nil
}

// Dashboard gathers the overview figures; unread notifications are counted for adminID
func (s *analyticsService) Dashboard(ctx context.Context, adminID string) (*analytics.Dashboard, error) {
	totalUsers, err := s.userRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	activeUsers, err := s.userRepository.CountByStatus(ctx, users.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	reportsByStatus, err := s.reportRepository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	openConsultations, err := s.consultationRepository.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count consultations: %w", err)
	}

	revenue, err := s.paymentRepository.Revenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	unread, err := s.notificationRepository.CountUnread(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	return &analytics.Dashboard{
		TotalUsers:          totalUsers,
		ActiveUsers:         activeUsers,
		ReportsByStatus:     reportsByStatus,
		OpenConsultations:   openConsultations,
		SucceededPayments:   revenue.SucceededCount,
		GrossRevenueCents:   revenue.GrossCents,
		RefundedCents:       revenue.RefundedCents,
		NetRevenueCents:     revenue.NetCents(),
		UnreadNotifications: unread,
	}, nil
}
