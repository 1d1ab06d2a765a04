package main

import (
	"fmt"

	v1 "github.com/craneintel/crane-intelligence/internal/api/rest/v1"
	"github.com/craneintel/crane-intelligence/internal/app"
	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/audit"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/settings"
	"github.com/craneintel/crane-intelligence/internal/domain/users"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"gorm.io/gorm"
)

type repositories struct {
	users         users.UserRepository
	reports       reports.ReportRepository
	consultations consultations.ConsultationRepository
	payments      payments.PaymentRepository
	webhookEvents payments.WebhookEventRepository
	notifications notifications.NotificationRepository
	admins        admins.AdminRepository
	sessions      admins.SessionRepository
	audit         audit.AuditRepository
	objects       media.ObjectRepository
	settings      settings.SettingsRepository
}

// initializeRepositories creates the GORM repositories
func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	var (
		repos repositories
		err   error
	)

	if repos.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.reports, err = persistence.NewGormReportRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create report repository: %w", err)
	}
	if repos.consultations, err = persistence.NewGormConsultationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create consultation repository: %w", err)
	}
	if repos.payments, err = persistence.NewGormPaymentRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create payment repository: %w", err)
	}
	if repos.webhookEvents, err = persistence.NewGormWebhookEventRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create webhook event repository: %w", err)
	}
	if repos.notifications, err = persistence.NewGormNotificationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}
	if repos.admins, err = persistence.NewGormAdminRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create admin repository: %w", err)
	}
	if repos.sessions, err = persistence.NewGormSessionRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}
	if repos.audit, err = persistence.NewGormAuditRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create audit repository: %w", err)
	}
	if repos.objects, err = persistence.NewGormObjectRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create media object repository: %w", err)
	}
	if repos.settings, err = persistence.NewGormSettingsRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create settings repository: %w", err)
	}

	return &repos, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *repositories,
	storage media.StorageConnector,
	log logger.Logger,
) (*v1.Services, error) {
	notificationService, err := app.NewNotificationService(repos.notifications, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	userService, err := app.NewUserService(repos.users, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	reportService, err := app.NewReportService(repos.reports, repos.users, notificationService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	consultationService, err := app.NewConsultationService(repos.consultations, notificationService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create consultation service: %w", err)
	}

	paymentService, err := app.NewPaymentService(repos.payments, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}

	webhookService, err := app.NewWebhookService(
		app.WebhookOptions{Secret: cfg.Stripe.WebhookSecret, Tolerance: cfg.Stripe.Tolerance},
		repos.webhookEvents,
		repos.payments,
		repos.reports,
		notificationService,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook service: %w", err)
	}

	authService, err := app.NewAuthService(repos.admins, repos.sessions, &cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	adminService, err := app.NewAdminService(repos.admins, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %w", err)
	}

	auditService, err := app.NewAuditService(repos.audit, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit service: %w", err)
	}

	uploadService, err := app.NewUploadService(storage, repos.objects, app.UploadOptions{
		Environment:    cfg.Environment,
		MaxUploadBytes: cfg.Spaces.UploadLimit(),
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload service: %w", err)
	}

	settingsService, err := app.NewSettingsService(repos.settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %w", err)
	}

	analyticsService, err := app.NewAnalyticsService(
		repos.users,
		repos.reports,
		repos.consultations,
		repos.payments,
		repos.notifications,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		Users:         userService,
		Reports:       reportService,
		Consultations: consultationService,
		Payments:      paymentService,
		Webhooks:      webhookService,
		Notifications: notificationService,
		Auth:          authService,
		Admins:        adminService,
		Audit:         auditService,
		Uploads:       uploadService,
		Settings:      settingsService,
		Analytics:     analyticsService,
	}, nil
}
