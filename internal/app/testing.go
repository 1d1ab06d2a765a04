//go:build integration
// +build integration

package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/analytics"
	"github.com/craneintel/crane-intelligence/internal/domain/audit"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/settings"
	"github.com/craneintel/crane-intelligence/internal/domain/users"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// Test constants for wiring the services
const (
	TestWebhookSecret = "whsec_integration_secret"
	TestJWTSecret     = "integration-secret-that-is-long-enough"
	TestPublicBaseURL = "https://crane-intel-test.nyc3.cdn.digitaloceanspaces.com"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	UserService         users.UserService
	ReportService       reports.ReportService
	ConsultationService consultations.ConsultationService
	PaymentService      payments.PaymentService
	WebhookService      payments.WebhookService
	NotificationService notifications.NotificationService
	AuthService         admins.AuthService
	AdminService        admins.AdminService
	AuditService        audit.AuditService
	UploadService       media.UploadService
	SettingsService     settings.SettingsService
	AnalyticsService    analytics.AnalyticsService

	// Infrastructure
	Storage   *MemoryStorage
	DBContext *persistence.TestContext
}

// MemoryStorage is an in-process StorageConnector for integration tests
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

// Put stores the object body under its key
func (m *MemoryStorage) Put(_ context.Context, input *media.PutObjectInput) (string, error) {
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[input.Key] = body
	return TestPublicBaseURL + "/" + input.Key, nil
}

// Delete removes the object; unknown keys are not an error
func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Ping always succeeds
func (m *MemoryStorage) Ping(context.Context) error {
	return nil
}

// Get returns the stored body of key
func (m *MemoryStorage) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s: %w", key, common.ErrNotFound)
	}
	return body, nil
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	storage := NewMemoryStorage()

	notificationService, err := NewNotificationService(dbContext.NotificationRepo, logger)
	require.NoError(t, err, "Failed to create NotificationService")

	userService, err := NewUserService(dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create UserService")

	reportService, err := NewReportService(dbContext.ReportRepo, dbContext.UserRepo, notificationService, logger)
	require.NoError(t, err, "Failed to create ReportService")

	consultationService, err := NewConsultationService(dbContext.ConsultationRepo, notificationService, logger)
	require.NoError(t, err, "Failed to create ConsultationService")

	paymentService, err := NewPaymentService(dbContext.PaymentRepo, logger)
	require.NoError(t, err, "Failed to create PaymentService")

	webhookService, err := NewWebhookService(
		WebhookOptions{Secret: TestWebhookSecret},
		dbContext.WebhookEventRepo,
		dbContext.PaymentRepo,
		dbContext.ReportRepo,
		notificationService,
		logger,
	)
	require.NoError(t, err, "Failed to create WebhookService")

	authService, err := NewAuthService(dbContext.AdminRepo, dbContext.SessionRepo, &config.AuthSettings{
		JWTSecret:       TestJWTSecret,
		Issuer:          "crane-intel-test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		MaxFailedLogins: 3,
	}, logger)
	require.NoError(t, err, "Failed to create AuthService")

	adminService, err := NewAdminService(dbContext.AdminRepo, logger)
	require.NoError(t, err, "Failed to create AdminService")

	auditService, err := NewAuditService(dbContext.AuditRepo, logger)
	require.NoError(t, err, "Failed to create AuditService")

	uploadService, err := NewUploadService(storage, dbContext.ObjectRepo, UploadOptions{
		Environment:    config.EnvironmentDevelopment,
		MaxUploadBytes: 1 << 20,
	}, logger)
	require.NoError(t, err, "Failed to create UploadService")

	settingsService, err := NewSettingsService(dbContext.SettingsRepo, logger)
	require.NoError(t, err, "Failed to create SettingsService")

	analyticsService, err := NewAnalyticsService(
		dbContext.UserRepo,
		dbContext.ReportRepo,
		dbContext.ConsultationRepo,
		dbContext.PaymentRepo,
		dbContext.NotificationRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create AnalyticsService")

	return &TestServices{
		UserService:         userService,
		ReportService:       reportService,
		ConsultationService: consultationService,
		PaymentService:      paymentService,
		WebhookService:      webhookService,
		NotificationService: notificationService,
		AuthService:         authService,
		AdminService:        adminService,
		AuditService:        auditService,
		UploadService:       uploadService,
		SettingsService:     settingsService,
		AnalyticsService:    analyticsService,
		Storage:             storage,
		DBContext:           dbContext,
	}
}
