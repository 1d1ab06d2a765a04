//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/audit"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/settings"
	"github.com/craneintel/crane-intelligence/internal/domain/users"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	UserRepo         users.UserRepository
	ReportRepo       reports.ReportRepository
	ConsultationRepo consultations.ConsultationRepository
	PaymentRepo      payments.PaymentRepository
	WebhookEventRepo payments.WebhookEventRepository
	AdminRepo        admins.AdminRepository
	SessionRepo      admins.SessionRepository
	AuditRepo        audit.AuditRepository
	NotificationRepo notifications.NotificationRepository
	ObjectRepo       media.ObjectRepository
	SettingsRepo     settings.SettingsRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var dbSettings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		dbSettings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		dbSettings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(dbSettings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.ReportRepo, err = NewGormReportRepository(db, log)
	require.NoError(t, err)
	tc.ConsultationRepo, err = NewGormConsultationRepository(db, log)
	require.NoError(t, err)
	tc.PaymentRepo, err = NewGormPaymentRepository(db, log)
	require.NoError(t, err)
	tc.WebhookEventRepo, err = NewGormWebhookEventRepository(db, log)
	require.NoError(t, err)
	tc.AdminRepo, err = NewGormAdminRepository(db, log)
	require.NoError(t, err)
	tc.SessionRepo, err = NewGormSessionRepository(db, log)
	require.NoError(t, err)
	tc.AuditRepo, err = NewGormAuditRepository(db, log)
	require.NoError(t, err)
	tc.NotificationRepo, err = NewGormNotificationRepository(db, log)
	require.NoError(t, err)
	tc.ObjectRepo, err = NewGormObjectRepository(db, log)
	require.NoError(t, err)
	tc.SettingsRepo, err = NewGormSettingsRepository(db, log)
	require.NoError(t, err)

	return tc
}

// CreateTestUser creates a test user with default values
func CreateTestUser(t *testing.T, email string) *users.User {
	t.Helper()

	now := time.Now().UTC()
	return &users.User{
		ID:               uuid.NewString(),
		Email:            email,
		FullName:         "Test Operator",
		Company:          "Lift & Hoist LLC",
		SubscriptionTier: users.TierFree,
		Status:           users.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// CreateTestReport creates a pending test report for userID
func CreateTestReport(t *testing.T, userID, reportType string) *reports.FMVReport {
	t.Helper()

	price, err := reports.PriceFor(reportType)
	require.NoError(t, err)

	now := time.Now().UTC()
	return &reports.FMVReport{
		ID:          uuid.NewString(),
		UserID:      userID,
		ReportType:  reportType,
		CraneMake:   "Liebherr",
		CraneModel:  "LTM 1100-5.2",
		CraneYear:   2016,
		Hours:       8200,
		Status:      reports.StatusPendingPayment,
		AmountCents: price,
		Currency:    reports.DefaultCurrency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateTestConsultation creates a new consultation request
func CreateTestConsultation(t *testing.T, email string) *consultations.Request {
	t.Helper()

	now := time.Now().UTC()
	return &consultations.Request{
		ID:        uuid.NewString(),
		Name:      "Jordan Crane",
		Email:     email,
		Subject:   "Fleet appraisal",
		Message:   "Looking for a valuation of four rough terrain cranes.",
		Status:    consultations.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestPayment creates a Stripe payment in status
func CreateTestPayment(t *testing.T, providerID, status string, amount int64) *payments.Payment {
	t.Helper()

	now := time.Now().UTC()
	return &payments.Payment{
		ID:                uuid.NewString(),
		Provider:          payments.ProviderStripe,
		ProviderPaymentID: providerID,
		AmountCents:       amount,
		Currency:          reports.DefaultCurrency,
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// CreateTestAdmin creates an active admin user with role
func CreateTestAdmin(t *testing.T, email, role string) *admins.AdminUser {
	t.Helper()

	now := time.Now().UTC()
	return &admins.AdminUser{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     "Panel Admin",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuu6NTy0w9UJ1W1Zp9l3vZcZyB7pQ5Vx2",
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
