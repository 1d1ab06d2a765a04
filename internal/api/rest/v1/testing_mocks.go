//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/analytics"
	"github.com/craneintel/crane-intelligence/internal/domain/audit"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/settings"
	"github.com/craneintel/crane-intelligence/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, input *users.CreateUserInput) (*users.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*users.User)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, userID string, input *users.UpdateUserInput) (*users.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Submit(ctx context.Context, input *reports.SubmitReportInput) (*reports.FMVReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.FMVReport), args.Error(1)
}

func (m *MockReportService) List(ctx context.Context, query *reports.ReportQuery) ([]*reports.FMVReport, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*reports.FMVReport)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockReportService) GetByID(ctx context.Context, reportID string) (*reports.FMVReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.FMVReport), args.Error(1)
}

func (m *MockReportService) Update(ctx context.Context, reportID string, input *reports.UpdateReportInput) (*reports.FMVReport, error) {
	args := m.Called(ctx, reportID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.FMVReport), args.Error(1)
}

func (m *MockReportService) UpdateStatus(ctx context.Context, reportID, status string) (*reports.FMVReport, error) {
	args := m.Called(ctx, reportID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.FMVReport), args.Error(1)
}

func (m *MockReportService) DeleteByID(ctx context.Context, reportID string) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

// MockConsultationService is a mock implementation of ConsultationService
type MockConsultationService struct {
	mock.Mock
}

func (m *MockConsultationService) Submit(ctx context.Context, input *consultations.SubmitInput) (*consultations.Request, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consultations.Request), args.Error(1)
}

func (m *MockConsultationService) List(ctx context.Context, query *consultations.ConsultationQuery) ([]*consultations.Request, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*consultations.Request)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockConsultationService) GetByID(ctx context.Context, requestID string) (*consultations.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consultations.Request), args.Error(1)
}

func (m *MockConsultationService) Update(ctx context.Context, requestID string, input *consultations.UpdateInput) (*consultations.Request, error) {
	args := m.Called(ctx, requestID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consultations.Request), args.Error(1)
}

func (m *MockConsultationService) DeleteByID(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func (m *MockConsultationService) SendReminders(ctx context.Context, horizon time.Duration) (int, error) {
	args := m.Called(ctx, horizon)
	return args.Int(0), args.Error(1)
}

// MockPaymentService is a mock implementation of PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) List(ctx context.Context, query *payments.PaymentQuery) ([]*payments.Payment, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*payments.Payment)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentService) GetByID(ctx context.Context, paymentID string) (*payments.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Payment), args.Error(1)
}

// MockWebhookService is a mock implementation of WebhookService
type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) HandleStripe(ctx context.Context, payload []byte, signatureHeader string) *payments.WebhookResult {
	args := m.Called(ctx, payload, signatureHeader)
	return args.Get(0).(*payments.WebhookResult)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, adminID *string, kind, title, body string) (*notifications.Notification, error) {
	args := m.Called(ctx, adminID, kind, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*notifications.Notification)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, adminID, notificationID string) error {
	args := m.Called(ctx, adminID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, adminID string) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) CountUnread(ctx context.Context, adminID string) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, meta admins.ClientMeta) (*admins.TokenPair, *admins.AdminUser, error) {
	args := m.Called(ctx, email, password, meta)
	pair, _ := args.Get(0).(*admins.TokenPair)
	admin, _ := args.Get(1).(*admins.AdminUser)
	return pair, admin, args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*admins.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.TokenPair), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, accessToken string) (*admins.Principal, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.Principal), args.Error(1)
}

func (m *MockAuthService) ListSessions(ctx context.Context, adminID string) ([]*admins.Session, error) {
	args := m.Called(ctx, adminID)
	list, _ := args.Get(0).([]*admins.Session)
	return list, args.Error(1)
}

func (m *MockAuthService) RevokeSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockAdminService is a mock implementation of AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Create(ctx context.Context, input *admins.CreateAdminInput) (*admins.AdminUser, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.AdminUser), args.Error(1)
}

func (m *MockAdminService) List(ctx context.Context, query *admins.AdminQuery) ([]*admins.AdminUser, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*admins.AdminUser)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminService) GetByID(ctx context.Context, adminID string) (*admins.AdminUser, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.AdminUser), args.Error(1)
}

func (m *MockAdminService) Update(ctx context.Context, adminID string, input *admins.UpdateAdminInput) (*admins.AdminUser, error) {
	args := m.Called(ctx, adminID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admins.AdminUser), args.Error(1)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditService) List(ctx context.Context, query *audit.EntryQuery) ([]*audit.Entry, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*audit.Entry)
	return list, args.Get(1).(int64), args.Error(2)
}

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, category string, form *multipart.Form, uploadedBy string) ([]*media.Object, error) {
	args := m.Called(ctx, category, form, uploadedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*media.Object), args.Error(1)
}

func (m *MockUploadService) List(ctx context.Context, query *media.ObjectQuery) ([]*media.Object, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*media.Object)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockUploadService) GetByID(ctx context.Context, objectID string) (*media.Object, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Object), args.Error(1)
}

func (m *MockUploadService) DeleteByID(ctx context.Context, objectID string) error {
	args := m.Called(ctx, objectID)
	return args.Error(0)
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) List(ctx context.Context) ([]*settings.Setting, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*settings.Setting)
	return list, args.Error(1)
}

func (m *MockSettingsService) Get(ctx context.Context, key string) (*settings.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Setting), args.Error(1)
}

func (m *MockSettingsService) Set(ctx context.Context, key, value, updatedBy string) (*settings.Setting, error) {
	args := m.Called(ctx, key, value, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Setting), args.Error(1)
}

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context, adminID string) (*analytics.Dashboard, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Dashboard), args.Error(1)
}
