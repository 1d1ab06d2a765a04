//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/settings"
	"github.com/craneintel/crane-intelligence/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*users.User)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*users.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*users.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Create(ctx context.Context, report *reports.FMVReport) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockReportRepository) List(ctx context.Context, query *reports.ReportQuery) ([]*reports.FMVReport, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*reports.FMVReport)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) GetByID(ctx context.Context, reportID string) (*reports.FMVReport, error) {
	args := m.Called(ctx, reportID)
	report, _ := args.Get(0).(*reports.FMVReport)
	return report, args.Error(1)
}

func (m *MockReportRepository) Update(ctx context.Context, report *reports.FMVReport) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockReportRepository) DeleteByID(ctx context.Context, reportID string) error {
	return m.Called(ctx, reportID).Error(0)
}

func (m *MockReportRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

type MockConsultationRepository struct{ mock.Mock }

func (m *MockConsultationRepository) Create(ctx context.Context, request *consultations.Request) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockConsultationRepository) List(ctx context.Context, query *consultations.ConsultationQuery) ([]*consultations.Request, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*consultations.Request)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockConsultationRepository) GetByID(ctx context.Context, requestID string) (*consultations.Request, error) {
	args := m.Called(ctx, requestID)
	request, _ := args.Get(0).(*consultations.Request)
	return request, args.Error(1)
}

func (m *MockConsultationRepository) Update(ctx context.Context, request *consultations.Request) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockConsultationRepository) DeleteByID(ctx context.Context, requestID string) error {
	return m.Called(ctx, requestID).Error(0)
}

func (m *MockConsultationRepository) CountOpen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConsultationRepository) DueForReminder(ctx context.Context, from, to time.Time) ([]*consultations.Request, error) {
	args := m.Called(ctx, from, to)
	list, _ := args.Get(0).([]*consultations.Request)
	return list, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Upsert(ctx context.Context, payment *payments.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) List(ctx context.Context, query *payments.PaymentQuery) ([]*payments.Payment, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*payments.Payment)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, paymentID string) (*payments.Payment, error) {
	args := m.Called(ctx, paymentID)
	payment, _ := args.Get(0).(*payments.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) GetByProviderID(ctx context.Context, providerPaymentID string) (*payments.Payment, error) {
	args := m.Called(ctx, providerPaymentID)
	payment, _ := args.Get(0).(*payments.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) Revenue(ctx context.Context) (*payments.Revenue, error) {
	args := m.Called(ctx)
	revenue, _ := args.Get(0).(*payments.Revenue)
	return revenue, args.Error(1)
}

type MockWebhookEventRepository struct{ mock.Mock }

func (m *MockWebhookEventRepository) Claim(ctx context.Context, event *payments.WebhookEvent, staleBefore time.Time) (bool, error) {
	args := m.Called(ctx, event, staleBefore)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebhookEventRepository) Save(ctx context.Context, event *payments.WebhookEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockAdminRepository struct{ mock.Mock }

func (m *MockAdminRepository) Create(ctx context.Context, admin *admins.AdminUser) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) List(ctx context.Context, query *admins.AdminQuery) ([]*admins.AdminUser, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*admins.AdminUser)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, adminID string) (*admins.AdminUser, error) {
	args := m.Called(ctx, adminID)
	admin, _ := args.Get(0).(*admins.AdminUser)
	return admin, args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*admins.AdminUser, error) {
	args := m.Called(ctx, email)
	admin, _ := args.Get(0).(*admins.AdminUser)
	return admin, args.Error(1)
}

func (m *MockAdminRepository) Update(ctx context.Context, admin *admins.AdminUser) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) IncrementFailedAttempts(ctx context.Context, adminID string, at time.Time) (int, error) {
	args := m.Called(ctx, adminID, at)
	return args.Int(0), args.Error(1)
}

func (m *MockAdminRepository) RecordLogin(ctx context.Context, adminID string, at time.Time) error {
	return m.Called(ctx, adminID, at).Error(0)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Create(ctx context.Context, session *admins.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, sessionID string) (*admins.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*admins.Session)
	return session, args.Error(1)
}

func (m *MockSessionRepository) ListByAdmin(ctx context.Context, adminID string) ([]*admins.Session, error) {
	args := m.Called(ctx, adminID)
	list, _ := args.Get(0).([]*admins.Session)
	return list, args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) Notify(ctx context.Context, adminID *string, kind, title, body string) (*notifications.Notification, error) {
	args := m.Called(ctx, adminID, kind, title, body)
	n, _ := args.Get(0).(*notifications.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*notifications.Notification)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, adminID, notificationID string) error {
	return m.Called(ctx, adminID, notificationID).Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, adminID string) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) CountUnread(ctx context.Context, adminID string) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Create(ctx context.Context, notification *notifications.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepository) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*notifications.Notification)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, adminID, notificationID string, at time.Time) error {
	return m.Called(ctx, adminID, notificationID, at).Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, adminID string, at time.Time) (int64, error) {
	args := m.Called(ctx, adminID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, adminID string) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

type MockStorageConnector struct{ mock.Mock }

func (m *MockStorageConnector) Put(ctx context.Context, input *media.PutObjectInput) (string, error) {
	args := m.Called(ctx, input)
	if fn, ok := args.Get(0).(func(context.Context, *media.PutObjectInput) string); ok {
		return fn(ctx, input), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

func (m *MockStorageConnector) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorageConnector) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockObjectRepository struct{ mock.Mock }

func (m *MockObjectRepository) Create(ctx context.Context, object *media.Object) error {
	return m.Called(ctx, object).Error(0)
}

func (m *MockObjectRepository) List(ctx context.Context, query *media.ObjectQuery) ([]*media.Object, int64, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*media.Object)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockObjectRepository) GetByID(ctx context.Context, objectID string) (*media.Object, error) {
	args := m.Called(ctx, objectID)
	object, _ := args.Get(0).(*media.Object)
	return object, args.Error(1)
}

func (m *MockObjectRepository) DeleteByID(ctx context.Context, objectID string) error {
	return m.Called(ctx, objectID).Error(0)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) List(ctx context.Context) ([]*settings.Setting, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*settings.Setting)
	return list, args.Error(1)
}

func (m *MockSettingsRepository) Get(ctx context.Context, key string) (*settings.Setting, error) {
	args := m.Called(ctx, key)
	setting, _ := args.Get(0).(*settings.Setting)
	return setting, args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, setting *settings.Setting) error {
	return m.Called(ctx, setting).Error(0)
}
