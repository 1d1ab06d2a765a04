//go:build integration
// +build integration

package persistence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/audit"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/settings"
	"github.com/craneintel/crane-intelligence/internal/domain/users"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence/models"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := CreateTestUser(t, "ops@liftco.example")
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	var created models.UserModel
	require.NoError(t, tc.DB.First(&created, "id = ?", user.ID).Error)
	assert.Equal(t, user.Email, created.Email)

	fetched, err := tc.UserRepo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
}

func TestUserSqliteRepository_DuplicateEmailConflicts(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, tc.UserRepo.Create(ctx, CreateTestUser(t, "dup@liftco.example")))

	err := tc.UserRepo.Create(ctx, CreateTestUser(t, "dup@liftco.example"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestUserSqliteRepository_InvalidUser(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.UserRepo.Create(context.Background(), &users.User{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUserSqliteRepository_GetByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.UserRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUserSqliteRepository_ListHidesDeletedAndPaginates(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for _, email := range []string{"a@x.example", "b@x.example", "c@x.example"} {
		require.NoError(t, tc.UserRepo.Create(ctx, CreateTestUser(t, email)))
	}
	deleted := CreateTestUser(t, "gone@x.example")
	deleted.Status = users.StatusDeleted
	require.NoError(t, tc.UserRepo.Create(ctx, deleted))

	query := users.NewUserQuery()
	query.Limit = 2
	query.SortBy = "email"
	query.SortOrder = common.SortAsc

	list, total, err := tc.UserRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 2)
	assert.Equal(t, "a@x.example", list[0].Email)

	count, err := tc.UserRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	query = users.NewUserQuery()
	query.Status = users.StatusDeleted
	list, total, err = tc.UserRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, deleted.ID, list[0].ID)
}

func TestUserSqliteRepository_ListRejectsUnknownSortColumn(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	query := users.NewUserQuery()
	query.SortBy = "password; DROP TABLE users"

	_, _, err := tc.UserRepo.List(context.Background(), query)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestReportSqliteRepository_UpdateAndCountByStatus(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	userID := uuid.NewString()

	paid := CreateTestReport(t, userID, reports.TypeProfessional)
	require.NoError(t, tc.ReportRepo.Create(ctx, paid))
	require.NoError(t, tc.ReportRepo.Create(ctx, CreateTestReport(t, userID, reports.TypeSpotCheck)))

	require.NoError(t, paid.TransitionTo(reports.StatusPaid, time.Now().UTC()))
	require.NoError(t, tc.ReportRepo.Update(ctx, paid))

	counts, err := tc.ReportRepo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[reports.StatusPaid])
	assert.Equal(t, int64(1), counts[reports.StatusPendingPayment])

	query := reports.NewReportQuery()
	query.Status = reports.StatusPaid
	list, total, err := tc.ReportRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, paid.ID, list[0].ID)
}

func TestReportSqliteRepository_DeleteMissing(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.ReportRepo.DeleteByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestConsultationSqliteRepository_DueForReminder(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	now := time.Now().UTC()

	soon := now.Add(6 * time.Hour)
	later := now.Add(72 * time.Hour)

	due := CreateTestConsultation(t, "due@x.example")
	due.Status = consultations.StatusScheduled
	due.PreferredDate = &soon
	require.NoError(t, tc.ConsultationRepo.Create(ctx, due))

	reminded := CreateTestConsultation(t, "done@x.example")
	reminded.Status = consultations.StatusScheduled
	reminded.PreferredDate = &soon
	reminded.ReminderSentAt = &now
	require.NoError(t, tc.ConsultationRepo.Create(ctx, reminded))

	farOut := CreateTestConsultation(t, "later@x.example")
	farOut.Status = consultations.StatusScheduled
	farOut.PreferredDate = &later
	require.NoError(t, tc.ConsultationRepo.Create(ctx, farOut))

	require.NoError(t, tc.ConsultationRepo.Create(ctx, CreateTestConsultation(t, "new@x.example")))

	list, err := tc.ConsultationRepo.DueForReminder(ctx, now, now.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, due.ID, list[0].ID)

	open, err := tc.ConsultationRepo.CountOpen(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), open)
}

func TestPaymentSqliteRepository_UpsertKeepsIdentity(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	first := CreateTestPayment(t, "pi_upsert", payments.StatusPending, 99500)
	require.NoError(t, tc.PaymentRepo.Upsert(ctx, first))

	second := CreateTestPayment(t, "pi_upsert", payments.StatusSucceeded, 99500)
	require.NoError(t, tc.PaymentRepo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	fetched, err := tc.PaymentRepo.GetByProviderID(ctx, "pi_upsert")
	require.NoError(t, err)
	assert.Equal(t, payments.StatusSucceeded, fetched.Status)

	var count int64
	require.NoError(t, tc.DB.Model(&models.PaymentModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPaymentSqliteRepository_Revenue(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, tc.PaymentRepo.Upsert(ctx, CreateTestPayment(t, "pi_1", payments.StatusSucceeded, 49500)))
	refunded := CreateTestPayment(t, "pi_2", payments.StatusRefunded, 99500)
	refunded.RefundedCents = 99500
	require.NoError(t, tc.PaymentRepo.Upsert(ctx, refunded))
	require.NoError(t, tc.PaymentRepo.Upsert(ctx, CreateTestPayment(t, "pi_3", payments.StatusFailed, 249500)))

	revenue, err := tc.PaymentRepo.Revenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), revenue.SucceededCount)
	assert.Equal(t, int64(149000), revenue.GrossCents)
	assert.Equal(t, int64(49500), revenue.NetCents())
}

func TestWebhookEventSqliteRepository_ClaimOnce(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	now := time.Now().UTC()

	newClaim := func() *payments.WebhookEvent {
		return &payments.WebhookEvent{
			ID:         "evt_1",
			Provider:   payments.ProviderStripe,
			Type:       payments.EventPaymentIntentSucceeded,
			Status:     payments.EventProcessing,
			ReceivedAt: now,
		}
	}

	const callers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := tc.WebhookEventRepo.Claim(ctx, newClaim(), now.Add(-10*time.Minute))
			assert.NoError(t, err)
			if claimed {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, won)

	event := newClaim()
	event.Status = payments.EventProcessed
	require.NoError(t, tc.WebhookEventRepo.Save(ctx, event))

	claimed, err := tc.WebhookEventRepo.Claim(ctx, newClaim(), now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, claimed, "processed events stay claimed")
}

func TestWebhookEventSqliteRepository_FailedOrStaleEventsCanBeReclaimed(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	now := time.Now().UTC()

	failed := &payments.WebhookEvent{
		ID:         "evt_failed",
		Provider:   payments.ProviderStripe,
		Type:       payments.EventPaymentIntentSucceeded,
		Status:     payments.EventFailed,
		Error:      "database unavailable",
		ReceivedAt: now.Add(-time.Minute),
	}
	require.NoError(t, tc.WebhookEventRepo.Save(ctx, failed))

	retry := *failed
	retry.Status = payments.EventProcessing
	retry.Error = ""
	retry.ReceivedAt = now
	claimed, err := tc.WebhookEventRepo.Claim(ctx, &retry, now.Add(-10*time.Minute))
	require.NoError(t, err)
	assert.True(t, claimed)

	var model models.WebhookEventModel
	require.NoError(t, tc.DB.Where("id = ?", "evt_failed").First(&model).Error)
	assert.Equal(t, payments.EventProcessing, model.Status)
	assert.Empty(t, model.Error)

	claimed, err = tc.WebhookEventRepo.Claim(ctx, &retry, now.Add(-10*time.Minute))
	require.NoError(t, err)
	assert.False(t, claimed, "in-flight claim is fresh")

	claimed, err = tc.WebhookEventRepo.Claim(ctx, &retry, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, claimed, "in-flight claim went stale")
}

func TestAdminSqliteRepository_FailedAttemptsCountEveryCaller(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	admin := CreateTestAdmin(t, "ops@crane.example", admins.RoleAdmin)
	require.NoError(t, tc.AdminRepo.Create(ctx, admin))

	const callers = 20
	var wg sync.WaitGroup
	seen := make(chan int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			attempts, err := tc.AdminRepo.IncrementFailedAttempts(ctx, admin.ID, time.Now().UTC())
			assert.NoError(t, err)
			seen <- attempts
		}()
	}
	wg.Wait()
	close(seen)

	counts := make(map[int]bool)
	for attempts := range seen {
		counts[attempts] = true
	}
	assert.Len(t, counts, callers)

	fetched, err := tc.AdminRepo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, callers, fetched.FailedAttempts)

	_, err = tc.AdminRepo.IncrementFailedAttempts(ctx, uuid.NewString(), time.Now().UTC())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAdminSqliteRepository_RecordLoginKeepsOtherColumns(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	admin := CreateTestAdmin(t, "ops@crane.example", admins.RoleAdmin)
	admin.FailedAttempts = 2
	require.NoError(t, tc.AdminRepo.Create(ctx, admin))

	changed := *admin
	changed.Role = admins.RoleViewer
	changed.IsActive = false
	require.NoError(t, tc.AdminRepo.Update(ctx, &changed))

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, tc.AdminRepo.RecordLogin(ctx, admin.ID, at))

	fetched, err := tc.AdminRepo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fetched.FailedAttempts)
	require.NotNil(t, fetched.LastLoginAt)
	assert.True(t, at.Equal(*fetched.LastLoginAt))
	assert.Equal(t, admins.RoleViewer, fetched.Role)
	assert.False(t, fetched.IsActive)

	assert.ErrorIs(t, tc.AdminRepo.RecordLogin(ctx, uuid.NewString(), at), common.ErrNotFound)
}

func TestSessionSqliteRepository_RevokeOnce(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	admin := CreateTestAdmin(t, "root@crane.example", admins.RoleSuperAdmin)
	require.NoError(t, tc.AdminRepo.Create(ctx, admin))

	s := &admins.Session{
		ID:        uuid.NewString(),
		AdminID:   admin.ID,
		UserAgent: "integration-test",
		IPAddress: "127.0.0.1",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, tc.SessionRepo.Create(ctx, s))

	list, err := tc.SessionRepo.ListByAdmin(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Active(time.Now()))

	require.NoError(t, tc.SessionRepo.Revoke(ctx, s.ID))
	assert.ErrorIs(t, tc.SessionRepo.Revoke(ctx, s.ID), common.ErrNotFound)

	fetched, err := tc.SessionRepo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Active(time.Now()))
}

func TestNotificationSqliteRepository_VisibilityAndReadState(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	me := uuid.NewString()
	other := uuid.NewString()
	now := time.Now().UTC()

	newNotification := func(adminID *string, title string) *notifications.Notification {
		return &notifications.Notification{
			ID:        uuid.NewString(),
			AdminID:   adminID,
			Kind:      notifications.KindSystem,
			Title:     title,
			CreatedAt: now,
		}
	}

	broadcast := newNotification(nil, "Nightly backup finished")
	mine := newNotification(&me, "Report assigned")
	theirs := newNotification(&other, "Not for me")
	for _, n := range []*notifications.Notification{broadcast, mine, theirs} {
		require.NoError(t, tc.NotificationRepo.Create(ctx, n))
	}

	list, total, err := tc.NotificationRepo.List(ctx, notifications.NewNotificationQuery(me))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	assert.ErrorIs(t, tc.NotificationRepo.MarkRead(ctx, me, theirs.ID, now), common.ErrNotFound)
	require.NoError(t, tc.NotificationRepo.MarkRead(ctx, me, mine.ID, now))

	unread, err := tc.NotificationRepo.CountUnread(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	marked, err := tc.NotificationRepo.MarkAllRead(ctx, me, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	unread, err = tc.NotificationRepo.CountUnread(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestAuditSqliteRepository_ListFilters(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	adminID := uuid.NewString()

	for _, action := range []string{"POST", "DELETE", "PATCH"} {
		require.NoError(t, tc.AuditRepo.Create(ctx, &audit.Entry{
			ID:         uuid.NewString(),
			AdminID:    adminID,
			AdminEmail: "root@crane.example",
			Action:     action,
			Resource:   "/api/v1/admin/users",
			StatusCode: 200,
			CreatedAt:  time.Now().UTC(),
		}))
	}

	query := audit.NewEntryQuery()
	query.Action = "DELETE"
	list, total, err := tc.AuditRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "DELETE", list[0].Action)
}

func TestObjectSqliteRepository_CRUD(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	object := &media.Object{
		ID:          uuid.NewString(),
		Category:    media.CategoryServiceRecords,
		FileName:    "inspection.pdf",
		ObjectKey:   "prod/service-records/abc_inspection.pdf",
		URL:         "https://crane.nyc3.cdn.digitaloceanspaces.com/prod/service-records/abc_inspection.pdf",
		Size:        2048,
		ContentType: "application/pdf",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, tc.ObjectRepo.Create(ctx, object))

	query := media.NewObjectQuery()
	query.Category = media.CategoryServiceRecords
	list, total, err := tc.ObjectRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, object.ObjectKey, list[0].ObjectKey)

	require.NoError(t, tc.ObjectRepo.DeleteByID(ctx, object.ID))
	_, err = tc.ObjectRepo.GetByID(ctx, object.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSettingsSqliteRepository_Upsert(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	setting := &settings.Setting{Key: settings.KeySupportEmail, Value: "help@crane.example", UpdatedBy: "root", UpdatedAt: time.Now().UTC()}
	require.NoError(t, tc.SettingsRepo.Upsert(ctx, setting))

	setting.Value = "support@crane.example"
	require.NoError(t, tc.SettingsRepo.Upsert(ctx, setting))

	fetched, err := tc.SettingsRepo.Get(ctx, settings.KeySupportEmail)
	require.NoError(t, err)
	assert.Equal(t, "support@crane.example", fetched.Value)

	list, err := tc.SettingsRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = tc.SettingsRepo.Get(ctx, settings.KeyMaintenanceMode)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
