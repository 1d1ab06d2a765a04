//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/users"
	"github.com/craneintel/crane-intelligence/internal/pkg/config"
	"github.com/craneintel/crane-intelligence/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

func signStripeEvent(t *testing.T, id, eventType string, object map[string]interface{}) ([]byte, string) {
	t.Helper()

	payload, err := json.Marshal(map[string]interface{}{
		"id":     id,
		"object": "event",
		"type":   eventType,
		"data":   map[string]interface{}{"object": object},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    TestWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func TestReportCheckoutFlow(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	operator, err := services.AdminService.Create(ctx, &admins.CreateAdminInput{
		Email: "ops@craneintel.com", FullName: "Ops", Password: "a-long-password-1", Role: admins.RoleAdmin,
	})
	require.NoError(t, err)

	user, err := services.UserService.Create(ctx, &users.CreateUserInput{Email: "buyer@liftco.com", FullName: "Buyer"})
	require.NoError(t, err)

	report, err := services.ReportService.Submit(ctx, &reports.SubmitReportInput{
		UserID:     user.ID,
		ReportType: reports.TypeFleetValuation,
		CraneMake:  "Manitowoc",
		CraneModel: "MLC300",
		CraneYear:  2016,
	})
	require.NoError(t, err)

	payload, header := signStripeEvent(t, "evt_checkout_1", payments.EventPaymentIntentSucceeded, map[string]interface{}{
		"id":              "pi_checkout_1",
		"object":          "payment_intent",
		"amount":          report.AmountCents,
		"amount_received": report.AmountCents,
		"currency":        "usd",
		"metadata":        map[string]string{MetadataReportID: report.ID, MetadataUserID: user.ID},
	})

	result := services.WebhookService.HandleStripe(ctx, payload, header)
	require.Equal(t, payments.EventProcessed, result.Status)

	replay := services.WebhookService.HandleStripe(ctx, payload, header)
	assert.Equal(t, payments.EventDuplicate, replay.Status)

	paid, err := services.ReportService.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, reports.StatusPaid, paid.Status)

	list, total, err := services.PaymentService.List(ctx, payments.NewPaymentQuery())
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, int64(249500), list[0].AmountCents)
	require.NotNil(t, list[0].UserID)
	assert.Equal(t, user.ID, *list[0].UserID)

	dashboard, err := services.AnalyticsService.Dashboard(ctx, operator.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dashboard.TotalUsers)
	assert.Equal(t, int64(1), dashboard.SucceededPayments)
	assert.Equal(t, int64(249500), dashboard.NetRevenueCents)
	assert.Equal(t, int64(1), dashboard.ReportsByStatus[reports.StatusPaid])
	// report submitted plus payment received
	assert.Equal(t, int64(2), dashboard.UnreadNotifications)

	refund, refundHeader := signStripeEvent(t, "evt_checkout_2", payments.EventChargeRefunded, map[string]interface{}{
		"id":              "ch_checkout_1",
		"object":          "charge",
		"amount":          report.AmountCents,
		"amount_refunded": report.AmountCents,
		"payment_intent":  "pi_checkout_1",
	})
	require.Equal(t, payments.EventProcessed, services.WebhookService.HandleStripe(ctx, refund, refundHeader).Status)

	refunded, err := services.ReportService.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, reports.StatusRefunded, refunded.Status)

	dashboard, err = services.AnalyticsService.Dashboard(ctx, operator.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dashboard.NetRevenueCents)
}

func TestConcurrentWebhookDeliveriesApplyOnce(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	operator, err := services.AdminService.Create(ctx, &admins.CreateAdminInput{
		Email: "ops@craneintel.com", FullName: "Ops", Password: "a-long-password-1", Role: admins.RoleAdmin,
	})
	require.NoError(t, err)

	user, err := services.UserService.Create(ctx, &users.CreateUserInput{Email: "buyer@liftco.com", FullName: "Buyer"})
	require.NoError(t, err)

	report, err := services.ReportService.Submit(ctx, &reports.SubmitReportInput{
		UserID:     user.ID,
		ReportType: reports.TypeFleetValuation,
		CraneMake:  "Grove",
		CraneModel: "GMK5250L",
		CraneYear:  2019,
	})
	require.NoError(t, err)

	payload, header := signStripeEvent(t, "evt_burst_1", payments.EventPaymentIntentSucceeded, map[string]interface{}{
		"id":              "pi_burst_1",
		"object":          "payment_intent",
		"amount":          report.AmountCents,
		"amount_received": report.AmountCents,
		"currency":        "usd",
		"metadata":        map[string]string{MetadataReportID: report.ID, MetadataUserID: user.ID},
	})

	const deliveries = 8
	statuses := make(chan string, deliveries)
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			statuses <- services.WebhookService.HandleStripe(ctx, payload, header).Status
		}()
	}
	wg.Wait()
	close(statuses)

	counts := make(map[string]int)
	for status := range statuses {
		counts[status]++
	}
	assert.Equal(t, map[string]int{payments.EventProcessed: 1, payments.EventDuplicate: deliveries - 1}, counts)

	dashboard, err := services.AnalyticsService.Dashboard(ctx, operator.ID)
	require.NoError(t, err)
	// report submitted plus one payment received
	assert.Equal(t, int64(2), dashboard.UnreadNotifications)
}

func TestAdminLoginAndRotation(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.AdminService.Create(ctx, &admins.CreateAdminInput{
		Email: "Root@CraneIntel.com", FullName: "Root", Password: "correct horse battery", Role: admins.RoleSuperAdmin,
	})
	require.NoError(t, err)

	pair, admin, err := services.AuthService.Login(ctx, "root@craneintel.com", "correct horse battery", admins.ClientMeta{UserAgent: "it", IPAddress: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, admins.RoleSuperAdmin, admin.Role)

	principal, err := services.AuthService.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, principal.AdminID)

	rotated, err := services.AuthService.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	_, err = services.AuthService.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	sessions, err := services.AuthService.ListSessions(ctx, admin.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	require.NoError(t, services.AuthService.Logout(ctx, rotated.RefreshToken))
	_, err = services.AuthService.Refresh(ctx, rotated.RefreshToken)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAdminLoginLockoutUnderConcurrentFailures(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	created, err := services.AdminService.Create(ctx, &admins.CreateAdminInput{
		Email: "ops@craneintel.com", FullName: "Ops", Password: "correct horse battery", Role: admins.RoleAdmin,
	})
	require.NoError(t, err)

	// MaxFailedLogins is 3 in SetupTestServices
	const attempts = 20
	var unauthorized, locked, other atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := services.AuthService.Login(ctx, created.Email, "nope", admins.ClientMeta{})
			switch {
			case errors.Is(err, common.ErrUnauthorized):
				unauthorized.Add(1)
			case errors.Is(err, common.ErrLocked):
				locked.Add(1)
			default:
				other.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, other.Load())
	assert.Equal(t, int32(3), unauthorized.Load())
	assert.Equal(t, int32(attempts-3), locked.Load())

	stored, err := services.DBContext.AdminRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stored.FailedAttempts, 3)

	_, _, err = services.AuthService.Login(ctx, created.Email, "correct horse battery", admins.ClientMeta{})
	assert.ErrorIs(t, err, common.ErrLocked)
}

func TestUploadRoundTrip(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	form := testutil.CreateUploadForm(t, testutil.TestFile{Name: "annual inspection.pdf", Content: []byte("%PDF-1.4 crane")})

	objects, err := services.UploadService.Upload(ctx, media.CategoryServiceRecords, form, "ops@craneintel.com")
	require.NoError(t, err)
	require.Len(t, objects, 1)

	object := objects[0]
	assert.Regexp(t, `^development/service-records/[0-9a-f-]{36}_annual_inspection\.pdf$`, object.ObjectKey)

	body, err := services.Storage.Get(object.ObjectKey)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 crane", string(body))

	require.NoError(t, services.UploadService.DeleteByID(ctx, object.ID))

	_, err = services.Storage.Get(object.ObjectKey)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = services.UploadService.GetByID(ctx, object.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestConsultationReminders(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	soon := time.Now().UTC().Add(2 * time.Hour)
	request, err := services.ConsultationService.Submit(ctx, &consultations.SubmitInput{
		Name: "Riley", Email: "riley@example.com", Subject: "Appraisal", Message: "Two crawlers", PreferredDate: &soon,
	})
	require.NoError(t, err)

	scheduled := consultations.StatusScheduled
	_, err = services.ConsultationService.Update(ctx, request.ID, &consultations.UpdateInput{Status: &scheduled})
	require.NoError(t, err)

	sent, err := services.ConsultationService.SendReminders(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = services.ConsultationService.SendReminders(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}
