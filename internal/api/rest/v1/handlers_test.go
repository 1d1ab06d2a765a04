//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func withPrincipal(c *gin.Context, role string) {
	c.Set(principalKey, &admins.Principal{AdminID: "admin-1", Email: "ops@craneintel.com", Role: role})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: bad field", common.ErrValidation), http.StatusBadRequest},
		{common.ErrUnauthorized, http.StatusUnauthorized},
		{common.ErrForbidden, http.StatusForbidden},
		{common.ErrLocked, http.StatusForbidden},
		{fmt.Errorf("user with ID x: %w", common.ErrNotFound), http.StatusNotFound},
		{common.ErrConflict, http.StatusConflict},
		{fmt.Errorf("%w: paid -> pending_payment", common.ErrInvalidTransition), http.StatusConflict},
		{errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, message := statusFor(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, message)
		})
	}

	_, message := statusFor(errors.New("pq: password authentication failed for user crane"))
	assert.Equal(t, "internal server error", message)
}

func TestWebhookHandler_AlwaysAnswers200(t *testing.T) {
	for _, status := range []string{payments.EventProcessed, payments.EventDuplicate, payments.EventIgnored, payments.EventRejected} {
		t.Run(status, func(t *testing.T) {
			service := new(MockWebhookService)
			handler := NewWebhookHandler(service)

			payload := `{"id":"evt_1","type":"payment_intent.succeeded"}`
			service.On("HandleStripe", mock.Anything, []byte(payload), "t=1,v1=abc").
				Return(&payments.WebhookResult{EventID: "evt_1", Status: status})

			c, w := jsonContext(t, http.MethodPost, "/payment-webhooks/stripe", payload)
			c.Request.Header.Set("Stripe-Signature", "t=1,v1=abc")

			handler.Stripe(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"received":true,"status":%q}`, status), w.Body.String())
			service.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	service := new(MockAuthService)
	handler := NewAuthHandler(service)

	admin := &admins.AdminUser{ID: "admin-1", Email: "ops@craneintel.com", Role: admins.RoleAdmin, IsActive: true}
	pair := &admins.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 15 * time.Minute}
	service.On("Login", mock.Anything, "ops@craneintel.com", "secret-password", mock.Anything).Return(pair, admin, nil)

	c, w := jsonContext(t, http.MethodPost, "/admin/auth/login", `{"email":"ops@craneintel.com","password":"secret-password"}`)
	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response stub.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "access", response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
	assert.Equal(t, "admin-1", response.Admin.ID)
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"bad password", common.ErrUnauthorized, http.StatusUnauthorized, "invalid email or password"},
		{"locked", common.ErrLocked, http.StatusForbidden, "account locked after too many failed logins"},
		{"inactive", common.ErrForbidden, http.StatusForbidden, "insufficient permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockAuthService)
			handler := NewAuthHandler(service)
			service.On("Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil, tt.err)

			c, w := jsonContext(t, http.MethodPost, "/admin/auth/login", `{"email":"ops@craneintel.com","password":"nope"}`)
			handler.Login(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService))

	c, w := jsonContext(t, http.MethodPost, "/admin/auth/login", `{"email":"ops@craneintel.com"}`)
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RevokeForeignSession(t *testing.T) {
	service := new(MockAuthService)
	handler := NewAuthHandler(service)
	service.On("ListSessions", mock.Anything, "admin-1").Return([]*admins.Session{{ID: "own"}}, nil)

	c, w := jsonContext(t, http.MethodDelete, "/admin/security/sessions/other", "")
	c.Params = gin.Params{{Key: "id", Value: "other"}}
	withPrincipal(c, admins.RoleAdmin)

	handler.RevokeSession(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	service.AssertNotCalled(t, "RevokeSession", mock.Anything, mock.Anything)
}

func TestReportHandler_UpdateStatusConflict(t *testing.T) {
	service := new(MockReportService)
	handler := NewReportHandler(service)
	service.On("UpdateStatus", mock.Anything, "r1", reports.StatusPendingPayment).
		Return(nil, fmt.Errorf("%w: paid -> pending_payment", common.ErrInvalidTransition))

	c, w := jsonContext(t, http.MethodPatch, "/admin/fmv-reports/r1/status", `{"status":"pending_payment"}`)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "paid -> pending_payment")
}

func TestReportHandler_ListRejectsBadPaging(t *testing.T) {
	service := new(MockReportService)
	handler := NewReportHandler(service)

	c, w := jsonContext(t, http.MethodGet, "/admin/fmv-reports?limit=ten", "")
	handler.List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = jsonContext(t, http.MethodGet, "/admin/fmv-reports?limit=500", "")
	handler.List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	service.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestReportHandler_ListPassesFilters(t *testing.T) {
	service := new(MockReportService)
	handler := NewReportHandler(service)

	report := &reports.FMVReport{ID: "r1", Status: reports.StatusPaid}
	service.On("List", mock.Anything, mock.MatchedBy(func(q *reports.ReportQuery) bool {
		return q.Status == reports.StatusPaid && q.Limit == 10 && q.Offset == 20 && q.SortBy == "amount_cents"
	})).Return([]*reports.FMVReport{report}, int64(21), nil)

	c, w := jsonContext(t, http.MethodGet, "/admin/fmv-reports?status=paid&limit=10&offset=20&sortBy=amount_cents", "")
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response stub.ListResponse[stub.ReportResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(21), response.Total)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "r1", response.Items[0].ID)
}

func TestMediaHandler_Upload(t *testing.T) {
	service := new(MockUploadService)
	handler := NewMediaHandler(service)

	object := &media.Object{ID: "o1", FileName: "log.pdf", URL: "https://cdn.example.com/prod/service-records/o1_log.pdf", Size: 9, ContentType: "application/pdf"}
	service.On("Upload", mock.Anything, media.CategoryServiceRecords, mock.Anything, "").Return([]*media.Object{object}, nil)

	body, contentType := testutil.CreateUploadBody(t, testutil.TestFile{Name: "log.pdf", Content: []byte("%PDF-1.7")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/uploads/service-records", body)
	c.Request.Header.Set("Content-Type", contentType)
	c.Params = gin.Params{{Key: "category", Value: media.CategoryServiceRecords}}

	handler.Upload(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"https://cdn.example.com/prod/service-records/o1_log.pdf"`)
	service.AssertExpectations(t)
}

func TestMediaHandler_UploadUnknownCategory(t *testing.T) {
	service := new(MockUploadService)
	handler := NewMediaHandler(service)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/uploads/invoices", bytes.NewReader(nil))
	c.Params = gin.Params{{Key: "category", Value: "invoices"}}

	handler.Upload(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMediaHandler_UploadInvalidForm(t *testing.T) {
	handler := NewMediaHandler(new(MockUploadService))

	c, w := jsonContext(t, http.MethodPost, "/uploads/service-records", "")
	c.Params = gin.Params{{Key: "category", Value: media.CategoryServiceRecords}}

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid form data")
}

func TestNotificationHandler_ListScopedToCaller(t *testing.T) {
	service := new(MockNotificationService)
	handler := NewNotificationHandler(service)

	service.On("List", mock.Anything, mock.MatchedBy(func(q *notifications.NotificationQuery) bool {
		return q.AdminID == "admin-1" && q.UnreadOnly
	})).Return([]*notifications.Notification{{ID: "n1", Kind: notifications.KindPayment, Title: "Payment received"}}, int64(1), nil)

	c, w := jsonContext(t, http.MethodGet, "/admin/notifications?unread=true", "")
	withPrincipal(c, admins.RoleViewer)

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"broadcast":true`)
}

func TestSettingsHandler_SetRecordsEditor(t *testing.T) {
	service := new(MockSettingsService)
	handler := NewSettingsHandler(service)

	service.On("Set", mock.Anything, "support_email", "help@craneintel.com", "ops@craneintel.com").
		Return(nil, fmt.Errorf("%w: invalid value", common.ErrValidation)).Once()

	c, w := jsonContext(t, http.MethodPut, "/admin/settings/support_email", `{"value":"help@craneintel.com"}`)
	c.Params = gin.Params{{Key: "key", Value: "support_email"}}
	withPrincipal(c, admins.RoleSuperAdmin)

	handler.Set(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertExpectations(t)
}

func TestConsultationHandler_Submit(t *testing.T) {
	service := new(MockConsultationService)
	handler := NewConsultationHandler(service)

	service.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("database is locked"))

	c, w := jsonContext(t, http.MethodPost, "/consultations", `{"name":"Lee","email":"lee@example.com","subject":"Hi","message":"Hello"}`)
	handler.Submit(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, w.Body.String())
	assert.Len(t, c.Errors, 1)
}
