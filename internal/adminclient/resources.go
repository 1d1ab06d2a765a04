package adminclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/users"
)

// ListOptions pages and filters a listing. Filters are sent as query parameters verbatim.
type ListOptions struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
	Filters   map[string]string
}

func (o *ListOptions) values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		values.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.SortBy != "" {
		values.Set("sortBy", o.SortBy)
	}
	if o.SortOrder != "" {
		values.Set("sortOrder", o.SortOrder)
	}
	for key, value := range o.Filters {
		if value != "" {
			values.Set(key, value)
		}
	}
	return values
}

func list[T any](ctx context.Context, c *Client, path string, opts *ListOptions) (*stub.ListResponse[T], error) {
	var response stub.ListResponse[T]
	if err := c.do(ctx, http.MethodGet, withQuery(path, opts.values()), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) (*T, error) {
	var response T
	if err := c.do(ctx, method, path, body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Me returns the authenticated admin
func (c *Client) Me(ctx context.Context) (*stub.PrincipalResponse, error) {
	return call[stub.PrincipalResponse](ctx, c, http.MethodGet, "/admin/auth/me", nil)
}

// Dashboard returns the overview figures
func (c *Client) Dashboard(ctx context.Context) (*stub.DashboardResponse, error) {
	return call[stub.DashboardResponse](ctx, c, http.MethodGet, "/admin/analytics/dashboard", nil)
}

// Users

func (c *Client) ListUsers(ctx context.Context, opts *ListOptions) (*stub.ListResponse[stub.UserResponse], error) {
	return list[stub.UserResponse](ctx, c, "/admin/users", opts)
}

func (c *Client) GetUser(ctx context.Context, id string) (*stub.UserResponse, error) {
	return call[stub.UserResponse](ctx, c, http.MethodGet, "/admin/users/"+url.PathEscape(id), nil)
}

func (c *Client) CreateUser(ctx context.Context, input *users.CreateUserInput) (*stub.UserResponse, error) {
	return call[stub.UserResponse](ctx, c, http.MethodPost, "/admin/users", input)
}

func (c *Client) UpdateUser(ctx context.Context, id string, input *users.UpdateUserInput) (*stub.UserResponse, error) {
	return call[stub.UserResponse](ctx, c, http.MethodPut, "/admin/users/"+url.PathEscape(id), input)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil)
}

// FMV reports

func (c *Client) ListReports(ctx context.Context, opts *ListOptions) (*stub.ListResponse[stub.ReportResponse], error) {
	return list[stub.ReportResponse](ctx, c, "/admin/fmv-reports", opts)
}

func (c *Client) GetReport(ctx context.Context, id string) (*stub.ReportResponse, error) {
	return call[stub.ReportResponse](ctx, c, http.MethodGet, "/admin/fmv-reports/"+url.PathEscape(id), nil)
}

func (c *Client) UpdateReport(ctx context.Context, id string, input *reports.UpdateReportInput) (*stub.ReportResponse, error) {
	return call[stub.ReportResponse](ctx, c, http.MethodPut, "/admin/fmv-reports/"+url.PathEscape(id), input)
}

func (c *Client) UpdateReportStatus(ctx context.Context, id, status string) (*stub.ReportResponse, error) {
	return call[stub.ReportResponse](ctx, c, http.MethodPatch, "/admin/fmv-reports/"+url.PathEscape(id)+"/status", stub.StatusRequest{Status: status})
}

func (c *Client) DeleteReport(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/fmv-reports/"+url.PathEscape(id), nil, nil)
}

// Consultations

func (c *Client) ListConsultations(ctx context.Context, opts *ListOptions) (*stub.ListResponse[stub.ConsultationResponse], error) {
	return list[stub.ConsultationResponse](ctx, c, "/admin/consultations", opts)
}

func (c *Client) GetConsultation(ctx context.Context, id string) (*stub.ConsultationResponse, error) {
	return call[stub.ConsultationResponse](ctx, c, http.MethodGet, "/admin/consultations/"+url.PathEscape(id), nil)
}

func (c *Client) UpdateConsultation(ctx context.Context, id string, input *consultations.UpdateInput) (*stub.ConsultationResponse, error) {
	return call[stub.ConsultationResponse](ctx, c, http.MethodPut, "/admin/consultations/"+url.PathEscape(id), input)
}

func (c *Client) DeleteConsultation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/consultations/"+url.PathEscape(id), nil, nil)
}

// Payments

func (c *Client) ListPayments(ctx context.Context, opts *ListOptions) (*stub.ListResponse[stub.PaymentResponse], error) {
	return list[stub.PaymentResponse](ctx, c, "/admin/payments", opts)
}

func (c *Client) GetPayment(ctx context.Context, id string) (*stub.PaymentResponse, error) {
	return call[stub.PaymentResponse](ctx, c, http.MethodGet, "/admin/payments/"+url.PathEscape(id), nil)
}

// Notifications

func (c *Client) ListNotifications(ctx context.Context, opts *ListOptions) (*stub.ListResponse[stub.NotificationResponse], error) {
	return list[stub.NotificationResponse](ctx, c, "/admin/notifications", opts)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/admin/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	response, err := call[stub.ReadAllResponse](ctx, c, http.MethodPost, "/admin/notifications/read-all", nil)
	if err != nil {
		return 0, err
	}
	return response.Updated, nil
}

// Audit, settings and security

func (c *Client) ListAuditLogs(ctx context.Context, opts *ListOptions) (*stub.ListResponse[stub.AuditLogResponse], error) {
	return list[stub.AuditLogResponse](ctx, c, "/admin/audit-logs", opts)
}

func (c *Client) ListSettings(ctx context.Context) ([]stub.SettingResponse, error) {
	var response []stub.SettingResponse
	if err := c.do(ctx, http.MethodGet, "/admin/settings", nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) SetSetting(ctx context.Context, key, value string) (*stub.SettingResponse, error) {
	return call[stub.SettingResponse](ctx, c, http.MethodPut, "/admin/settings/"+url.PathEscape(key), stub.SettingRequest{Value: value})
}

// ListSessions lists the caller's sessions; a super admin may pass another adminID
func (c *Client) ListSessions(ctx context.Context, adminID string) ([]stub.SessionResponse, error) {
	values := url.Values{}
	if adminID != "" {
		values.Set("admin_id", adminID)
	}

	var response []stub.SessionResponse
	if err := c.do(ctx, http.MethodGet, withQuery("/admin/security/sessions", values), nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) RevokeSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/security/sessions/"+url.PathEscape(id), nil, nil)
}

// Admin users

func (c *Client) ListAdminUsers(ctx context.Context, opts *ListOptions) (*stub.ListResponse[stub.AdminUserResponse], error) {
	return list[stub.AdminUserResponse](ctx, c, "/admin/admin-users", opts)
}

func (c *Client) CreateAdminUser(ctx context.Context, input *admins.CreateAdminInput) (*stub.AdminUserResponse, error) {
	return call[stub.AdminUserResponse](ctx, c, http.MethodPost, "/admin/admin-users", input)
}

func (c *Client) UpdateAdminUser(ctx context.Context, id string, input *admins.UpdateAdminInput) (*stub.AdminUserResponse, error) {
	return call[stub.AdminUserResponse](ctx, c, http.MethodPut, "/admin/admin-users/"+url.PathEscape(id), input)
}

// Media

func (c *Client) ListMedia(ctx context.Context, opts *ListOptions) (*stub.ListResponse[stub.MediaObjectResponse], error) {
	return list[stub.MediaObjectResponse](ctx, c, "/admin/media", opts)
}

func (c *Client) GetMedia(ctx context.Context, id string) (*stub.MediaObjectResponse, error) {
	return call[stub.MediaObjectResponse](ctx, c, http.MethodGet, "/admin/media/"+url.PathEscape(id), nil)
}

func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/media/"+url.PathEscape(id), nil, nil)
}
