package v1

import (
	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
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
)

const tokenTypeBearer = "Bearer"

func newTokenResponse(pair *admins.TokenPair) stub.TokenResponse {
	return stub.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(pair.ExpiresIn.Seconds()),
	}
}

func newAdminUserResponse(admin *admins.AdminUser) stub.AdminUserResponse {
	return stub.AdminUserResponse{
		ID:          admin.ID,
		Email:       admin.Email,
		FullName:    admin.FullName,
		Role:        admin.Role,
		IsActive:    admin.IsActive,
		LastLoginAt: admin.LastLoginAt,
		CreatedAt:   admin.CreatedAt,
	}
}

func newSessionResponse(session *admins.Session) stub.SessionResponse {
	return stub.SessionResponse{
		ID:        session.ID,
		AdminID:   session.AdminID,
		UserAgent: session.UserAgent,
		IPAddress: session.IPAddress,
		ExpiresAt: session.ExpiresAt,
		RevokedAt: session.RevokedAt,
		CreatedAt: session.CreatedAt,
	}
}

func newUserResponse(user *users.User) stub.UserResponse {
	return stub.UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		FullName:         user.FullName,
		Company:          user.Company,
		Phone:            user.Phone,
		SubscriptionTier: user.SubscriptionTier,
		Status:           user.Status,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

func newReportResponse(report *reports.FMVReport) stub.ReportResponse {
	return stub.ReportResponse{
		ID:                  report.ID,
		UserID:              report.UserID,
		ReportType:          report.ReportType,
		CraneMake:           report.CraneMake,
		CraneModel:          report.CraneModel,
		CraneYear:           report.CraneYear,
		Hours:               report.Hours,
		CapacityTons:        report.CapacityTons,
		Location:            report.Location,
		Status:              report.Status,
		AmountCents:         report.AmountCents,
		Currency:            report.Currency,
		EstimatedValueCents: report.EstimatedValueCents,
		ReportURL:           report.ReportURL,
		Notes:               report.Notes,
		CreatedAt:           report.CreatedAt,
		UpdatedAt:           report.UpdatedAt,
		DeliveredAt:         report.DeliveredAt,
	}
}

func newConsultationResponse(request *consultations.Request) stub.ConsultationResponse {
	return stub.ConsultationResponse{
		ID:             request.ID,
		Name:           request.Name,
		Email:          request.Email,
		Company:        request.Company,
		Phone:          request.Phone,
		Subject:        request.Subject,
		Message:        request.Message,
		PreferredDate:  request.PreferredDate,
		Status:         request.Status,
		AssignedTo:     request.AssignedTo,
		AdminNotes:     request.AdminNotes,
		ReminderSentAt: request.ReminderSentAt,
		CreatedAt:      request.CreatedAt,
		UpdatedAt:      request.UpdatedAt,
	}
}

func newPaymentResponse(payment *payments.Payment) stub.PaymentResponse {
	return stub.PaymentResponse{
		ID:                payment.ID,
		Provider:          payment.Provider,
		ProviderPaymentID: payment.ProviderPaymentID,
		UserID:            payment.UserID,
		ReportID:          payment.ReportID,
		AmountCents:       payment.AmountCents,
		RefundedCents:     payment.RefundedCents,
		Currency:          payment.Currency,
		Status:            payment.Status,
		FailureReason:     payment.FailureReason,
		CreatedAt:         payment.CreatedAt,
		UpdatedAt:         payment.UpdatedAt,
	}
}

func newNotificationResponse(notification *notifications.Notification) stub.NotificationResponse {
	return stub.NotificationResponse{
		ID:        notification.ID,
		Kind:      notification.Kind,
		Title:     notification.Title,
		Body:      notification.Body,
		Broadcast: notification.AdminID == nil,
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}
}

func newAuditLogResponse(entry *audit.Entry) stub.AuditLogResponse {
	return stub.AuditLogResponse{
		ID:         entry.ID,
		AdminID:    entry.AdminID,
		AdminEmail: entry.AdminEmail,
		Action:     entry.Action,
		Resource:   entry.Resource,
		StatusCode: entry.StatusCode,
		IPAddress:  entry.IPAddress,
		UserAgent:  entry.UserAgent,
		CreatedAt:  entry.CreatedAt,
	}
}

func newSettingResponse(setting *settings.Setting) stub.SettingResponse {
	return stub.SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedBy: setting.UpdatedBy,
		UpdatedAt: setting.UpdatedAt,
	}
}

func newMediaObjectResponse(object *media.Object) stub.MediaObjectResponse {
	return stub.MediaObjectResponse{
		ID:          object.ID,
		Category:    object.Category,
		FileName:    object.FileName,
		URL:         object.URL,
		Size:        object.Size,
		ContentType: object.ContentType,
		UploadedBy:  object.UploadedBy,
		CreatedAt:   object.CreatedAt,
	}
}

func newDashboardResponse(dashboard *analytics.Dashboard) stub.DashboardResponse {
	return stub.DashboardResponse{
		TotalUsers:          dashboard.TotalUsers,
		ActiveUsers:         dashboard.ActiveUsers,
		ReportsByStatus:     dashboard.ReportsByStatus,
		OpenConsultations:   dashboard.OpenConsultations,
		SucceededPayments:   dashboard.SucceededPayments,
		GrossRevenueCents:   dashboard.GrossRevenueCents,
		RefundedCents:       dashboard.RefundedCents,
		NetRevenueCents:     dashboard.NetRevenueCents,
		UnreadNotifications: dashboard.UnreadNotifications,
	}
}
