package v1

import (
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
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Services are the application services the routes delegate to
type Services struct {
	Users         users.UserService
	Reports       reports.ReportService
	Consultations consultations.ConsultationService
	Payments      payments.PaymentService
	Webhooks      payments.WebhookService
	Notifications notifications.NotificationService
	Auth          admins.AuthService
	Admins        admins.AdminService
	Audit         audit.AuditService
	Uploads       media.UploadService
	Settings      settings.SettingsService
	Analytics     analytics.AnalyticsService
}

// RouteOptions configures the non-service parts of the routes
type RouteOptions struct {
	Environment string
	Health      HealthCheck
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, options RouteOptions, log logger.Logger) {
	v1 := r.Group(BasePath, ErrorLogger(log))

	healthHandler := NewHealthHandler(options.Environment, options.Health)
	consultationHandler := NewConsultationHandler(services.Consultations)
	reportHandler := NewReportHandler(services.Reports)
	mediaHandler := NewMediaHandler(services.Uploads)
	webhookHandler := NewWebhookHandler(services.Webhooks)

	// Public routes
	v1.GET("/health", healthHandler.Health)
	v1.POST("/consultations", consultationHandler.Submit)
	v1.POST("/fmv-reports", reportHandler.Submit)
	v1.POST("/uploads/:category", mediaHandler.Upload)
	v1.POST("/payment-webhooks/stripe", webhookHandler.Stripe)

	// Admin authentication
	authHandler := NewAuthHandler(services.Auth)
	admin := v1.Group("/admin")
	admin.POST("/auth/login", authHandler.Login)
	admin.POST("/auth/refresh", authHandler.Refresh)
	admin.POST("/auth/logout", authHandler.Logout)

	secured := admin.Group("", Authenticate(services.Auth), Audit(services.Audit))
	write := RequireWrite()
	superAdmin := RequireRole(admins.RoleSuperAdmin)

	secured.GET("/auth/me", authHandler.Me)

	// Users Routes
	userHandler := NewUserHandler(services.Users)
	secured.GET("/users", userHandler.List)
	secured.GET("/users/:id", userHandler.GetByID)
	secured.POST("/users", write, userHandler.Create)
	secured.PUT("/users/:id", write, userHandler.Update)
	secured.DELETE("/users/:id", write, userHandler.DeleteByID)

	// FMV Reports Routes
	secured.GET("/fmv-reports", reportHandler.List)
	secured.GET("/fmv-reports/:id", reportHandler.GetByID)
	secured.PUT("/fmv-reports/:id", write, reportHandler.Update)
	secured.PATCH("/fmv-reports/:id/status", write, reportHandler.UpdateStatus)
	secured.DELETE("/fmv-reports/:id", write, reportHandler.DeleteByID)

	// Consultations Routes
	secured.GET("/consultations", consultationHandler.List)
	secured.GET("/consultations/:id", consultationHandler.GetByID)
	secured.PUT("/consultations/:id", write, consultationHandler.Update)
	secured.DELETE("/consultations/:id", write, consultationHandler.DeleteByID)

	// Payments Routes
	paymentHandler := NewPaymentHandler(services.Payments)
	secured.GET("/payments", paymentHandler.List)
	secured.GET("/payments/:id", paymentHandler.GetByID)

	// Notifications Routes
	notificationHandler := NewNotificationHandler(services.Notifications)
	secured.GET("/notifications", notificationHandler.List)
	secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	secured.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	// Audit Routes
	auditHandler := NewAuditHandler(services.Audit)
	secured.GET("/audit-logs", auditHandler.List)

	// Settings Routes
	settingsHandler := NewSettingsHandler(services.Settings)
	secured.GET("/settings", settingsHandler.List)
	secured.PUT("/settings/:key", superAdmin, settingsHandler.Set)

	// Security Routes
	secured.GET("/security/sessions", authHandler.ListSessions)
	secured.DELETE("/security/sessions/:id", authHandler.RevokeSession)

	// Admin Users Routes
	adminUserHandler := NewAdminUserHandler(services.Admins)
	secured.GET("/admin-users", superAdmin, adminUserHandler.List)
	secured.POST("/admin-users", superAdmin, adminUserHandler.Create)
	secured.PUT("/admin-users/:id", superAdmin, adminUserHandler.Update)

	// Analytics Routes
	analyticsHandler := NewAnalyticsHandler(services.Analytics)
	secured.GET("/analytics/dashboard", analyticsHandler.Dashboard)

	// Media Routes
	secured.GET("/media", mediaHandler.List)
	secured.GET("/media/:id", mediaHandler.GetByID)
	secured.DELETE("/media/:id", write, mediaHandler.DeleteByID)
}
