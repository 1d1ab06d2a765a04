package analytics

import "context"

// Dashboard holds the headline figures of the admin overview screen
type Dashboard struct {
	TotalUsers          int64
	ActiveUsers         int64
	ReportsByStatus     map[string]int64
	OpenConsultations   int64
	SucceededPayments   int64
	GrossRevenueCents   int64
	RefundedCents       int64
	NetRevenueCents     int64
	UnreadNotifications int64
}

// AnalyticsService computes dashboard figures for one operator
type AnalyticsService interface {
	Dashboard(ctx context.Context, adminID string) (*Dashboard, error)
}
