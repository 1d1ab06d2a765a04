package reports

import "context"

// ReportService defines FMV report ordering and fulfilment
type ReportService interface {
	// Submit records a customer's order priced from the report type.
	Submit(ctx context.Context, input *SubmitReportInput) (*FMVReport, error)
	List(ctx context.Context, query *ReportQuery) ([]*FMVReport, int64, error)
	GetByID(ctx context.Context, reportID string) (*FMVReport, error)
	Update(ctx context.Context, reportID string, input *UpdateReportInput) (*FMVReport, error)
	UpdateStatus(ctx context.Context, reportID, status string) (*FMVReport, error)
	DeleteByID(ctx context.Context, reportID string) error
}

// ReportRepository defines the persistence operations for FMV reports
type ReportRepository interface {
	Create(ctx context.Context, report *FMVReport) error
	List(ctx context.Context, query *ReportQuery) ([]*FMVReport, int64, error)
	GetByID(ctx context.Context, reportID string) (*FMVReport, error)
	Update(ctx context.Context, report *FMVReport) error
	DeleteByID(ctx context.Context, reportID string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
