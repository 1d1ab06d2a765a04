package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/domain/users"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/google/uuid"
)

// reportService implements the ReportService interface
type reportService struct {
	reportRepository    reports.ReportRepository
	userRepository      users.UserRepository
	notificationService notifications.NotificationService
	logger              logger.Logger
}

// NewReportService creates a new instance of ReportService
func NewReportService(
	reportRepository reports.ReportRepository,
	userRepository users.UserRepository,
	notificationService notifications.NotificationService,
	logger logger.Logger,
) (reports.ReportService, error) {
	return &reportService{
		reportRepository:    reportRepository,
		userRepository:      userRepository,
		notificationService: notificationService,
		logger:              logger,
	}, nil
}

// Submit records an order for an existing, non-deleted user priced from the report type
func (s *reportService) Submit(ctx context.Context, input *reports.SubmitReportInput) (*reports.FMVReport, error) {
	if err := common.ValidateStruct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user.Status == users.StatusDeleted {
		return nil, fmt.Errorf("user with ID %s: %w", input.UserID, common.ErrNotFound)
	}

	price, err := reports.PriceFor(input.ReportType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	report := &reports.FMVReport{
		ID:           uuid.NewString(),
		UserID:       input.UserID,
		ReportType:   input.ReportType,
		CraneMake:    strings.TrimSpace(input.CraneMake),
		CraneModel:   strings.TrimSpace(input.CraneModel),
		CraneYear:    input.CraneYear,
		Hours:        input.Hours,
		CapacityTons: input.CapacityTons,
		Location:     strings.TrimSpace(input.Location),
		Status:       reports.StatusPendingPayment,
		AmountCents:  price,
		Currency:     reports.DefaultCurrency,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.reportRepository.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	notify(ctx, s.notificationService, s.logger, notifications.KindReport,
		"New FMV report request",
		fmt.Sprintf("%s %s %d (%s) for %s", report.CraneMake, report.CraneModel, report.CraneYear, report.ReportType, user.Email))

	return report, nil
}

// List returns a page of reports and the total matching the filters
func (s *reportService) List(ctx context.Context, query *reports.ReportQuery) ([]*reports.FMVReport, int64, error) {
	return s.reportRepository.List(ctx, query)
}

// GetByID retrieves a report by ID
func (s *reportService) GetByID(ctx context.Context, reportID string) (*reports.FMVReport, error) {
	return s.reportRepository.GetByID(ctx, reportID)
}

// Update applies an operator's partial update
func (s *reportService) Update(ctx context.Context, reportID string, input *reports.UpdateReportInput) (*reports.FMVReport, error) {
	if err := common.ValidateStruct(input); err != nil {
		return nil, err
	}

	report, err := s.reportRepository.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	input.Apply(report)
	report.UpdatedAt = time.Now().UTC()

	if err := s.reportRepository.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return report, nil
}

// UpdateStatus moves the report along its lifecycle
func (s *reportService) UpdateStatus(ctx context.Context, reportID, status string) (*reports.FMVReport, error) {
	report, err := s.reportRepository.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	previous := report.Status
	if err := report.TransitionTo(status, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.reportRepository.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to update report status: %w", err)
	}

	s.logger.Info("Report status changed", "id", reportID, "from", previous, "to", status)
	return report, nil
}

// DeleteByID deletes a report by ID
func (s *reportService) DeleteByID(ctx context.Context, reportID string) error {
	return s.reportRepository.DeleteByID(ctx, reportID)
}
