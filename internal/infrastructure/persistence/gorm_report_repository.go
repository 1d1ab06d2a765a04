package persistence

import (
	"context"
	"fmt"

	"github.com/craneintel/crane-intelligence/internal/domain/reports"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence/models"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormReportRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReportRepository creates a new GORM-based ReportRepository implementation
func NewGormReportRepository(db *gorm.DB, logger logger.Logger) (reports.ReportRepository, error) {
	return &gormReportRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReportRepository) Create(ctx context.Context, report *reports.FMVReport) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.FMVReportModel{}
	model.FromDomain(report)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "failed to create report")
	}

	r.logger.Info("Created FMV report", "id", report.ID, "type", report.ReportType)
	return nil
}

func (r *gormReportRepository) List(ctx context.Context, query *reports.ReportQuery) ([]*reports.FMVReport, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.FMVReportModel{})

	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.ReportType != "" {
		dbQuery = dbQuery.Where("report_type = ?", query.ReportType)
	}
	if query.CraneMake != "" {
		dbQuery = dbQuery.Where("crane_make LIKE ?", "%"+query.CraneMake+"%")
	}

	dbQuery, total, err := paginate(dbQuery, query.Page)
	if err != nil {
		return nil, 0, err
	}

	var modelList []*models.FMVReportModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reports: %w", err)
	}

	domainList := make([]*reports.FMVReport, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormReportRepository) GetByID(ctx context.Context, reportID string) (*reports.FMVReport, error) {
	var model models.FMVReportModel
	if err := r.db.WithContext(ctx).Where("id = ?", reportID).First(&model).Error; err != nil {
		return nil, translate(err, "report with ID %s", reportID)
	}
	return model.ToDomain(), nil
}

func (r *gormReportRepository) Update(ctx context.Context, report *reports.FMVReport) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.FMVReportModel{}
	model.FromDomain(report)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translate(err, "failed to update report")
	}

	r.logger.Info("Updated FMV report", "id", report.ID, "status", report.Status)
	return nil
}

func (r *gormReportRepository) DeleteByID(ctx context.Context, reportID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", reportID).Delete(&models.FMVReportModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "report with ID %s", reportID)
	}

	r.logger.Info("Deleted FMV report", "id", reportID)
	return nil
}

func (r *gormReportRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.FMVReportModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
