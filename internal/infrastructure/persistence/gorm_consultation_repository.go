package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence/models"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"gorm.io/gorm"
)

var openConsultationStatuses = []string{
	consultations.StatusNew,
	consultations.StatusContacted,
	consultations.StatusScheduled,
}

type gormConsultationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormConsultationRepository creates a new GORM-based ConsultationRepository implementation
func NewGormConsultationRepository(db *gorm.DB, logger logger.Logger) (consultations.ConsultationRepository, error) {
	return &gormConsultationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormConsultationRepository) Create(ctx context.Context, request *consultations.Request) error {
	if err := request.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ConsultationModel{}
	model.FromDomain(request)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "failed to create consultation request")
	}

	r.logger.Info("Created consultation request", "id", request.ID)
	return nil
}

func (r *gormConsultationRepository) List(ctx context.Context, query *consultations.ConsultationQuery) ([]*consultations.Request, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ConsultationModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.AssignedTo != "" {
		dbQuery = dbQuery.Where("assigned_to = ?", query.AssignedTo)
	}
	if query.Email != "" {
		dbQuery = dbQuery.Where("email = ?", query.Email)
	}

	dbQuery, total, err := paginate(dbQuery, query.Page)
	if err != nil {
		return nil, 0, err
	}

	var modelList []*models.ConsultationModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch consultation requests: %w", err)
	}

	return toConsultations(modelList), total, nil
}

func (r *gormConsultationRepository) GetByID(ctx context.Context, requestID string) (*consultations.Request, error) {
	var model models.ConsultationModel
	if err := r.db.WithContext(ctx).Where("id = ?", requestID).First(&model).Error; err != nil {
		return nil, translate(err, "consultation request with ID %s", requestID)
	}
	return model.ToDomain(), nil
}

func (r *gormConsultationRepository) Update(ctx context.Context, request *consultations.Request) error {
	if err := request.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ConsultationModel{}
	model.FromDomain(request)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translate(err, "failed to update consultation request")
	}

	r.logger.Info("Updated consultation request", "id", request.ID, "status", request.Status)
	return nil
}

func (r *gormConsultationRepository) DeleteByID(ctx context.Context, requestID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", requestID).Delete(&models.ConsultationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete consultation request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "consultation request with ID %s", requestID)
	}

	r.logger.Info("Deleted consultation request", "id", requestID)
	return nil
}

func (r *gormConsultationRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ConsultationModel{}).
		Where("status IN ?", openConsultationStatuses).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count open consultations: %w", err)
	}
	return count, nil
}

func (r *gormConsultationRepository) DueForReminder(ctx context.Context, from, to time.Time) ([]*consultations.Request, error) {
	var modelList []*models.ConsultationModel
	err := r.db.WithContext(ctx).
		Where("status = ?", consultations.StatusScheduled).
		Where("reminder_sent_at IS NULL").
		Where("preferred_date >= ? AND preferred_date <= ?", from, to).
		Order("preferred_date asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consultations due for reminder: %w", err)
	}
	return toConsultations(modelList), nil
}

func toConsultations(modelList []*models.ConsultationModel) []*consultations.Request {
	domainList := make([]*consultations.Request, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
