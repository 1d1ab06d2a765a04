package persistence

import (
	"context"
	"fmt"

	"github.com/craneintel/crane-intelligence/internal/domain/media"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence/models"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormObjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormObjectRepository creates a new GORM-based ObjectRepository implementation
func NewGormObjectRepository(db *gorm.DB, logger logger.Logger) (media.ObjectRepository, error) {
	return &gormObjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormObjectRepository) Create(ctx context.Context, object *media.Object) error {
	if err := object.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MediaObjectModel{}
	model.FromDomain(object)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "failed to create media object")
	}

	r.logger.Info("Created media object metadata", "id", object.ID, "key", object.ObjectKey)
	return nil
}

func (r *gormObjectRepository) List(ctx context.Context, query *media.ObjectQuery) ([]*media.Object, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.MediaObjectModel{})

	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}
	if query.FileName != "" {
		dbQuery = dbQuery.Where("file_name LIKE ?", "%"+query.FileName+"%")
	}

	dbQuery, total, err := paginate(dbQuery, query.Page)
	if err != nil {
		return nil, 0, err
	}

	var modelList []*models.MediaObjectModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch media objects: %w", err)
	}

	domainList := make([]*media.Object, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormObjectRepository) GetByID(ctx context.Context, objectID string) (*media.Object, error) {
	var model models.MediaObjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", objectID).First(&model).Error; err != nil {
		return nil, translate(err, "media object with ID %s", objectID)
	}
	return model.ToDomain(), nil
}

func (r *gormObjectRepository) DeleteByID(ctx context.Context, objectID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", objectID).Delete(&models.MediaObjectModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete media object: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "media object with ID %s", objectID)
	}

	r.logger.Info("Deleted media object metadata", "id", objectID)
	return nil
}
