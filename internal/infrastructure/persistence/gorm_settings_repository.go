package persistence

import (
	"context"
	"fmt"

	"github.com/craneintel/crane-intelligence/internal/domain/settings"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence/models"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSettingsRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSettingsRepository creates a new GORM-based SettingsRepository implementation
func NewGormSettingsRepository(db *gorm.DB, logger logger.Logger) (settings.SettingsRepository, error) {
	return &gormSettingsRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSettingsRepository) List(ctx context.Context) ([]*settings.Setting, error) {
	var modelList []*models.SettingModel
	if err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	domainList := make([]*settings.Setting, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSettingsRepository) Get(ctx context.Context, key string) (*settings.Setting, error) {
	var model models.SettingModel
	if err := r.db.WithContext(ctx).Where(&models.SettingModel{Key: key}).First(&model).Error; err != nil {
		return nil, translate(err, "setting %s", key)
	}
	return model.ToDomain(), nil
}

func (r *gormSettingsRepository) Upsert(ctx context.Context, setting *settings.Setting) error {
	model := &models.SettingModel{}
	model.FromDomain(setting)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save setting %s: %w", setting.Key, err)
	}

	r.logger.Info("Saved platform setting", "key", setting.Key, "updated_by", setting.UpdatedBy)
	return nil
}
