package persistence

import (
	"context"
	"fmt"

	"github.com/craneintel/crane-intelligence/internal/domain/audit"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence/models"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAuditRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuditRepository creates a new GORM-based AuditRepository implementation
func NewGormAuditRepository(db *gorm.DB, logger logger.Logger) (audit.AuditRepository, error) {
	return &gormAuditRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuditRepository) Create(ctx context.Context, entry *audit.Entry) error {
	model := &models.AuditLogModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

func (r *gormAuditRepository) List(ctx context.Context, query *audit.EntryQuery) ([]*audit.Entry, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.AuditLogModel{})

	if query.AdminID != "" {
		dbQuery = dbQuery.Where("admin_id = ?", query.AdminID)
	}
	if query.Action != "" {
		dbQuery = dbQuery.Where("action = ?", query.Action)
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.Since)
	}

	dbQuery, total, err := paginate(dbQuery, query.Page)
	if err != nil {
		return nil, 0, err
	}

	var modelList []*models.AuditLogModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit entries: %w", err)
	}

	domainList := make([]*audit.Entry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}
