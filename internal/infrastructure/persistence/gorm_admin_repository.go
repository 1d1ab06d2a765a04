package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/infrastructure/persistence/models"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAdminRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAdminRepository creates a new GORM-based AdminRepository implementation
func NewGormAdminRepository(db *gorm.DB, logger logger.Logger) (admins.AdminRepository, error) {
	return &gormAdminRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAdminRepository) Create(ctx context.Context, admin *admins.AdminUser) error {
	if err := admin.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AdminUserModel{}
	model.FromDomain(admin)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "failed to create admin user")
	}

	r.logger.Info("Created admin user", "id", admin.ID, "role", admin.Role)
	return nil
}

func (r *gormAdminRepository) List(ctx context.Context, query *admins.AdminQuery) ([]*admins.AdminUser, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.AdminUserModel{})
	if query.Role != "" {
		dbQuery = dbQuery.Where("role = ?", query.Role)
	}

	dbQuery, total, err := paginate(dbQuery, query.Page)
	if err != nil {
		return nil, 0, err
	}

	var modelList []*models.AdminUserModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch admin users: %w", err)
	}

	domainList := make([]*admins.AdminUser, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormAdminRepository) GetByID(ctx context.Context, adminID string) (*admins.AdminUser, error) {
	var model models.AdminUserModel
	if err := r.db.WithContext(ctx).Where("id = ?", adminID).First(&model).Error; err != nil {
		return nil, translate(err, "admin user with ID %s", adminID)
	}
	return model.ToDomain(), nil
}

func (r *gormAdminRepository) GetByEmail(ctx context.Context, email string) (*admins.AdminUser, error) {
	var model models.AdminUserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		return nil, translate(err, "admin user with email %s", email)
	}
	return model.ToDomain(), nil
}

func (r *gormAdminRepository) Update(ctx context.Context, admin *admins.AdminUser) error {
	if err := admin.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AdminUserModel{}
	model.FromDomain(admin)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translate(err, "failed to update admin user")
	}

	r.logger.Info("Updated admin user", "id", admin.ID)
	return nil
}

func (r *gormAdminRepository) IncrementFailedAttempts(ctx context.Context, adminID string, at time.Time) (int, error) {
	var attempts int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.AdminUserModel{}).
			Where("id = ?", adminID).
			Updates(map[string]interface{}{
				"failed_attempts": gorm.Expr("failed_attempts + 1"),
				"updated_at":      at,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to count failed login: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, "admin user with ID %s", adminID)
		}

		return tx.Model(&models.AdminUserModel{}).
			Where("id = ?", adminID).
			Pluck("failed_attempts", &attempts).Error
	})
	if err != nil {
		return 0, err
	}
	return attempts, nil
}

func (r *gormAdminRepository) RecordLogin(ctx context.Context, adminID string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.AdminUserModel{}).
		Where("id = ?", adminID).
		Updates(map[string]interface{}{
			"failed_attempts": 0,
			"last_login_at":   at,
			"updated_at":      at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to record login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "admin user with ID %s", adminID)
	}
	return nil
}

type gormSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB, logger logger.Logger) (admins.SessionRepository, error) {
	return &gormSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSessionRepository) Create(ctx context.Context, session *admins.Session) error {
	model := &models.AdminSessionModel{}
	model.FromDomain(session)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "failed to create session")
	}

	r.logger.Info("Created admin session", "id", session.ID, "admin_id", session.AdminID)
	return nil
}

func (r *gormSessionRepository) GetByID(ctx context.Context, sessionID string) (*admins.Session, error) {
	var model models.AdminSessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error; err != nil {
		return nil, translate(err, "session with ID %s", sessionID)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) ListByAdmin(ctx context.Context, adminID string) ([]*admins.Session, error) {
	var modelList []*models.AdminSessionModel
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	domainList := make([]*admins.Session, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSessionRepository) Revoke(ctx context.Context, sessionID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.AdminSessionModel{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", time.Now().UTC())
	if result.Error != nil {
		return fmt.Errorf("failed to revoke session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "active session with ID %s", sessionID)
	}

	r.logger.Info("Revoked admin session", "id", sessionID)
	return nil
}
