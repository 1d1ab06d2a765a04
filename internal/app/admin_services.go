package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/google/uuid"
)

// adminService implements the AdminService interface
type adminService struct {
	adminRepository admins.AdminRepository
	logger          logger.Logger
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(adminRepository admins.AdminRepository, logger logger.Logger) (admins.AdminService, error) {
	return &adminService{
		adminRepository: adminRepository,
		logger:          logger,
	}, nil
}

// Create adds an active operator account
func (s *adminService) Create(ctx context.Context, input *admins.CreateAdminInput) (*admins.AdminUser, error) {
	if err := common.ValidateStruct(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	if _, err := s.adminRepository.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: an admin with email %s already exists", common.ErrConflict, email)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &admins.AdminUser{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.adminRepository.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return admin, nil
}

// List returns a page of operators and the total matching the filters
func (s *adminService) List(ctx context.Context, query *admins.AdminQuery) ([]*admins.AdminUser, int64, error) {
	return s.adminRepository.List(ctx, query)
}

// GetByID retrieves an operator by ID
func (s *adminService) GetByID(ctx context.Context, adminID string) (*admins.AdminUser, error) {
	return s.adminRepository.GetByID(ctx, adminID)
}

// Update changes role, name, active flag or password. Setting a password or
// reactivating the account clears the failed login counter.
func (s *adminService) Update(ctx context.Context, adminID string, input *admins.UpdateAdminInput) (*admins.AdminUser, error) {
	if err := common.ValidateStruct(input); err != nil {
		return nil, err
	}

	admin, err := s.adminRepository.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		admin.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Role != nil {
		admin.Role = *input.Role
	}
	if input.IsActive != nil {
		if *input.IsActive && !admin.IsActive {
			admin.FailedAttempts = 0
		}
		admin.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
		admin.FailedAttempts = 0
	}
	admin.UpdatedAt = time.Now().UTC()

	if err := s.adminRepository.Update(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to update admin user: %w", err)
	}

	s.logger.Info("Updated admin user", "id", admin.ID, "role", admin.Role, "active", admin.IsActive)
	return admin, nil
}
