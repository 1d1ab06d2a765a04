package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/users"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/google/uuid"
)

// userService implements the UserService interface
type userService struct {
	userRepository users.UserRepository
	logger         logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepository users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}, nil
}

// Create registers a customer account; emails are unique and compared lower-cased.
func (s *userService) Create(ctx context.Context, input *users.CreateUserInput) (*users.User, error) {
	if err := common.ValidateStruct(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	if _, err := s.userRepository.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: a user with email %s already exists", common.ErrConflict, email)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	tier := input.SubscriptionTier
	if tier == "" {
		tier = users.TierFree
	}

	now := time.Now().UTC()
	user := &users.User{
		ID:               uuid.NewString(),
		Email:            email,
		FullName:         strings.TrimSpace(input.FullName),
		Company:          strings.TrimSpace(input.Company),
		Phone:            strings.TrimSpace(input.Phone),
		SubscriptionTier: tier,
		Status:           users.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// List returns a page of users and the total matching the filters
func (s *userService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	return s.userRepository.List(ctx, query)
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

// Update applies a partial update
func (s *userService) Update(ctx context.Context, userID string, input *users.UpdateUserInput) (*users.User, error) {
	if err := common.ValidateStruct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	input.Apply(user)
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteByID soft-deletes the user. Deleting twice reports ErrNotFound.
func (s *userService) DeleteByID(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Status == users.StatusDeleted {
		return fmt.Errorf("user with ID %s: %w", userID, common.ErrNotFound)
	}

	user.Status = users.StatusDeleted
	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepository.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("Soft-deleted user", "id", userID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
