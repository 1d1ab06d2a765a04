package admins

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
)

// Admin roles, from most to least privileged
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleViewer     = "viewer"
)

// AdminUser is an operator of the admin panel
type AdminUser struct {
	ID             string     `validate:"required,uuid4"`
	Email          string     `validate:"required,email,max=255"`
	FullName       string     `validate:"required,min=1,max=255"`
	PasswordHash   string     `validate:"required"`
	Role           string     `validate:"required,oneof=super_admin admin viewer"`
	IsActive       bool       `validate:"-"`
	FailedAttempts int        `validate:"gte=0"`
	LastLoginAt    *time.Time `validate:"omitempty"`
	CreatedAt      time.Time  `validate:"required"`
	UpdatedAt      time.Time  `validate:"required"`
}

// Validate for validating AdminUser struct
func (a *AdminUser) Validate() error {
	return common.ValidateStruct(a)
}

// CanWrite reports whether the role may mutate platform data
func CanWrite(role string) bool {
	return role == RoleSuperAdmin || role == RoleAdmin
}

// Session is one issued refresh token; its ID is the token's jti
type Session struct {
	ID        string
	AdminID   string
	UserAgent string
	IPAddress string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Active reports whether the session can still be refreshed at now
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Principal is the authenticated admin carried through a request
type Principal struct {
	AdminID string
	Email   string
	Role    string
}

// TokenPair is returned by login and refresh
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// ClientMeta describes the caller of a login
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

// CreateAdminInput creates an operator account
type CreateAdminInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=12,max=72"`
	Role     string `json:"role" validate:"required,oneof=super_admin admin viewer"`
}

// UpdateAdminInput is a partial operator update
type UpdateAdminInput struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Password *string `json:"password" validate:"omitempty,min=12,max=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=super_admin admin viewer"`
	IsActive *bool   `json:"is_active"`
}

// AdminQuery filters operator listings
type AdminQuery struct {
	common.Page
	Role string `validate:"omitempty,oneof=super_admin admin viewer"`
}

// NewAdminQuery creates an AdminQuery with default paging
func NewAdminQuery() *AdminQuery {
	return &AdminQuery{Page: common.NewPage()}
}

// Validate for validating AdminQuery struct
func (q *AdminQuery) Validate() error {
	if err := common.ValidateStruct(q); err != nil {
		return err
	}
	return q.Page.Validate("created_at", "email", "last_login_at")
}
