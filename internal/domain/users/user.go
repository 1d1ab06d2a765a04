package users

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
)

// Subscription tiers
const (
	TierFree       = "free"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// Account statuses. Deleting a user only moves it to StatusDeleted.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusDeleted   = "deleted"
)

// User is a customer account of the valuation platform
type User struct {
	ID               string    `validate:"required,uuid4"`
	Email            string    `validate:"required,email,max=255"`
	FullName         string    `validate:"required,min=1,max=255"`
	Company          string    `validate:"max=255"`
	Phone            string    `validate:"max=50"`
	SubscriptionTier string    `validate:"required,oneof=free pro enterprise"`
	Status           string    `validate:"required,oneof=active suspended deleted"`
	CreatedAt        time.Time `validate:"required"`
	UpdatedAt        time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	return common.ValidateStruct(u)
}

// UserQuery filters user listings
type UserQuery struct {
	common.Page
	Email            string
	Status           string `validate:"omitempty,oneof=active suspended deleted"`
	SubscriptionTier string `validate:"omitempty,oneof=free pro enterprise"`
	Search           string `validate:"max=255"`
}

// NewUserQuery creates a UserQuery with default paging
func NewUserQuery() *UserQuery {
	return &UserQuery{Page: common.NewPage()}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	if err := common.ValidateStruct(q); err != nil {
		return err
	}
	return q.Page.Validate("created_at", "updated_at", "email", "full_name")
}

// CreateUserInput carries the fields an operator sets when creating a user
type CreateUserInput struct {
	Email            string `json:"email" validate:"required,email,max=255"`
	FullName         string `json:"full_name" validate:"required,min=1,max=255"`
	Company          string `json:"company" validate:"max=255"`
	Phone            string `json:"phone" validate:"max=50"`
	SubscriptionTier string `json:"subscription_tier" validate:"omitempty,oneof=free pro enterprise"`
}

// UpdateUserInput carries a partial user update; nil fields are left unchanged
type UpdateUserInput struct {
	FullName         *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Company          *string `json:"company" validate:"omitempty,max=255"`
	Phone            *string `json:"phone" validate:"omitempty,max=50"`
	SubscriptionTier *string `json:"subscription_tier" validate:"omitempty,oneof=free pro enterprise"`
	Status           *string `json:"status" validate:"omitempty,oneof=active suspended deleted"`
}

// Apply copies the set fields of in onto u
func (in *UpdateUserInput) Apply(u *User) {
	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.Company != nil {
		u.Company = *in.Company
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.SubscriptionTier != nil {
		u.SubscriptionTier = *in.SubscriptionTier
	}
	if in.Status != nil {
		u.Status = *in.Status
	}
}
