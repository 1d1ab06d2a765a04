package models

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/users"
)

// UserModel is the GORM model of platform users
type UserModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	Email            string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	FullName         string    `gorm:"not null;type:varchar(255)"`
	Company          string    `gorm:"type:varchar(255)"`
	Phone            string    `gorm:"type:varchar(50)"`
	SubscriptionTier string    `gorm:"not null;type:varchar(20)"`
	Status           string    `gorm:"not null;index;type:varchar(20)"`
	CreatedAt        time.Time `gorm:"not null;index"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:               m.ID,
		Email:            m.Email,
		FullName:         m.FullName,
		Company:          m.Company,
		Phone:            m.Phone,
		SubscriptionTier: m.SubscriptionTier,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.FullName = u.FullName
	m.Company = u.Company
	m.Phone = u.Phone
	m.SubscriptionTier = u.SubscriptionTier
	m.Status = u.Status
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
