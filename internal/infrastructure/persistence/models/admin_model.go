package models

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
)

// AdminUserModel is the GORM model of admin panel operators
type AdminUserModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	Email          string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	FullName       string `gorm:"not null;type:varchar(255)"`
	PasswordHash   string `gorm:"not null;type:varchar(255)"`
	Role           string `gorm:"not null;type:varchar(20)"`
	IsActive       bool   `gorm:"not null;default:true"`
	FailedAttempts int    `gorm:"not null;default:0"`
	LastLoginAt    *time.Time
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AdminUserModel) TableName() string {
	return "admin_users"
}

// ToDomain converts GORM model to domain entity
func (m *AdminUserModel) ToDomain() *admins.AdminUser {
	return &admins.AdminUser{
		ID:             m.ID,
		Email:          m.Email,
		FullName:       m.FullName,
		PasswordHash:   m.PasswordHash,
		Role:           m.Role,
		IsActive:       m.IsActive,
		FailedAttempts: m.FailedAttempts,
		LastLoginAt:    m.LastLoginAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AdminUserModel) FromDomain(a *admins.AdminUser) {
	m.ID = a.ID
	m.Email = a.Email
	m.FullName = a.FullName
	m.PasswordHash = a.PasswordHash
	m.Role = a.Role
	m.IsActive = a.IsActive
	m.FailedAttempts = a.FailedAttempts
	m.LastLoginAt = a.LastLoginAt
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

// AdminSessionModel is the GORM model of refresh token sessions
type AdminSessionModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	AdminID   string    `gorm:"not null;index;type:uuid"`
	UserAgent string    `gorm:"type:varchar(512)"`
	IPAddress string    `gorm:"type:varchar(64)"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AdminSessionModel) TableName() string {
	return "admin_sessions"
}

// ToDomain converts GORM model to domain entity
func (m *AdminSessionModel) ToDomain() *admins.Session {
	return &admins.Session{
		ID:        m.ID,
		AdminID:   m.AdminID,
		UserAgent: m.UserAgent,
		IPAddress: m.IPAddress,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AdminSessionModel) FromDomain(s *admins.Session) {
	m.ID = s.ID
	m.AdminID = s.AdminID
	m.UserAgent = s.UserAgent
	m.IPAddress = s.IPAddress
	m.ExpiresAt = s.ExpiresAt
	m.RevokedAt = s.RevokedAt
	m.CreatedAt = s.CreatedAt
}
