package models

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/audit"
)

// AuditLogModel is the GORM model of admin audit entries
type AuditLogModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	AdminID    string    `gorm:"index;type:varchar(64)"`
	AdminEmail string    `gorm:"type:varchar(255)"`
	Action     string    `gorm:"not null;index;type:varchar(10)"`
	Resource   string    `gorm:"not null;type:varchar(1024)"`
	StatusCode int       `gorm:"not null"`
	IPAddress  string    `gorm:"type:varchar(64)"`
	UserAgent  string    `gorm:"type:varchar(512)"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToDomain converts GORM model to domain entity
func (m *AuditLogModel) ToDomain() *audit.Entry {
	return &audit.Entry{
		ID:         m.ID,
		AdminID:    m.AdminID,
		AdminEmail: m.AdminEmail,
		Action:     m.Action,
		Resource:   m.Resource,
		StatusCode: m.StatusCode,
		IPAddress:  m.IPAddress,
		UserAgent:  m.UserAgent,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuditLogModel) FromDomain(e *audit.Entry) {
	m.ID = e.ID
	m.AdminID = e.AdminID
	m.AdminEmail = e.AdminEmail
	m.Action = e.Action
	m.Resource = e.Resource
	m.StatusCode = e.StatusCode
	m.IPAddress = e.IPAddress
	m.UserAgent = e.UserAgent
	m.CreatedAt = e.CreatedAt
}
