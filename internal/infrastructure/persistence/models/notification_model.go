package models

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
)

// NotificationModel is the GORM model of admin notifications
type NotificationModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	AdminID   *string `gorm:"type:uuid;index"`
	Kind      string  `gorm:"not null;type:varchar(20)"`
	Title     string  `gorm:"not null;type:varchar(255)"`
	Body      string  `gorm:"type:text"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationModel) ToDomain() *notifications.Notification {
	return &notifications.Notification{
		ID:        m.ID,
		AdminID:   m.AdminID,
		Kind:      m.Kind,
		Title:     m.Title,
		Body:      m.Body,
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationModel) FromDomain(n *notifications.Notification) {
	m.ID = n.ID
	m.AdminID = n.AdminID
	m.Kind = n.Kind
	m.Title = n.Title
	m.Body = n.Body
	m.ReadAt = n.ReadAt
	m.CreatedAt = n.CreatedAt
}
