package models

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
)

// ConsultationModel is the GORM model of consultation requests. No foreign keys.
type ConsultationModel struct {
	ID             string     `gorm:"primaryKey;type:uuid"`
	Name           string     `gorm:"not null;type:varchar(255)"`
	Email          string     `gorm:"not null;index;type:varchar(255)"`
	Company        string     `gorm:"type:varchar(255)"`
	Phone          string     `gorm:"type:varchar(50)"`
	Subject        string     `gorm:"not null;type:varchar(255)"`
	Message        string     `gorm:"not null;type:text"`
	PreferredDate  *time.Time `gorm:"index"`
	Status         string     `gorm:"not null;index;type:varchar(20)"`
	AssignedTo     *string    `gorm:"type:uuid;index"`
	AdminNotes     string     `gorm:"type:text"`
	ReminderSentAt *time.Time
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ConsultationModel) TableName() string {
	return "consultation_requests"
}

// ToDomain converts GORM model to domain entity
func (m *ConsultationModel) ToDomain() *consultations.Request {
	return &consultations.Request{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Company:        m.Company,
		Phone:          m.Phone,
		Subject:        m.Subject,
		Message:        m.Message,
		PreferredDate:  m.PreferredDate,
		Status:         m.Status,
		AssignedTo:     m.AssignedTo,
		AdminNotes:     m.AdminNotes,
		ReminderSentAt: m.ReminderSentAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ConsultationModel) FromDomain(r *consultations.Request) {
	m.ID = r.ID
	m.Name = r.Name
	m.Email = r.Email
	m.Company = r.Company
	m.Phone = r.Phone
	m.Subject = r.Subject
	m.Message = r.Message
	m.PreferredDate = r.PreferredDate
	m.Status = r.Status
	m.AssignedTo = r.AssignedTo
	m.AdminNotes = r.AdminNotes
	m.ReminderSentAt = r.ReminderSentAt
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}
