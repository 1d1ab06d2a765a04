package models

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/payments"
)

// PaymentModel is the GORM model of payments
type PaymentModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	Provider          string    `gorm:"not null;type:varchar(20)"`
	ProviderPaymentID string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	UserID            *string   `gorm:"type:uuid;index"`
	ReportID          *string   `gorm:"type:uuid;index"`
	AmountCents       int64     `gorm:"not null"`
	RefundedCents     int64     `gorm:"not null;default:0"`
	Currency          string    `gorm:"not null;type:varchar(3)"`
	Status            string    `gorm:"not null;index;type:varchar(20)"`
	FailureReason     string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts GORM model to domain entity
func (m *PaymentModel) ToDomain() *payments.Payment {
	return &payments.Payment{
		ID:                m.ID,
		Provider:          m.Provider,
		ProviderPaymentID: m.ProviderPaymentID,
		UserID:            m.UserID,
		ReportID:          m.ReportID,
		AmountCents:       m.AmountCents,
		RefundedCents:     m.RefundedCents,
		Currency:          m.Currency,
		Status:            m.Status,
		FailureReason:     m.FailureReason,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentModel) FromDomain(p *payments.Payment) {
	m.ID = p.ID
	m.Provider = p.Provider
	m.ProviderPaymentID = p.ProviderPaymentID
	m.UserID = p.UserID
	m.ReportID = p.ReportID
	m.AmountCents = p.AmountCents
	m.RefundedCents = p.RefundedCents
	m.Currency = p.Currency
	m.Status = p.Status
	m.FailureReason = p.FailureReason
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// WebhookEventModel is the GORM model of received webhook events
type WebhookEventModel struct {
	ID         string    `gorm:"primaryKey;type:varchar(255)"`
	Provider   string    `gorm:"not null;type:varchar(20)"`
	Type       string    `gorm:"not null;index;type:varchar(100)"`
	Status     string    `gorm:"not null;type:varchar(20)"`
	Error      string    `gorm:"type:text"`
	ReceivedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}

// ToDomain converts GORM model to domain entity
func (m *WebhookEventModel) ToDomain() *payments.WebhookEvent {
	return &payments.WebhookEvent{
		ID:         m.ID,
		Provider:   m.Provider,
		Type:       m.Type,
		Status:     m.Status,
		Error:      m.Error,
		ReceivedAt: m.ReceivedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WebhookEventModel) FromDomain(e *payments.WebhookEvent) {
	m.ID = e.ID
	m.Provider = e.Provider
	m.Type = e.Type
	m.Status = e.Status
	m.Error = e.Error
	m.ReceivedAt = e.ReceivedAt
}
