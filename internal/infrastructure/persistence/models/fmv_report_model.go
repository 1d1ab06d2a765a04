package models

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/reports"
)

// FMVReportModel is the GORM model of FMV reports
type FMVReportModel struct {
	ID                  string  `gorm:"primaryKey;type:uuid"`
	UserID              string  `gorm:"not null;index;type:uuid"`
	ReportType          string  `gorm:"not null;type:varchar(30)"`
	CraneMake           string  `gorm:"not null;type:varchar(100)"`
	CraneModel          string  `gorm:"not null;type:varchar(100)"`
	CraneYear           int     `gorm:"not null"`
	Hours               int     `gorm:"not null;default:0"`
	CapacityTons        float64 `gorm:"not null;default:0"`
	Location            string  `gorm:"type:varchar(255)"`
	Status              string  `gorm:"not null;index;type:varchar(30)"`
	AmountCents         int64   `gorm:"not null"`
	Currency            string  `gorm:"not null;type:varchar(3)"`
	EstimatedValueCents *int64
	ReportURL           *string   `gorm:"type:varchar(1024)"`
	Notes               string    `gorm:"type:text"`
	CreatedAt           time.Time `gorm:"not null;index"`
	UpdatedAt           time.Time `gorm:"not null"`
	DeliveredAt         *time.Time
}

// TableName specifies the table name for GORM
func (FMVReportModel) TableName() string {
	return "fmv_reports"
}

// ToDomain converts GORM model to domain entity
func (m *FMVReportModel) ToDomain() *reports.FMVReport {
	return &reports.FMVReport{
		ID:                  m.ID,
		UserID:              m.UserID,
		ReportType:          m.ReportType,
		CraneMake:           m.CraneMake,
		CraneModel:          m.CraneModel,
		CraneYear:           m.CraneYear,
		Hours:               m.Hours,
		CapacityTons:        m.CapacityTons,
		Location:            m.Location,
		Status:              m.Status,
		AmountCents:         m.AmountCents,
		Currency:            m.Currency,
		EstimatedValueCents: m.EstimatedValueCents,
		ReportURL:           m.ReportURL,
		Notes:               m.Notes,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		DeliveredAt:         m.DeliveredAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FMVReportModel) FromDomain(r *reports.FMVReport) {
	m.ID = r.ID
	m.UserID = r.UserID
	m.ReportType = r.ReportType
	m.CraneMake = r.CraneMake
	m.CraneModel = r.CraneModel
	m.CraneYear = r.CraneYear
	m.Hours = r.Hours
	m.CapacityTons = r.CapacityTons
	m.Location = r.Location
	m.Status = r.Status
	m.AmountCents = r.AmountCents
	m.Currency = r.Currency
	m.EstimatedValueCents = r.EstimatedValueCents
	m.ReportURL = r.ReportURL
	m.Notes = r.Notes
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
	m.DeliveredAt = r.DeliveredAt
}
