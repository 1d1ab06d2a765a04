package models

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/settings"
)

// SettingModel is the GORM model of platform settings
type SettingModel struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)"`
	Value     string    `gorm:"type:text"`
	UpdatedBy string    `gorm:"type:varchar(255)"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SettingModel) TableName() string {
	return "platform_settings"
}

// ToDomain converts GORM model to domain entity
func (m *SettingModel) ToDomain() *settings.Setting {
	return &settings.Setting{
		Key:       m.Key,
		Value:     m.Value,
		UpdatedBy: m.UpdatedBy,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SettingModel) FromDomain(s *settings.Setting) {
	m.Key = s.Key
	m.Value = s.Value
	m.UpdatedBy = s.UpdatedBy
	m.UpdatedAt = s.UpdatedAt
}
