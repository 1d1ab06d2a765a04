package settings

import (
	"context"
	"time"
)

// Known platform settings
const (
	KeyMaintenanceMode   = "maintenance_mode"
	KeySupportEmail      = "support_email"
	KeyReportTurnaround  = "report_turnaround_days"
	KeyConsultationEmail = "consultation_notification_email"
)

// Setting is one key/value platform setting
type Setting struct {
	Key       string `validate:"required,min=1,max=100"`
	Value     string `validate:"max=5000"`
	UpdatedBy string
	UpdatedAt time.Time
}

// SettingsService reads and writes platform settings
type SettingsService interface {
	List(ctx context.Context) ([]*Setting, error)
	Get(ctx context.Context, key string) (*Setting, error)
	Set(ctx context.Context, key, value, updatedBy string) (*Setting, error)
}

// SettingsRepository defines the persistence operations for settings
type SettingsRepository interface {
	List(ctx context.Context) ([]*Setting, error)
	Get(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, setting *Setting) error
}
