package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/settings"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// valueRules constrain the values of known settings; other keys accept any text
var valueRules = map[string]string{
	settings.KeyMaintenanceMode:   "oneof=true false",
	settings.KeySupportEmail:      "email",
	settings.KeyReportTurnaround:  "number,min=1,max=3",
	settings.KeyConsultationEmail: "email",
}

// settingsService implements the SettingsService interface
type settingsService struct {
	settingsRepository settings.SettingsRepository
	validate           *validator.Validate
	logger             logger.Logger
}

// NewSettingsService creates a new instance of SettingsService
func NewSettingsService(settingsRepository settings.SettingsRepository, logger logger.Logger) (settings.SettingsService, error) {
	return &settingsService{
		settingsRepository: settingsRepository,
		validate:           validator.New(),
		logger:             logger,
	}, nil
}

// List returns every stored setting ordered by key
func (s *settingsService) List(ctx context.Context) ([]*settings.Setting, error) {
	return s.settingsRepository.List(ctx)
}

// Get returns one setting
func (s *settingsService) Get(ctx context.Context, key string) (*settings.Setting, error) {
	return s.settingsRepository.Get(ctx, key)
}

// Set validates and stores a setting value
func (s *settingsService) Set(ctx context.Context, key, value, updatedBy string) (*settings.Setting, error) {
	setting := &settings.Setting{
		Key:       strings.TrimSpace(key),
		Value:     strings.TrimSpace(value),
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now().UTC(),
	}
	if err := common.ValidateStruct(setting); err != nil {
		return nil, err
	}

	if rule, ok := valueRules[setting.Key]; ok {
		if err := s.validate.Var(setting.Value, rule); err != nil {
			return nil, fmt.Errorf("%w: invalid value for %s", common.ErrValidation, setting.Key)
		}
	}

	if err := s.settingsRepository.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}
