package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxUploadBytes caps a single uploaded file when no limit is configured
const DefaultMaxUploadBytes int64 = 50 << 20

// SpacesSettings holds DigitalOcean Spaces (S3 compatible) access settings
type SpacesSettings struct {
	Key            string `mapstructure:"key" validate:"required"`
	Secret         string `mapstructure:"secret" validate:"required"`
	Region         string `mapstructure:"region" validate:"required"`
	Bucket         string `mapstructure:"bucket" validate:"required"`
	Endpoint       string `mapstructure:"endpoint" validate:"omitempty,url"`
	CDNEndpoint    string `mapstructure:"cdn_endpoint" validate:"omitempty,url"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes" validate:"gte=0"`
}

// Validate checks that all fields in SpacesSettings are valid
func (s *SpacesSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SpacesSettings: %w", err)
	}

	return nil
}

// ResolvedEndpoint returns the S3 API endpoint of the configured region
func (s *SpacesSettings) ResolvedEndpoint() string {
	if s.Endpoint != "" {
		return strings.TrimRight(s.Endpoint, "/")
	}
	return fmt.Sprintf("https://%s.digitaloceanspaces.com", s.Region)
}

// ResolvedCDNEndpoint returns the public base URL objects are served from
func (s *SpacesSettings) ResolvedCDNEndpoint() string {
	if s.CDNEndpoint != "" {
		return strings.TrimRight(s.CDNEndpoint, "/")
	}
	return fmt.Sprintf("https://%s.%s.cdn.digitaloceanspaces.com", s.Bucket, s.Region)
}

// UploadLimit returns the effective per-file upload limit in bytes
func (s *SpacesSettings) UploadLimit() int64 {
	if s.MaxUploadBytes <= 0 {
		return DefaultMaxUploadBytes
	}
	return s.MaxUploadBytes
}
