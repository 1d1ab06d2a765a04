package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures admin token issuing and login lockout
type AuthSettings struct {
	JWTSecret       string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer          string        `mapstructure:"issuer" validate:"required"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl" validate:"required"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl" validate:"required"`
	MaxFailedLogins int           `mapstructure:"max_failed_logins" validate:"required,min=1"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	if s.RefreshTokenTTL <= s.AccessTokenTTL {
		return fmt.Errorf("refresh token ttl must be longer than access token ttl")
	}

	return nil
}

// StripeSettings configures the Stripe webhook receiver
type StripeSettings struct {
	WebhookSecret string        `mapstructure:"webhook_secret" validate:"required"`
	Tolerance     time.Duration `mapstructure:"tolerance"`
}

// Validate checks that all fields in StripeSettings are valid
func (s *StripeSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StripeSettings: %w", err)
	}

	return nil
}
