package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RestConfig holds the settings of the REST API service
type RestConfig struct {
	Port           string           `mapstructure:"port" validate:"required"`
	Environment    string           `mapstructure:"environment" validate:"required,oneof=production staging development"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	Database       DatabaseSettings `mapstructure:"database"`
	Logger         LoggerSettings   `mapstructure:"logger"`
	Spaces         SpacesSettings   `mapstructure:"spaces"`
	Stripe         StripeSettings   `mapstructure:"stripe"`
	Auth           AuthSettings     `mapstructure:"auth"`
}

// Validate checks the RestConfig and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(struct {
		Port        string `validate:"required"`
		Environment string `validate:"required,oneof=production staging development"`
	}{c.Port, c.Environment}); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Spaces.Validate(); err != nil {
		return err
	}
	if err := c.Stripe.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// IsProduction reports whether the service runs against production resources
func (c *RestConfig) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// InitializeRestConfig reads the REST service configuration from path.
// A missing file is tolerated as long as the environment supplies every required value.
func InitializeRestConfig(path string) (*RestConfig, error) {
	loadDotEnv()

	v := newViper()
	setRestDefaults(v)
	if err := bindRestEnv(v); err != nil {
		return nil, err
	}

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadDotEnv() {
	// .env is optional; deployments inject the environment directly
	_ = godotenv.Load()
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("CRANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8003")
	v.SetDefault("environment", EnvironmentDevelopment)
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("database.type", PostgresDbType)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.max_size", DefaultLogMaxSizeMB)
	v.SetDefault("logger.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logger.max_age", DefaultLogMaxAgeDays)
	v.SetDefault("logger.compress", true)
	v.SetDefault("spaces.region", "nyc3")
	v.SetDefault("spaces.max_upload_bytes", DefaultMaxUploadBytes)
	v.SetDefault("stripe.tolerance", 300*time.Second)
	v.SetDefault("auth.issuer", "crane-intelligence")
	v.SetDefault("auth.access_token_ttl", 15*time.Minute)
	v.SetDefault("auth.refresh_token_ttl", 7*24*time.Hour)
	v.SetDefault("auth.max_failed_logins", 5)
}

func bindRestEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"environment":           EnvEnvironment,
		"database.dsn":          EnvDatabaseDSN,
		"spaces.key":            EnvSpacesKey,
		"spaces.secret":         EnvSpacesSecret,
		"spaces.region":         EnvSpacesRegion,
		"spaces.bucket":         EnvSpacesBucket,
		"spaces.cdn_endpoint":   EnvSpacesCDNEndpoint,
		"stripe.webhook_secret": EnvStripeWebhookSecret,
		"auth.jwt_secret":       EnvJWTSecret,
	}

	for key, env := range bindings {
		// the prefixed CRANE_* name keeps priority over the legacy variable
		if err := v.BindEnv(key, "CRANE_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	return nil
}
