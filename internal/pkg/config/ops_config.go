package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ComposeTarget describes where the database of one deployment environment runs
type ComposeTarget struct {
	ComposeFile    string `mapstructure:"compose_file" validate:"required"`
	DBService      string `mapstructure:"db_service" validate:"required"`
	BackendService string `mapstructure:"backend_service"`
	DBUser         string `mapstructure:"db_user" validate:"required"`
	DBName         string `mapstructure:"db_name" validate:"required"`
	HealthURL      string `mapstructure:"health_url" validate:"omitempty,url"`
}

// OpsConfig holds the settings of the operational CLI
type OpsConfig struct {
	BackupDir           string                   `mapstructure:"backup_dir" validate:"required"`
	ProductionHostnames []string                 `mapstructure:"production_hostnames"`
	Environments        map[string]ComposeTarget `mapstructure:"environments" validate:"required,min=1,dive"`
	APIBaseURL          string                   `mapstructure:"api_base_url" validate:"omitempty,url"`
	CredentialsFile     string                   `mapstructure:"credentials_file"`
}

// Validate checks that all fields in OpsConfig are valid
func (c *OpsConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for OpsConfig: %w", err)
	}

	return nil
}

// Target returns the compose target of the named environment
func (c *OpsConfig) Target(env string) (ComposeTarget, error) {
	target, ok := c.Environments[env]
	if !ok {
		return ComposeTarget{}, fmt.Errorf("unknown environment %q", env)
	}
	return target, nil
}

// IsProductionHost reports whether hostname belongs to the production fleet
func (c *OpsConfig) IsProductionHost(hostname string) bool {
	for _, h := range c.ProductionHostnames {
		if strings.EqualFold(strings.TrimSpace(h), hostname) {
			return true
		}
	}
	return false
}

// InitializeOpsConfig reads the ops CLI configuration from path
func InitializeOpsConfig(path string) (*OpsConfig, error) {
	loadDotEnv()

	v := newViper()
	v.SetDefault("backup_dir", "backups")
	v.SetDefault("api_base_url", "http://localhost:8003")

	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("credentials_file", home+"/.crane-intel/credentials.json")
	}

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	var cfg OpsConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ops config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
