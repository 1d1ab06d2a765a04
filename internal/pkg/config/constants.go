package config

// Environment names
const (
	EnvironmentProduction  = "production"
	EnvironmentStaging     = "staging"
	EnvironmentDevelopment = "development"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Environment variables read by the services and deployment scripts
const (
	EnvSpacesKey           = "DO_SPACES_KEY"
	EnvSpacesSecret        = "DO_SPACES_SECRET"
	EnvSpacesRegion        = "DO_SPACES_REGION"
	EnvSpacesBucket        = "DO_SPACES_BUCKET"
	EnvSpacesCDNEndpoint   = "DO_SPACES_CDN_ENDPOINT"
	EnvEnvironment         = "ENVIRONMENT"
	EnvStripeWebhookSecret = "STRIPE_WEBHOOK_SECRET"
	EnvDatabaseDSN         = "DATABASE_DSN"
	EnvJWTSecret           = "JWT_SECRET"
)
