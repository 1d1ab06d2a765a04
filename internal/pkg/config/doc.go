// Package config loads and validates the settings of the Crane Intelligence
// services and ops tooling.
//
// Settings come from a YAML file read through viper, overridden by
// environment variables (optionally seeded from a .env file). The
// DigitalOcean Spaces, Stripe and database variables used by the
// deployment scripts are bound explicitly so existing environments keep
// working without a config file change.
package config
