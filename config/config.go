// Package config loads the process configuration from the environment.
//
// Values come from the process environment (optionally seeded from a `.env`
// file), are mapped onto Config by koanf and validated with
// go-playground/validator before anything else starts.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment when present.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Supported database drivers
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Supported secret providers
const (
	SecretsProviderAWS = "aws"
	SecretsProviderEnv = "env"
)

// Config is the root configuration object.
// Env var names are the lower-cased koanf keys, e.g. RDS_HOST -> rds_host.
type Config struct {
	Environment string `koanf:"environment" validate:"required,oneof=dev prod"`
	LogLevel    string `koanf:"log_level" validate:"required"`

	DBDriver      string `koanf:"db_driver" validate:"required,oneof=mysql sqlite3"`
	RDSHost       string `koanf:"rds_host" validate:"required_if=DBDriver mysql"`
	RDSPort       int    `koanf:"rds_port" validate:"required_if=DBDriver mysql"`
	RDSDatabase   string `koanf:"rds_database" validate:"required"`
	RunMigrations bool   `koanf:"run_migrations"`

	SecretsProvider string `koanf:"secrets_provider" validate:"required,oneof=aws env"`
	RDSSecretName   string `koanf:"rds_secret_name"`
	APISecretName   string `koanf:"api_secret_name" validate:"required"`

	LocalAPIUsername string `koanf:"local_api_username" validate:"required_if=SecretsProvider env"`
	LocalAPIPassword string `koanf:"local_api_password" validate:"required_if=SecretsProvider env"`
	LocalRDSUsername string `koanf:"local_rds_username"`
	LocalRDSPassword string `koanf:"local_rds_password"`

	Port string `koanf:"port" validate:"required"`

	// Set by the Lambda runtime; empty when running locally
	LambdaRuntimeAPI string `koanf:"aws_lambda_runtime_api"`
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		Environment:     "dev",
		LogLevel:        "info",
		DBDriver:        DriverMySQL,
		RDSPort:         3306,
		SecretsProvider: SecretsProviderAWS,
		Port:            "8080",
	}
}

// Load reads the environment, applies defaults and validates the result
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct tags and the cross-field rules tags cannot express
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.SecretsProvider == SecretsProviderAWS && c.DBDriver == DriverMySQL && c.RDSSecretName == "" {
		return fmt.Errorf("config validation failed: rds_secret_name is required when reading MySQL credentials from AWS")
	}

	if c.RunMigrations && c.DBDriver != DriverSQLite {
		return fmt.Errorf("config validation failed: run_migrations is only supported with %s", DriverSQLite)
	}

	return nil
}

// InLambda returns true when running inside the AWS Lambda runtime
func (c *Config) InLambda() bool {
	return c.LambdaRuntimeAPI != ""
}

// IsDevelopment returns true for the dev deployment environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev"
}
