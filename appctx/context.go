// Package appctx builds the state shared by every invocation of the handler.
//
// An AppContext is created once per process (per Lambda cold start) and then
// reused for each request: it owns the database handle and the credential
// pairs fetched from the secret store.
package appctx

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/blogem/lead-api/config"
	"github.com/blogem/lead-api/database"
	"github.com/blogem/lead-api/models"
	"github.com/blogem/lead-api/repositories"
	"github.com/blogem/lead-api/secrets"
	"github.com/blogem/lead-api/services"
)

// AppContext holds the process-lifetime dependencies
type AppContext struct {
	Config         *config.Config
	Logger         zerolog.Logger
	DB             *sqlx.DB
	APICredentials models.Credentials
	RDSCredentials models.Credentials
	Repositories   *repositories.Repositories
	Services       *services.Services
}

// New fetches the credential pairs, opens the database and wires the
// repositories and services. Any failure aborts initialization.
func New(ctx context.Context, cfg *config.Config, store secrets.Store, logger zerolog.Logger) (*AppContext, error) {
	app := &AppContext{
		Config: cfg,
		Logger: logger,
	}

	apiCreds, err := store.GetCredentials(ctx, cfg.APISecretName)
	if err != nil {
		return nil, fmt.Errorf("failed to get API credentials: %w", err)
	}
	app.APICredentials = apiCreds

	// SQLite files carry no credentials
	if cfg.DBDriver == config.DriverMySQL {
		rdsCreds, err := store.GetCredentials(ctx, cfg.RDSSecretName)
		if err != nil {
			return nil, fmt.Errorf("failed to get database credentials: %w", err)
		}
		app.RDSCredentials = rdsCreds
	}

	db, err := database.Open(database.Options{
		Driver:   cfg.DBDriver,
		Host:     cfg.RDSHost,
		Port:     cfg.RDSPort,
		Name:     cfg.RDSDatabase,
		Username: app.RDSCredentials.Username,
		Password: app.RDSCredentials.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.RunMigrations {
		if err := database.RunMigrations(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info().Msg("Database migrations applied")
	}

	app.Repositories = repositories.NewRepositories(db, logger)
	app.Services = services.NewServices(app.Repositories, apiCreds, logger)

	logger.Info().
		Str("db_driver", cfg.DBDriver).
		Str("database", cfg.RDSDatabase).
		Msg("Application context initialized")

	return app, nil
}

// Close releases the database handle
func (a *AppContext) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
