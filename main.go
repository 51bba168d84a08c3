package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/blogem/lead-api/appctx"
	"github.com/blogem/lead-api/config"
	"github.com/blogem/lead-api/controllers"
	"github.com/blogem/lead-api/logger"
	leadmiddleware "github.com/blogem/lead-api/middleware"
	"github.com/blogem/lead-api/secrets"
)

func main() {
	bootLog := logger.Bootstrap()

	// Load configuration from the environment (and .env when present)
	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		Console:     cfg.IsDevelopment() && !cfg.InLambda(),
	})

	ctx := context.Background()

	store, err := secrets.NewStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize secret store")
	}

	// Built once per process and reused by every invocation
	app, err := appctx.New(ctx, cfg, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer app.Close()

	ctrl := controllers.NewControllers(app.Services, app.DB)

	if cfg.InLambda() {
		log.Info().Msg("Starting Lambda handler")
		lambda.Start(ctrl.Lambda.Handle)
		return
	}

	r := setupRouter(ctrl, log)

	log.Info().
		Str("port", cfg.Port).
		Str("db_driver", cfg.DBDriver).
		Str("database", cfg.RDSDatabase).
		Msg("Lead API starting in local mode")

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("HTTP server stopped")
	}
}

// setupRouter configures all routes for local mode
func setupRouter(ctrl *controllers.Controllers, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(leadmiddleware.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(leadmiddleware.Instrument)

	r.Get("/health", ctrl.Health.Check)
	r.Handle("/metrics", promhttp.Handler())

	// Lead lookups run one at a time, as they do inside Lambda
	r.Group(func(r chi.Router) {
		r.Use(leadmiddleware.SerializeInvocations)

		r.Get("/", ctrl.Lead.Lookup)
		r.Get("/leads", ctrl.Lead.Lookup)
	})

	return r
}
