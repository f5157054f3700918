package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"wellnesscalendar/config"
	_ "wellnesscalendar/docs"
	authadapter "wellnesscalendar/internal/adapters/auth"
	emailadapter "wellnesscalendar/internal/adapters/email"
	gqldelivery "wellnesscalendar/internal/delivery/graphql"
	httpdelivery "wellnesscalendar/internal/delivery/http"
	"wellnesscalendar/internal/delivery/http/middleware"
	"wellnesscalendar/internal/repository/sqlite"
	"wellnesscalendar/internal/services"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// @title Wellness Calendar API
// @version 1.0
// @description Community wellness activity calendar with event registration.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("database ready", "path", cfg.DatabasePath)

	// Repositories
	eventRepo := sqlite.NewEventRepository(db)
	participantRepo := sqlite.NewParticipantRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	// Email
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	// Services
	registrationService := services.NewRegistrationService(eventRepo, participantRepo, emailService, logger)
	eventService := services.NewEventService(eventRepo)
	catalogService := services.NewCatalogService(
		sqlite.NewWellnessDimensionRepository(db),
		sqlite.NewHobbyRepository(db),
		sqlite.NewTagRepository(db),
		sqlite.NewLevelOfCareRepository(db),
		sqlite.NewFacilitatorRepository(db),
		sqlite.NewLocationRepository(db),
		sqlite.NewEventSeriesRepository(db),
	)
	authService := services.NewAuthService(
		userRepo,
		authadapter.NewBcryptHasher(12),
		authadapter.NewJWTIssuer(cfg.JWTSecret),
		cfg.TokenExpiry,
	)

	// GraphQL
	schema, err := gqldelivery.NewSchema(&gqldelivery.Resolver{
		Events:        eventService,
		Registrations: registrationService,
		Catalog:       catalogService,
		Version:       version,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to build schema", "error", err)
		os.Exit(1)
	}
	isDev := cfg.Environment != "production"
	graphqlHandler := gqldelivery.NewHandler(&schema, isDev)

	// HTTP
	verifier := authadapter.NewJWTVerifier(cfg.JWTSecret)
	resolveUser := middleware.ResolveUser(verifier, userRepo, isDev, logger)
	mux := httpdelivery.NewRouter(
		resolveUser(graphqlHandler),
		httpdelivery.NewAuthController(authService),
		httpdelivery.NewHealthController(version),
	)

	var handler http.Handler = mux
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		handler = middleware.CORS(strings.Split(origins, ","), handler)
	}
	handler = middleware.LoggingMiddleware(logger, handler)

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment, "version", version)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
