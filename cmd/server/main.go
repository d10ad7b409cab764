package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "feedbackhub-backend/internal/api/http"
	"feedbackhub-backend/internal/config"
	"feedbackhub-backend/internal/logger"
	"feedbackhub-backend/internal/repository/postgres"
	"feedbackhub-backend/internal/security"
	"feedbackhub-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local .env, if present, feeds the config env overrides
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting FeedbackHub backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.SendGridAPIKey != "" {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Warn("SendGrid API key not configured, invitation emails disabled")
		emailSvc = service.NewNoopEmailService()
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, store.OrganizationRepository, tokenManager)
	orgSvc := service.NewOrganizationService(store.OrganizationRepository)
	inviteSvc := service.NewInvitationService(
		store.InvitationRepository,
		store.UserRepository,
		store.OrganizationRepository,
		emailSvc,
		tokenManager,
		cfg.Invitation.ExpiryHours,
	)
	userSvc := service.NewUserService(store.UserRepository, store.FeedbackRepository)
	feedbackSvc := service.NewFeedbackService(store.FeedbackRepository, store.UserRepository)

	// Assemble HTTP surface
	handlers := httpapi.NewHandlers(authSvc, orgSvc, inviteSvc, userSvc, feedbackSvc)
	router := httpapi.NewRouter(cfg, tokenManager, handlers)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
