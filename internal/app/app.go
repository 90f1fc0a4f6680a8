package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"unijobs_backend/internal/config"
	"unijobs_backend/internal/email"
	"unijobs_backend/internal/handlers"
	"unijobs_backend/internal/logger"
	"unijobs_backend/internal/middleware"
	"unijobs_backend/internal/repositories"
	"unijobs_backend/internal/routes"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/store"
	"unijobs_backend/internal/validator"
	"unijobs_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	dataStore := store.New(ResumeTemplateCatalog)
	if cfg.Mock.Seed {
		if err := SeedStore(dataStore); err != nil {
			logger.Fatal("Failed to seed store", "error", err)
		}
	}

	ginRouter := SetupRouter(cfg, dataStore)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, dataStore)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает gin.Engine поверх готового хранилища.
// Вынесен отдельно, чтобы интеграционные тесты могли поднять
// роутер на собственной фикстуре.
func SetupRouter(cfg *config.Config, dataStore *store.Store) *gin.Engine {
	serviceContainer := initializeServices(cfg, dataStore)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, dataStore *store.Store) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Provider == "smtp" {
		emailService = email.NewSMTPProvider(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		emailService = &MockEmailProvider{}
		logger.Info("Email provider: mock (emails are collected in memory)")
	}

	accountRepo := repositories.NewAccountRepository(dataStore)
	resetTokenRepo := repositories.NewResetTokenRepository(dataStore)
	profileRepo := repositories.NewProfileRepository(dataStore)
	jobRepo := repositories.NewJobRepository(dataStore)

	latency := services.NewLatencySimulator(cfg.Mock.LatencyMinMS, cfg.Mock.LatencyMaxMS)

	authService := services.NewAuthService(accountRepo, resetTokenRepo, emailService, nil, latency)
	profileService := services.NewProfileService(profileRepo, latency)
	jobService := services.NewJobService(jobRepo, latency)

	return &services.ServiceContainer{
		AuthService:    authService,
		ProfileService: profileService,
		JobService:     jobService,
		EmailService:   emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, services.ProfileService),
		JobHandler:     handlers.NewJobHandler(baseHandler, services.JobService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func startWorkers(ctx context.Context, dataStore *store.Store) {
	resetTokenRepo := repositories.NewResetTokenRepository(dataStore)

	tokenWorker := workers.NewTokenWorker(resetTokenRepo, 0)
	tokenWorker.Start(ctx)
	logger.Info("Token worker started")
}
