package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/grupocrm/crm-system/docs"
	"github.com/grupocrm/crm-system/internal/api"
	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/service"
	"github.com/grupocrm/crm-system/internal/infrastructure/db/mongo"
	"github.com/grupocrm/crm-system/internal/infrastructure/db/redis"
	"github.com/grupocrm/crm-system/internal/infrastructure/queue"
	"github.com/grupocrm/crm-system/internal/pkg/config"
	"github.com/grupocrm/crm-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title CRM System API
// @version 1.0
// @description Multi-tenant CRM backend: authentication, customers, contacts, opportunities, tasks and dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "crm-api",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	roleRepo := mongo.NewRoleRepository(db)
	customerRepo := mongo.NewCustomerRepository(db)
	contactRepo := mongo.NewContactRepository(db)
	opportunityRepo := mongo.NewOpportunityRepository(db)
	taskRepo := mongo.NewTaskRepository(db)
	activityRepo := mongo.NewActivityRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":         userRepo.EnsureIndexes,
		"roles":         roleRepo.EnsureIndexes,
		"customers":     customerRepo.EnsureIndexes,
		"contacts":      contactRepo.EnsureIndexes,
		"opportunities": opportunityRepo.EnsureIndexes,
		"tasks":         taskRepo.EnsureIndexes,
		"activities":    activityRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	if cfg.SeedRoles {
		if err := roleRepo.Seed(ctx, domain.RoleUser, domain.RoleAdmin); err != nil {
			log.Fatal().Err(err).Msg("role seeding failed")
		}
	}
	// The default role must exist before the first registration: failing
	// here beats failing on every signup.
	if _, err := roleRepo.FindByName(ctx, cfg.DefaultRole); err != nil {
		log.Fatal().Err(err).Str("role", cfg.DefaultRole).Msg("default role is not provisioned")
	}

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTClockSkew)
	authService := service.NewAuthService(userRepo, roleRepo, tokenService, cfg.DefaultRole)

	activityService := service.NewActivityService(activityRepo)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)
	dispatcher.Start(ctx)

	customerService := service.NewCustomerService(customerRepo, dispatcher, log)
	contactService := service.NewContactService(contactRepo, customerRepo, dispatcher, log)
	opportunityService := service.NewOpportunityService(opportunityRepo, customerRepo, dispatcher, log)
	taskService := service.NewTaskService(taskRepo, dispatcher, log)

	dashboardCache := redis.NewDashboardCache(redisClient, log)
	dashboardService := service.NewDashboardService(opportunityRepo, taskRepo, customerRepo, dashboardCache, log)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Auth:           authService,
		Tokens:         tokenService,
		Customers:      customerService,
		Contacts:       contactService,
		Opportunities:  opportunityService,
		Tasks:          taskService,
		Dashboard:      dashboardService,
		Activities:     activityService,
		Mongo:          db,
		Redis:          redisClient,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("crm api listening")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("crm api stopped")
}
