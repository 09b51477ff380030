package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/woundtrack/backend/internal/api/http"
	"github.com/woundtrack/backend/internal/cache"
	"github.com/woundtrack/backend/internal/config"
	"github.com/woundtrack/backend/internal/db"
	"github.com/woundtrack/backend/internal/queue/asynqserver"
	queueClient "github.com/woundtrack/backend/internal/queue/client"
	"github.com/woundtrack/backend/internal/repository"
	"github.com/woundtrack/backend/internal/server"
	"github.com/woundtrack/backend/internal/service"
	"github.com/woundtrack/backend/internal/service/places"
	"github.com/woundtrack/backend/internal/storage"
	"github.com/woundtrack/backend/internal/worker"
	"github.com/woundtrack/backend/pkg/auth"
	"github.com/woundtrack/backend/pkg/email/smtp"
	"github.com/woundtrack/backend/pkg/hash"
	"github.com/woundtrack/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.Setup(cfg.Env)
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("starting backend api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	// Init redis, shared by the code issuer and the task queue
	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("error when closing redis", zap.Error(err))
		}
	}()
	appLogger.Info("redis connection done")

	hasher := hash.NewBcryptHasher(0)

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Error("auth manager creation err", zap.Error(err))
		return
	}

	storageClient := storage.NewClient(cfg.Storage)
	placesClient := places.NewClient(cfg.Places)

	dispatcher := queueClient.NewDispatcher(asynqserver.RedisOptions(cfg.Cache))
	defer func() {
		if err := dispatcher.Close(); err != nil {
			appLogger.Error("error when closing queue client", zap.Error(err))
		}
	}()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL, redisClient)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		Repos:        repos,
		Storage:      storageClient,
		Places:       placesClient,
		Dispatcher:   dispatcher,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// Background queue for verification-code emails
	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})
	queueSrv, queueMux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := queueSrv.Run(queueMux); err != nil {
			appLogger.Error("error occurred while running queue server", zap.Error(err))
		}
	}()

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	queueSrv.Shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
