package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketcal/internal/marketcal/authz"
	"marketcal/internal/marketcal/config"
	"marketcal/internal/marketcal/handler"
	"marketcal/internal/marketcal/notify"
	"marketcal/internal/marketcal/repository"
	"marketcal/internal/marketcal/router"
	"marketcal/internal/marketcal/service"
	"marketcal/internal/marketcal/util"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 0. Init Logger
	util.InitLogger()
	logger := util.GetLogger()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	// 3. Init Layers
	db := client.Database(cfg.DBName)
	repo := repository.NewMongoRepository(db)

	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}
	if err := repo.EnsureHistoryIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure history indexes", "error", err)
	}

	// 4. Notification sink: queued through Redis when configured, otherwise
	// written to the store inline. Either way failures never block callers.
	var notifier notify.Notifier
	var taskNotifier *notify.TaskNotifier
	var worker *asynq.Server
	if cfg.RedisAddr != "" {
		taskNotifier = notify.NewTaskNotifier(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := taskNotifier.Ping(context.Background()); err != nil {
			logger.Error("Failed to reach Redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		notifier = taskNotifier

		var mux *asynq.ServeMux
		worker, mux = notify.NewWorker(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, repo)
		go func() {
			if err := worker.Run(mux); err != nil {
				logger.Error("Notification worker stopped", "error", err)
			}
		}()
		logger.Info("Notification queue enabled", "addr", cfg.RedisAddr)
	} else {
		notifier = notify.NewStoreNotifier(repo)
	}

	resolver := authz.NewResolver(repo)
	svc := service.NewService(repo, repo, repo, resolver, notifier)
	h := handler.NewCalendarHandler(svc)

	// 5. Init Echo & Routes
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h, []byte(cfg.JWTSecret))

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if worker != nil {
		worker.Shutdown()
	}
	if taskNotifier != nil {
		if err := taskNotifier.Close(); err != nil {
			logger.Error("Failed to close notifier", "error", err)
		}
	}

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
