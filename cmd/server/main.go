package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"registry7/internal/registry/config"
	"registry7/internal/registry/handler"
	"registry7/internal/registry/model"
	"registry7/internal/registry/observability"
	"registry7/internal/registry/repository"
	"registry7/internal/registry/router"
	"registry7/internal/registry/service"
	"registry7/internal/registry/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const serviceVersion = "1.0.0"

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		util.InitLogger("info")
		util.GetLogger().Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init Logger
	util.InitLogger(cfg.LogLevel)
	logger := util.GetLogger()

	// 3. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	// 4. Init Telemetry
	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		telemetry, err := observability.NewTelemetry(observability.ServiceName, serviceVersion)
		if err != nil {
			logger.Error("Failed to initialize telemetry", "error", err)
			os.Exit(1)
		}
		metrics = telemetry.Metrics
		defer func() {
			if err := telemetry.Shutdown(context.Background()); err != nil {
				logger.Warn("Failed to shut down telemetry", "error", err)
			}
		}()
	}

	// 5. Init Layers
	db := client.Database(cfg.DBName)
	systems := repository.NewMongoRepository[model.System](db, cfg.Collections.Systems)
	vendors := repository.NewMongoRepository[model.Vendor](db, cfg.Collections.Vendors)
	categories := repository.NewMongoRepository[model.AssetCategory](db, cfg.Collections.AssetCategories)

	// Ensure the unique name indexes backing the conflict checks.
	indexed := map[string]interface {
		EnsureIndexes(ctx context.Context) error
	}{
		cfg.Collections.Systems:         systems,
		cfg.Collections.Vendors:         vendors,
		cfg.Collections.AssetCategories: categories,
	}
	for name, repo := range indexed {
		if err := repo.EnsureIndexes(context.Background()); err != nil {
			logger.Warn("Failed to ensure indexes", "collection", name, "error", err)
		}
	}

	var recorder service.OperationRecorder
	if metrics != nil {
		recorder = metrics
	}
	svc := service.NewService(systems, vendors, categories, recorder)
	h := handler.NewRegistryHandler(svc)

	// 6. Init Echo & Routes
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

	router.RegisterRoutes(e, h, metrics)

	// 7. Start Server with Graceful Shutdown
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

	ctx, cancel = context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
