package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"mockapi/internal/app"
	"mockapi/internal/config"
	"mockapi/internal/handler"
	"mockapi/internal/logging"
	internalRedis "mockapi/internal/redis"
	"mockapi/internal/repository/postgres"
	"mockapi/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()
	logger := logging.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	gin.SetMode(cfg.Server.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.Warn("failed to initialize New Relic", "error", err)
		} else {
			logger.Info("New Relic enabled", "app", cfg.NewRelic.AppName)
		}
	}

	// The database is only needed by the postgres payment store.
	var db *sql.DB
	if cfg.Store.Payments == config.StorePostgres {
		db, err = app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("connected to PostgreSQL", "host", cfg.Database.Host, "db", cfg.Database.DBName)

		if cfg.Database.Migrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				logger.Error("failed to migrate database", "error", err)
				os.Exit(1)
			}
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled || cfg.Store.Payments == config.StoreRedis {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		logger.Info("connected to Redis", "addr", cfg.Redis.Addr)
	}

	server, err := wireServer(db, redisClient, nrApp, cfg, logger)
	if err != nil {
		logger.Error("failed to wire server", "error", err)
		os.Exit(1)
	}

	// Start server in goroutine.
	go func() {
		logger.Info("starting server", "port", cfg.Server.Port, "payment_store", cfg.Store.Payments)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	logger.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, logger *slog.Logger) (*http.Server, error) {
	location := loadLocation(cfg.Simulation.Timezone, logger)
	rnd := service.NewRandom(cfg.Simulation.Seed)
	clock := service.SystemClock{}

	// Initialize stores.
	paymentRepo, err := app.NewPaymentRepository(cfg.Store.Payments, db, redisClient, cfg.Store.PaymentTTL)
	if err != nil {
		return nil, err
	}

	var responseCache internalRedis.ResponseCacheInterface
	if redisClient != nil {
		responseCache = internalRedis.NewResponseCache(redisClient)
	}

	// Initialize services.
	paymentCfg := service.PaymentConfig{
		BaseURL:  cfg.Server.PublicBaseURL,
		Currency: cfg.Simulation.Currency,
	}
	payFastService := service.NewPayFastService(paymentRepo, rnd, clock, paymentCfg, logger)
	ozowService := service.NewOzowService(paymentRepo, rnd, clock, paymentCfg, logger)
	stageTracker := service.NewStageTracker(rnd, clock, logger)
	loadSheddingService := service.NewLoadSheddingService(stageTracker, rnd, clock, location, logger)
	transportService := service.NewTransportService(
		service.DefaultVehicleClasses(),
		service.DefaultSurgeConfig(),
		rnd, clock, location, logger,
	)
	weatherService := service.NewWeatherService(rnd, clock, logger)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		PayFastHandler:      handler.NewPayFastHandler(payFastService),
		OzowHandler:         handler.NewOzowHandler(ozowService),
		LoadSheddingHandler: handler.NewLoadSheddingHandler(loadSheddingService),
		TransportHandler:    handler.NewTransportHandler(transportService, cfg.Simulation.CurrencySymbol),
		WeatherHandler:      handler.NewWeatherHandler(weatherService, location),
		ResponseCache:       responseCache,
		NewRelicApp:         nrApp,
		Logger:              logger,
		SimulatedLatency:    cfg.Simulation.Latency,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, nil
}

// loadLocation falls back to a fixed UTC+2 zone when tzdata is unavailable.
func loadLocation(name string, logger *slog.Logger) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("timezone unavailable, using fixed UTC+2", "timezone", name, "error", err)
		return time.FixedZone("SAST", 2*60*60)
	}
	return loc
}
