package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"serviceboard/config"
	"serviceboard/database"
	bookingRepo "serviceboard/database/repository/booking"
	serviceRepo "serviceboard/database/repository/service"
	"serviceboard/handlers"
	"serviceboard/middleware"
	"serviceboard/routes"
	"serviceboard/services/booking"
	"serviceboard/services/catalog"
	"serviceboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const healthCheckInterval = 30 * time.Second

// serviceboard serve: run the HTTP server until SIGINT or SIGTERM.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck
		zap.ReplaceGlobals(logger)

		return serve(cfg, logger)
	},
}

func serve(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Error("serve: failed to close store", zap.Error(err))
		}
	}()
	if err := store.EnsureIndexes(ctx); err != nil {
		return err
	}
	logger.Info("serve: connected to MongoDB", zap.String("database", cfg.DatabaseName))

	var (
		revoker   utils.TokenRevoker = utils.NoopTokenRevoker{}
		redisPing utils.PingFunc
	)
	if cfg.RevocationEnabled() {
		client, err := utils.NewAuthCacheClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisAuthDB)
		if err != nil {
			return err
		}
		defer client.Close()
		revoker = utils.NewRedisTokenRevoker(client)
		redisPing = pingRedis(client)
		logger.Info("serve: token revocation enabled", zap.String("redis", cfg.RedisAddr))
	} else {
		logger.Warn("serve: REDIS_ADDR not set, logout will not revoke tokens")
	}

	monitor := utils.NewHealthMonitor(store.Ping, redisPing, healthCheckInterval)
	monitor.Start(ctx)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewHTTPMetrics(registry)

	// repositories.
	services := serviceRepo.NewMongoServiceRepo(store.Database, cfg.StoreTimeout)
	bookings := bookingRepo.NewMongoBookingRepo(store.Database, cfg.StoreTimeout)

	handlerBundle := handlers.NewHandlerBundle(handlers.Deps{
		Catalog:    catalog.NewDefaultCatalogService(services),
		Bookings:   booking.NewDefaultBookingService(bookings),
		Tokens:     utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL),
		Revoker:    revoker,
		Health:     monitor,
		Gatherer:   registry,
		CookieName: cfg.CookieName,
		Production: cfg.IsProduction(),
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(metrics.Middleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	if err := routes.RegisterRoutes(router, handlerBundle); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server failed to start: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("serve: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("serve: server stopped gracefully")
	return nil
}

func pingRedis(client *redis.Client) utils.PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
