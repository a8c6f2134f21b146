package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/cyberraf/giftyy-backend/api/routes"
	"github.com/cyberraf/giftyy-backend/internal/shipping"
	"github.com/cyberraf/giftyy-backend/internal/shippingconfig"
	"github.com/cyberraf/giftyy-backend/internal/vendors"
	"github.com/cyberraf/giftyy-backend/pkg/config"
	"github.com/cyberraf/giftyy-backend/pkg/db"
	"github.com/cyberraf/giftyy-backend/pkg/logger"
	"github.com/cyberraf/giftyy-backend/pkg/metrics"
	"github.com/cyberraf/giftyy-backend/pkg/migrate"
	"github.com/cyberraf/giftyy-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis is optional: without it the vendor name cache is skipped and
	// every lookup goes to Postgres.
	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, vendor name cache disabled")
	}

	shippingMetrics := metrics.NewShippingMetrics(prometheus.DefaultRegisterer)

	catalogRepo := shippingconfig.NewRepository(dbClient.DB())
	catalogService, err := shippingconfig.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create shipping catalog service", err)
		os.Exit(1)
	}

	var nameCache vendors.NameCache
	cacheEnabled := cfg.Shipping.VendorNameCacheEnabled && redisClient != nil
	if cacheEnabled {
		nameCache = redisClient
	}
	vendorRepo := vendors.NewRepository(dbClient.DB())
	vendorService, err := vendors.NewService(vendorRepo, nameCache, logg, vendors.Options{
		CacheTTL:     cfg.Shipping.VendorNameCacheTTL,
		CacheEnabled: cacheEnabled,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create vendor service", err)
		os.Exit(1)
	}

	shippingService, err := shipping.NewService(
		catalogRepo, catalogRepo, vendorService, logg, shippingMetrics,
		shipping.Options{
			DefaultCostCents:    cfg.Shipping.DefaultCostCents,
			FreeThresholdCents:  cfg.Shipping.FreeThresholdCents,
			VendorLookupTimeout: cfg.Shipping.VendorLookupTimeout,
			StoreName:           cfg.Shipping.DefaultStoreName,
		},
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create shipping service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	var redisPinger redis.Pinger
	if redisClient != nil {
		redisPinger = redisClient
	}
	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, dbClient, redisPinger,
			shippingService, catalogService, vendorService,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			cleanup(ctx, logg, dbClient, redisClient)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	cleanup(ctx, logg, dbClient, redisClient)
}

func cleanup(ctx context.Context, logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client) {
	var errs error
	if dbClient != nil {
		errs = multierr.Append(errs, dbClient.Close())
	}
	if redisClient != nil {
		errs = multierr.Append(errs, redisClient.Close())
	}
	if errs != nil {
		logg.Error(ctx, "error closing backing services", errs)
	}
}
