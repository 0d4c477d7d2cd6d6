package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/calabarlabs/storefront-backend/api/routes"
	"github.com/calabarlabs/storefront-backend/internal/cart"
	"github.com/calabarlabs/storefront-backend/internal/catalog"
	"github.com/calabarlabs/storefront-backend/internal/checkout"
	"github.com/calabarlabs/storefront-backend/internal/orders"
	"github.com/calabarlabs/storefront-backend/internal/session"
	"github.com/calabarlabs/storefront-backend/pkg/config"
	"github.com/calabarlabs/storefront-backend/pkg/db"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
	"github.com/calabarlabs/storefront-backend/pkg/metrics"
	"github.com/calabarlabs/storefront-backend/pkg/migrate"
	"github.com/calabarlabs/storefront-backend/pkg/pubsub"
	"github.com/calabarlabs/storefront-backend/pkg/redis"
	"github.com/calabarlabs/storefront-backend/pkg/storage"
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

	registry := prometheus.NewRegistry()
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	var (
		store    storage.KV
		keys     cart.KeyBuilder
		storageP routes.Pinger
		redisP   routes.Pinger
		pubsubP  routes.Pinger
	)

	plainKeys := func(sessionID string) string {
		return cfg.Storage.KeyPrefix + ":" + sessionID
	}

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store = storage.NewMemory()
		keys = plainKeys

	case config.StorageDriverRedis:
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		store = storage.NewRedis(redisClient, redis.Nil, cfg.Session.TTL())
		keys = func(sessionID string) string {
			return redisClient.CartKey(cfg.Storage.KeyPrefix, sessionID)
		}
		redisP = redisClient

	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		dbClient, err := db.New(context.Background(), cfg.Storage, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()
		if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
			logg.Error(context.Background(), "failed to run dev migrations", err)
			os.Exit(1)
		}
		store = storage.NewGorm(dbClient.DB())
		keys = plainKeys
		storageP = dbClient
	}

	sessionManager, err := session.NewManager(cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	catalogService := catalog.NewService()

	cartService, err := cart.NewService(store, keys, logg, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	var submitter orders.Submitter = orders.NewSimulated(cfg.Checkout.SubmitDelay, logg)
	if cfg.PubSub.Enabled() {
		psClient, err := pubsub.NewClient(context.Background(), cfg.PubSub, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap pubsub", err)
			os.Exit(1)
		}
		defer func() {
			if err := psClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing pubsub", err)
			}
		}()
		pubsubSubmitter, err := orders.NewPubSub(psClient.OrdersPublisher(), logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create pubsub submitter", err)
			os.Exit(1)
		}
		submitter = pubsubSubmitter
		pubsubP = psClient
	}

	checkoutService, err := checkout.NewService(cfg.Checkout, submitter, cfg.FeatureFlags.StrictLocations, logg, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":            cfg.App.Env,
		"addr":           addr,
		"storage_driver": cfg.Storage.Driver,
		"submitter":      submitter.Name(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			registry,
			storageP,
			redisP,
			pubsubP,
			sessionManager,
			catalogService,
			cartService,
			checkoutService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
