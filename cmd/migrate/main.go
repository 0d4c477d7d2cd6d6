package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/calabarlabs/storefront-backend/pkg/config"
	"github.com/calabarlabs/storefront-backend/pkg/db"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
	"github.com/calabarlabs/storefront-backend/pkg/migrate"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "migration command: up|down|status|version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	switch cfg.Storage.Driver {
	case config.StorageDriverSQLite, config.StorageDriverPostgres:
	default:
		logg.Error(ctx, "migrations require a sql storage driver", nil)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.Storage, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		logg.Error(ctx, "failed to unwrap sql database", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"driver": cfg.Storage.Driver,
		"cmd":    *cmd,
	})

	if err := migrate.Run(ctx, sqlDB, cfg.Storage.Driver, *cmd, flag.Args()...); err != nil {
		logg.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "migration complete")
}
