package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/calabarlabs/storefront-backend/pkg/config"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Run executes a goose command against the embedded migrations using the
// dialect matching the configured storage driver.
func Run(ctx context.Context, db *sql.DB, driver string, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}

	dialect, err := dialectFor(driver)
	if err != nil {
		return err
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.RunContext(ctx, command, db, "migrations", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

func dialectFor(driver string) (string, error) {
	switch driver {
	case config.StorageDriverSQLite:
		return "sqlite3", nil
	case config.StorageDriverPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("driver %q has no migrations", driver)
	}
}
