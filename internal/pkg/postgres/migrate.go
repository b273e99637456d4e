package postgres

import (
	"context"
	"fmt"

	"fulfillment/migrations"
	"fulfillment/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate накатывает встроенные миграции. goose работает через database/sql,
// поэтому пул временно оборачивается в *sql.DB.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, command string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("close migration connection", logger.NewField("error", err.Error()))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	switch command {
	case "up":
		err := goose.UpContext(ctx, db, ".")
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
	case "down":
		err := goose.DownContext(ctx, db, ".")
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	case "status":
		err := goose.StatusContext(ctx, db, ".")
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("migration version: %w", err)
	}
	log.Info("migrations applied",
		logger.NewField("command", command),
		logger.NewField("version", version),
	)
	return nil
}
