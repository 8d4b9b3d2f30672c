package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/RoniAntikainen/Taitoarvio-sub000/migrations"
)

// Migrate applies all pending embedded migrations through the pool and returns the
// resulting schema version.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) (int64, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose version: %w", err)
	}
	return version, nil
}

// SchemaStatus reports the applied schema version and whether embedded migrations
// are still pending.
func SchemaStatus(ctx context.Context, pool *pgxpool.Pool) (int64, bool, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, false, fmt.Errorf("goose new provider: %w", err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("goose version: %w", err)
	}
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("goose pending: %w", err)
	}
	return version, pending, nil
}

// SchemaInspector adapts SchemaStatus to the health endpoints.
type SchemaInspector struct {
	pool *pgxpool.Pool
}

func NewSchemaInspector(pool *pgxpool.Pool) *SchemaInspector {
	return &SchemaInspector{pool: pool}
}

func (s *SchemaInspector) SchemaStatus(ctx context.Context) (int64, bool, error) {
	return SchemaStatus(ctx, s.pool)
}
