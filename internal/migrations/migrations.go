// Migrations in Go; order is the list order. Up functions live in up.go.
// schema_version is created by the first migration and records what was applied.
package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Runner applies pending migrations in order.
type Runner struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewRunner(pool *pgxpool.Pool, logger *zap.Logger) *Runner {
	return &Runner{pool: pool, logger: logger}
}

// Up runs every migration whose version is not yet in schema_version. Each Up is idempotent.
func (r *Runner) Up(ctx context.Context) error {
	for i, m := range migrations {
		version := i + 1
		applied, err := r.applied(ctx, version)
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", version, m.Name, err)
		}
		if applied {
			continue
		}
		if err := m.Up(ctx, r.pool); err != nil {
			return fmt.Errorf("migration %d (%s): %w", version, m.Name, err)
		}
		if _, err := r.pool.Exec(ctx,
			`INSERT INTO schema_version (version, name) VALUES ($1, $2) ON CONFLICT (version) DO NOTHING`,
			version, m.Name); err != nil {
			return fmt.Errorf("record migration %d: %w", version, err)
		}
		r.logger.Info("migration applied", zap.Int("version", version), zap.String("name", m.Name))
	}
	return nil
}

func (r *Runner) applied(ctx context.Context, version int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT to_regclass('schema_version') IS NOT NULL`).Scan(&exists)
	if err != nil || !exists {
		return false, err
	}
	err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_version WHERE version = $1)`, version).Scan(&exists)
	return exists, err
}

type migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Order matters.
var migrations = []migration{
	{Name: "schema_version", Up: UpSchemaVersion},
	{Name: "create_kv_store", Up: UpKVStore},
}
