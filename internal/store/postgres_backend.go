package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend keeps collections in the kv_store table created by migrations.
type PostgresBackend struct {
	pg *pgxpool.Pool
}

func NewPostgresBackend(pg *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{pg: pg}
}

func (b *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_store WHERE key = $1`
	var v string
	if err := b.pg.QueryRow(ctx, q, key).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(v), nil
}

func (b *PostgresBackend) Set(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO kv_store (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = now()`
	_, err := b.pg.Exec(ctx, q, key, string(value))
	return err
}
