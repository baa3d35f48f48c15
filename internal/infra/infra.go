package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/config"
	"github.com/connectvan/backend/internal/db"
	"github.com/connectvan/backend/internal/migrations"
	redisclient "github.com/connectvan/backend/internal/redis"
	"github.com/connectvan/backend/internal/store"
)

// Infra holds the connections and the durable backend picked by STORAGE_DRIVER.
// PG is nil unless the postgres driver is selected.
type Infra struct {
	PG      *pgxpool.Pool
	Redis   *redis.Client
	Backend store.Backend
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	rdb, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	inf := &Infra{Redis: rdb, Backend: store.NewRedisBackend(rdb)}

	if cfg.Storage.Driver == config.StoragePostgres {
		pool, err := db.NewPostgres(ctx, cfg.Postgres)
		if err != nil {
			inf.Close()
			return nil, fmt.Errorf("postgres: %w", err)
		}
		inf.PG = pool
		// Self-bootstrap schema before serving requests.
		if err := migrations.NewRunner(pool, logger).Up(ctx); err != nil {
			inf.Close()
			return nil, err
		}
		inf.Backend = store.NewPostgresBackend(pool)
	}

	logger.Info("infra ready", zap.String("storage", cfg.Storage.Driver))
	return inf, nil
}

func (i *Infra) Close() {
	if i == nil {
		return
	}
	if i.PG != nil {
		i.PG.Close()
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
}
