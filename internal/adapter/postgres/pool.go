package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/quitsmoke-backend/internal/config"
	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
)

const applicationName = "quitsmoke"

// NewPool opens a pgx pool and pings it. Sessions run in UTC so that
// date() buckets of timestamptz columns are calendar days in UTC.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	params := poolCfg.ConnConfig.RuntimeParams
	params["timezone"] = "UTC"
	if _, ok := params["application_name"]; !ok {
		params["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return pool, nil
}

// PoolStats adapts pool statistics for metrics.NewPoolCollector.
func PoolStats(pool *pgxpool.Pool) func() metrics.PoolStats {
	return func() metrics.PoolStats {
		s := pool.Stat()
		return metrics.PoolStats{
			Acquired:      s.AcquiredConns(),
			Idle:          s.IdleConns(),
			Total:         s.TotalConns(),
			Max:           s.MaxConns(),
			AcquireCount:  s.AcquireCount(),
			EmptyAcquires: s.EmptyAcquireCount(),
		}
	}
}
