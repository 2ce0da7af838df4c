package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = 30 * time.Second
	cfg.MaxConnLifetime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return p, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS price_bars (
	id          BIGSERIAL PRIMARY KEY,
	symbol      TEXT             NOT NULL,
	series      TEXT             NOT NULL,
	ts          TIMESTAMPTZ      NOT NULL,
	label       TEXT             NOT NULL,
	open        DOUBLE PRECISION,
	high        DOUBLE PRECISION,
	low         DOUBLE PRECISION,
	close       DOUBLE PRECISION,
	volume      DOUBLE PRECISION,
	fetched_at  TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
	UNIQUE (symbol, series, ts)
);
CREATE INDEX IF NOT EXISTS price_bars_symbol_series_ts ON price_bars (symbol, series, ts DESC);
`

// EnsureSchema creates the archive table if it does not exist.
func EnsureSchema(ctx context.Context, p *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := p.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
