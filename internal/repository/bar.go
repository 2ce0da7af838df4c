package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kjannette/bellcurve-backend/internal/models"
	"github.com/kjannette/bellcurve-backend/internal/timeseries"
)

const upsertBar = `INSERT INTO price_bars (symbol, series, ts, label, open, high, low, close, volume, fetched_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (symbol, series, ts) DO UPDATE SET
		label = EXCLUDED.label,
		open = EXCLUDED.open,
		high = EXCLUDED.high,
		low = EXCLUDED.low,
		close = EXCLUDED.close,
		volume = EXCLUDED.volume,
		fetched_at = EXCLUDED.fetched_at`

// BarRepo archives normalized bars in the price_bars table.
type BarRepo struct {
	pool *pgxpool.Pool
}

func NewBarRepo(pool *pgxpool.Pool) *BarRepo {
	return &BarRepo{pool: pool}
}

// SaveSeries upserts bars for symbol. Bars whose timestamp cannot be parsed
// are skipped; the number written is returned.
func (r *BarRepo) SaveSeries(ctx context.Context, symbol, series string, bars []models.Bar) (int, error) {
	symbol = normalizeSymbol(symbol)
	now := time.Now().UTC()

	batch := &pgx.Batch{}
	for _, b := range bars {
		ts, ok := timeseries.ParseTimestamp(b.Timestamp)
		if !ok {
			continue
		}
		batch.Queue(upsertBar, symbol, series, ts, b.Timestamp, b.Open, b.High, b.Low, b.Close, b.Volume, now)
	}
	if batch.Len() == 0 {
		return 0, nil
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return i, fmt.Errorf("upsert bar %d: %w", i, err)
		}
	}
	return batch.Len(), nil
}

// GetBySymbol returns the most recent limit bars for symbol and series in
// ascending time order.
func (r *BarRepo) GetBySymbol(ctx context.Context, symbol, series string, limit int) ([]models.ArchivedBar, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, symbol, series, ts, label, open, high, low, close, volume, fetched_at
		 FROM price_bars WHERE symbol = $1 AND series = $2
		 ORDER BY ts DESC LIMIT $3`,
		normalizeSymbol(symbol), series, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out, err := collectBars(rows)
	if err != nil {
		return nil, err
	}
	slices.Reverse(out)
	return out, nil
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// --- scan helpers ---

type rowsIter interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collectBars(rows rowsIter) ([]models.ArchivedBar, error) {
	out := []models.ArchivedBar{}
	for rows.Next() {
		var a models.ArchivedBar
		err := rows.Scan(&a.ID, &a.Symbol, &a.Series, &a.Time, &a.Bar.Timestamp,
			&a.Bar.Open, &a.Bar.High, &a.Bar.Low, &a.Bar.Close, &a.Bar.Volume, &a.FetchedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
