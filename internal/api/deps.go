package api

import (
	"context"

	"github.com/kjannette/bellcurve-backend/internal/external"
	"github.com/kjannette/bellcurve-backend/internal/models"
)

//go:generate mockgen -package=api -destination=mock_deps_test.go -source=deps.go

// SeriesFetcher is implemented by *external.AlphaVantageClient.
type SeriesFetcher interface {
	Daily(ctx context.Context, symbol, outputSize string) (*external.SeriesResult, error)
	Intraday(ctx context.Context, symbol, interval string) (*external.SeriesResult, error)
	HasAPIKey() bool
}

// Archive is implemented by *repository.BarRepo.
type Archive interface {
	SaveSeries(ctx context.Context, symbol, series string, bars []models.Bar) (int, error)
	GetBySymbol(ctx context.Context, symbol, series string, limit int) ([]models.ArchivedBar, error)
}

// Pinger is implemented by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}
