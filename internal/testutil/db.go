package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/kjannette/bellcurve-backend/internal/db"
)

// SetupPool connects to TEST_DATABASE_URL and makes sure the archive schema
// exists. Tests are skipped when no test database is configured.
func SetupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := db.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return pool
}

// CleanSymbol removes archived rows for symbol before and after the test.
func CleanSymbol(t *testing.T, pool *pgxpool.Pool, symbol string) {
	t.Helper()

	clean := func() {
		if _, err := pool.Exec(context.Background(), `DELETE FROM price_bars WHERE symbol = $1`, symbol); err != nil {
			t.Errorf("clean %s: %v", symbol, err)
		}
	}
	clean()
	t.Cleanup(clean)
}
