package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/kjannette/bellcurve-backend/internal/models"
)

type fakeRows struct {
	rows [][]any
	i    int
	err  error
}

func (f *fakeRows) Next() bool {
	if f.i >= len(f.rows) {
		return false
	}
	f.i++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.rows[f.i-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = row[i].(int64)
		case *string:
			*p = row[i].(string)
		case *float64:
			*p = row[i].(float64)
		case *time.Time:
			*p = row[i].(time.Time)
		default:
			return errors.New("unexpected scan target")
		}
	}
	return nil
}

func (f *fakeRows) Err() error { return f.err }

func TestCollectBars(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	fetched := ts.Add(time.Hour)
	rows := &fakeRows{rows: [][]any{
		{int64(7), "IBM", "daily", ts, "2024-01-02", 10.0, 12.0, 9.0, 11.0, 1000.0, fetched},
	}}

	got, err := collectBars(rows)
	if err != nil {
		t.Fatalf("collectBars: %v", err)
	}
	want := models.ArchivedBar{
		ID: 7, Symbol: "IBM", Series: "daily", Time: ts, FetchedAt: fetched,
		Bar: models.Bar{Timestamp: "2024-01-02", Open: 10, High: 12, Low: 9, Close: 11, Volume: 1000},
	}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCollectBars_EmptyAndError(t *testing.T) {
	got, err := collectBars(&fakeRows{})
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v (%v)", got, err)
	}

	boom := errors.New("boom")
	if _, err := collectBars(&fakeRows{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected rows error, got %v", err)
	}
}

func TestNormalizeSymbol(t *testing.T) {
	if got := normalizeSymbol("  brk.b "); got != "BRK.B" {
		t.Fatalf("normalizeSymbol = %q", got)
	}
}
