// Package timeseries turns Alpha Vantage time series objects into ordered OHLCV bars.
package timeseries

import (
	"errors"
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/kjannette/bellcurve-backend/internal/models"
)

// Provider field labels inside each series entry.
const (
	FieldOpen   = "1. open"
	FieldHigh   = "2. high"
	FieldLow    = "3. low"
	FieldClose  = "4. close"
	FieldVolume = "5. volume"
)

// RawEntry holds the decoded fields of one series entry. Values are whatever
// the JSON decoder produced: normally strings, occasionally numbers or null.
type RawEntry map[string]any

// RawSeries maps a timestamp key ("2024-01-02" or "2024-01-02 15:59:00") to its entry.
type RawSeries map[string]RawEntry

var timestampLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseTimestamp interprets a series key as a UTC calendar date/time.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Normalize builds one bar per key of series and returns them in ascending
// time order. It never fails: missing or non-numeric fields become NaN.
//
// Keys are visited in lexicographic order and the sort is stable, so equal
// timestamps keep that order. Keys that are not a recognisable date/time go
// last.
func Normalize(series RawSeries) []models.Bar {
	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	type keyed struct {
		bar models.Bar
		at  time.Time
		ok  bool
	}
	rows := make([]keyed, 0, len(keys))
	for _, k := range keys {
		entry := series[k]
		at, ok := ParseTimestamp(k)
		rows = append(rows, keyed{
			bar: models.Bar{
				Timestamp: k,
				Open:      field(entry, FieldOpen),
				High:      field(entry, FieldHigh),
				Low:       field(entry, FieldLow),
				Close:     field(entry, FieldClose),
				Volume:    field(entry, FieldVolume),
			},
			at: at,
			ok: ok,
		})
	}

	slices.SortStableFunc(rows, func(a, b keyed) int {
		switch {
		case a.ok && b.ok:
			return a.at.Compare(b.at)
		case a.ok:
			return -1
		case b.ok:
			return 1
		}
		return 0
	})

	out := make([]models.Bar, len(rows))
	for i, r := range rows {
		out[i] = r.bar
	}
	return out
}

func field(entry RawEntry, name string) float64 {
	v, ok := entry[name]
	if !ok {
		return math.NaN()
	}
	return Coerce(v)
}

// Coerce converts a decoded JSON scalar to a number the way a loose numeric
// cast would: blank text and null are 0, booleans are 0 or 1, and anything
// that is not a number is NaN.
func Coerce(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return parseNumber(x)
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}
	// ParseFloat also takes "inf", "nan", hex floats and underscores.
	if strings.ContainsAny(s, "iInNxXpP_") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// parseRadix reads an unsigned integer literal of any length, rounding to the
// nearest float64.
func parseRadix(digits string, base int) float64 {
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return math.NaN()
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}
