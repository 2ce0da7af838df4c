package models

import (
	"encoding/json"
	"math"
	"time"
)

// Bar is one OHLCV record of a normalized series.
type Bar struct {
	Timestamp string  `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// barJSON mirrors Bar with nullable numbers so NaN and Inf can be encoded.
type barJSON struct {
	Timestamp string   `json:"timestamp"`
	Open      *float64 `json:"open"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	Close     *float64 `json:"close"`
	Volume    *float64 `json:"volume"`
}

// MarshalJSON writes non-finite fields as null; encoding/json rejects them otherwise.
func (b Bar) MarshalJSON() ([]byte, error) {
	return json.Marshal(barJSON{
		Timestamp: b.Timestamp,
		Open:      finite(b.Open),
		High:      finite(b.High),
		Low:       finite(b.Low),
		Close:     finite(b.Close),
		Volume:    finite(b.Volume),
	})
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ArchivedBar is a Bar as stored in the price_bars table.
type ArchivedBar struct {
	ID        int64     `json:"id"`
	Symbol    string    `json:"symbol"`
	Series    string    `json:"series"`
	Time      time.Time `json:"time"`
	Bar       Bar       `json:"bar"`
	FetchedAt time.Time `json:"fetchedAt"`
}
