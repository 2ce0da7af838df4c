package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestBarMarshalJSON(t *testing.T) {
	b := Bar{Timestamp: "2024-01-01", Open: 8, High: 9, Low: 7, Close: 8.5, Volume: 500}
	got, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"timestamp":"2024-01-01","open":8,"high":9,"low":7,"close":8.5,"volume":500}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestBarMarshalJSON_NonFiniteAsNull(t *testing.T) {
	b := Bar{Timestamp: "2024-01-01", Open: math.NaN(), High: math.Inf(1), Low: 1, Close: math.NaN(), Volume: 0}
	got, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"timestamp":"2024-01-01","open":null,"high":null,"low":1,"close":null,"volume":0}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
