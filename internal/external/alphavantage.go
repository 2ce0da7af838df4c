package external

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/kjannette/bellcurve-backend/internal/httputil"
	"github.com/kjannette/bellcurve-backend/internal/metrics"
	"github.com/kjannette/bellcurve-backend/internal/models"
	"github.com/kjannette/bellcurve-backend/internal/timeseries"
)

const (
	DefaultBaseURL = "https://www.alphavantage.co"

	FunctionDaily    = "TIME_SERIES_DAILY"
	FunctionIntraday = "TIME_SERIES_INTRADAY"

	SeriesDaily    = "daily"
	SeriesIntraday = "intraday"

	DefaultInterval = "1min"

	invalidCallPrefix = "Invalid API call"
)

var (
	Intervals   = []string{"1min", "5min", "15min", "30min", "60min"}
	OutputSizes = []string{"compact", "full"}
)

func ValidInterval(s string) bool   { return slices.Contains(Intervals, s) }
func ValidOutputSize(s string) bool { return slices.Contains(OutputSizes, s) }

// Observer receives one call per upstream request.
type Observer interface {
	ObserveUpstream(function, outcome string, d time.Duration)
}

// SeriesResult is a normalized series. Notice is set when the body carried no
// series but an informational message instead (typically a throttle notice).
type SeriesResult struct {
	Symbol string
	Series string
	Bars   []models.Bar
	Notice string
}

// AlphaVantageClient fetches time series from the Alpha Vantage query API.
type AlphaVantageClient struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	observer   Observer
}

type AlphaVantageOption func(*AlphaVantageClient)

func WithBaseURL(baseURL string) AlphaVantageOption {
	return func(c *AlphaVantageClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient HTTPClient) AlphaVantageOption {
	return func(c *AlphaVantageClient) {
		c.httpClient = httpClient
	}
}

func WithObserver(o Observer) AlphaVantageOption {
	return func(c *AlphaVantageClient) {
		c.observer = o
	}
}

// NewAlphaVantageClient builds a client. The API key is sent as the apikey
// query parameter on every call.
func NewAlphaVantageClient(apiKey string, opts ...AlphaVantageOption) *AlphaVantageClient {
	c := &AlphaVantageClient{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *AlphaVantageClient) HasAPIKey() bool {
	return c.apiKey != ""
}

// Daily fetches TIME_SERIES_DAILY. outputSize may be empty for the upstream default.
func (c *AlphaVantageClient) Daily(ctx context.Context, symbol, outputSize string) (*SeriesResult, error) {
	q := url.Values{}
	if outputSize != "" {
		q.Set("outputsize", outputSize)
	}
	return c.fetch(ctx, FunctionDaily, SeriesDaily, "Time Series (Daily)", symbol, q)
}

// Intraday fetches TIME_SERIES_INTRADAY at the given interval (default 1min).
func (c *AlphaVantageClient) Intraday(ctx context.Context, symbol, interval string) (*SeriesResult, error) {
	if interval == "" {
		interval = DefaultInterval
	}
	q := url.Values{}
	q.Set("interval", interval)
	return c.fetch(ctx, FunctionIntraday, SeriesIntraday, "Time Series ("+interval+")", symbol, q)
}

func (c *AlphaVantageClient) fetch(ctx context.Context, function, series, label, symbol string, extra url.Values) (*SeriesResult, error) {
	start := time.Now()
	outcome := metrics.OutcomeOK
	defer func() {
		if c.observer != nil {
			c.observer.ObserveUpstream(function, outcome, time.Since(start))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(function, symbol, extra), nil)
	if err != nil {
		outcome = metrics.OutcomeTransport
		return nil, fmt.Errorf("alphavantage %s: build request: %w", function, err)
	}

	body, err := httputil.Fetch(c.httpClient, req, 0)
	if err != nil {
		var se *httputil.StatusError
		if errors.As(err, &se) {
			outcome = metrics.OutcomeStatus
		} else {
			outcome = metrics.OutcomeTransport
		}
		return nil, fmt.Errorf("alphavantage %s: %w", function, err)
	}

	if !gjson.ValidBytes(body) {
		outcome = metrics.OutcomeDecode
		return nil, fmt.Errorf("alphavantage %s: %w", function, ErrMalformedResponse)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		outcome = metrics.OutcomeDecode
		return nil, fmt.Errorf("alphavantage %s: %w", function, ErrMalformedResponse)
	}
	fields := root.Map()

	if msg := fields["Error Message"].String(); msg != "" {
		if strings.HasPrefix(msg, invalidCallPrefix) {
			outcome = metrics.OutcomeInvalidCall
			return nil, fmt.Errorf("alphavantage %s: %w: %s", function, ErrInvalidCall, msg)
		}
		outcome = metrics.OutcomeAPIError
		return nil, fmt.Errorf("alphavantage %s: %w", function, &APIError{Message: msg})
	}

	result := &SeriesResult{Symbol: symbol, Series: series}
	obj, ok := fields[label]
	if !ok || !obj.IsObject() {
		result.Bars = []models.Bar{}
		result.Notice = firstNonEmpty(fields["Note"].String(), fields["Information"].String())
		return result, nil
	}

	result.Bars = timeseries.Normalize(rawSeries(obj))
	return result, nil
}

func (c *AlphaVantageClient) queryURL(function, symbol string, extra url.Values) string {
	q := url.Values{}
	q.Set("function", function)
	q.Set("symbol", symbol)
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("apikey", c.apiKey)
	q.Set("datatype", "json")
	return c.baseURL + "/query?" + q.Encode()
}

// rawSeries copies the date-keyed object into the normalizer's input shape.
func rawSeries(obj gjson.Result) timeseries.RawSeries {
	out := timeseries.RawSeries{}
	obj.ForEach(func(key, value gjson.Result) bool {
		entry := timeseries.RawEntry{}
		if value.IsObject() {
			value.ForEach(func(k, v gjson.Result) bool {
				entry[k.String()] = v.Value()
				return true
			})
		}
		out[key.String()] = entry
		return true
	})
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
