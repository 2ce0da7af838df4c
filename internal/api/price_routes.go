package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kjannette/bellcurve-backend/internal/external"
	"github.com/kjannette/bellcurve-backend/internal/httputil"
)

const (
	msgMissingSymbol = "Please include a symbol"
	msgInvalidCall   = "Invalid API Call. Please try another ticker"
	msgUpstreamAPI   = "Problem with underlying API"
	msgTransport     = "Unable to complete request"
	msgAPIUsage      = "Please use the 'priceHistory' or 'currentPrice' endpoints and specify a ticker in the query string"
	msgRootUsage     = "Please use the 'api' namespace and specify a ticker in the query string"
)

const archiveTimeout = 5 * time.Second

func (s *Server) handlePriceHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	symbol := strings.TrimSpace(q.Get("symbol"))
	if symbol == "" {
		writeError(w, http.StatusBadRequest, msgMissingSymbol)
		return
	}

	outputSize := q.Get("outputsize")
	if outputSize != "" && !external.ValidOutputSize(outputSize) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("invalid outputsize %q, expected %s", outputSize, strings.Join(external.OutputSizes, "|")))
		return
	}

	res, err := s.fetcher.Daily(r.Context(), symbol, outputSize)
	s.writeSeries(w, r, symbol, res, err)
}

func (s *Server) handleCurrentPrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	symbol := strings.TrimSpace(q.Get("symbol"))
	if symbol == "" {
		writeError(w, http.StatusBadRequest, msgMissingSymbol)
		return
	}

	interval := q.Get("interval")
	if interval != "" && !external.ValidInterval(interval) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("invalid interval %q, expected %s", interval, strings.Join(external.Intervals, "|")))
		return
	}

	res, err := s.fetcher.Intraday(r.Context(), symbol, interval)
	s.writeSeries(w, r, symbol, res, err)
}

func (s *Server) writeSeries(w http.ResponseWriter, r *http.Request, symbol string, res *external.SeriesResult, err error) {
	if err != nil {
		s.writeUpstreamError(w, symbol, err)
		return
	}

	if res.Notice != "" {
		s.log.Warn("upstream returned no series",
			zap.String("symbol", symbol),
			zap.String("series", res.Series),
			zap.String("notice", res.Notice),
		)
	}

	s.metrics.AddBars(res.Series, len(res.Bars))
	writeJSON(w, http.StatusOK, res.Bars)

	if s.archive != nil && len(res.Bars) > 0 {
		ctx := context.WithoutCancel(r.Context())
		s.archiveWG.Add(1)
		go func() {
			defer s.archiveWG.Done()
			s.archiveSeries(ctx, res)
		}()
	}
}

// archiveSeries runs in the background so the response never waits on the
// database. Failures are only logged.
func (s *Server) archiveSeries(ctx context.Context, res *external.SeriesResult) {
	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	n, err := s.archive.SaveSeries(ctx, res.Symbol, res.Series, res.Bars)
	if err != nil {
		s.metrics.IncArchiveErrors()
		s.log.Error("archive write failed",
			zap.String("symbol", res.Symbol),
			zap.String("series", res.Series),
			zap.Error(err),
		)
		return
	}
	s.log.Debug("archived bars",
		zap.String("symbol", res.Symbol),
		zap.String("series", res.Series),
		zap.Int("rows", n),
	)
}

func (s *Server) writeUpstreamError(w http.ResponseWriter, symbol string, err error) {
	var (
		apiErr    *external.APIError
		statusErr *httputil.StatusError
	)
	switch {
	case errors.Is(err, external.ErrInvalidCall):
		s.log.Info("upstream rejected symbol", zap.String("symbol", symbol), zap.Error(err))
		writeError(w, http.StatusBadRequest, msgInvalidCall)
	case errors.As(err, &apiErr):
		s.log.Error("upstream API error", zap.String("symbol", symbol), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgUpstreamAPI)
	case errors.As(err, &statusErr):
		s.log.Error("upstream bad status", zap.String("symbol", symbol), zap.Error(err))
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("upstream returned status %d", statusErr.StatusCode))
	default:
		s.log.Error("upstream request failed", zap.String("symbol", symbol), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgTransport)
	}
}

func (s *Server) handleAPIRoot(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusInternalServerError, msgAPIUsage)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusInternalServerError, msgRootUsage)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
