package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kjannette/bellcurve-backend/internal/metrics"
)

const maxQueryLimit = 1000

type Options struct {
	Port       int
	CORSOrigin string
	Fetcher    SeriesFetcher
	Archive    Archive // nil disables the archive
	DB         Pinger  // nil when no database is configured
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
}

type Server struct {
	fetcher    SeriesFetcher
	archive    Archive
	db         Pinger
	metrics    *metrics.Metrics
	log        *zap.Logger
	handler    http.Handler
	httpServer *http.Server

	archiveWG sync.WaitGroup // in-flight archive writes
}

func NewServer(opts Options) *Server {
	s := &Server{
		fetcher: opts.Fetcher,
		archive: opts.Archive,
		db:      opts.DB,
		metrics: opts.Metrics,
		log:     opts.Logger,
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	mux := http.NewServeMux()

	// Series routes
	mux.HandleFunc("GET /api/priceHistory", s.handlePriceHistory)
	mux.HandleFunc("GET /api/currentPrice", s.handleCurrentPrice)
	mux.HandleFunc("GET /api/archive/{symbol}", s.handleArchive)

	// Usage hints
	mux.HandleFunc("GET /api", s.handleAPIRoot)
	mux.HandleFunc("GET /api/{$}", s.handleAPIRoot)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	// Ops
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	// GET-only so ServeMux answers 405 for other methods on known paths.
	mux.HandleFunc("GET /", s.handleNotFound)

	s.handler = s.recoverPanic(s.logRequests(corsMiddleware(mux, opts.CORSOrigin)))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start() error {
	s.log.Info("API server listening",
		zap.String("addr", s.httpServer.Addr),
		zap.Bool("archive", s.archive != nil),
	)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, then waits for pending archive writes
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		s.archiveWG.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		if err == nil {
			err = fmt.Errorf("waiting for archive writes: %w", ctx.Err())
		}
	}
	return err
}

// --- middleware ---

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// logRequests logs one line per request and feeds the HTTP metrics. The
// route label is the matched mux pattern so label cardinality stays bounded.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		elapsed := time.Since(start)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.ObserveHTTP(route, rec.status, elapsed)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("duration", elapsed),
		)
	})
}

func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic in handler",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler, allowOrigin string) http.Handler {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- validation helpers ---

func parseLimit(r *http.Request, defaultLimit int) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultLimit
	}
	if n > maxQueryLimit {
		return maxQueryLimit
	}
	return n
}

// --- response helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
