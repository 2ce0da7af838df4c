package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kjannette/bellcurve-backend/internal/external"
)

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeError(w, http.StatusNotFound, "archive is disabled")
		return
	}

	symbol := strings.TrimSpace(r.PathValue("symbol"))
	if symbol == "" {
		writeError(w, http.StatusBadRequest, msgMissingSymbol)
		return
	}

	series := r.URL.Query().Get("series")
	switch series {
	case "":
		series = external.SeriesDaily
	case external.SeriesDaily, external.SeriesIntraday:
	default:
		writeError(w, http.StatusBadRequest, "invalid series, expected daily|intraday")
		return
	}

	bars, err := s.archive.GetBySymbol(r.Context(), symbol, series, parseLimit(r, 100))
	if err != nil {
		s.log.Error("archive read failed", zap.String("symbol", symbol), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch archived bars")
		return
	}
	writeJSON(w, http.StatusOK, bars)
}
