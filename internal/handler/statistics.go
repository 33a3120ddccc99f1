package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/msomdec/admin-dashboard/internal/service"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// DefaultStreamInterval is how often the statistics stream re-sends when
// no interval is configured.
const DefaultStreamInterval = 5 * time.Second

// StatisticsHandler serves the dashboard statistics.
type StatisticsHandler struct {
	stats    *service.StatisticsService
	interval time.Duration
}

// NewStatisticsHandler creates a new StatisticsHandler. interval controls the
// refresh period of the SSE stream.
func NewStatisticsHandler(stats *service.StatisticsService, interval time.Duration) *StatisticsHandler {
	if interval <= 0 {
		interval = DefaultStreamInterval
	}
	return &StatisticsHandler{stats: stats, interval: interval}
}

// HandleGet returns the current statistics as a bare JSON object.
// GET /api/statistics
func (h *StatisticsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Compute(r.Context())
	if err != nil {
		slog.Error("compute statistics", "error", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, toStatisticsDTO(stats))
}

// HandleStream patches a "statistics" signal over SSE right away and then
// once per interval until the client goes away.
// GET /api/statistics/stream
func (h *StatisticsHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sse := datastar.NewSSE(w, r)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		stats, err := h.stats.Compute(ctx)
		if err != nil {
			slog.Error("compute statistics for stream", "error", err)
			return
		}
		signals := map[string]any{"statistics": toStatisticsDTO(stats)}
		if err := sse.MarshalAndPatchSignals(signals); err != nil {
			slog.Debug("statistics stream closed", "error", err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
