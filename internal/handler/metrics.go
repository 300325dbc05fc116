package handler

import (
	"fmt"
	"net/http"

	"github.com/showsapi/showsapi/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "shows_users_list_cache_hits_total %d\n", snap.UsersListCacheHits)
	writeMetric(w, "shows_users_list_cache_misses_total %d\n", snap.UsersListCacheMisses)

	writeMetric(w, "shows_users_created_total %d\n", snap.UsersCreated)
	writeMetric(w, "shows_user_create_failures_total{kind=\"validation\"} %d\n", snap.UserCreateFailedValid)
	writeMetric(w, "shows_user_create_failures_total{kind=\"store\"} %d\n", snap.UserCreateFailedStore)

	writeMetric(w, "shows_seed_runs_total %d\n", snap.SeedRuns)
	writeMetric(w, "shows_users_seeded_total %d\n", snap.UsersSeeded)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
