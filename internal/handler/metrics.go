package handler

import (
	"fmt"
	"net/http"

	"github.com/wendelDmesquita/minhas-financas-api/internal/metrics"
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

	writeMetric(w, "financas_entries_created_total %d\n", snap.EntryCreated)
	writeMetric(w, "financas_entries_updated_total %d\n", snap.EntryUpdated)
	writeMetric(w, "financas_entries_deleted_total %d\n", snap.EntryDeleted)
	writeMetric(w, "financas_entries_status_changed_total %d\n", snap.EntryStatusChanged)

	writeMetric(w, "financas_users_registered_total %d\n", snap.UserRegistered)
	writeMetric(w, "financas_auth_attempts_total{status=\"success\"} %d\n", snap.AuthAttempts["success"])
	writeMetric(w, "financas_auth_attempts_total{status=\"failure\"} %d\n", snap.AuthAttempts["failure"])

	writeMetric(w, "financas_balance_computations_total %d\n", snap.BalanceObserved)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
