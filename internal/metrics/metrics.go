package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request counter
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeswerv_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTP request duration histogram
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homeswerv_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "homeswerv_http_active_requests",
			Help: "Number of in-flight HTTP requests",
		},
	)

	// Business metrics
	ClaimsFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeswerv_claims_fetch_total",
			Help: "Guarantee claim list fetches by role and result",
		},
		[]string{"role", "result"}, // "ready", "empty", "error"
	)

	KanbanMovesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeswerv_kanban_moves_total",
			Help: "Kanban drag results by outcome",
		},
		[]string{"result"}, // "moved", "noop", "rejected", "rolled_back"
	)

	PageCacheRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeswerv_page_cache_refresh_total",
			Help: "Page cache refreshes by result",
		},
		[]string{"result"},
	)

	PageCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "homeswerv_page_cache_pages",
			Help: "Number of published pages held in the cache",
		},
	)

	FormValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeswerv_form_validations_total",
			Help: "Form validations by form and result",
		},
		[]string{"form", "result"},
	)
)

// RecordHTTPRequest records metrics for an HTTP request
func RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordClaimsFetch(role, result string) {
	ClaimsFetchTotal.WithLabelValues(role, result).Inc()
}

func RecordKanbanMove(result string) {
	KanbanMovesTotal.WithLabelValues(result).Inc()
}

func RecordPageCacheRefresh(result string, size int) {
	PageCacheRefreshTotal.WithLabelValues(result).Inc()
	if result == "success" {
		PageCacheSize.Set(float64(size))
	}
}

func RecordFormValidation(form string, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	FormValidationsTotal.WithLabelValues(form, result).Inc()
}
