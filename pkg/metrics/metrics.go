package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admonitor_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admonitor_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	// Dashboard
	DashboardLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admonitor_dashboard_loads_total",
			Help: "Bucket loads by outcome (applied, stale, failed)",
		},
		[]string{"bucket", "outcome"},
	)

	DashboardRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "admonitor_dashboard_rows",
			Help: "Rows held by the dashboard for the selected bucket",
		},
	)

	AlertsReceivedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admonitor_alerts_received_total",
			Help: "Alert insert notifications received from the datastore",
		},
		[]string{"severity"},
	)

	SubscriptionReconnectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "admonitor_subscription_reconnects_total",
			Help: "Reconnections of the alert subscription listener",
		},
	)

	// Proxies
	NotifyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admonitor_notify_total",
			Help: "Webhook notifications by outcome",
		},
		[]string{"outcome"},
	)

	AnalysisTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admonitor_analysis_total",
			Help: "Analysis requests by outcome",
		},
		[]string{"outcome"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "admonitor_analysis_duration_seconds",
			Help:    "Latency of the chat-completion call",
			Buckets: []float64{.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)
)

// Resultados usados nos contadores
const (
	OutcomeSuccess       = "success"
	OutcomeUpstreamError = "upstream_error"
	OutcomeError         = "error"
	OutcomeNotConfigured = "not_configured"
	OutcomeRejected      = "rejected"

	OutcomeApplied = "applied"
	OutcomeStale   = "stale"
	OutcomeFailed  = "failed"
)
