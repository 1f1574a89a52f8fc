package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MeasurementsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartclimate_measurements_ingested_total",
			Help: "Total number of measurements stored, by ingestion path",
		},
		[]string{"source"}, // "http", "mqtt"
	)

	AlertsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartclimate_alerts_generated_total",
			Help: "Total number of alerts created, by origin",
		},
		[]string{"origin"}, // "threshold", "api"
	)

	NotificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartclimate_alert_notification_failures_total",
			Help: "Alert notifications that could not be delivered",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartclimate_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
