package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mockapi"

var (
	PaymentsInitiated = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "payments_initiated_total", Help: "Mock payments initiated"},
		[]string{"provider"},
	)
	PaymentTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "payment_status_transitions_total", Help: "Mock payment status changes applied by polls"},
		[]string{"provider", "status"},
	)

	LoadSheddingStage   = promauto.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "loadshedding_stage", Help: "Current simulated load-shedding stage"})
	LoadSheddingChanges = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "loadshedding_stage_changes_total", Help: "Simulated stage redraws"})

	TransportEstimates = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "transport_estimates_total", Help: "Ride estimates served"})
	SurgeMultiplier    = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "surge_multiplier",
		Help:      "Surge multiplier applied to ride estimates",
		Buckets:   []float64{1.0, 1.1, 1.2, 1.3, 1.5, 1.8, 2.0, 2.5},
	})

	WeatherLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "weather_lookups_total", Help: "Weather lookups by resolved city"},
		[]string{"city"},
	)
	WeatherAlerts = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "weather_alerts_total", Help: "Synthetic weather alerts issued"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
