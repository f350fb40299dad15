package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the AI client.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	aiCallDuration  *prometheus.HistogramVec
	aiCallTotal     *prometheus.CounterVec
	matchRuns       prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	aiCallDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ai_call_duration_seconds",
		Help:    "Latency of matching/summarization calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	aiCallTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ai_calls_total",
		Help: "Total matching/summarization calls",
	}, []string{"operation", "outcome"})

	matchRuns := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "match_runs_total",
		Help: "Total matching runs triggered by sessions",
	})

	registry.MustRegister(requestDuration, requestTotal, aiCallDuration, aiCallTotal, matchRuns)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		aiCallDuration:  aiCallDuration,
		aiCallTotal:     aiCallTotal,
		matchRuns:       matchRuns,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records a completed HTTP request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveAICall records a matching/summarization call outcome.
func (s *MetricsService) ObserveAICall(operation string, err error, duration time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.aiCallDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
	s.aiCallTotal.WithLabelValues(operation, outcome).Inc()
	if operation == "match_jobs" {
		s.matchRuns.Inc()
	}
}
