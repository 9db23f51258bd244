package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор prometheus-метрик сервиса.
// Покрывает входящие HTTP запросы шлюза и исходящие запросы к платформе.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	realtimeEventsTotal *prometheus.CounterVec
}

// New создает и регистрирует коллектор метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled by the gateway",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests handled by the gateway",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to upstream services",
			ConstLabels: constLabels,
		}, []string{"target", "method", "status"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Duration of requests to upstream services",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "method"}),

		realtimeEventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "realtime_events_total",
			Help:        "Total number of real-time events received, by event name",
			ConstLabels: constLabels,
		}, []string{"event"}),
	}
}

// RecordHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordUpstreamRequest фиксирует исходящий запрос к внешнему сервису
func (m *Metrics) RecordUpstreamRequest(target, method string, status int, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(target, method, strconv.Itoa(status)).Inc()
	m.upstreamRequestDuration.WithLabelValues(target, method).Observe(duration.Seconds())
}

// RecordRealtimeEvent фиксирует полученное real-time событие
func (m *Metrics) RecordRealtimeEvent(event string) {
	m.realtimeEventsTotal.WithLabelValues(event).Inc()
}
