package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds *prometheus.HistogramVec

	// Generator metrics
	GeneratorRepliesTotal    *prometheus.CounterVec
	GeneratorDurationSeconds *prometheus.HistogramVec
	TopicDetectionsTotal     *prometheus.CounterVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Store metrics
	StoreConversations prometheus.Gauge
	StoreProfiles      prometheus.Gauge
	StoreMessages      prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// Chat metrics
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "astra_chat_requests_total",
				Help: "Total number of chat requests by mode and status",
			},
			[]string{"mode", "status"}, // mode: greeting, topic; status: success, error
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "astra_chat_duration_seconds",
				Help:    "Chat request duration in seconds by mode",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60}, // Rules are sub-ms; LLM calls can take tens of seconds
			},
			[]string{"mode"},
		),

		// Generator metrics
		GeneratorRepliesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "astra_generator_replies_total",
				Help: "Total number of generated replies by backend and status",
			},
			[]string{"backend", "status"}, // backend: rules, llm; status: success, error, config_error
		),

		GeneratorDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "astra_generator_duration_seconds",
				Help:    "Reply generation duration in seconds by backend",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 5, 15, 30, 60},
			},
			[]string{"backend"},
		),

		TopicDetectionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "astra_topic_detections_total",
				Help: "Total number of topic classifications by detected topic",
			},
			[]string{"topic"}, // topic: courses, essays, waterloo, general, ...
		),

		// HTTP metrics
		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "astra_http_errors_total",
				Help: "Total HTTP errors by type and module",
			},
			[]string{"error_type", "module"}, // error_type: validation, not_found, internal
		),

		// Store metrics
		StoreConversations: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "astra_store_conversations",
				Help: "Current number of conversations held in the in-memory store",
			},
		),

		StoreProfiles: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "astra_store_profiles",
				Help: "Current number of student profiles held in the in-memory store",
			},
		),

		StoreMessages: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "astra_store_messages",
				Help: "Current number of messages held across all conversations",
			},
		),
	}

	return m
}

// RecordChatRequest records a completed chat request.
func (m *Metrics) RecordChatRequest(mode, status string, seconds float64) {
	if m == nil {
		return
	}
	m.ChatRequestsTotal.WithLabelValues(mode, status).Inc()
	m.ChatDurationSeconds.WithLabelValues(mode).Observe(seconds)
}

// RecordGeneration records a reply generation attempt.
func (m *Metrics) RecordGeneration(backend, status string, seconds float64) {
	if m == nil {
		return
	}
	m.GeneratorRepliesTotal.WithLabelValues(backend, status).Inc()
	m.GeneratorDurationSeconds.WithLabelValues(backend).Observe(seconds)
}

// RecordTopic records a detected conversation topic.
func (m *Metrics) RecordTopic(topic string) {
	if m == nil {
		return
	}
	m.TopicDetectionsTotal.WithLabelValues(topic).Inc()
}

// RecordHTTPError records an HTTP-level error.
func (m *Metrics) RecordHTTPError(errorType, module string) {
	if m == nil {
		return
	}
	m.HTTPErrorsTotal.WithLabelValues(errorType, module).Inc()
}

// UpdateStoreSizes updates the in-memory store gauges.
func (m *Metrics) UpdateStoreSizes(conversations, profiles, messages int) {
	if m == nil {
		return
	}
	m.StoreConversations.Set(float64(conversations))
	m.StoreProfiles.Set(float64(profiles))
	m.StoreMessages.Set(float64(messages))
}
