package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fixster API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixster",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fixster",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Model call duration
	ModelDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fixster",
			Subsystem: "api",
			Name:      "model_duration_seconds",
			Help:      "Generative model call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model"},
	)

	// Model call failures
	ModelErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixster",
			Subsystem: "api",
			Name:      "model_errors_total",
			Help:      "Total generative model call failures",
		},
		[]string{"operation"},
	)

	// Projects
	ProjectsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fixster",
			Subsystem: "api",
			Name:      "projects_created_total",
			Help:      "Total projects created",
		},
	)

	MessagesAppendedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fixster",
			Subsystem: "api",
			Name:      "messages_appended_total",
			Help:      "Total chat messages appended to projects",
		},
	)

	// Support mail
	SupportMailTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixster",
			Subsystem: "api",
			Name:      "support_mail_total",
			Help:      "Total support mail hand-offs by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordRequest records one HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(duration)
}

// RecordModelCall records one completed model call.
func RecordModelCall(model string, duration float64) {
	ModelDuration.WithLabelValues(model).Observe(duration)
}

// RecordModelError records one failed or malformed model call.
func RecordModelError(operation string) {
	ModelErrorsTotal.WithLabelValues(operation).Inc()
}

// RecordSupportMail records one support mail attempt.
func RecordSupportMail(outcome string) {
	SupportMailTotal.WithLabelValues(outcome).Inc()
}
