package web

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/auroraair/formkit/handler"
)

// Metrics counts portal activity.
type Metrics struct {
	Validations *prometheus.CounterVec
	Submissions *prometheus.CounterVec
	Uploads     *prometheus.CounterVec
	Requests    *prometheus.CounterVec
	Handlers    *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewMetrics registers the portal counters with reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formkit",
			Name:      "field_validations_total",
			Help:      "Field checks by form, field and outcome.",
		}, []string{"form", "field", "result"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formkit",
			Name:      "form_submissions_total",
			Help:      "Form submissions by form and outcome.",
		}, []string{"form", "result"}),
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formkit",
			Name:      "uploads_total",
			Help:      "CSV uploads by outcome.",
		}, []string{"result"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formkit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		Handlers: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "formkit",
			Name:      "handler_duration_seconds",
			Help:      "Time spent building a response, by handler.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"handler"}),
		gatherer: reg,
	}
	reg.MustRegister(m.Validations, m.Submissions, m.Uploads, m.Requests, m.Handlers)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func outcome(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

// timed observes how long the wrapped handler takes to return its response.
// Rendering the response is not included.
func timed[R any](m *Metrics, name string) handler.Decorator[R] {
	return func(next handler.HandlerFunc[R]) handler.HandlerFunc[R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			m.Handlers.WithLabelValues(name).Observe(time.Since(start).Seconds())
			return resp
		}
	}
}
