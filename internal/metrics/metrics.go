// Package metrics exposes Prometheus instrumentation for the stego service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stego"

// Operation labels.
const (
	OpHide   = "hide"
	OpReveal = "reveal"
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultCapacity = "capacity"
	ResultFormat   = "format"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Metrics holds every collector registered by the service.
type Metrics struct {
	// Stego operations
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	MessageBytes      *prometheus.HistogramVec
	CarrierBytes      *prometheus.HistogramVec

	// HTTP
	RequestsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a dedicated registry and registers all collectors on
// it, together with the Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Hide and reveal operations by result",
			},
			[]string{"operation", "result"},
		),

		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Hide and reveal latency distribution",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),

		MessageBytes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "message_bytes",
				Help:      "Size of hidden or revealed messages",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
			},
			[]string{"operation"},
		),

		CarrierBytes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "carrier_bytes",
				Help:      "Size of uploaded carrier images",
				Buckets:   prometheus.ExponentialBuckets(4096, 4, 9),
			},
			[]string{"operation"},
		),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),

		registry: reg,
	}
}

// ObserveOperation records one finished operation.
func (m *Metrics) ObserveOperation(op, result string, elapsed time.Duration) {
	m.OperationsTotal.WithLabelValues(op, result).Inc()
	m.OperationDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// ObserveMessage records the byte length of a hidden or revealed message.
func (m *Metrics) ObserveMessage(op string, size int) {
	m.MessageBytes.WithLabelValues(op).Observe(float64(size))
}

// ObserveCarrier records the encoded size of an uploaded carrier.
func (m *Metrics) ObserveCarrier(op string, size int) {
	m.CarrierBytes.WithLabelValues(op).Observe(float64(size))
}

// Registry returns the registry holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
