// Package observability exposes request metrics as Prometheus collectors,
// fed by transport hooks.
package observability

import (
	"context"
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"asyncopenai/internal/llmclient"
)

// RequestBuckets spans quick model lookups up to long completions, 50ms to 120s.
var RequestBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120}

// Metrics holds the collectors updated by the hooks
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asyncopenai_requests_total",
				Help: "Requests sent to the API by method, endpoint and outcome",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "asyncopenai_request_duration_seconds",
				Help:    "Request duration in seconds, body read included",
				Buckets: RequestBuckets,
			},
			[]string{"method", "endpoint"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "asyncopenai_requests_in_flight",
				Help: "Requests currently awaiting a response",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.RequestsTotal, m.RequestDuration, m.InFlight} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns transport hooks that update m
func (m *Metrics) Hooks() llmclient.Hooks {
	return llmclient.Hooks{
		OnRequestStart: func(ctx context.Context, _ llmclient.RequestInfo) context.Context {
			m.InFlight.Inc()
			return ctx
		},
		OnRequestEnd: func(_ context.Context, info llmclient.ResponseInfo) {
			m.InFlight.Dec()
			method := info.Method.String()
			m.RequestsTotal.WithLabelValues(method, info.Endpoint, statusLabel(info)).Inc()
			m.RequestDuration.WithLabelValues(method, info.Endpoint).Observe(info.Duration.Seconds())
		},
	}
}

// statusLabel is the HTTP status code, "timeout" or "error" when no usable response arrived
func statusLabel(info llmclient.ResponseInfo) string {
	var transportErr *llmclient.TransportError
	switch {
	case errors.As(info.Err, &transportErr) && transportErr.Timeout():
		return "timeout"
	case errors.As(info.Err, &transportErr):
		return "error"
	case info.StatusCode != 0:
		return strconv.Itoa(info.StatusCode)
	default:
		return "error"
	}
}
