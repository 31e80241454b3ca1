// Package metrics exposes Prometheus instrumentation for HTTP routes and
// mood predictions.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mager/moodring/classifier"
	"github.com/mager/moodring/moodring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Registry *prometheus.Registry

	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	predictions *prometheus.CounterVec
}

// ProvideMetrics registers the service collectors on a fresh registry.
func ProvideMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moodring",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "moodring",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moodring",
			Name:      "predictions_total",
			Help:      "Mood predictions by outcome and predicted mood.",
		}, []string{"outcome", "mood"}),
	}

	reg.MustRegister(
		m.requests,
		m.latency,
		m.predictions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

var Options = ProvideMetrics

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.latency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Predictor is the subset of the classifier the instrumentation wraps.
type Predictor interface {
	PredictMood(ctx context.Context, f moodring.Features) (string, error)
}

type instrumentedPredictor struct {
	next    Predictor
	metrics *Metrics
}

// InstrumentPredictor counts every prediction made through next.
func (m *Metrics) InstrumentPredictor(next Predictor) Predictor {
	return &instrumentedPredictor{next: next, metrics: m}
}

func (p *instrumentedPredictor) PredictMood(ctx context.Context, f moodring.Features) (string, error) {
	label, err := p.next.PredictMood(ctx, f)
	if err != nil {
		outcome := "error"
		var perr *classifier.PredictionError
		if errors.As(err, &perr) {
			outcome = "failed"
		}
		p.metrics.predictions.WithLabelValues(outcome, "").Inc()
		return "", err
	}
	p.metrics.predictions.WithLabelValues("ok", label).Inc()
	return label, nil
}
