package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements every hook interface on top of Prometheus collectors.
type Metrics struct {
	stages       *prometheus.CounterVec
	stageSeconds *prometheus.HistogramVec
	cells        prometheus.Counter
	cache        *prometheus.CounterVec
	cacheBytes   prometheus.Counter
	requests     *prometheus.CounterVec
	reqSeconds   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transpose",
			Name:      "stages_total",
			Help:      "Pipeline stages run, by stage and outcome.",
		}, []string{"stage", "outcome"}),
		stageSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "transpose",
			Name:      "stage_duration_seconds",
			Help:      "Time spent per pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"stage"}),
		cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "transpose",
			Name:      "transformed_cells_total",
			Help:      "Cells in grids handed to the transform stage.",
		}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transpose",
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups, by backend and result.",
		}, []string{"backend", "result"}),
		cacheBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "transpose",
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the result cache.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transpose",
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		reqSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "transpose",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	for _, c := range []prometheus.Collector{
		m.stages, m.stageSeconds, m.cells, m.cache, m.cacheBytes, m.requests, m.reqSeconds,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) stage(name string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.stages.WithLabelValues(name, outcome).Inc()
	m.stageSeconds.WithLabelValues(name).Observe(d.Seconds())
}

func (m *Metrics) OnParseStart(context.Context, string) {}

func (m *Metrics) OnParseComplete(_ context.Context, _ string, _ int, d time.Duration, err error) {
	m.stage("parse", d, err)
}

func (m *Metrics) OnTransformStart(_ context.Context, _ string, rows, cols int) {
	m.cells.Add(float64(rows * cols))
}

func (m *Metrics) OnTransformComplete(_ context.Context, _ string, d time.Duration, err error) {
	m.stage("transform", d, err)
}

func (m *Metrics) OnFormatStart(context.Context, string) {}

func (m *Metrics) OnFormatComplete(_ context.Context, _ string, _ int, d time.Duration, err error) {
	m.stage("format", d, err)
}

func (m *Metrics) OnCacheHit(_ context.Context, backend string) {
	m.cache.WithLabelValues(backend, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, backend string) {
	m.cache.WithLabelValues(backend, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, _ string, size int) {
	m.cacheBytes.Add(float64(size))
}

func (m *Metrics) OnRequest(context.Context, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.reqSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*Metrics)(nil)
	_ CacheHooks    = (*Metrics)(nil)
	_ HTTPHooks     = (*Metrics)(nil)
)
