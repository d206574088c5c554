package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromHooks records build and cache events as Prometheus metrics on its
// own registry.
type PromHooks struct {
	registry *prometheus.Registry

	builds      *prometheus.CounterVec
	buildTime   prometheus.Histogram
	elements    prometheus.Histogram
	diagnostics *prometheus.CounterVec
	exports     *prometheus.CounterVec
	exportBytes prometheus.Counter
	cacheOps    *prometheus.CounterVec
	cacheBytes  prometheus.Counter
}

// NewPromHooks creates the metrics and registers them on a fresh registry.
func NewPromHooks() *PromHooks {
	h := &PromHooks{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgkit_builds_total",
				Help: "Scene builds by outcome.",
			},
			[]string{"status"},
		),
		buildTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "svgkit_build_duration_seconds",
			Help:    "Time spent building a scene into a document.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		elements: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "svgkit_build_elements",
			Help:    "Top-level elements drawn per build.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgkit_diagnostics_total",
				Help: "Diagnostics reported while building, by kind and element.",
			},
			[]string{"kind", "element"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgkit_exports_total",
				Help: "Document writes by outcome.",
			},
			[]string{"status"},
		),
		exportBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "svgkit_export_bytes_total",
			Help: "Bytes of markup written.",
		}),
		cacheOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgkit_cache_operations_total",
				Help: "Render cache operations by backend and result.",
			},
			[]string{"backend", "result"},
		),
		cacheBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "svgkit_cache_set_bytes_total",
			Help: "Bytes written to the render cache.",
		}),
	}
	h.registry.MustRegister(
		h.builds, h.buildTime, h.elements, h.diagnostics,
		h.exports, h.exportBytes, h.cacheOps, h.cacheBytes,
	)
	return h
}

// Registry returns the registry holding the metrics.
func (h *PromHooks) Registry() *prometheus.Registry { return h.registry }

// WriteTextfile writes the current metrics in the text exposition format,
// for the node_exporter textfile collector.
func (h *PromHooks) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, h.registry)
}

func (h *PromHooks) OnBuildStart(context.Context, string) {}

func (h *PromHooks) OnBuildComplete(_ context.Context, _ string, elements int, d time.Duration, err error) {
	h.builds.WithLabelValues(status(err)).Inc()
	h.buildTime.Observe(d.Seconds())
	if err == nil {
		h.elements.Observe(float64(elements))
	}
}

func (h *PromHooks) OnDiagnostic(_ context.Context, kind, element string) {
	h.diagnostics.WithLabelValues(kind, element).Inc()
}

func (h *PromHooks) OnExport(_ context.Context, _ string, size int, err error) {
	h.exports.WithLabelValues(status(err)).Inc()
	if err == nil {
		h.exportBytes.Add(float64(size))
	}
}

func (h *PromHooks) OnCacheHit(_ context.Context, backend string) {
	h.cacheOps.WithLabelValues(backend, "hit").Inc()
}

func (h *PromHooks) OnCacheMiss(_ context.Context, backend string) {
	h.cacheOps.WithLabelValues(backend, "miss").Inc()
}

func (h *PromHooks) OnCacheSet(_ context.Context, backend string, size int) {
	h.cacheOps.WithLabelValues(backend, "set").Inc()
	h.cacheBytes.Add(float64(size))
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

var (
	_ BuildHooks = (*PromHooks)(nil)
	_ CacheHooks = (*PromHooks)(nil)
)
