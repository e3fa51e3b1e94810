// Package metrics exposes the hub's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hub"

// Metrics groups the collectors updated while serving the hub.
type Metrics struct {
	registry *prometheus.Registry

	PageRenders   *prometheus.CounterVec
	FilterResults prometheus.Histogram
	MissingImages *prometheus.CounterVec
	CatalogSize   prometheus.Gauge
}

// New registers the hub collectors (plus Go and process collectors) on a
// private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Hub renders by output format and whether a query was applied.",
		}, []string{"format", "filtered"}),
		FilterResults: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_results",
			Help:      "Number of entries left after filtering.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		}),
		MissingImages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "missing_images_total",
			Help:      "Preview images referenced by the catalog but absent from the assets dir.",
		}, []string{"image"}),
		CatalogSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_entries",
			Help:      "Number of dashboards in the catalog.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
