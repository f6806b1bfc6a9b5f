package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the report backend.
type Metrics struct {
	DatasetObservations prometheus.Gauge
	DatasetThresholds   prometheus.Gauge
	DatasetAssociations prometheus.Gauge
	LoaderSkippedRows   prometheus.Gauge

	HotspotRequests     *prometheus.CounterVec // labels: outcome={ok,empty,bad_request,error}
	AggregationDuration prometheus.Histogram
}

// NewMetrics creates and registers all collectors with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DatasetObservations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hotspots",
			Name:      "dataset_observations",
			Help:      "Observation rows loaded at startup.",
		}),
		DatasetThresholds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hotspots",
			Name:      "dataset_thresholds",
			Help:      "Threshold definitions loaded at startup.",
		}),
		DatasetAssociations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hotspots",
			Name:      "dataset_tmdl_associations",
			Help:      "TMDL associations loaded at startup.",
		}),
		LoaderSkippedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hotspots",
			Name:      "loader_skipped_rows",
			Help:      "Dataset rows skipped during the startup load.",
		}),
		HotspotRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hotspots",
			Name:      "hotspot_requests_total",
			Help:      "Hotspot view computations by outcome.",
		}, []string{"outcome"}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hotspots",
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of one filter-to-summary recomputation.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
	}

	prometheus.MustRegister(
		m.DatasetObservations,
		m.DatasetThresholds,
		m.DatasetAssociations,
		m.LoaderSkippedRows,
		m.HotspotRequests,
		m.AggregationDuration,
	)

	return m
}
