package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Loader Prometheus metrics.
var (
	LoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Total data loads by outcome",
		},
		[]string{"status"}, // "ok" / "error"
	)

	LoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time to read, decode and swap in both documents",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	DatasetRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Records in the current snapshot",
		},
		[]string{"collection"}, // "epochs" / "sightings"
	)

	DatasetLoadedTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Unix time of the last successful load",
		},
	)
)

var loadMetricsRegistered bool

// RegisterLoadMetrics registers loader metrics. Must be called once from main.
func RegisterLoadMetrics() {
	if loadMetricsRegistered {
		return
	}
	prometheus.MustRegister(LoadsTotal)
	prometheus.MustRegister(LoadDuration)
	prometheus.MustRegister(DatasetRecords)
	prometheus.MustRegister(DatasetLoadedTimestamp)
	loadMetricsRegistered = true
}

// LoadRecorder reports loader outcomes to the metrics above.
// Call RegisterLoadMetrics first to expose them on /metrics.
type LoadRecorder struct{}

// LoadFailed counts a failed load.
func (LoadRecorder) LoadFailed(d time.Duration) {
	LoadsTotal.WithLabelValues("error").Inc()
	LoadDuration.Observe(d.Seconds())
}

// LoadSucceeded counts a successful load and publishes the new snapshot size.
func (LoadRecorder) LoadSucceeded(epochs, sightings int, d time.Duration, loadedAt time.Time) {
	LoadsTotal.WithLabelValues("ok").Inc()
	LoadDuration.Observe(d.Seconds())
	DatasetRecords.WithLabelValues("epochs").Set(float64(epochs))
	DatasetRecords.WithLabelValues("sightings").Set(float64(sightings))
	DatasetLoadedTimestamp.Set(float64(loadedAt.Unix()))
}
