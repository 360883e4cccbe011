package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "playerdata"

// ResultSuccess labels fetches that returned records.
const ResultSuccess = "success"

// Metrics records fetch activity. A nil *Metrics discards observations.
type Metrics struct {
	fetches  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rows     *prometheus.GaugeVec
}

// New registers the fetch metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		fetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "The total number of playerdata fetches by record kind and result",
		}, []string{"kind", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Latency of a full playerdata fetch, including row decoding",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		rows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fetch_rows",
			Help:      "Number of records returned by the last successful fetch",
		}, []string{"kind"}),
	}
}

// ObserveFetch records one completed fetch. result is ResultSuccess or the
// error kind that failed it; rows is only recorded on success.
func (m *Metrics) ObserveFetch(kind, result string, rows int, d time.Duration) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(kind, result).Inc()
	m.duration.WithLabelValues(kind).Observe(d.Seconds())
	if result == ResultSuccess {
		m.rows.WithLabelValues(kind).Set(float64(rows))
	}
}

// RegisterPool exports connection pool stats for db under the given name.
func RegisterPool(reg prometheus.Registerer, db *sql.DB, name string) error {
	return reg.Register(collectors.NewDBStatsCollector(db, name))
}
