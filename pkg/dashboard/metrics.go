// pkg/dashboard/metrics.go
package dashboard

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
)

// Metrics tracks dashboard loads
type Metrics struct {
	loads      *prometheus.CounterVec
	duration   prometheus.Histogram
	candidates prometheus.Gauge
}

// NewMetrics creates the load collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "loads_total",
			Help:      "Dashboard loads by result (success or the failure kind).",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "load_duration_seconds",
			Help:      "Time spent querying candidates and computing views.",
			Buckets:   prometheus.DefBuckets,
		}),
		candidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dashboard",
			Name:      "candidates_loaded",
			Help:      "Candidates in the most recent successful load.",
		}),
	}

	for _, c := range []prometheus.Collector{m.loads, m.duration, m.candidates} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeSuccess(candidates int, d time.Duration) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues("success").Inc()
	m.duration.Observe(d.Seconds())
	m.candidates.Set(float64(candidates))
}

func (m *Metrics) observeFailure(err error, d time.Duration) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(apperrors.KindOf(err).String()).Inc()
	m.duration.Observe(d.Seconds())
}
