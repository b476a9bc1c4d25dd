package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ProbesTotal   *prometheus.CounterVec
	ProbeDuration prometheus.Histogram
	ChecksTotal   prometheus.Counter
	CheckDuration prometheus.Histogram
	StreamsAlive  prometheus.Gauge
	StreamsDead   prometheus.Gauge
	LastCheckTime prometheus.Gauge
}

func NewMetrics() *Metrics {
	return &Metrics{
		ProbesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "checker_probes_total",
			Help: "The total number of stream probes performed",
		}, []string{"result"}), // 'alive' or 'dead'
		ProbeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "checker_probe_duration_seconds",
			Help:    "Time spent probing a single stream",
			Buckets: prometheus.DefBuckets,
		}),
		ChecksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "checker_runs_total",
			Help: "The total number of completed playlist checks",
		}),
		CheckDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name: "checker_run_duration_seconds",
			Help: "Time spent on a full playlist check",
			// Runs pause between probes, so they last minutes, not seconds.
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		StreamsAlive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "checker_streams_alive",
			Help: "Alive streams seen by the most recent check",
		}),
		StreamsDead: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "checker_streams_dead",
			Help: "Dead streams seen by the most recent check",
		}),
		LastCheckTime: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "checker_last_check_timestamp_seconds",
			Help: "Unix time of the most recent completed check",
		}),
	}
}

func (m *Metrics) ObserveProbe(alive bool, duration time.Duration) {
	result := "dead"
	if alive {
		result = "alive"
	}
	m.ProbesTotal.WithLabelValues(result).Inc()
	m.ProbeDuration.Observe(duration.Seconds())
}

func (m *Metrics) ObserveRun(aliveCount, deadCount int, duration time.Duration) {
	m.ChecksTotal.Inc()
	m.CheckDuration.Observe(duration.Seconds())
	m.StreamsAlive.Set(float64(aliveCount))
	m.StreamsDead.Set(float64(deadCount))
	m.LastCheckTime.SetToCurrentTime()
}
