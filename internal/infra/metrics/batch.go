package metrics

import (
	"time"

	"reservation-engine/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "reservation_engine"

// BatchMetrics records series batch outcomes in Prometheus.
type BatchMetrics struct {
	items    *prometheus.CounterVec
	retries  *prometheus.CounterVec
	batches  *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewBatchMetrics(reg prometheus.Registerer) (*BatchMetrics, error) {
	m := &BatchMetrics{
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_items_total",
			Help:      "Occurrence mutations by batch phase and result.",
		}, []string{"phase", "result"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_retries_total",
			Help:      "Occurrence mutations that needed a retry.",
		}, []string{"phase"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Finished series batches by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of a series batch.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.items, m.retries, m.batches, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *BatchMetrics) ObserveItem(phase string, kind string, attempts int) {
	m.items.WithLabelValues(phase, kind).Inc()
	if attempts > 1 {
		m.retries.WithLabelValues(phase).Inc()
	}
}

func (m *BatchMetrics) ObserveBatch(result *commands.BatchResult, elapsed time.Duration) {
	m.batches.WithLabelValues(result.Outcome()).Inc()
	m.duration.Observe(elapsed.Seconds())
}
