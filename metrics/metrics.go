package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects sort durations per algorithm on its own registry.
type Recorder struct {
	registry  *prometheus.Registry
	durations *prometheus.HistogramVec
	elements  *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortbench",
			Name:      "sort_duration_seconds",
			Help:      "Elapsed time of sorting one list",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 14),
		}, []string{"algorithm"}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortbench",
			Name:      "sorted_elements_total",
			Help:      "Number of list elements sorted",
		}, []string{"algorithm"}),
	}
	r.registry.MustRegister(r.durations, r.elements)

	return r
}

// Observe records one measurement, it satisfies bench.Observer.
func (r *Recorder) Observe(algorithm string, length int, d time.Duration) {
	r.durations.WithLabelValues(algorithm).Observe(d.Seconds())
	r.elements.WithLabelValues(algorithm).Add(float64(length))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile dumps the collected metrics in the text exposition format.
func (r *Recorder) WriteTextfile(fn string) error {
	if err := prometheus.WriteToTextfile(fn, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s with error: %w", fn, err)
	}
	return nil
}
