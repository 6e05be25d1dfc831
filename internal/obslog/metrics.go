package obslog

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics instruments one solve: duration, conflict counts by kind, and
// GA generations run. There is no HTTP server in this binary (spec §1
// treats any HTTP/UI layer as an external collaborator), so the registry
// is rendered once, as text, to wherever the caller points it — normally
// stderr, after the stdout response has already been written.
type Metrics struct {
	registry       *prometheus.Registry
	solveDuration  prometheus.Histogram
	conflictsByKind *prometheus.GaugeVec
	generationsRun prometheus.Counter
}

// NewMetrics registers a fresh set of collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "scheduler_solve_duration_seconds",
		Help:    "Wall-clock time spent solving one request.",
		Buckets: prometheus.DefBuckets,
	})
	conflicts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "scheduler_conflicts_total",
		Help: "Conflict counts by kind for the most recent GA solve.",
	}, []string{"kind"})
	generations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_ga_generations_run_total",
		Help: "Cumulative GA generations run across solves in this process.",
	})

	reg.MustRegister(duration, conflicts, generations)
	return &Metrics{registry: reg, solveDuration: duration, conflictsByKind: conflicts, generationsRun: generations}
}

// ObserveSolve records one solve's wall-clock duration.
func (m *Metrics) ObserveSolve(d time.Duration) {
	m.solveDuration.Observe(d.Seconds())
}

// RecordConflicts sets the per-kind gauge values for the most recent GA
// solve (gauges, not counters, since only the latest solve's breakdown is
// meaningful in a one-shot process).
func (m *Metrics) RecordConflicts(counts map[string]int) {
	for kind, count := range counts {
		m.conflictsByKind.WithLabelValues(kind).Set(float64(count))
	}
}

// AddGenerations increments the cumulative GA generations counter.
func (m *Metrics) AddGenerations(n int) {
	m.generationsRun.Add(float64(n))
}

// Dump renders the registry in Prometheus text exposition format to w.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
