// Package telemetry exports search metrics as Prometheus collectors.
//
// A Recorder owns its registry, so several recorders (one per test, one per
// server) never collide on the process-wide default registry.
package telemetry

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/mazesearch/search"
)

// Outcome label values of mazesearch_runs_total.
const (
	OutcomeSolved  = "solved"
	OutcomeNoPath  = "no_path"
	OutcomeAborted = "aborted"
)

const (
	namespace      = "mazesearch"
	labelAlgorithm = "algorithm"
	labelOutcome   = "outcome"
)

// Recorder aggregates search.Metrics into Prometheus collectors.
// It is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	peak     *prometheus.HistogramVec
	duration *prometheus.HistogramVec
	cost     *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of search runs by outcome.",
			},
			[]string{labelAlgorithm, labelOutcome},
		),
		expanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "nodes_expanded",
				Help:      "Nodes expanded per run.",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{labelAlgorithm},
		),
		peak: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "peak_memory",
				Help:      "Largest frontier plus visited size per run.",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{labelAlgorithm},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Wall-clock duration of a search run.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
			},
			[]string{labelAlgorithm},
		),
		cost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "path_cost",
				Help:      "Cost of the last solution found.",
			},
			[]string{labelAlgorithm},
		),
	}
	r.registry.MustRegister(r.runs, r.expanded, r.peak, r.duration, r.cost)

	return r
}

// Observe records one run. Aborted runs only count towards runs_total.
func (r *Recorder) Observe(res *search.Metrics) {
	if res == nil {
		return
	}
	alg := res.Algorithm.String()
	switch {
	case res.Err != nil:
		r.runs.WithLabelValues(alg, OutcomeAborted).Inc()
		return
	case res.Success:
		r.runs.WithLabelValues(alg, OutcomeSolved).Inc()
		r.cost.WithLabelValues(alg).Set(res.Cost)
	default:
		r.runs.WithLabelValues(alg, OutcomeNoPath).Inc()
	}
	r.expanded.WithLabelValues(alg).Observe(float64(res.Expanded))
	r.peak.WithLabelValues(alg).Observe(float64(res.PeakMemory))
	r.duration.WithLabelValues(alg).Observe(res.Elapsed.Seconds())
}

// ObserveAll records every result in results.
func (r *Recorder) ObserveAll(results []*search.Metrics) {
	for _, res := range results {
		r.Observe(res)
	}
}

// Registry exposes the underlying registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteText dumps all collected families in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
