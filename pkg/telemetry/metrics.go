// Package telemetry keeps per-run Prometheus counters for the simulation.
//
// Every Metrics owns its registry, so a process can run several
// simulations without their counters mixing.
package telemetry

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/cranes/pkg/crane"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Namespace prefixes every metric name.
const Namespace = "cranes"

// Metrics provides Prometheus counters for cranes runs.
type Metrics struct {
	runs        *prometheus.CounterVec
	lifts       *prometheus.CounterVec
	moved       *prometheus.CounterVec
	shortLifts  *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	stacks      prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates a collector with a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "runs_total",
				Help:      "Total number of simulation runs",
			},
			[]string{"mode", "status"},
		),
		lifts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "lifts_total",
				Help:      "Total number of lift instructions applied",
			},
			[]string{"mode"},
		),
		moved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "crates_moved_total",
				Help:      "Total number of crates moved",
			},
			[]string{"mode"},
		),
		shortLifts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "short_lifts_total",
				Help:      "Lifts that asked for more crates than the origin held",
			},
			[]string{"mode"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of a simulation run in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 6),
			},
			[]string{"mode"},
		),
		stacks: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "stacks",
				Help:      "Number of stacks on the platform",
			},
		),
	}

	registry.MustRegister(
		m.runs,
		m.lifts,
		m.moved,
		m.shortLifts,
		m.runDuration,
		m.stacks,
	)

	return m
}

// RecordRun records a finished run. err is the run's failure, if any.
func (m *Metrics) RecordRun(mode crane.Mode, stats crane.Stats, stacks int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	label := mode.String()

	m.runs.WithLabelValues(label, status).Inc()
	m.lifts.WithLabelValues(label).Add(float64(stats.Lifts))
	m.moved.WithLabelValues(label).Add(float64(stats.Moved))
	m.shortLifts.WithLabelValues(label).Add(float64(stats.ShortLifts))
	m.runDuration.WithLabelValues(label).Observe(duration.Seconds())
	m.stacks.Set(float64(stacks))
}

// Registry returns the registry holding the counters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Sample is one gathered metric value.
type Sample struct {
	Name   string            `json:"name" yaml:"name" toml:"name"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`
	Value  float64           `json:"value" yaml:"value" toml:"value"`
}

// String formats the sample in the Prometheus text style.
func (s Sample) String() string {
	if len(s.Labels) == 0 {
		return s.Name + " " + formatValue(s.Value)
	}
	keys := make([]string, 0, len(s.Labels))
	for k := range s.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=\"" + s.Labels[k] + "\""
	}
	return s.Name + "{" + strings.Join(pairs, ",") + "} " + formatValue(s.Value)
}

// Snapshot gathers counters and gauges, sorted by name. Histograms are
// reported as their sample count.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Labels: labelsOf(metric)}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Value = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.Value = metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				s.Name += "_count"
				s.Value = float64(metric.GetHistogram().GetSampleCount())
			default:
				continue
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}

func labelsOf(metric *dto.Metric) map[string]string {
	pairs := metric.GetLabel()
	if len(pairs) == 0 {
		return nil
	}
	labels := make(map[string]string, len(pairs))
	for _, lp := range pairs {
		labels[lp.GetName()] = lp.GetValue()
	}
	return labels
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
