package prom

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "poolctl"

type Metrics struct {
	registry     *prometheus.Registry
	sessions     *prometheus.CounterVec
	instructions *prometheus.CounterVec
	duration     prometheus.Histogram
}

var _ ports.SettlementMetrics = (*Metrics)(nil)

// NewMetrics registers the settlement collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Sessions that reached a terminal state.",
		}, []string{"state"}),
		instructions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_instructions_total",
			Help:      "Settlement instructions executed, by strategy.",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Wall time from session open to close or abort.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	m.registry.MustRegister(m.sessions, m.instructions, m.duration)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) SessionEnded(state domain.SessionState, elapsed time.Duration) {
	m.sessions.WithLabelValues(state.String()).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) InstructionExecuted(strategy domain.Strategy) {
	m.instructions.WithLabelValues(strategy.String()).Inc()
}

// Sample is one flattened counter or histogram series.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot gathers the registry into sorted samples. Histograms contribute
// their _count and _sum series.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var samples []Sample
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := formatLabels(metric.GetLabel())
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				samples = append(samples, Sample{Name: family.GetName(), Labels: labels, Value: metric.GetCounter().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				samples = append(samples,
					Sample{Name: family.GetName() + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: family.GetName() + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})

	return samples, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", pair.GetName(), pair.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
