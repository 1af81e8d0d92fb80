// Package metrics exposes blaezi's scores as Prometheus metrics, written
// to a node_exporter textfile by the metrics command.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/blaezi/blaezi/internal/pressure"
)

// Metrics holds the Prometheus collectors for one registry.
type Metrics struct {
	registry *prometheus.Registry

	PillarPressure   *prometheus.GaugeVec
	BlaeziScore      prometheus.Gauge
	DSAScore         prometheus.Gauge
	HistorySnapshots prometheus.Gauge
	SnapshotsSaved   prometheus.Counter
}

// New creates the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PillarPressure: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "blaezi_pillar_pressure",
				Help: "Current pressure per pillar (0-100, higher needs more attention)",
			},
			[]string{"pillar"},
		),
		BlaeziScore: factory.NewGauge(prometheus.GaugeOpts{
			Name: "blaezi_score",
			Help: "Overall momentum score (0-100)",
		}),
		DSAScore: factory.NewGauge(prometheus.GaugeOpts{
			Name: "blaezi_dsa_score",
			Help: "DSA proficiency score (0-100)",
		}),
		HistorySnapshots: factory.NewGauge(prometheus.GaugeOpts{
			Name: "blaezi_history_snapshots",
			Help: "Number of daily pressure snapshots in history",
		}),
		SnapshotsSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "blaezi_snapshots_saved_total",
			Help: "Pressure snapshots saved by this process",
		}),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveProfile sets the per-pillar pressure gauges.
func (m *Metrics) ObserveProfile(p pressure.Profile) {
	for _, e := range p {
		m.PillarPressure.WithLabelValues(string(e.Pillar)).Set(float64(e.Pressure))
	}
}

// WriteTextfile writes every metric in the text exposition format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
