package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridshift/nodegrid"
)

// searchMetrics holds the gauges describing one solve run. They live in a
// private registry that is written once, as a node_exporter textfile.
type searchMetrics struct {
	reg *prometheus.Registry

	expanded   prometheus.Gauge
	generated  prometheus.Gauge
	duplicates prometheus.Gauge
	maxOpen    prometheus.Gauge
	moves      prometheus.Gauge
	found      prometheus.Gauge
	compressed prometheus.Gauge
	duration   prometheus.Gauge
}

func newSearchMetrics() *searchMetrics {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gridshift",
			Subsystem: "search",
			Name:      name,
			Help:      help,
		})
	}
	m := &searchMetrics{
		reg:        prometheus.NewRegistry(),
		expanded:   gauge("expanded_states", "States expanded by the search."),
		generated:  gauge("generated_states", "Successor states generated by the search."),
		duplicates: gauge("duplicate_states", "Open-list entries discarded as already expanded."),
		maxOpen:    gauge("open_list_peak", "Largest size the open list reached."),
		moves:      gauge("solution_moves", "Length of the solution found, -1 if none."),
		found:      gauge("solution_found", "1 if the payload can reach the target, else 0."),
		compressed: gauge("compressed", "1 if the equivalence-compressed state was searched."),
		duration:   gauge("duration_seconds", "Wall time of the search."),
	}
	m.reg.MustRegister(m.expanded, m.generated, m.duplicates, m.maxOpen,
		m.moves, m.found, m.compressed, m.duration)
	return m
}

// observe records the outcome of one search.
func (m *searchMetrics) observe(sol *nodegrid.Solution, elapsed time.Duration) {
	st := sol.Result.Stats
	m.expanded.Set(float64(st.Expanded))
	m.generated.Set(float64(st.Generated))
	m.duplicates.Set(float64(st.Duplicates))
	m.maxOpen.Set(float64(st.MaxOpen))
	m.moves.Set(-1)
	m.found.Set(0)
	if sol.Result.Found {
		m.moves.Set(float64(len(sol.Result.Moves)))
		m.found.Set(1)
	}
	m.compressed.Set(0)
	if sol.Compressed {
		m.compressed.Set(1)
	}
	m.duration.Set(elapsed.Seconds())
}

// write stores the registry at path in the Prometheus text format.
func (m *searchMetrics) write(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
