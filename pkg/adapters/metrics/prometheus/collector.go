package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/loktar00/graphiti-state/internal/state"
)

// Collector exposes state marker metrics via Prometheus
type Collector struct {
	stateSaves      prometheus.Counter
	stateLoads      prometheus.Counter
	stateLoadMisses prometheus.Counter

	episodeCount prometheus.Gauge
	errorLogSize prometheus.Gauge
	initialized  prometheus.Gauge
	indicesBuilt prometheus.Gauge
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		stateSaves: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "graphiti_state_saves_total",
				Help: "Total number of state marker writes",
			},
		),
		stateLoads: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "graphiti_state_loads_total",
				Help: "Total number of state marker reads",
			},
		),
		stateLoadMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "graphiti_state_load_misses_total",
				Help: "Total number of state marker reads that found no marker",
			},
		),
		episodeCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "graphiti_episode_count",
				Help: "Episodes recorded in the last observed state marker",
			},
		),
		errorLogSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "graphiti_error_log_size",
				Help: "Error log entries in the last observed state marker",
			},
		),
		initialized: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "graphiti_state_initialized",
				Help: "Whether the last observed state marker is initialized (0 or 1)",
			},
		),
		indicesBuilt: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "graphiti_indices_built",
				Help: "Whether graph indices were built per the last observed state marker (0 or 1)",
			},
		),
	}
}

// IncStateSaves increments the count of state marker writes
func (c *Collector) IncStateSaves() {
	c.stateSaves.Inc()
}

// IncStateLoads increments the count of state marker reads
func (c *Collector) IncStateLoads() {
	c.stateLoads.Inc()
}

// IncStateLoadMisses increments the count of reads that found no marker
func (c *Collector) IncStateLoadMisses() {
	c.stateLoadMisses.Inc()
}

// ObserveState updates the state gauges from a loaded marker
func (c *Collector) ObserveState(st *state.State) {
	c.episodeCount.Set(float64(st.EpisodeCount))
	c.errorLogSize.Set(float64(len(st.ErrorLog)))
	c.initialized.Set(boolGauge(st.Initialized))
	c.indicesBuilt.Set(boolGauge(st.IndicesBuilt))
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
