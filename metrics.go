package solarsystem

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the state of an engine to Prometheus.
type Metrics struct {
	frames       prometheus.Counter
	elapsedDays  prometheus.Gauge
	daysPerFrame prometheus.Gauge
	burst        prometheus.Gauge
	scale        prometheus.Gauge
	missing      *prometheus.CounterVec
}

// NewMetrics creates the engine collectors and registers them on the provided registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solarsim_frames_total",
			Help: "Total number of simulated frames",
		}),
		elapsedDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarsim_elapsed_days",
			Help: "Simulated days since 2000 Jan 0.0 UT",
		}),
		daysPerFrame: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarsim_days_per_frame",
			Help: "Simulated days per frame before burst",
		}),
		burst: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarsim_burst_multiplier",
			Help: "Current burst speed multiplier",
		}),
		scale: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarsim_effective_scale",
			Help: "Effective scale applied to all bodies",
		}),
		missing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solarsim_missing_body_total",
			Help: "Operations skipped because the body is not in the scene",
		}, []string{"body"}),
	}
	reg.MustRegister(m.frames, m.elapsedDays, m.daysPerFrame, m.burst, m.scale, m.missing)
	return m
}

// RecordFrame records the clock state after a frame.
func (m *Metrics) RecordFrame(c *Clock) {
	m.frames.Inc()
	m.elapsedDays.Set(c.Elapsed())
	m.daysPerFrame.Set(c.DaysPerFrame())
	m.burst.Set(c.Burst())
}

// RecordScale records the effective scale.
func (m *Metrics) RecordScale(scale float64) {
	m.scale.Set(scale)
}

// RecordMissing records an operation skipped for a body absent from the scene.
func (m *Metrics) RecordMissing(id BodyID) {
	m.missing.WithLabelValues(id.String()).Inc()
}
