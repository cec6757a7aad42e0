package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements the runner's metrics sink on Prometheus.
type Metrics struct {
	tickDuration prometheus.Histogram
	actorsAlive  prometheus.Gauge
	projectiles  prometheus.Gauge
	events       prometheus.Counter
}

// NewMetrics registers the gameplay metrics on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		tickDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "shooter_tick_duration_seconds",
			Help:    "Wall time of one simulation tick.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		actorsAlive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "shooter_actors_alive",
			Help: "Live actors in the current match.",
		}),
		projectiles: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "shooter_projectiles_in_flight",
			Help: "Projectiles currently simulated.",
		}),
		events: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shooter_events_total",
			Help: "Gameplay events emitted.",
		}),
	}
}

func (m *Metrics) ObserveTick(d time.Duration) { m.tickDuration.Observe(d.Seconds()) }
func (m *Metrics) SetAlive(n int)              { m.actorsAlive.Set(float64(n)) }
func (m *Metrics) SetProjectiles(n int)        { m.projectiles.Set(float64(n)) }
func (m *Metrics) CountEvents(n int)           { m.events.Add(float64(n)) }
