// Package prometheus exports guard activity as Prometheus counters.
//
// Wire it through the guard's hook system:
//
//	m := guardprom.New(prometheus.DefaultRegisterer)
//	g := scopeguard.New(scopeguard.WithHooks(m.Hooks()))
package prometheus

import (
	backend "github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/scopeguard"
)

// Metrics holds the counters fed by guard hooks. One Metrics value serves
// any number of guards.
type Metrics struct {
	actions   *backend.CounterVec
	recovered backend.Counter
	closed    *backend.CounterVec
}

// New creates the counters and registers them with reg. Pass nil to skip
// registration and register the collectors yourself via [Metrics.Collectors].
func New(reg backend.Registerer) *Metrics {
	m := &Metrics{
		actions: backend.NewCounterVec(backend.CounterOpts{
			Name: "scopeguard_actions_total",
			Help: "Cleanup actions executed, partitioned by chain disposition.",
		}, []string{"disposition"}),
		recovered: backend.NewCounter(backend.CounterOpts{
			Name: "scopeguard_recovered_panics_total",
			Help: "Panics recovered and swallowed while running cleanup actions.",
		}),
		closed: backend.NewCounterVec(backend.CounterOpts{
			Name: "scopeguard_closed_total",
			Help: "Guards closed, partitioned by chain disposition.",
		}, []string{"disposition"}),
	}

	if reg != nil {
		reg.MustRegister(m.Collectors()...)
	}
	return m
}

// Collectors returns the underlying collectors for manual registration.
func (m *Metrics) Collectors() []backend.Collector {
	return []backend.Collector{m.actions, m.recovered, m.closed}
}

// Hooks returns guard hooks that increment the counters. Compose with
// other hook sets via [scopeguard.Hooks.Join].
func (m *Metrics) Hooks() scopeguard.Hooks {
	return scopeguard.Hooks{
		OnAction: func(ev scopeguard.ActionEvent) {
			m.actions.WithLabelValues(ev.Disposition.String()).Inc()
			if ev.Recovered != nil {
				m.recovered.Inc()
			}
		},
		OnClose: func(ev scopeguard.CloseEvent) {
			m.closed.WithLabelValues(ev.Disposition.String()).Inc()
		},
	}
}
