// Package metrics provides Prometheus instrumentation for fnwrap combinators.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for fnwrap components.
type Registry struct {
	// Gate metrics, shared by When, Debounce, Counts and Throttle wrappers.
	WrapCalls      *prometheus.CounterVec
	WrapFired      *prometheus.CounterVec
	WrapSuppressed *prometheus.CounterVec

	// Delayed-invocation metrics for RateLimit wrappers.
	DelayScheduled  *prometheus.CounterVec
	DelayFired      *prometheus.CounterVec
	DelayCanceled   *prometheus.CounterVec
	DelaySuperseded *prometheus.CounterVec
	DelayPending    *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by fnwrap components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		WrapCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fnwrap",
				Subsystem: "wrap",
				Name:      "calls_total",
				Help:      "Total number of calls to wrapped functions",
			},
			[]string{"wrapper_type", "wrapper_name"},
		),

		WrapFired: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fnwrap",
				Subsystem: "wrap",
				Name:      "fired_total",
				Help:      "Total number of calls that reached the target",
			},
			[]string{"wrapper_type", "wrapper_name"},
		),

		WrapSuppressed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fnwrap",
				Subsystem: "wrap",
				Name:      "suppressed_total",
				Help:      "Total number of calls suppressed by the invocation policy",
			},
			[]string{"wrapper_type", "wrapper_name"},
		),

		DelayScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fnwrap",
				Subsystem: "delay",
				Name:      "scheduled_total",
				Help:      "Total number of delayed invocations scheduled",
			},
			[]string{"wrapper_name"},
		),

		DelayFired: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fnwrap",
				Subsystem: "delay",
				Name:      "fired_total",
				Help:      "Total number of delayed invocations that fired",
			},
			[]string{"wrapper_name"},
		),

		DelayCanceled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fnwrap",
				Subsystem: "delay",
				Name:      "canceled_total",
				Help:      "Total number of delayed invocations canceled via their handle",
			},
			[]string{"wrapper_name"},
		),

		DelaySuperseded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fnwrap",
				Subsystem: "delay",
				Name:      "superseded_total",
				Help:      "Total number of delayed invocations replaced by a newer call",
			},
			[]string{"wrapper_name"},
		),

		DelayPending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "fnwrap",
				Subsystem: "delay",
				Name:      "pending",
				Help:      "Number of delayed invocations currently pending",
			},
			[]string{"wrapper_name"},
		),
	}
}
