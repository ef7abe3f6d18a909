package wrap

import (
	"time"

	"github.com/vnykmshr/fnwrap/pkg/metrics"
)

// WithMetrics decorates a conditionally dispatched function with Prometheus
// counters for calls, fires and suppressions, using the default registry.
// wrapperType identifies the combinator ("debounce", "counts", ...) and
// name identifies the instance.
func WithMetrics(w Wrapped, wrapperType, name string) Wrapped {
	return withRegistry(w, wrapperType, name, metrics.DefaultRegistry)
}

// WithMetricsConfig is like WithMetrics but uses a custom metrics
// configuration. When cfg.Enabled is false the function is returned
// undecorated.
func WithMetricsConfig(w Wrapped, wrapperType, name string, cfg metrics.Config) Wrapped {
	if !cfg.Enabled {
		return w
	}
	return withRegistry(w, wrapperType, name, registryFor(cfg))
}

func withRegistry(w Wrapped, wrapperType, name string, reg *metrics.Registry) Wrapped {
	return func(args ...any) (any, bool) {
		reg.WrapCalls.WithLabelValues(wrapperType, name).Inc()

		result, fired := w(args...)

		if fired {
			reg.WrapFired.WithLabelValues(wrapperType, name).Inc()
		} else {
			reg.WrapSuppressed.WithLabelValues(wrapperType, name).Inc()
		}
		return result, fired
	}
}

// RateLimitWithMetrics is RateLimit with Prometheus instrumentation on the
// default registry: scheduled, superseded, fired and canceled invocations
// are counted and the pending gauge tracks the outstanding timer.
func RateLimitWithMetrics(wait time.Duration, target Target, name string) DelayedFunc {
	return newDelayed(wait, target, delayHooksFor(metrics.DefaultRegistry, name))
}

// RateLimitWithMetricsConfig is RateLimitWithMetrics with a custom metrics
// configuration. When cfg.Enabled is false it behaves exactly like
// RateLimit.
func RateLimitWithMetricsConfig(wait time.Duration, target Target, name string, cfg metrics.Config) DelayedFunc {
	if !cfg.Enabled {
		return RateLimit(wait, target)
	}
	return newDelayed(wait, target, delayHooksFor(registryFor(cfg), name))
}

func registryFor(cfg metrics.Config) *metrics.Registry {
	if cfg.Registry != nil {
		return metrics.NewRegistry(cfg.Registry)
	}
	return metrics.DefaultRegistry
}

func delayHooksFor(reg *metrics.Registry, name string) *delayHooks {
	pending := reg.DelayPending.WithLabelValues(name)

	return &delayHooks{
		scheduled: func() {
			reg.DelayScheduled.WithLabelValues(name).Inc()
			pending.Inc()
		},
		superseded: func() {
			reg.DelaySuperseded.WithLabelValues(name).Inc()
			pending.Dec()
		},
		fired: func() {
			reg.DelayFired.WithLabelValues(name).Inc()
			pending.Dec()
		},
		canceled: func() {
			reg.DelayCanceled.WithLabelValues(name).Inc()
			pending.Dec()
		},
	}
}
