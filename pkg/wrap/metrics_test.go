package wrap

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/fnwrap/internal/testutil"
	"github.com/vnykmshr/fnwrap/pkg/metrics"
)

func newTestRegistry() (metrics.Config, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return metrics.Config{Enabled: true, Registry: reg}, reg
}

func TestWithMetricsConfig_CountsCallsFiresSuppressions(t *testing.T) {
	cfg, _ := newTestRegistry()
	mreg := metrics.NewRegistry(cfg.Registry)

	target, _ := recordingTarget("v")
	w := withRegistry(Counts(2, target), "counts", "test", mreg)

	for i := 0; i < 5; i++ {
		w()
	}

	calls := promtestutil.ToFloat64(mreg.WrapCalls.WithLabelValues("counts", "test"))
	fired := promtestutil.ToFloat64(mreg.WrapFired.WithLabelValues("counts", "test"))
	suppressed := promtestutil.ToFloat64(mreg.WrapSuppressed.WithLabelValues("counts", "test"))

	testutil.AssertEqual(t, calls, 5.0)
	testutil.AssertEqual(t, fired, 2.0)
	testutil.AssertEqual(t, suppressed, 3.0)
}

func TestWithMetricsConfig_PreservesBehavior(t *testing.T) {
	cfg, _ := newTestRegistry()

	target, _ := recordingTarget(7)
	w := WithMetricsConfig(Counts(1, target), "counts", "behavior", cfg)

	result, fired := w()
	testutil.AssertEqual(t, fired, true)
	testutil.AssertEqual(t, result.(int), 7)

	result, fired = w()
	testutil.AssertEqual(t, fired, false)
	if result != nil {
		t.Errorf("suppressed call returned %v, want nil", result)
	}
}

func TestWithMetricsConfig_DisabledReturnsUndecorated(t *testing.T) {
	target, _ := recordingTarget(nil)
	base := Counts(1, target)

	w := WithMetricsConfig(base, "counts", "disabled", metrics.Config{Enabled: false})

	_, fired := w()
	testutil.AssertEqual(t, fired, true)
}

func TestRateLimitWithMetricsConfig_DelayLifecycle(t *testing.T) {
	cfg, _ := newTestRegistry()
	mreg := metrics.NewRegistry(cfg.Registry)

	target, fires, _ := countingTarget()
	w := newDelayed(testWait, target, delayHooksFor(mreg, "delay"))

	// First call is superseded, second fires, third is canceled.
	w("a")
	w("b")
	testutil.Eventually(t, testutil.TestTimeout, func() bool {
		return fires.Load() == 1
	}, "second invocation should fire")

	cancel := w("c")
	cancel()

	scheduled := promtestutil.ToFloat64(mreg.DelayScheduled.WithLabelValues("delay"))
	superseded := promtestutil.ToFloat64(mreg.DelaySuperseded.WithLabelValues("delay"))
	firedCount := promtestutil.ToFloat64(mreg.DelayFired.WithLabelValues("delay"))
	canceled := promtestutil.ToFloat64(mreg.DelayCanceled.WithLabelValues("delay"))
	pending := promtestutil.ToFloat64(mreg.DelayPending.WithLabelValues("delay"))

	testutil.AssertEqual(t, scheduled, 3.0)
	testutil.AssertEqual(t, superseded, 1.0)
	testutil.AssertEqual(t, firedCount, 1.0)
	testutil.AssertEqual(t, canceled, 1.0)
	testutil.AssertEqual(t, pending, 0.0)
}

func TestRateLimitWithMetricsConfig_DisabledStillDelays(t *testing.T) {
	target, fires, _ := countingTarget()
	w := RateLimitWithMetricsConfig(10*time.Millisecond, target, "off", metrics.Config{Enabled: false})

	w()
	testutil.Eventually(t, testutil.TestTimeout, func() bool {
		return fires.Load() == 1
	}, "invocation should fire without metrics")
}
