package wrap

import (
	"errors"
	"testing"
	"time"

	"github.com/vnykmshr/fnwrap/internal/testutil"
	fwerrors "github.com/vnykmshr/fnwrap/pkg/common/errors"
)

func TestThrottle_Validation(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		wantErr  bool
	}{
		{"positive", 10 * time.Millisecond, false},
		{"zero", 0, true},
		{"negative", -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, _ := recordingTarget(nil)
			w, err := Throttle(tt.interval, target)

			if tt.wantErr {
				testutil.AssertError(t, err)
				if !errors.Is(err, fwerrors.ErrInvalidConfiguration) {
					t.Errorf("error should wrap ErrInvalidConfiguration, got %v", err)
				}
				return
			}
			testutil.AssertNoError(t, err)
			if w == nil {
				t.Fatal("expected wrapped function")
			}
		})
	}
}

func TestThrottle_LeadingEdge(t *testing.T) {
	target, calls := recordingTarget("ok")
	w, err := Throttle(time.Second, target)
	testutil.AssertNoError(t, err)

	result, fired := w()
	testutil.AssertEqual(t, fired, true)
	testutil.AssertEqual(t, result.(string), "ok")

	// Within the interval every further call is suppressed.
	for i := 0; i < 3; i++ {
		_, fired = w()
		testutil.AssertEqual(t, fired, false)
	}
	testutil.AssertEqual(t, len(*calls), 1)
}

func TestThrottle_FiresAgainAfterInterval(t *testing.T) {
	target, calls := recordingTarget(nil)
	w, err := Throttle(20*time.Millisecond, target)
	testutil.AssertNoError(t, err)

	w()
	testutil.Eventually(t, testutil.TestTimeout, func() bool {
		_, fired := w()
		return fired
	}, "throttle should open again after the interval")

	if len(*calls) < 2 {
		t.Fatalf("target fired %d times, want at least 2", len(*calls))
	}
}

func TestThrottle_ForwardsBoundArgs(t *testing.T) {
	target, calls := recordingTarget(nil)
	w, err := Throttle(time.Second, target, "lead")
	testutil.AssertNoError(t, err)

	w("call")

	got := (*calls)[0]
	testutil.AssertEqual(t, got[0].(string), "lead")
	testutil.AssertEqual(t, got[1].(string), "call")
}
