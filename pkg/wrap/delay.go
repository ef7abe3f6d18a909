package wrap

import (
	"sync"
	"time"
)

// CancelFunc cancels one specific scheduled invocation. It is idempotent
// and becomes a no-op once the invocation has fired or been superseded.
type CancelFunc func()

// DelayedFunc schedules its target to run later and hands back a
// cancellation handle for that specific scheduling.
type DelayedFunc func(args ...any) CancelFunc

// delayHooks receives lifecycle notifications from a delayed invoker.
// All methods are safe on a nil receiver.
type delayHooks struct {
	scheduled  func()
	superseded func()
	fired      func()
	canceled   func()
}

func (h *delayHooks) onScheduled() {
	if h != nil && h.scheduled != nil {
		h.scheduled()
	}
}

func (h *delayHooks) onSuperseded() {
	if h != nil && h.superseded != nil {
		h.superseded()
	}
}

func (h *delayHooks) onFired() {
	if h != nil && h.fired != nil {
		h.fired()
	}
}

func (h *delayHooks) onCanceled() {
	if h != nil && h.canceled != nil {
		h.canceled()
	}
}

// RateLimit returns a function that schedules target(args...) to run after
// wait, with the arguments captured at call time. Each instance keeps at
// most one invocation pending: a new call stops any invocation that has
// not yet fired before scheduling its own (trailing-call debounce).
//
// The returned CancelFunc cancels only the invocation produced by that
// call. Canceling after the invocation fired, or after a later call
// superseded it, is a no-op; calling it twice is the same as once.
//
// A wait of zero or less fires on the soonest timer tick, still
// asynchronously. The returned function and its handles are safe for
// concurrent use.
func RateLimit(wait time.Duration, target Target) DelayedFunc {
	return newDelayed(wait, target, nil)
}

func newDelayed(wait time.Duration, target Target, hooks *delayHooks) DelayedFunc {
	var mu sync.Mutex
	var pending *time.Timer

	return func(args ...any) CancelFunc {
		mu.Lock()
		defer mu.Unlock()

		if pending != nil {
			pending.Stop()
			pending = nil
			hooks.onSuperseded()
		}

		var t *time.Timer
		t = time.AfterFunc(wait, func() {
			mu.Lock()
			live := pending == t
			if live {
				pending = nil
			}
			mu.Unlock()

			// A concurrent call or cancellation won the race; this
			// invocation must never fire.
			if !live {
				return
			}

			hooks.onFired()
			target(args...)
		})
		pending = t
		hooks.onScheduled()

		return func() {
			mu.Lock()
			defer mu.Unlock()

			if pending == t {
				t.Stop()
				pending = nil
				hooks.onCanceled()
			}
		}
	}
}
