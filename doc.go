/*
Package fnwrap provides invocation-policy combinators: small factories that
wrap a target function and control when, how often, and with which arguments
it actually runs.

Combinators (pkg/wrap):
  - When: conditional dispatch gated by a predicate
  - Debounce: fire on every nth call
  - Counts: fire on the first n calls, then suppress forever
  - ArgLock: pre-bind leading arguments
  - Times: repeat the target a fixed number of times, collecting results
  - RateLimit: delayed, cancelable trailing invocation (last call wins)
  - Throttle: leading-edge invocation limiter

Scheduling (pkg/schedule):
  - Cron: run a target on a cron expression with a stop handle

Example usage:

	import "github.com/vnykmshr/fnwrap/pkg/wrap"

	save := func(args ...any) any {
		persist(args[0].(string))
		return nil
	}

	// Persist at most once per burst of edits.
	debounced := wrap.RateLimit(200*time.Millisecond, save)
	cancel := debounced("draft-1")
	defer cancel()

Every combinator is a pure factory: wrapped functions created independently
share no state, and the library never retries, logs, or transforms a
target's failure.
*/
package fnwrap
