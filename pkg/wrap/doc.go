/*
Package wrap provides invocation-policy combinators for Go functions.

Each combinator is a factory: it takes a target function plus configuration
and returns a new function that imposes a policy on the target —
conditional execution, periodic execution, execution-count limiting,
argument pre-binding, fixed repetition, or delayed cancelable execution.

The conditional family composes the When primitive:

	evens, _ := wrap.Debounce(2, logBatch) // fires on calls 2, 4, 6, ...
	warmup := wrap.Counts(3, primeCache)   // fires on calls 1, 2, 3, never after

Argument pre-binding and repetition are independent of When:

	greet, _ := wrap.ArgLock(send, "hello")  // send("hello", args...)
	pings := wrap.Times(3, ping, "10.0.0.1") // three results per call

RateLimit is the only asynchronous combinator; it owns a single pending
timer per instance and every call supersedes the previous one:

	delayed := wrap.RateLimit(100*time.Millisecond, flush)
	cancel := delayed(buf)
	cancel() // idempotent; no-op once the invocation has fired

Wrapped functions created independently share no state. The library never
recovers from a target's panic, never retries, and never transforms a
failure; propagation is always immediate and unmodified.
*/
package wrap
