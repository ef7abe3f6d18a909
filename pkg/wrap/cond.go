package wrap

// module is the component name used in validation errors.
const module = "wrap"

// Target is a caller-supplied function whose invocation is policy-controlled.
// Targets are treated as opaque: any argument list, any single result.
type Target func(args ...any) any

// Predicate gates conditional dispatch. It takes no arguments and is
// evaluated exactly once per call to the wrapped function, before any
// decision to invoke the target. Predicates may carry mutable state; the
// counting combinators rely on exactly that.
type Predicate func() bool

// Wrapped is a conditionally dispatched function. The second return value
// reports whether the target fired; when it is false the first return
// value is nil and the target was not invoked.
type Wrapped func(args ...any) (any, bool)

// When returns a wrapped function that evaluates pred once per call and,
// only when pred returns true, invokes target with the bound arguments
// followed by the call's arguments.
//
// Construction never validates: a nil target fails at call time, not at
// factory time.
func When(pred Predicate, target Target, bound ...any) Wrapped {
	return func(args ...any) (any, bool) {
		if !pred() {
			return nil, false
		}
		return target(prepend(bound, args)...), true
	}
}

// prepend concatenates bound and call-time arguments into a fresh slice so
// successive calls never alias each other's backing arrays.
func prepend(bound, args []any) []any {
	if len(bound) == 0 {
		return args
	}
	merged := make([]any, 0, len(bound)+len(args))
	merged = append(merged, bound...)
	return append(merged, args...)
}
