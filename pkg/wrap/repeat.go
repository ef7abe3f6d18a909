package wrap

// RepeatFunc runs its target a fixed number of times per call, returning
// the ordered results. Call-time arguments are accepted but ignored.
type RepeatFunc func(args ...any) []any

// Times returns a function that synchronously invokes target(bound...)
// exactly count times per call, collecting each result in order. Only the
// factory-time bound arguments reach the target; the call's own arguments
// are dropped.
//
// Each call produces a fresh result slice. A count of zero or less yields
// an empty, non-nil slice. If the target panics on repetition k, the panic
// propagates immediately and the results gathered so far are discarded.
func Times(count int, target Target, bound ...any) RepeatFunc {
	return func(_ ...any) []any {
		results := make([]any, 0, max(count, 0))
		for i := 0; i < count; i++ {
			results = append(results, target(bound...))
		}
		return results
	}
}
