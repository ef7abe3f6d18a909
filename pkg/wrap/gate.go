package wrap

import (
	"github.com/vnykmshr/fnwrap/pkg/common/validation"
)

// Debounce returns a wrapped function that invokes target on every nth
// call: across M calls the target fires exactly M/n times, on calls
// every, 2*every, 3*every and so on. The private call counter increases by
// one on every call, fired or not, and is never reset.
//
// every must be positive; other values are rejected with a ValidationError.
func Debounce(every int, target Target, bound ...any) (Wrapped, error) {
	if err := validation.ValidatePositive(module, "every", every); err != nil {
		return nil, err
	}

	calls := 0
	return When(func() bool {
		calls++
		return calls%every == 0
	}, target, bound...), nil
}

// Counts returns a wrapped function that invokes target on the first limit
// calls and suppresses it permanently afterwards. The counter stops once it
// reaches limit, so long-lived instances cannot overflow it.
//
// Construction never validates. A negative limit is never reached and the
// wrapped function fires on every call.
func Counts(limit int, target Target, bound ...any) Wrapped {
	fired := 0
	return When(func() bool {
		if fired == limit {
			return false
		}
		fired++
		return true
	}, target, bound...)
}
