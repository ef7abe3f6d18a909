package wrap

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/vnykmshr/fnwrap/pkg/common/validation"
)

// Throttle returns a wrapped function that invokes target at most once per
// interval, firing on the leading edge: the first call goes through
// immediately and calls arriving before the interval has elapsed are
// suppressed. It is the synchronous counterpart to RateLimit, which delays
// and keeps only the trailing call.
//
// interval must be positive; other values are rejected with a
// ValidationError.
func Throttle(interval time.Duration, target Target, bound ...any) (Wrapped, error) {
	if err := validation.ValidatePositiveDuration(module, "interval", interval); err != nil {
		return nil, err
	}

	lim := rate.NewLimiter(rate.Every(interval), 1)
	return When(lim.Allow, target, bound...), nil
}
