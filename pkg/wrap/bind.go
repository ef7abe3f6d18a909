package wrap

import (
	"fmt"

	fwerrors "github.com/vnykmshr/fnwrap/pkg/common/errors"
)

// BoundFunc is a function with leading arguments pre-bound at factory time.
type BoundFunc func(args ...any) any

// ArgLock returns a function that invokes target with the bound arguments
// followed by the call's arguments, returning the target's result.
//
// This is the only combinator that validates eagerly: a nil target is
// rejected at factory time with an error satisfying
// errors.Is(err, errors.ErrNilTarget).
func ArgLock(target Target, bound ...any) (BoundFunc, error) {
	if target == nil {
		return nil, fmt.Errorf("%s: %w", module, fwerrors.ErrNilTarget)
	}

	return func(args ...any) any {
		return target(prepend(bound, args)...)
	}, nil
}
