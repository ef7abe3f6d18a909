package schedule

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	fwerrors "github.com/vnykmshr/fnwrap/pkg/common/errors"
	"github.com/vnykmshr/fnwrap/pkg/common/validation"
	"github.com/vnykmshr/fnwrap/pkg/wrap"
)

// module is the component name used in validation errors.
const module = "schedule"

// Cron starts invoking target(bound...) on the given cron expression.
// Supported formats:
//
//	"*/5 * * * *"  - every 5 minutes
//	"30 14 * * 1-5" - 2:30 PM on weekdays
//	"@hourly"       - every hour
//
// The expression is validated at construction; an empty or unparsable
// expression is rejected with a ValidationError and a nil target with
// ErrNilTarget. The returned CancelFunc stops the schedule and is
// idempotent; invocations already running are not interrupted.
func Cron(expr string, target wrap.Target, bound ...any) (wrap.CancelFunc, error) {
	if err := validation.ValidateNotEmpty(module, "expr", expr); err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("%s: %w", module, fwerrors.ErrNilTarget)
	}

	runner := cron.New()
	if _, err := runner.AddFunc(expr, func() {
		target(bound...)
	}); err != nil {
		return nil, fwerrors.NewValidationError(module, "expr", expr, "not a valid cron expression").
			WithHint(err.Error())
	}
	runner.Start()

	var once sync.Once
	return func() {
		once.Do(func() {
			runner.Stop()
		})
	}, nil
}

// Next returns the first activation of expr strictly after the given time.
// It validates the expression the same way Cron does.
func Next(expr string, after time.Time) (time.Time, error) {
	if err := validation.ValidateNotEmpty(module, "expr", expr); err != nil {
		return time.Time{}, err
	}

	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return time.Time{}, fwerrors.NewValidationError(module, "expr", expr, "not a valid cron expression").
			WithHint(err.Error())
	}
	return sched.Next(after), nil
}
