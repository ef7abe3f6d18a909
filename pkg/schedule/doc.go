// Package schedule runs wrapped targets on cron expressions.
//
// It accepts the standard 5-field cron format plus descriptors such as
// @hourly and @daily, and hands back the same idempotent cancellation
// handle the wrap package uses for delayed invocations.
package schedule
