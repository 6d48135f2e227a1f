package backend

import "time"

// SetClock replaces the time source used for timings and row timestamps.
func SetClock(fn func() time.Time) (restore func()) {
	prev := now
	now = fn
	return func() { now = prev }
}
