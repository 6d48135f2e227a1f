package backend

import (
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Timings maps a label such as "fit" to the elapsed milliseconds of its last run.
type Timings map[string]int64

var now = time.Now

// markTime starts a timer whose stop function merges the elapsed time into the
// namespace's timings object. Timings are best effort: storage errors are dropped.
func markTime(env ports.Environment, label string) func() {
	start := now()
	return func() {
		elapsed := now().Sub(start).Milliseconds()

		timings := Timings{}
		if ok, err := env.Has(domain.TimingsKey); err == nil && ok {
			_ = env.LoadObject(domain.TimingsKey, &timings)
		}
		timings[label] = elapsed
		_ = env.SaveObject(domain.TimingsKey, timings)
	}
}
