// Package throttle gates terminal redraws to a minimum interval.
//
// The gate is a pure function of its inputs. Callers hold the last-render
// instant themselves; throttle keeps no state of its own.
package throttle

import "time"

// DefaultInterval is the minimum time between two accepted renders.
// 100ms keeps redraw overhead negligible while still looking live.
const DefaultInterval = 100 * time.Millisecond

// Due reports whether a new render should be drawn.
//
// It returns true when force is set (first and final renders must always
// be drawn regardless of timing), when last is the zero instant (nothing
// has been drawn yet), or when at least interval has elapsed since last.
// A non-positive interval falls back to DefaultInterval.
func Due(now, last time.Time, interval time.Duration, force bool) bool {
	if force {
		return true
	}
	if last.IsZero() {
		return true
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return now.Sub(last) >= interval
}
