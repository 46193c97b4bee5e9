// Package rate estimates throughput and remaining time from progress samples.
//
// The Estimator is a leaf component with no internal dependencies. It keeps
// a bounded window of (timestamp, cumulative count) samples and computes a
// simple average over the retained window: earliest sample vs latest. The
// average is deliberately not exponentially weighted; determinism beats
// responsiveness to bursts for a display-only estimate.
package rate

import "time"

// maxSamples bounds the retained window. Once full, the oldest sample
// after the window anchor is discarded.
const maxSamples = 64

// minElapsed guards the rate division against a zero or near-zero window.
const minElapsed = time.Millisecond

// sample is one progress observation.
type sample struct {
	at    time.Time
	count int64
}

// Estimator computes throughput from a stream of cumulative counts.
// Not safe for concurrent use; each indicator owns exactly one Estimator
// and serializes access through its own lock.
type Estimator struct {
	samples []sample
}

// New creates an empty Estimator.
func New() *Estimator {
	return &Estimator{samples: make([]sample, 0, maxSamples)}
}

// Record appends an observation of the cumulative count at the given instant.
func (e *Estimator) Record(count int64, now time.Time) {
	if len(e.samples) == maxSamples {
		// Keep the earliest sample as the window anchor so the average
		// stays a whole-run average, drop the next-oldest.
		copy(e.samples[1:], e.samples[2:])
		e.samples = e.samples[:maxSamples-1]
	}
	e.samples = append(e.samples, sample{at: now, count: count})
}

// Rate returns counted items per second averaged over the retained window.
// Returns 0 when fewer than two samples exist or the window is too narrow
// to divide by.
func (e *Estimator) Rate(now time.Time) float64 {
	if len(e.samples) < 2 {
		return 0
	}
	first := e.samples[0]
	last := e.samples[len(e.samples)-1]

	elapsed := last.at.Sub(first.at)
	if elapsed < minElapsed {
		return 0
	}
	return float64(last.count-first.count) / elapsed.Seconds()
}

// ETA returns the estimated time until remaining items are consumed at the
// current rate. The second return is false when no estimate is available
// (rate is zero or unknown); callers render a placeholder in that case.
func (e *Estimator) ETA(remaining int64, now time.Time) (time.Duration, bool) {
	if remaining <= 0 {
		return 0, true
	}
	r := e.Rate(now)
	if r <= 0 {
		return 0, false
	}
	return time.Duration(float64(remaining) / r * float64(time.Second)), true
}

// Reset discards all retained samples.
func (e *Estimator) Reset() {
	e.samples = e.samples[:0]
}
