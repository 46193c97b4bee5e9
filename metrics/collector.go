// Package metrics provides in-process counters for the display subsystem.
//
// The Collector accumulates counters for one process lifetime. It is a leaf
// package with no internal dependencies. Indicators increment it on every
// accepted or throttled render, so the CLI can report how much drawing the
// throttle actually saved (--stats).
package metrics

import "sync"

// Snapshot is an immutable point-in-time view of all collected counters.
// Returned by Collector.Snapshot(). Safe to read concurrently after creation.
type Snapshot struct {
	// Rendering
	RendersDrawn     int64 `json:"renders_drawn"`
	RendersThrottled int64 `json:"renders_throttled"`

	// Output stream health
	WriteFailures int64 `json:"write_failures"`

	// Lifecycle
	BarsCompleted    int64 `json:"bars_completed"`
	SpinnersStopped  int64 `json:"spinners_stopped"`
	ItemsCompleted   int64 `json:"items_completed"`
	LinesBlankPadded int64 `json:"lines_blank_padded"`
}

// Collector accumulates display counters.
// Thread-safe via sync.Mutex. All increment methods are nil-receiver safe,
// so indicators constructed without a collector pay only a nil check.
type Collector struct {
	mu sync.Mutex

	rendersDrawn     int64
	rendersThrottled int64
	writeFailures    int64
	barsCompleted    int64
	spinnersStopped  int64
	itemsCompleted   int64
	linesBlankPadded int64
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// IncRenderDrawn records one line actually written to the output stream.
func (c *Collector) IncRenderDrawn() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.rendersDrawn++
	c.mu.Unlock()
}

// IncRenderThrottled records an update that arrived inside the minimum
// render interval and was not drawn.
func (c *Collector) IncRenderThrottled() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.rendersThrottled++
	c.mu.Unlock()
}

// IncWriteFailure records a failed write to the output stream.
func (c *Collector) IncWriteFailure() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.writeFailures++
	c.mu.Unlock()
}

// IncBarCompleted records a determinate bar reaching its final render.
func (c *Collector) IncBarCompleted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.barsCompleted++
	c.mu.Unlock()
}

// IncSpinnerStopped records a spinner torn down via Stop.
func (c *Collector) IncSpinnerStopped() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.spinnersStopped++
	c.mu.Unlock()
}

// IncItemCompleted records one sequence item finishing.
func (c *Collector) IncItemCompleted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.itemsCompleted++
	c.mu.Unlock()
}

// IncLineBlankPadded records a render that had to blank-overwrite residue
// from a wider previous line.
func (c *Collector) IncLineBlankPadded() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.linesBlankPadded++
	c.mu.Unlock()
}

// Snapshot returns an immutable copy of all counters.
// Nil-receiver safe: returns a zero Snapshot.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		RendersDrawn:     c.rendersDrawn,
		RendersThrottled: c.rendersThrottled,
		WriteFailures:    c.writeFailures,
		BarsCompleted:    c.barsCompleted,
		SpinnersStopped:  c.spinnersStopped,
		ItemsCompleted:   c.itemsCompleted,
		LinesBlankPadded: c.linesBlankPadded,
	}
}
