package indicator

import (
	"fmt"
	"io"
	"time"

	"github.com/justapithecus/gauge/log"
	"github.com/justapithecus/gauge/metrics"
	"github.com/justapithecus/gauge/rate"
	"github.com/justapithecus/gauge/throttle"
)

// itemBarLength is the per-item bar width, narrower than a standalone bar
// so the two-line block stays readable.
const itemBarLength = 30

// SequenceOptions configures a multi-item tracker.
type SequenceOptions struct {
	// Items are the identifiers of the work items, in processing order.
	Items []string

	// Description prefixes the aggregate line.
	Description string

	// Frames animates the per-item cell when an item's total is unknown.
	// Zero value: the "braille" preset.
	Frames FrameSet

	// Output is where renders are written. Default: os.Stdout.
	Output io.Writer

	// Interval is the minimum time between two non-forced renders.
	// Default: throttle.DefaultInterval.
	Interval time.Duration

	// Logger receives the one-shot write-failure diagnostic.
	// Default: log.Nop().
	Logger *log.Logger

	// Collector, when set, accumulates render counters.
	Collector *metrics.Collector

	// now overrides the clock in tests.
	now func() time.Time
}

// Sequence tracks an ordered series of work items, composing an aggregate
// "N of M" line with a bar for the item currently in progress. On a
// terminal the two lines are overwritten in place; on any other writer the
// block is reprinted on each accepted render.
//
// The item position only advances: StartItem begins the next item,
// CompleteItem finishes it. All methods on a closed Sequence are no-ops.
type Sequence struct {
	opts   SequenceOptions
	frames FrameSet
	w      *lineWriter
	est    *rate.Estimator

	index         int // completed items
	itemID        string
	itemCurrent   int64
	itemTotal     int64
	indeterminate bool
	active        bool
	frame         int
	closed        bool
}

// NewSequence creates a tracker over the given items.
func NewSequence(opts SequenceOptions) *Sequence {
	if opts.Interval <= 0 {
		opts.Interval = throttle.DefaultInterval
	}
	if opts.now == nil {
		opts.now = time.Now
	}
	return &Sequence{
		opts:   opts,
		frames: opts.Frames.normalized(),
		w:      newLineWriter(opts.Output, opts.Logger, opts.Collector),
		est:    rate.New(),
	}
}

// StartItem records the item as current and resets the per-item progress
// to {0, totalUnits}. A non-positive totalUnits means the item's size
// could not be determined; the per-item display falls back to an
// indeterminate animation cell instead of a bar. Always renders.
func (s *Sequence) StartItem(id string, totalUnits int64) {
	if s.closed || s.index >= len(s.opts.Items) {
		return
	}
	s.itemID = id
	s.itemCurrent = 0
	s.itemTotal = totalUnits
	s.indeterminate = totalUnits <= 0
	s.active = true
	s.est.Reset()

	now := s.opts.now()
	s.est.Record(0, now)
	s.render(now, true, false)
}

// UpdateItem moves the active item's progress to currentUnits, clamped to
// the item's total, and renders if the throttle interval has elapsed.
// For an indeterminate item the count is displayed raw and the animation
// cell advances. A negative currentUnits returns ErrNegativeCount and
// leaves state unchanged. No-op when closed or no item is active.
func (s *Sequence) UpdateItem(currentUnits int64) error {
	if currentUnits < 0 {
		return fmt.Errorf("item progress %d: %w", currentUnits, ErrNegativeCount)
	}
	if s.closed || !s.active {
		return nil
	}

	if s.indeterminate {
		s.itemCurrent = currentUnits
		s.frame = (s.frame + 1) % len(s.frames.Glyphs)
	} else {
		s.itemCurrent = min(currentUnits, s.itemTotal)
	}
	now := s.opts.now()
	s.est.Record(s.itemCurrent, now)
	s.render(now, false, false)
	return nil
}

// CompleteItem forces the active item to its complete state, advances the
// sequence position, and renders the aggregate line. The position advances
// even when no item was started, so callers that skip StartItem for an
// item still move the aggregate count forward. No-op when closed or when
// every item is already complete.
func (s *Sequence) CompleteItem() {
	if s.closed || s.index >= len(s.opts.Items) {
		return
	}
	if !s.indeterminate {
		s.itemCurrent = s.itemTotal
	}
	s.active = false
	s.index++
	s.opts.Collector.IncItemCompleted()
	s.render(s.opts.now(), true, false)
}

// CurrentIndex returns the number of completed items.
func (s *Sequence) CurrentIndex() int { return s.index }

// Close forces a final render of the aggregate and, if still active, the
// per-item line, then advances past the display. Idempotent.
func (s *Sequence) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.render(s.opts.now(), true, true)
	return nil
}

func (s *Sequence) render(now time.Time, force, final bool) {
	s.w.render(now, s.opts.Interval, force, final, func() []string {
		return s.lines(now)
	})
}

// lines builds the two-line block: aggregate position over the sequence,
// then the active item's own display.
func (s *Sequence) lines(now time.Time) []string {
	total := len(s.opts.Items)
	frac := 1.0
	if total > 0 {
		frac = float64(s.index) / float64(total)
	}
	aggregate := fmt.Sprintf("%s: [%s] %d of %d",
		s.opts.Description,
		renderBarCells(frac, DefaultBarLength, DefaultFill, DefaultEmpty),
		s.index, total,
	)

	if !s.active {
		return []string{aggregate, ""}
	}
	return []string{aggregate, s.itemLine(now)}
}

func (s *Sequence) itemLine(now time.Time) string {
	if s.indeterminate {
		return fmt.Sprintf("  ↳ %s %s %d", s.itemID, s.frames.Glyphs[s.frame], s.itemCurrent)
	}

	frac := 1.0
	if s.itemTotal > 0 {
		frac = float64(s.itemCurrent) / float64(s.itemTotal)
	}
	line := fmt.Sprintf("  ↳ %s: [%s] %d/%d",
		s.itemID,
		renderBarCells(frac, itemBarLength, DefaultFill, DefaultEmpty),
		s.itemCurrent, s.itemTotal,
	)
	if r := s.est.Rate(now); r > 0 && s.itemCurrent < s.itemTotal {
		line += fmt.Sprintf(" | %.0f/s", r)
	}
	return line
}
