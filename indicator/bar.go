package indicator

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/justapithecus/gauge/iox"
	"github.com/justapithecus/gauge/log"
	"github.com/justapithecus/gauge/metrics"
	"github.com/justapithecus/gauge/rate"
	"github.com/justapithecus/gauge/throttle"
)

// Default bar geometry and glyphs.
const (
	DefaultBarLength = 50
	DefaultFill      = "█"
	DefaultEmpty     = "░"
)

// BarOptions configures a determinate progress bar.
// The zero value of every display flag shows the corresponding field, so
// an empty options struct (plus Total) gives the full default display.
type BarOptions struct {
	// Total is the number of items the bar tracks. Negative totals are
	// rejected; a zero total produces a no-op bar that renders 100%
	// immediately.
	Total int64

	// Description is the text prefix of the rendered line.
	Description string

	// BarLength is the bar width in glyphs. Default: DefaultBarLength.
	BarLength int

	// Fill and Empty are the glyphs for the completed and remaining
	// segments. Defaults: DefaultFill, DefaultEmpty.
	Fill  string
	Empty string

	// HidePercent, HideCount, HideRate and HideETA drop the respective
	// bracketed fields from the rendered line.
	HidePercent bool
	HideCount   bool
	HideRate    bool
	HideETA     bool

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

func (o *BarOptions) applyDefaults() {
	if o.BarLength <= 0 {
		o.BarLength = DefaultBarLength
	}
	if o.Fill == "" {
		o.Fill = DefaultFill
	}
	if o.Empty == "" {
		o.Empty = DefaultEmpty
	}
	if o.Interval <= 0 {
		o.Interval = throttle.DefaultInterval
	}
	if o.now == nil {
		o.now = time.Now
	}
}

// Bar tracks progress against a known total and renders a one-line display
// on each accepted update. Methods are safe for use from one goroutine;
// the bar owns its state exclusively and serializes writes through the
// shared line writer.
//
// All methods on a closed Bar are no-ops.
type Bar struct {
	opts BarOptions
	w    *lineWriter
	est  *rate.Estimator

	current int64
	closed  bool
}

// NewBar creates a bar and, for a zero total, immediately renders the
// complete state.
func NewBar(opts BarOptions) (*Bar, error) {
	if opts.Total < 0 {
		return nil, fmt.Errorf("total %d: %w", opts.Total, ErrInvalidTotal)
	}
	opts.applyDefaults()

	b := &Bar{
		opts: opts,
		w:    newLineWriter(opts.Output, opts.Logger, opts.Collector),
		est:  rate.New(),
	}

	if opts.Total == 0 {
		// Nothing to track. Draw the complete state once; Update and Set
		// become no-ops and Close still terminates the line.
		b.render(b.opts.now(), true, false)
	}
	return b, nil
}

// Update advances progress by n, clamped to the total, and renders if the
// throttle interval has elapsed. Reaching the total forces a render.
// A negative n returns ErrNegativeCount and leaves state unchanged.
// No-op on a closed bar.
func (b *Bar) Update(n int64) error {
	if n < 0 {
		return fmt.Errorf("update by %d: %w", n, ErrNegativeCount)
	}
	if b.closed || b.opts.Total == 0 {
		return nil
	}

	b.current = min(b.current+n, b.opts.Total)
	now := b.opts.now()
	b.est.Record(b.current, now)
	b.render(now, b.current >= b.opts.Total, false)
	return nil
}

// Set moves progress to an absolute position, clamped into [0, total],
// with the same render trigger as Update. No-op on a closed bar.
func (b *Bar) Set(value int64) {
	if b.closed || b.opts.Total == 0 {
		return
	}

	b.current = min(max(value, 0), b.opts.Total)
	now := b.opts.now()
	b.est.Record(b.current, now)
	b.render(now, b.current >= b.opts.Total, false)
}

// Current returns the clamped progress position.
func (b *Bar) Current() int64 { return b.current }

// Total returns the tracked total.
func (b *Bar) Total() int64 { return b.opts.Total }

// Close forces a final render at whatever position was reached and writes
// the trailing newline so subsequent output starts cleanly. Idempotent;
// the second and later calls do nothing. Always returns nil: a bar that
// cannot draw its final state has already degraded to silence.
func (b *Bar) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.render(b.opts.now(), true, true)
	b.opts.Collector.IncBarCompleted()
	return nil
}

func (b *Bar) render(now time.Time, force, final bool) {
	b.w.render(now, b.opts.Interval, force, final, func() []string {
		return []string{b.line(now)}
	})
}

// line builds the display line:
//
//	description: [████░░░░]  42.00% 21/50 | 5.00 items/s | ETA: 6s
//
// Bracketed fields appear only when their display flag is enabled.
func (b *Bar) line(now time.Time) string {
	var parts []string

	frac := b.fraction()
	parts = append(parts, fmt.Sprintf("%s: [%s]", b.opts.Description, renderBarCells(frac, b.opts.BarLength, b.opts.Fill, b.opts.Empty)))

	if !b.opts.HidePercent {
		parts = append(parts, fmt.Sprintf("%6.2f%%", frac*100))
	}
	if !b.opts.HideCount {
		parts = append(parts, fmt.Sprintf("%d/%d", b.current, b.opts.Total))
	}
	if r := b.est.Rate(now); r > 0 {
		if !b.opts.HideRate {
			parts = append(parts, fmt.Sprintf("| %.2f items/s", r))
		}
		if !b.opts.HideETA && b.current < b.opts.Total {
			parts = append(parts, "| ETA: "+b.etaText(now))
		}
	}
	return strings.Join(parts, " ")
}

func (b *Bar) fraction() float64 {
	if b.opts.Total <= 0 {
		return 1
	}
	return float64(b.current) / float64(b.opts.Total)
}

func (b *Bar) etaText(now time.Time) string {
	eta, ok := b.est.ETA(b.opts.Total-b.current, now)
	if !ok {
		return "--"
	}
	return formatETA(eta)
}

// renderBarCells builds the glyph run for a fraction of a bar: filled
// length is floor(fraction × length).
func renderBarCells(fraction float64, length int, fill, empty string) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(length))
	return strings.Repeat(fill, filled) + strings.Repeat(empty, length-filled)
}

// formatETA renders a duration the way a human reads a countdown.
func formatETA(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

// Run executes fn with a bar built from opts and guarantees Close on every
// exit path, including a panic unwinding through fn.
func Run(opts BarOptions, fn func(*Bar) error) error {
	b, err := NewBar(opts)
	if err != nil {
		return err
	}
	defer iox.DiscardClose(b)
	return fn(b)
}
