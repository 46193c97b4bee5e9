package indicator

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"

	"github.com/justapithecus/gauge/log"
	"github.com/justapithecus/gauge/metrics"
	"github.com/justapithecus/gauge/throttle"
)

// cursorUp moves the cursor up one line. Only emitted in the sequence
// tracker's two-line terminal mode; single-line rendering uses plain \r.
const cursorUp = "\x1b[A"

// lineWriter owns one output stream and the render state attached to it:
// the instant of the last accepted render and the display width of each
// previously written line. Every "compute line, write line" sequence runs
// as one critical section so two renders can never interleave characters.
//
// After the first write error the writer logs once and becomes a silent
// no-op; a broken pipe must never abort the work being measured.
type lineWriter struct {
	mu        sync.Mutex
	out       io.Writer
	logger    *log.Logger
	collector *metrics.Collector

	terminal   bool
	lastRender time.Time
	lastWidths []int
	failed     bool
}

func newLineWriter(out io.Writer, logger *log.Logger, collector *metrics.Collector) *lineWriter {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &lineWriter{
		out:       out,
		logger:    logger,
		collector: collector,
		terminal:  writerIsTerminal(out),
	}
}

// writerIsTerminal reports whether w is an interactive terminal.
// Non-file writers (buffers, pipes wrapped in other types) are not.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// render draws the lines produced by build, subject to the throttle gate.
// Returns true when a render was actually written. The gate check, line
// construction, and write happen under one lock.
//
// final renders advance past the display with a trailing newline and reset
// the render state; non-final renders return the cursor for the next
// overwrite.
func (w *lineWriter) render(now time.Time, interval time.Duration, force bool, final bool, build func() []string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !throttle.Due(now, w.lastRender, interval, force) {
		w.collector.IncRenderThrottled()
		return false
	}
	if w.failed {
		// Pretend the render happened so callers finish quietly.
		return true
	}

	lines := build()
	w.write(lines, final)
	w.lastRender = now
	return true
}

// clear blank-overwrites the current line and leaves the cursor at line
// start. Used by the spinner after its loop has terminated.
func (w *lineWriter) clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.failed || len(w.lastWidths) == 0 {
		return
	}
	width := w.lastWidths[0]
	if width == 0 {
		return
	}
	w.emit("\r" + strings.Repeat(" ", width) + "\r")
	w.lastWidths = nil
	w.lastRender = time.Time{}
}

// write draws one or more lines over the previous render.
// Caller holds w.mu.
func (w *lineWriter) write(lines []string, final bool) {
	var b strings.Builder

	switch {
	case len(lines) == 1:
		b.WriteString("\r")
		b.WriteString(w.padded(lines[0], 0))
	case w.terminal:
		// Multi-line in-place overwrite: draw every line, then walk the
		// cursor back up to the first one.
		b.WriteString("\r")
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(w.padded(line, i))
		}
		if !final {
			b.WriteString("\r")
			b.WriteString(strings.Repeat(cursorUp, len(lines)-1))
		}
	default:
		// The target cannot overwrite multiple lines in place; reprint
		// the full block on each accepted render instead.
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if final && (len(lines) == 1 || w.terminal) {
		b.WriteString("\n")
	}

	w.emit(b.String())
	if final {
		w.lastWidths = nil
		return
	}
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = runewidth.StringWidth(line)
	}
	w.lastWidths = widths
}

// padded appends enough spaces to line to blank any residue from the
// previous render of slot i. Caller holds w.mu.
func (w *lineWriter) padded(line string, i int) string {
	width := runewidth.StringWidth(line)
	prev := 0
	if i < len(w.lastWidths) {
		prev = w.lastWidths[i]
	}
	if prev <= width {
		return line
	}
	w.collector.IncLineBlankPadded()
	return line + strings.Repeat(" ", prev-width)
}

// emit performs the actual write. The first failure is logged and every
// later render is suppressed. Caller holds w.mu.
func (w *lineWriter) emit(s string) {
	if w.failed {
		return
	}
	if _, err := fmt.Fprint(w.out, s); err != nil {
		w.failed = true
		w.collector.IncWriteFailure()
		w.logger.Warn("output stream write failed, suppressing further progress output",
			map[string]any{"error": err.Error()})
		return
	}
	w.collector.IncRenderDrawn()
}
