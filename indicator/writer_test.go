package indicator

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/justapithecus/gauge/log"
	"github.com/justapithecus/gauge/metrics"
)

func singleLine(s string) func() []string {
	return func() []string { return []string{s} }
}

func TestLineWriter_BlankOverwritesShorterLine(t *testing.T) {
	var buf bytes.Buffer
	col := metrics.NewCollector()
	w := newLineWriter(&buf, nil, col)

	w.render(t0, time.Second, true, false, singleLine("a long progress line"))
	w.render(t0.Add(2*time.Second), time.Second, false, false, singleLine("short"))

	out := buf.String()
	second := out[strings.LastIndex(out, "\r"):]
	if len(second) < len("\rshort")+len("a long progress line")-len("short") {
		t.Errorf("shorter line not padded over previous width: %q", second)
	}
	if got := col.Snapshot().LinesBlankPadded; got != 1 {
		t.Errorf("LinesBlankPadded = %d, want 1", got)
	}
}

func TestLineWriter_WideGlyphWidths(t *testing.T) {
	var buf bytes.Buffer
	w := newLineWriter(&buf, nil, nil)

	// Double-width CJK: 4 runes, display width 8.
	w.render(t0, time.Second, true, false, singleLine("進捗状況"))
	w.render(t0.Add(2*time.Second), time.Second, false, false, singleLine("ok"))

	out := buf.String()
	second := out[strings.LastIndex(out, "\r")+1:]
	// "ok" is width 2; six spaces must blank the remaining width.
	if second != "ok"+strings.Repeat(" ", 6) {
		t.Errorf("wide-glyph padding wrong: %q", second)
	}
}

func TestLineWriter_ThrottleGateCounts(t *testing.T) {
	var buf bytes.Buffer
	col := metrics.NewCollector()
	w := newLineWriter(&buf, nil, col)

	w.render(t0, 100*time.Millisecond, false, false, singleLine("one"))
	w.render(t0.Add(10*time.Millisecond), 100*time.Millisecond, false, false, singleLine("two"))
	w.render(t0.Add(200*time.Millisecond), 100*time.Millisecond, false, false, singleLine("three"))

	s := col.Snapshot()
	if s.RendersDrawn != 2 {
		t.Errorf("RendersDrawn = %d, want 2", s.RendersDrawn)
	}
	if s.RendersThrottled != 1 {
		t.Errorf("RendersThrottled = %d, want 1", s.RendersThrottled)
	}
	if strings.Contains(buf.String(), "two") {
		t.Errorf("throttled line was written: %q", buf.String())
	}
}

func TestLineWriter_FinalRenderTerminatesLine(t *testing.T) {
	var buf bytes.Buffer
	w := newLineWriter(&buf, nil, nil)

	w.render(t0, time.Second, true, true, singleLine("done"))

	if got := buf.String(); got != "\rdone\n" {
		t.Errorf("final render = %q, want %q", got, "\rdone\n")
	}
	if w.lastWidths != nil {
		t.Errorf("render state not reset after final render: %v", w.lastWidths)
	}
}

func TestLineWriter_FailureSuppressesAndLogsOnce(t *testing.T) {
	var diag bytes.Buffer
	logger := log.NewLogger("indicator").WithOutput(&diag)
	col := metrics.NewCollector()
	fw := &failAfterWriter{failAt: 1}
	w := newLineWriter(fw, logger, col)

	for i := 0; i < 5; i++ {
		w.render(t0.Add(time.Duration(i)*time.Second), time.Second, false, false, singleLine("x"))
	}

	if fw.writes != 1 {
		t.Errorf("writes = %d, want 1 (suppressed after first failure)", fw.writes)
	}
	if got := strings.Count(diag.String(), "write failed"); got != 1 {
		t.Errorf("failure logged %d times, want once: %s", got, diag.String())
	}
	if got := col.Snapshot().WriteFailures; got != 1 {
		t.Errorf("WriteFailures = %d, want 1", got)
	}
}

func TestWriterIsTerminal_NonFileWriter(t *testing.T) {
	if writerIsTerminal(&bytes.Buffer{}) {
		t.Error("bytes.Buffer must not be a terminal")
	}
}
