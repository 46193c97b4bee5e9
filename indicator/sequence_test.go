package indicator

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestSequence(t *testing.T, items []string) (*Sequence, *bytes.Buffer, *fakeClock) {
	t.Helper()
	var buf bytes.Buffer
	clock := newFakeClock()
	s := NewSequence(SequenceOptions{
		Items:       items,
		Description: "Processing files",
		Output:      &buf,
		now:         clock.Now,
	})
	return s, &buf, clock
}

func TestSequence_ThreeItems(t *testing.T) {
	s, buf, clock := newTestSequence(t, []string{"a.log", "b.log", "c.log"})

	for i, size := range []int64{10, 20, 5} {
		s.StartItem([]string{"a.log", "b.log", "c.log"}[i], size)
		for u := int64(1); u <= size; u++ {
			clock.Advance(time.Second)
			if err := s.UpdateItem(u); err != nil {
				t.Fatalf("UpdateItem(%d): %v", u, err)
			}
		}
		s.CompleteItem()
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := s.CurrentIndex(); got != 3 {
		t.Errorf("CurrentIndex() = %d, want 3", got)
	}
	if !strings.Contains(buf.String(), "3 of 3") {
		t.Errorf("aggregate line missing %q:\n%s", "3 of 3", buf.String())
	}
}

func TestSequence_IndexNeverExceedsItems(t *testing.T) {
	s, _, _ := newTestSequence(t, []string{"only"})

	s.StartItem("only", 5)
	s.CompleteItem()
	s.CompleteItem()
	s.CompleteItem()

	if got := s.CurrentIndex(); got != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", got)
	}
}

func TestSequence_CompleteWithoutStartAdvances(t *testing.T) {
	s, _, _ := newTestSequence(t, []string{"a", "b"})

	s.CompleteItem()

	if got := s.CurrentIndex(); got != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", got)
	}
}

func TestSequence_IndeterminateFallback(t *testing.T) {
	s, buf, clock := newTestSequence(t, []string{"stream"})

	// Unknown size: no per-item bar, an animation cell instead.
	s.StartItem("stream", 0)
	clock.Advance(time.Second)
	if err := s.UpdateItem(42); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "stream") {
		t.Errorf("item id missing: %q", out)
	}
	if !strings.Contains(out, "42") {
		t.Errorf("raw count missing for indeterminate item: %q", out)
	}
	if strings.Contains(out, "42/") {
		t.Errorf("indeterminate item rendered a ratio: %q", out)
	}
}

func TestSequence_NegativeItemProgress(t *testing.T) {
	s, _, _ := newTestSequence(t, []string{"x"})
	s.StartItem("x", 10)

	if err := s.UpdateItem(3); err != nil {
		t.Fatalf("UpdateItem(3): %v", err)
	}
	err := s.UpdateItem(-1)
	if !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("UpdateItem(-1) = %v, want ErrNegativeCount", err)
	}
	if s.itemCurrent != 3 {
		t.Errorf("state changed by rejected update: itemCurrent = %d, want 3", s.itemCurrent)
	}
}

func TestSequence_ItemProgressClamped(t *testing.T) {
	s, _, clock := newTestSequence(t, []string{"x"})
	s.StartItem("x", 10)
	clock.Advance(time.Second)

	if err := s.UpdateItem(500); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if s.itemCurrent != 10 {
		t.Errorf("itemCurrent = %d, want clamped 10", s.itemCurrent)
	}
}

func TestSequence_NonTerminalReprintsBlock(t *testing.T) {
	s, buf, clock := newTestSequence(t, []string{"a", "b"})

	s.StartItem("a", 2)
	clock.Advance(time.Second)
	if err := s.UpdateItem(1); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	out := buf.String()
	// A bytes.Buffer is not a terminal: no in-place control sequences,
	// each accepted render reprints whole lines.
	if strings.Contains(out, cursorUp) {
		t.Errorf("cursor movement emitted to non-terminal writer: %q", out)
	}
	if got := strings.Count(out, "Processing files"); got < 2 {
		t.Errorf("aggregate line printed %d times, want one per accepted render", got)
	}
}

func TestSequence_TerminalOverwritesInPlace(t *testing.T) {
	s, buf, clock := newTestSequence(t, []string{"a"})
	s.w.terminal = true

	s.StartItem("a", 2)
	clock.Advance(time.Second)
	if err := s.UpdateItem(1); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, cursorUp) {
		t.Errorf("terminal mode did not move the cursor back up: %q", out)
	}
	if !strings.Contains(out, "\r") {
		t.Errorf("terminal mode did not return to line start: %q", out)
	}
}

func TestSequence_CloseIdempotent(t *testing.T) {
	s, buf, _ := newTestSequence(t, []string{"a"})
	s.StartItem("a", 1)
	if err := s.UpdateItem(1); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	s.CompleteItem()

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	after := buf.Len()
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if buf.Len() != after {
		t.Errorf("second Close wrote output")
	}
}

func TestSequence_ClosedIsNoOp(t *testing.T) {
	s, buf, _ := newTestSequence(t, []string{"a"})
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	before := buf.Len()
	s.StartItem("a", 10)
	if err := s.UpdateItem(5); err != nil {
		t.Fatalf("UpdateItem on closed: %v", err)
	}
	s.CompleteItem()
	if buf.Len() != before {
		t.Errorf("closed sequence rendered")
	}
	if got := s.CurrentIndex(); got != 0 {
		t.Errorf("closed sequence advanced: CurrentIndex() = %d", got)
	}
}
