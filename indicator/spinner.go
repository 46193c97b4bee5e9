package indicator

import (
	"io"
	"sync"
	"time"

	"github.com/justapithecus/gauge/log"
	"github.com/justapithecus/gauge/metrics"
)

// SpinnerOptions configures an indeterminate spinner.
type SpinnerOptions struct {
	// Description is rendered after the animation glyph.
	Description string

	// Frames is the animation. Zero value: the "braille" preset at 10fps.
	Frames FrameSet

	// Output is where renders are written. Default: os.Stdout.
	Output io.Writer

	// Logger receives the one-shot write-failure diagnostic.
	// Default: log.Nop().
	Logger *log.Logger

	// Collector, when set, accumulates render counters.
	Collector *metrics.Collector
}

// Spinner animates an indeterminate progress display on its own goroutine.
// Start launches the animation; Stop tears it down and does not return
// until the loop has terminated, so no render can land after Stop.
//
// Start on a running spinner and Stop on an idle one are no-ops.
type Spinner struct {
	opts   SpinnerOptions
	frames FrameSet
	w      *lineWriter

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
	frame   int
}

// NewSpinner creates an idle spinner.
func NewSpinner(opts SpinnerOptions) *Spinner {
	return &Spinner{
		opts:   opts,
		frames: opts.Frames.normalized(),
		w:      newLineWriter(opts.Output, opts.Logger, opts.Collector),
	}
}

// Start launches the animation loop. No-op while already running.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(s.stop, s.done)
}

// Stop terminates the animation, waits for the loop to finish, then
// blank-overwrites the spinner line. When Stop returns, the display is
// gone and no further write will occur. No-op while idle.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
	s.w.clear()
	s.opts.Collector.IncSpinnerStopped()
}

// Running reports whether the animation loop is live.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// loop renders a frame, then wakes on the frame cadence until stopped.
// The wake timer restarts after each render, so the throttle gate inside
// the writer sees at least one full cadence between frames.
func (s *Spinner) loop(stop, done chan struct{}) {
	defer close(done)

	s.renderFrame(true)
	for {
		select {
		case <-stop:
			return
		case <-time.After(s.frames.FPS):
			s.advance()
			s.renderFrame(false)
		}
	}
}

func (s *Spinner) advance() {
	s.mu.Lock()
	s.frame = (s.frame + 1) % len(s.frames.Glyphs)
	s.mu.Unlock()
}

func (s *Spinner) renderFrame(first bool) {
	s.mu.Lock()
	glyph := s.frames.Glyphs[s.frame]
	s.mu.Unlock()

	s.w.render(time.Now(), s.frames.FPS, first, false, func() []string {
		return []string{glyph + " " + s.opts.Description}
	})
}
