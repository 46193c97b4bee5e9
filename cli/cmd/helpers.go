package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/gauge/cli/config"
	"github.com/justapithecus/gauge/cli/render"
	"github.com/justapithecus/gauge/indicator"
	"github.com/justapithecus/gauge/log"
	"github.com/justapithecus/gauge/metrics"
)

// loadProfile returns the display profile named by --profile, or an empty
// profile when the flag is absent.
func loadProfile(c *cli.Context) (*config.Profile, error) {
	path := c.String("profile")
	if path == "" {
		return &config.Profile{}, nil
	}
	return config.Load(path)
}

// newLogger returns a stderr diagnostic logger behind --debug, else a nop.
func newLogger(c *cli.Context) *log.Logger {
	if c.Bool("debug") {
		return log.NewLogger("gauge")
	}
	return log.Nop()
}

// newCollector returns a collector behind --stats, else nil (indicators
// treat a nil collector as free).
func newCollector(c *cli.Context) *metrics.Collector {
	if c.Bool("stats") {
		return metrics.NewCollector()
	}
	return nil
}

// emitStats renders the collector snapshot after the display has finished.
// The report goes to stderr so it never lands in piped command output.
func emitStats(col *metrics.Collector) error {
	if col == nil {
		return nil
	}
	r := render.NewRendererWithWriter(render.FormatTable, os.Stderr)
	fmt.Fprintln(os.Stderr)
	return r.Render(col.Snapshot())
}

// barOptions merges profile defaults and command flags into bar options.
// Flags win over the profile; the description falls back profile-first.
func barOptions(c *cli.Context, p *config.Profile, col *metrics.Collector) indicator.BarOptions {
	description := c.String("description")
	if description == "" {
		description = p.Description
	}
	if description == "" {
		description = "Progress"
	}

	opts := indicator.BarOptions{
		Total:       c.Int64("total"),
		Description: description,
		Output:      displayTarget(c),
		BarLength:   p.Bar.Length,
		Fill:        p.Bar.Fill,
		Empty:       p.Bar.Empty,
		HidePercent: p.Bar.HidePercent || c.Bool("no-percent"),
		HideCount:   p.Bar.HideCount || c.Bool("no-count"),
		HideRate:    p.Bar.HideRate || c.Bool("no-rate"),
		HideETA:     p.Bar.HideETA || c.Bool("no-eta"),
		Interval:    p.Interval.Duration,
		Logger:      newLogger(c),
		Collector:   col,
	}
	if c.IsSet("width") {
		opts.BarLength = c.Int("width")
	}
	if c.IsSet("interval") {
		opts.Interval = c.Duration("interval")
	}
	if c.IsSet("fill") {
		opts.Fill = c.String("fill")
	}
	if c.IsSet("empty") {
		opts.Empty = c.String("empty")
	}
	return opts
}

// spinnerFrames resolves the animation: custom profile frames win, then
// the named preset (from flag or profile), then the house default.
func spinnerFrames(c *cli.Context, p *config.Profile) indicator.FrameSet {
	if len(p.Spinner.Frames) > 0 {
		return indicator.FrameSet{Glyphs: p.Spinner.Frames, FPS: p.Spinner.FPS.Duration}
	}
	preset := c.String("preset")
	if preset == "" {
		preset = p.Spinner.Preset
	}
	return indicator.Preset(preset)
}

// displayTarget returns where the live display should render: stdout, or
// a discarding writer under --quiet. Counters still accumulate when quiet,
// so --quiet --stats measures a run without drawing it.
func displayTarget(c *cli.Context) io.Writer {
	if c.Bool("quiet") {
		return io.Discard
	}
	return os.Stdout
}

// sleepFor pauses between simulated work items, bailing out fast on zero.
func sleepFor(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
