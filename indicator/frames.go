package indicator

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// FrameSet is one spinner animation: the glyphs cycled through and the
// cadence they advance at.
type FrameSet struct {
	Glyphs []string
	FPS    time.Duration
}

// defaultFPS paces spinners whose frame set carries no cadence.
const defaultFPS = 100 * time.Millisecond

// presets maps preset names to bubbles spinner definitions.
// "braille" is the house default.
var presets = map[string]spinner.Spinner{
	"line":      spinner.Line,
	"dot":       spinner.Dot,
	"minidot":   spinner.MiniDot,
	"jump":      spinner.Jump,
	"pulse":     spinner.Pulse,
	"points":    spinner.Points,
	"globe":     spinner.Globe,
	"moon":      spinner.Moon,
	"monkey":    spinner.Monkey,
	"meter":     spinner.Meter,
	"hamburger": spinner.Hamburger,
	"ellipsis":  spinner.Ellipsis,
	"braille": {
		Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
		FPS:    time.Second / 10,
	},
}

// Preset returns the named spinner frame set.
// Unknown names fall back to "braille" rather than failing; the preset is
// cosmetic.
func Preset(name string) FrameSet {
	s, ok := presets[name]
	if !ok {
		s = presets["braille"]
	}
	return fromSpinner(s)
}

// PresetNames returns all preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetSpinner returns the underlying bubbles definition for the named
// preset, for callers embedding it in a Bubble Tea model. Unknown names
// fall back like Preset.
func PresetSpinner(name string) spinner.Spinner {
	s, ok := presets[name]
	if !ok {
		s = presets["braille"]
	}
	return s
}

func fromSpinner(s spinner.Spinner) FrameSet {
	return FrameSet{Glyphs: s.Frames, FPS: s.FPS}
}

// normalized returns a frame set safe to animate: at least one glyph and a
// positive cadence.
func (f FrameSet) normalized() FrameSet {
	if len(f.Glyphs) == 0 {
		f.Glyphs = presets["braille"].Frames
	}
	if f.FPS <= 0 {
		f.FPS = defaultFPS
	}
	return f
}
