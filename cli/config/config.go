package config

import (
	"fmt"
	"time"
)

// Profile represents a gauge.yaml profile file.
// All values are optional and act as defaults for gauge command flags.
// CLI flags always override profile values.
type Profile struct {
	Description string         `yaml:"description"`
	Interval    Duration       `yaml:"interval"`
	Bar         BarProfile     `yaml:"bar"`
	Spinner     SpinnerProfile `yaml:"spinner"`
}

// BarProfile holds determinate-bar display defaults.
type BarProfile struct {
	Length      int    `yaml:"length"`
	Fill        string `yaml:"fill"`
	Empty       string `yaml:"empty"`
	HidePercent bool   `yaml:"hide_percent"`
	HideCount   bool   `yaml:"hide_count"`
	HideRate    bool   `yaml:"hide_rate"`
	HideETA     bool   `yaml:"hide_eta"`
}

// SpinnerProfile holds spinner display defaults.
type SpinnerProfile struct {
	// Preset names a built-in frame set. Custom frames override it.
	Preset string   `yaml:"preset"`
	Frames []string `yaml:"frames,omitempty"`
	// FPS is the frame cadence for custom frames.
	FPS Duration `yaml:"fps,omitempty"`
}

// Validate rejects profile values that would make a display nonsensical
// rather than merely ugly.
func (p *Profile) Validate() error {
	if p.Bar.Length < 0 {
		return fmt.Errorf("bar.length must not be negative, got %d", p.Bar.Length)
	}
	if p.Interval.Duration < 0 {
		return fmt.Errorf("interval must not be negative, got %s", p.Interval)
	}
	if len(p.Spinner.Frames) > 0 && p.Spinner.FPS.Duration < 0 {
		return fmt.Errorf("spinner.fps must not be negative, got %s", p.Spinner.FPS)
	}
	return nil
}

// Duration wraps time.Duration for YAML string parsing (e.g. "10s", "250ms").
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses a duration string like "100ms" or "2s".
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}
