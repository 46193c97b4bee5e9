package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeProfile(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gauge.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad_FullProfile(t *testing.T) {
	yaml := `description: Crunching
interval: 250ms
bar:
  length: 30
  fill: "#"
  empty: "-"
  hide_rate: true
spinner:
  preset: minidot
`
	p, err := Load(writeProfile(t, yaml))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Description != "Crunching" {
		t.Errorf("Description = %q", p.Description)
	}
	if p.Interval.Duration != 250*time.Millisecond {
		t.Errorf("Interval = %v, want 250ms", p.Interval.Duration)
	}
	if p.Bar.Length != 30 || p.Bar.Fill != "#" || p.Bar.Empty != "-" {
		t.Errorf("Bar = %+v", p.Bar)
	}
	if !p.Bar.HideRate || p.Bar.HidePercent {
		t.Errorf("display flags = %+v", p.Bar)
	}
	if p.Spinner.Preset != "minidot" {
		t.Errorf("Spinner.Preset = %q", p.Spinner.Preset)
	}
}

func TestLoad_EmptyProfile(t *testing.T) {
	p, err := Load(writeProfile(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(*p, Profile{}) {
		t.Errorf("empty profile = %+v, want zero value", p)
	}
}

func TestLoad_CustomSpinnerFrames(t *testing.T) {
	yaml := `spinner:
  frames: [".", "o", "O", "o"]
  fps: 80ms
`
	p, err := Load(writeProfile(t, yaml))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Spinner.Frames) != 4 {
		t.Errorf("Frames = %v", p.Spinner.Frames)
	}
	if p.Spinner.FPS.Duration != 80*time.Millisecond {
		t.Errorf("FPS = %v, want 80ms", p.Spinner.FPS.Duration)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("GAUGE_TEST_FILL", "=")

	yaml := "bar:\n  fill: ${GAUGE_TEST_FILL}\n  empty: ${GAUGE_TEST_EMPTY_UNSET:-.}\n"
	p, err := Load(writeProfile(t, yaml))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Bar.Fill != "=" {
		t.Errorf("Fill = %q, want expanded env value", p.Bar.Fill)
	}
	if p.Bar.Empty != "." {
		t.Errorf("Empty = %q, want default from expansion", p.Bar.Empty)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "profile not found") {
		t.Fatalf("Load(missing) = %v, want profile-not-found error", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeProfile(t, "bar: [unclosed"))
	if err == nil || !strings.Contains(err.Error(), "invalid YAML") {
		t.Fatalf("Load(bad yaml) = %v, want invalid-YAML error", err)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	_, err := Load(writeProfile(t, "interval: soonish\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Fatalf("Load(bad duration) = %v, want invalid-duration error", err)
	}
}

func TestValidate_NegativeBarLength(t *testing.T) {
	_, err := Load(writeProfile(t, "bar:\n  length: -5\n"))
	if err == nil || !strings.Contains(err.Error(), "bar.length") {
		t.Fatalf("Load(negative length) = %v, want validation error", err)
	}
}
