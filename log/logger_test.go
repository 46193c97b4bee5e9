package log

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("indicator").WithOutput(&buf)

	l.Warn("output stream write failed", map[string]any{"error": "broken pipe"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["component"] != "indicator" {
		t.Errorf("component = %v, want indicator", entry["component"])
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
	if entry["message"] != "output stream write failed" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestNop_Discards(t *testing.T) {
	// Must not panic and must write nothing anywhere observable.
	l := Nop()
	l.Debug("dropped", nil)
	l.Info("dropped", nil)
	l.Warn("dropped", nil)
	l.Error("dropped", nil)
	l.Sugar().Infof("dropped %d", 1)
}

func TestSugar_WithFields(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogger("cli").WithOutput(&buf).Sugar().With("preset", "dot")

	s.Debugf("spinner preset selected")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["preset"] != "dot" {
		t.Errorf("preset = %v, want dot", entry["preset"])
	}
}
