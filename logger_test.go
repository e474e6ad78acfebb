package squircle

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	// Overclaimed radii trigger the defensive clamp, which logs at
	// debug level.
	SmoothRect(100, 50, UniformRadii(60), 0.5)
	if buf.Len() == 0 {
		t.Error("expected a debug record for clamped radii")
	}

	// Compliant input stays silent.
	buf.Reset()
	SmoothRect(100, 50, UniformRadii(10), 0.5)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}
