package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true")
	}
	if !ValidLevel(" warn ") {
		t.Error("ValidLevel(warn) = false")
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelWarn)

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("shown warn", Int("stars", 3))
	l.Error("shown error", Error(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages:\n%s", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "stars=3") {
		t.Errorf("missing warn line:\n%s", out)
	}
	if !strings.Contains(out, "error=boom") {
		t.Errorf("missing error field:\n%s", out)
	}

	buf.Reset()
	l.SetLevel(LevelDebug)
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("SetLevel did not lower the threshold:\n%s", buf.String())
	}
}

func TestLoggerNamed(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelInfo)
	sub := l.Named("starmap").With(String("observer", "Stockholm"))

	sub.Info("render", Float64("zoom", 1.5), Bool("mirrored", false))
	out := buf.String()
	for _, want := range []string{"starmap.observer=Stockholm", "starmap.zoom=1.5", "starmap.mirrored=false"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Named loggers share the parent's level.
	buf.Reset()
	l.SetLevel(LevelError)
	sub.Info("suppressed")
	if buf.Len() != 0 {
		t.Errorf("named logger ignored parent level:\n%s", buf.String())
	}
	if sub.Enabled(LevelInfo) {
		t.Error("Enabled(info) should be false at error level")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing", Any("k", 1))
	l.Named("x").Info("still nothing")
}
