package main

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-starmap/internal/config"
)

const testAt = "2024-03-20T21:30:00Z"

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")

	var out, errb bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errb)
	err = root.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func TestWhereYAML(t *testing.T) {
	out, _, err := run(t, "where", "Polaris", "vega", "--lat", "90", "--lon", "0", "--at", testAt, "--yaml", "--log-level", "error")
	if err != nil {
		t.Fatalf("where: %v", err)
	}

	var report whereReport
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if len(report.Stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(report.Stars))
	}
	if report.Latitude != 90 {
		t.Errorf("latitude = %v, want 90", report.Latitude)
	}

	// From the pole, altitude equals declination
	polaris := report.Stars[0]
	if polaris.Name != "Polaris" || math.Abs(polaris.Altitude-89.26) > 0.01 {
		t.Errorf("Polaris = %+v, want altitude 89.26", polaris)
	}
	if polaris.Tier != "high" {
		t.Errorf("Polaris tier = %q, want high", polaris.Tier)
	}
	if !polaris.Circumpolar || !polaris.Rise.IsZero() || !polaris.Set.IsZero() {
		t.Errorf("Polaris should be circumpolar without crossings: %+v", polaris)
	}
	if vega := report.Stars[1]; vega.Name != "Vega" || math.Abs(vega.Peak-38.78) > 0.01 {
		t.Errorf("Vega = %+v, want peak 38.78", vega)
	}
}

func TestWhereText(t *testing.T) {
	out, _, err := run(t, "where", "Sirius", "--lat", "0", "--lon", "0", "--at", testAt, "--log-level", "error")
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], testAt) {
		t.Errorf("header = %q, want time prefix", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Sirius") {
		t.Errorf("row = %q, want Sirius", lines[1])
	}
}

func TestWhereUnknownStar(t *testing.T) {
	_, _, err := run(t, "where", "Krypton", "--log-level", "error")
	if err == nil || !strings.Contains(err.Error(), "Krypton") {
		t.Errorf("err = %v, want unknown star error", err)
	}
}

func TestInvalidObserver(t *testing.T) {
	_, _, err := run(t, "where", "--lat", "100")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestRender(t *testing.T) {
	out, stderr, err := run(t, "render", "--width", "40", "--height", "20", "--at", testAt, "--metrics", "--log-level", "error")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 21 {
		t.Fatalf("got %d lines, want 21", len(lines))
	}
	if len([]rune(lines[0])) != 40 {
		t.Errorf("row width = %d, want 40", len([]rune(lines[0])))
	}
	if !strings.HasPrefix(lines[20], "Showing ") || !strings.Contains(lines[20], testAt) {
		t.Errorf("status line = %q", lines[20])
	}
	if !strings.Contains(stderr, "starmap_chart_frames_rendered_total 1") {
		t.Errorf("metrics dump missing frame counter:\n%s", stderr)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "starmap v") {
		t.Errorf("version output = %q", out)
	}
}

func TestParseAt(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"", time.Time{}, false},
		{"now", time.Time{}, false},
		{testAt, time.Date(2024, 3, 20, 21, 30, 0, 0, time.UTC), false},
		{"yesterday", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := parseAt(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAt(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseAt(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
