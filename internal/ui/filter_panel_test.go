package ui

import (
	"strings"
	"testing"

	"github.com/litescript/ls-starmap/internal/filter"
	"github.com/litescript/ls-starmap/internal/starmap"
)

func TestRenderCounts(t *testing.T) {
	tests := []struct {
		counts starmap.Counts
		want   string
	}{
		{starmap.Counts{Visible: 4, Total: 4}, "Showing 4 of 4 stars"},
		{starmap.Counts{Visible: 12, Total: 40}, "Showing 12 of 40 stars"},
		{starmap.Counts{Visible: 0, Total: 40}, "Showing 0 of 40 stars"},
	}

	for _, tt := range tests {
		if got := RenderCounts(tt.counts); !strings.Contains(got, tt.want) {
			t.Errorf("RenderCounts(%+v) = %q, want %q", tt.counts, got, tt.want)
		}
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		attr filter.Attribute
		r    filter.Range
		want string
	}{
		{filter.Magnitude, filter.Range{Min: -2, Max: 6}, "-2.0 ─ 6.0"},
		{filter.Distance, filter.Range{Min: 0, Max: 3000}, "0 ─ 3000 ly"},
		{filter.Age, filter.Range{Min: 0, Max: 15}, "0.0 ─ 15.0 Gyr"},
		{filter.Temperature, filter.Range{Min: 3000, Max: 9000}, "3000 ─ 9000 K"},
	}

	for _, tt := range tests {
		if got := formatRange(tt.attr, tt.r); got != tt.want {
			t.Errorf("formatRange(%v, %+v) = %q, want %q", tt.attr, tt.r, got, tt.want)
		}
	}
}

func TestRenderTrack(t *testing.T) {
	tests := []struct {
		name string
		attr filter.Attribute
		r    filter.Range
		on   int
	}{
		{"full range", filter.Magnitude, filter.Range{Min: -2, Max: 12}, trackWidth},
		{"single point", filter.Distance, filter.Range{Min: 0, Max: 0}, 1},
		{"beyond bounds", filter.Age, filter.Range{Min: -10, Max: 100}, trackWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderTrack(tt.attr, tt.r)
			if n := strings.Count(got, "█"); n != tt.on {
				t.Errorf("filled cells = %d, want %d", n, tt.on)
			}
			if n := strings.Count(got, "█") + strings.Count(got, "░"); n != trackWidth {
				t.Errorf("track cells = %d, want %d", n, trackWidth)
			}
		})
	}
}

func TestRenderFilterPanel(t *testing.T) {
	ranges := map[filter.Attribute]filter.Range{
		filter.Magnitude: {Min: -2, Max: 6},
		filter.Distance:  {Min: 500, Max: 100},
	}
	out := RenderFilterPanel(ranges, filter.Distance)
	lines := strings.Split(out, "\n")

	if len(lines) != len(filter.Attributes) {
		t.Fatalf("got %d lines, want %d", len(lines), len(filter.Attributes))
	}
	if !strings.Contains(lines[0], "-2.0 ─ 6.0") {
		t.Errorf("magnitude line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "▶ distance") || !strings.Contains(lines[1], "(empty)") {
		t.Errorf("distance line = %q, want active marker and empty note", lines[1])
	}
	if !strings.HasSuffix(strings.TrimSpace(lines[2]), "any") {
		t.Errorf("age line = %q, want unconfigured", lines[2])
	}
}
