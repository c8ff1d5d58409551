package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starmap/internal/filter"
	"github.com/litescript/ls-starmap/internal/starmap"
)

// Filter panel colors
const (
	colorTrackOn   = "#9D4EDD" // Purple - selected span
	colorTrackOff  = "#444444" // Dark gray - outside span
	colorInverted  = "#FF6347" // Tomato - empty range
	colorCountFull = "#7CFC00" // Lawn green - everything visible
	colorCountPart = "#FFD700" // Gold - partially filtered

	trackWidth = 16
)

// RenderCounts renders the "Showing N of M stars" line.
func RenderCounts(c starmap.Counts) string {
	color := colorCountPart
	switch {
	case c.Total > 0 && c.Visible == c.Total:
		color = colorCountFull
	case c.Visible == 0:
		color = colorInverted
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return style.Render(fmt.Sprintf("Showing %d of %d stars", c.Visible, c.Total))
}

// RenderFilterPanel renders one line per filterable attribute.
// Format:
//
//	▶ magnitude   -2.0 ─ 6.0          ░░██████████░░░░
//	  distance     any
func RenderFilterPanel(ranges map[filter.Attribute]filter.Range, active filter.Attribute) string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	lines := make([]string, 0, len(filter.Attributes))
	for _, a := range filter.Attributes {
		var line string
		if a == active {
			line = activeStyle.Render(fmt.Sprintf("▶ %-12s", a))
		} else {
			line = labelStyle.Render(fmt.Sprintf("  %-12s", a))
		}

		r, ok := ranges[a]
		if !ok {
			lines = append(lines, line+dimStyle.Render("any"))
			continue
		}

		bounds := formatRange(a, r)
		if r.Inverted() {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorInverted))
			lines = append(lines, line+style.Render(bounds+"  (empty)"))
			continue
		}
		lines = append(lines, line+labelStyle.Render(fmt.Sprintf("%-20s", bounds))+renderTrack(a, r))
	}
	return strings.Join(lines, "\n")
}

// formatRange formats a range with precision matching the slider step.
func formatRange(a filter.Attribute, r filter.Range) string {
	_, _, step := a.Bounds()
	prec := 0
	if step < 1 {
		prec = int(math.Round(-math.Log10(step)))
	}
	s := fmt.Sprintf("%.*f ─ %.*f", prec, r.Min, prec, r.Max)
	if unit := a.Unit(); unit != "" {
		s += " " + unit
	}
	return s
}

// renderTrack draws the range as a span on the attribute's slider track.
func renderTrack(a filter.Attribute, r filter.Range) string {
	lo, hi, _ := a.Bounds()
	if hi <= lo {
		return ""
	}
	pos := func(v float64) int {
		t := (v - lo) / (hi - lo)
		return int(math.Round(math.Max(0, math.Min(1, t)) * (trackWidth - 1)))
	}
	from, to := pos(r.Min), pos(r.Max)

	on := lipgloss.NewStyle().Foreground(lipgloss.Color(colorTrackOn))
	off := lipgloss.NewStyle().Foreground(lipgloss.Color(colorTrackOff))

	var b strings.Builder
	for i := 0; i < trackWidth; i++ {
		if i >= from && i <= to {
			b.WriteString(on.Render("█"))
		} else {
			b.WriteString(off.Render("░"))
		}
	}
	return b.String()
}
