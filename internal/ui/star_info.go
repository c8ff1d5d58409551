package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/starmap"
)

// Altitude tier colors
const (
	colorAltHigh   = "#7CFC00" // Lawn green - high in the sky
	colorAltMedium = "#FFD700" // Gold
	colorAltLow    = "#FF6347" // Tomato - near the horizon
	colorAltNone   = "#444444" // Dark gray - below horizon
)

// tierToColor returns the color for an altitude tier.
func tierToColor(tier astro.AltitudeTier) string {
	switch tier {
	case astro.AltitudeHigh:
		return colorAltHigh
	case astro.AltitudeMedium:
		return colorAltMedium
	case astro.AltitudeLow:
		return colorAltLow
	default:
		return colorAltNone
	}
}

// colorByTier applies tier-based coloring to text.
func colorByTier(tier astro.AltitudeTier, text string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(tierToColor(tier)))
	return style.Render(text)
}

// RenderStarInfo renders the detail card for a selected star as seen by
// obs at time at.
func RenderStarInfo(ps starmap.ProjectedStar, obs astro.Observer, at time.Time) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	s := ps.Star
	field := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value)
	}

	title := s.Name
	if s.Constellation != "" {
		title += dimStyle.Render(" · " + s.Constellation)
	}

	tier := astro.GetAltitudeTier(ps.Alt)
	position := fmt.Sprintf("%.1f°", ps.Alt)
	if ps.BelowHorizon() {
		position = "Below horizon"
	}
	window := astro.RiseTransitSet(s.RAdeg, s.DecDeg, obs, at)

	lines := []string{
		titleStyle.Render(title),
		labelStyle.Render(fmt.Sprintf("%-12s", "Altitude")) + colorByTier(tier, position),
		field("Azimuth", fmt.Sprintf("%.1f° %s", ps.Az, compassName(ps.Az))),
		field("Peak", formatPeak(window)),
		field("Rise / Set", formatRiseSet(window)),
		field("RA / Dec", fmt.Sprintf("%.2f° / %+.2f°", s.RAdeg, s.DecDeg)),
		field("Magnitude", fmt.Sprintf("%.2f", s.Mag)),
		field("Distance", formatKnown(s.DistanceLy, "%.1f ly")),
		field("Spectral", orDash(s.SpectralClass)),
		field("Temperature", formatKnown(s.TemperatureK, "%.0f K")),
		field("Mass", formatKnown(s.MassSolar, "%.2f M☉")),
		field("Luminosity", formatKnown(s.Luminosity, "%.1f L☉")),
		field("Age", formatKnown(s.AgeGyr, "%.2f Gyr")),
	}
	if s.Description != "" {
		lines = append(lines, "", dimStyle.Render(s.Description))
	}
	return strings.Join(lines, "\n")
}

// RenderNoSelection renders the placeholder shown when nothing is selected.
func RenderNoSelection() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	return dimStyle.Render("Click a star or press n to select")
}

// formatPeak formats the next transit.
// Format: 23:02 UTC @ 58.0°
func formatPeak(w astro.RiseSetWindow) string {
	if w.NeverRises {
		return "Never rises"
	}
	if w.Transit.IsZero() {
		return fmt.Sprintf("%.1f°", w.MaxAltitude)
	}
	return fmt.Sprintf("%s @ %.1f°", w.Transit.UTC().Format("15:04 MST"), w.MaxAltitude)
}

// formatRiseSet formats the next horizon crossings.
// Format: 22:14 UTC / 03:48 UTC
func formatRiseSet(w astro.RiseSetWindow) string {
	switch {
	case w.NeverRises:
		return "below horizon"
	case w.Circumpolar:
		return "Never sets"
	}
	rise, set := "up", "not within a day"
	if !w.Rise.IsZero() {
		rise = w.Rise.UTC().Format("15:04 MST")
	}
	if !w.Set.IsZero() {
		set = w.Set.UTC().Format("15:04 MST")
	}
	return rise + " / " + set
}

func formatKnown(v float64, format string) string {
	if math.IsNaN(v) {
		return "unknown"
	}
	return fmt.Sprintf(format, v)
}

func orDash(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// compassName returns the 8-point compass direction for an azimuth.
func compassName(azDeg float64) string {
	names := [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	i := int(math.Floor(math.Mod(azDeg+22.5, 360)/45)) % 8
	if i < 0 {
		i += 8
	}
	return names[i]
}
