// Package sky maps horizontal coordinates onto the 2D dome canvas.
package sky

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
)

const (
	// zenithCutoffDeg is the altitude above which stereographic radius is 0.
	zenithCutoffDeg = 89.9

	// maxZenithAngleDeg keeps tan(z/2) finite for stars near the nadir.
	maxZenithAngleDeg = 179.0
)

// Mode selects how altitude maps to distance from the dome center.
type Mode int

const (
	// ModeLinear uses r = R·(1 − alt/90)·zoom. Stars below the horizon
	// extend past the horizon circle.
	ModeLinear Mode = iota

	// ModeStereographic uses r = R·tan(z/2)·zoom with z the zenith angle.
	ModeStereographic
)

func (m Mode) String() string {
	switch m {
	case ModeStereographic:
		return "stereographic"
	default:
		return "linear"
	}
}

// ParseMode parses a projection mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear", "dome":
		return ModeLinear, nil
	case "stereographic", "stereo":
		return ModeStereographic, nil
	default:
		return ModeLinear, fmt.Errorf("unknown projection mode %q", s)
	}
}

// Chirality selects the East/West orientation. North is always up.
type Chirality int

const (
	// ChiralityStandard puts East on the right (map view).
	ChiralityStandard Chirality = iota

	// ChiralityMirrored puts East on the left (looking up at the sky).
	ChiralityMirrored
)

func (c Chirality) String() string {
	if c == ChiralityMirrored {
		return "mirrored"
	}
	return "standard"
}

// Canvas describes the drawing surface in logical pixels.
type Canvas struct {
	Width, Height    float64
	CenterX, CenterY float64
	DomeRadius       float64 // Horizon radius at zoom 1
}

// NewCanvas centers a dome in a width×height surface, leaving margin pixels
// between the horizon circle and the shorter edge.
func NewCanvas(width, height, margin float64) Canvas {
	r := math.Min(width, height)/2 - margin
	if r < 1 {
		r = 1
	}
	return Canvas{
		Width:      width,
		Height:     height,
		CenterX:    width / 2,
		CenterY:    height / 2,
		DomeRadius: r,
	}
}

// Bound returns the canvas rectangle.
func (c Canvas) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{c.Width, c.Height}}
}

// Point is a projected screen position.
type Point struct {
	X, Y   float64
	Radius float64 // Distance from the panned dome center
}

// Orb returns the position as an orb.Point.
func (p Point) Orb() orb.Point { return orb.Point{p.X, p.Y} }

// CompassPoint is a cardinal direction label position.
type CompassPoint struct {
	Label string
	AzDeg float64
	X, Y  float64
}

// Projector maps (altitude, azimuth) to screen coordinates. It holds only
// policy; all view state is passed in.
type Projector struct {
	Mode      Mode
	Chirality Chirality
}

// Project maps altitude and azimuth in degrees to screen coordinates.
func (p Projector) Project(altDeg, azDeg float64, view View, c Canvas) Point {
	r := p.radius(altDeg, c.DomeRadius) * view.Zoom
	angle := p.angle(azDeg)
	return Point{
		X:      c.CenterX + r*math.Cos(angle) + view.PanX,
		Y:      c.CenterY + r*math.Sin(angle) + view.PanY,
		Radius: r,
	}
}

// Unproject inverts Project. ok is false when the view or canvas is
// degenerate. At the dome center the azimuth is reported as 0.
func (p Projector) Unproject(x, y float64, view View, c Canvas) (altDeg, azDeg float64, ok bool) {
	if view.Zoom <= 0 || c.DomeRadius <= 0 {
		return 0, 0, false
	}

	dx := x - c.CenterX - view.PanX
	dy := y - c.CenterY - view.PanY
	r := math.Hypot(dx, dy) / view.Zoom / c.DomeRadius

	switch p.Mode {
	case ModeStereographic:
		altDeg = 90 - 2*math.Atan(r)*180/math.Pi
	default:
		altDeg = 90 * (1 - r)
	}

	if r == 0 {
		return altDeg, 0, true
	}

	angle := math.Atan2(dy, dx)
	if p.Chirality == ChiralityMirrored {
		azDeg = -(angle + math.Pi/2) * 180 / math.Pi
	} else {
		azDeg = (angle + math.Pi/2) * 180 / math.Pi
	}
	return altDeg, normalize360(azDeg), true
}

// Compass returns the N/E/S/W label positions, offset pixels (scaled by
// zoom) outside the horizon circle. Labels use the same orientation as
// Project so they always agree with star positions.
func (p Projector) Compass(view View, c Canvas, offset float64) []CompassPoint {
	cardinals := []struct {
		label string
		az    float64
	}{
		{"N", 0}, {"E", 90}, {"S", 180}, {"W", 270},
	}

	r := (c.DomeRadius + offset) * view.Zoom
	out := make([]CompassPoint, 0, len(cardinals))
	for _, cd := range cardinals {
		angle := p.angle(cd.az)
		out = append(out, CompassPoint{
			Label: cd.label,
			AzDeg: cd.az,
			X:     c.CenterX + r*math.Cos(angle) + view.PanX,
			Y:     c.CenterY + r*math.Sin(angle) + view.PanY,
		})
	}
	return out
}

// RingRadius returns the on-screen radius of the altitude circle altDeg.
func (p Projector) RingRadius(altDeg float64, view View, c Canvas) float64 {
	return p.radius(altDeg, c.DomeRadius) * view.Zoom
}

// Center returns the panned dome center.
func (p Projector) Center(view View, c Canvas) orb.Point {
	return orb.Point{c.CenterX + view.PanX, c.CenterY + view.PanY}
}

// radius returns the unzoomed distance from the dome center.
func (p Projector) radius(altDeg, domeRadius float64) float64 {
	switch p.Mode {
	case ModeStereographic:
		if altDeg > zenithCutoffDeg {
			return 0
		}
		z := math.Min(90-altDeg, maxZenithAngleDeg) * math.Pi / 180
		return domeRadius * math.Tan(z/2)
	default:
		return domeRadius * (1 - altDeg/90)
	}
}

// angle returns the screen angle in radians for an azimuth.
func (p Projector) angle(azDeg float64) float64 {
	az := azDeg * math.Pi / 180
	if p.Chirality == ChiralityMirrored {
		return -az - math.Pi/2
	}
	return az - math.Pi/2
}

func normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
