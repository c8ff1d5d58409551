package starmap

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/pick"
	"github.com/litescript/ls-starmap/internal/sky"
)

// ProjectedStar is a star's screen data for one frame.
type ProjectedStar struct {
	Star      astro.Star
	X, Y      float64
	Alt, Az   float64
	Size      float64
	Glow      float64
	HitRadius float64
	Alpha     float64
	Labeled   bool
}

// BelowHorizon reports whether the star is drawn as a ghost.
func (p ProjectedStar) BelowHorizon() bool { return p.Alt < 0 }

// Point returns the screen position.
func (p ProjectedStar) Point() orb.Point { return orb.Point{p.X, p.Y} }

// Frame is the result of one render pass. It is rebuilt on every render and
// never updated in place.
type Frame struct {
	Generation uint64
	Time       time.Time
	LST        float64

	Canvas    sky.Canvas
	View      sky.View
	Projector sky.Projector

	Center        orb.Point
	HorizonRadius float64
	Rings         []float64 // On-screen radii of the 30° and 60° altitude circles
	Compass       []sky.CompassPoint

	// Stars holds visible, unculled stars in catalog order.
	Stars    []ProjectedStar
	Counts   Counts
	Selected int // Index into Stars, -1 if none is drawn

	index map[uuid.UUID]int
}

// Lookup returns the projected star with the given ID.
func (f *Frame) Lookup(id uuid.UUID) (ProjectedStar, bool) {
	i, ok := f.index[id]
	if !ok {
		return ProjectedStar{}, false
	}
	return f.Stars[i], true
}

// SelectedStar returns the drawn selected star, if any.
func (f *Frame) SelectedStar() (ProjectedStar, bool) {
	if f.Selected < 0 || f.Selected >= len(f.Stars) {
		return ProjectedStar{}, false
	}
	return f.Stars[f.Selected], true
}

// SelectionRingRadius is the radius of the highlight ring around the
// selected star.
func (f *Frame) SelectionRingRadius() float64 {
	return selectionRing * f.View.Zoom
}

func (f *Frame) candidates() []pick.Candidate {
	out := make([]pick.Candidate, len(f.Stars))
	for i, ps := range f.Stars {
		out[i] = pick.Candidate{Point: ps.Point(), Radius: ps.Glow}
	}
	return out
}
