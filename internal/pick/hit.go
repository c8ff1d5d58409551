// Package pick resolves pointer positions to projected stars and classifies
// raw pointer input into taps, pans and pinches.
package pick

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Tolerance widens a candidate's hit area. The effective radius is
// max(Radius + Margin, Floor).
type Tolerance struct {
	Margin float64
	Floor  float64
}

var (
	// PointerTolerance suits mouse input.
	PointerTolerance = Tolerance{Margin: 10, Floor: 40}

	// TouchTolerance suits finger input.
	TouchTolerance = Tolerance{Margin: 30, Floor: 80}
)

// ParseProfile maps an input profile name to its tolerance.
func ParseProfile(name string) (Tolerance, bool) {
	switch name {
	case "", "pointer", "mouse":
		return PointerTolerance, true
	case "touch":
		return TouchTolerance, true
	default:
		return Tolerance{}, false
	}
}

// Effective returns the hit radius for a candidate of the given radius.
func (t Tolerance) Effective(radius float64) float64 {
	return math.Max(radius+t.Margin, t.Floor)
}

// Candidate is a hit-testable screen disc.
type Candidate struct {
	Point  orb.Point
	Radius float64
}

// FindNearest returns the index of the candidate closest to pt whose
// effective radius covers it. Ties keep the earlier candidate. Candidates
// with a non-finite radius never match.
func FindNearest(pt orb.Point, candidates []Candidate, tol Tolerance) (int, bool) {
	best := -1
	bestDist := math.Inf(1)

	for i, c := range candidates {
		r := tol.Effective(c.Radius)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		d := planar.Distance(pt, c.Point)
		if math.IsNaN(d) || d > r {
			continue
		}
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}
