package pick

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	// TapMaxDuration is the longest press still treated as a tap.
	TapMaxDuration = 300 * time.Millisecond

	// TapMaxMovement is the cumulative movement in pixels below which a
	// press may still be a tap. Past it the press becomes a pan.
	TapMaxMovement = 15.0
)

// State is the classifier state.
type State int

const (
	StateIdle State = iota
	StatePressed
	StatePanning
	StatePinching
)

func (s State) String() string {
	switch s {
	case StatePressed:
		return "pressed"
	case StatePanning:
		return "panning"
	case StatePinching:
		return "pinching"
	default:
		return "idle"
	}
}

// Kind is the classification reported on release.
type Kind int

const (
	KindNone Kind = iota
	KindTap
	KindPan
	KindPinch
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindPan:
		return "pan"
	case KindPinch:
		return "pinch"
	default:
		return "none"
	}
}

// Outcome is the result of a completed gesture. Point is the press
// position for taps.
type Outcome struct {
	Kind  Kind
	Point orb.Point
}

// Gesture classifies one pointer interaction at a time.
//
//	Idle → Pressed → Tap | Pan | Pinch → Idle
type Gesture struct {
	state    State
	start    orb.Point
	last     orb.Point
	pressed  time.Time
	moved    float64
	second   orb.Point
	pinchRef float64
}

// State returns the current state.
func (g *Gesture) State() State { return g.state }

// Press starts a gesture at pt. A press while a gesture is active restarts it.
func (g *Gesture) Press(pt orb.Point, at time.Time) {
	*g = Gesture{
		state:   StatePressed,
		start:   pt,
		last:    pt,
		pressed: at,
	}
}

// Move reports pointer motion. Once cumulative motion exceeds
// TapMaxMovement the gesture becomes a pan and Move returns the delta to
// apply; the first panning delta is measured from the press point.
func (g *Gesture) Move(pt orb.Point) (dx, dy float64, panning bool) {
	switch g.state {
	case StatePressed:
		g.moved += planar.Distance(g.last, pt)
		g.last = pt
		if g.moved < TapMaxMovement {
			return 0, 0, false
		}
		g.state = StatePanning
		return pt[0] - g.start[0], pt[1] - g.start[1], true
	case StatePanning:
		dx, dy = pt[0]-g.last[0], pt[1]-g.last[1]
		g.moved += planar.Distance(g.last, pt)
		g.last = pt
		return dx, dy, true
	default:
		return 0, 0, false
	}
}

// PressSecond adds a second pointer and turns the gesture into a pinch.
func (g *Gesture) PressSecond(pt orb.Point) {
	if g.state == StateIdle {
		return
	}
	g.state = StatePinching
	g.second = pt
	g.pinchRef = planar.Distance(g.last, pt)
}

// MoveSecond moves the second pointer and returns the zoom factor since the
// previous pinch update. The factor is 1 when not pinching.
func (g *Gesture) MoveSecond(pt orb.Point) float64 {
	if g.state != StatePinching {
		return 1
	}
	g.second = pt
	d := planar.Distance(g.last, pt)
	factor := 1.0
	if g.pinchRef > 0 && d > 0 {
		factor = d / g.pinchRef
	}
	if d > 0 {
		g.pinchRef = d
	}
	return factor
}

// Release ends the gesture and resets to Idle. A slow press that never
// moved far enough to pan reports KindNone.
func (g *Gesture) Release(at time.Time) Outcome {
	var out Outcome
	switch g.state {
	case StatePressed:
		if at.Sub(g.pressed) < TapMaxDuration && g.moved < TapMaxMovement {
			out = Outcome{Kind: KindTap, Point: g.start}
		} else {
			out = Outcome{Kind: KindNone, Point: g.last}
		}
	case StatePanning:
		out = Outcome{Kind: KindPan, Point: g.last}
	case StatePinching:
		out = Outcome{Kind: KindPinch, Point: g.last}
	}
	*g = Gesture{}
	return out
}

// Cancel drops the current gesture without an outcome.
func (g *Gesture) Cancel() {
	*g = Gesture{}
}
