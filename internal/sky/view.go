package sky

import (
	"math"

	"github.com/litescript/ls-starmap/internal/astro"
)

const (
	DefaultMinZoom = 0.5
	DefaultMaxZoom = 3.0

	// ZoomStep is the factor applied by zoom-in/zoom-out controls.
	ZoomStep = 1.2

	// Wheel factors per notch.
	WheelZoomIn  = 1.1
	WheelZoomOut = 0.9
)

// View is the mutable pan/zoom/observer state consumed by Projector.
type View struct {
	Zoom       float64
	PanX, PanY float64

	MinZoom, MaxZoom float64

	Observer astro.Observer
}

// NewView creates a view at zoom 1 with no pan. Non-positive limits fall back
// to the defaults and inverted limits are swapped. An observer with a
// non-finite coordinate is replaced by the default observer.
func NewView(minZoom, maxZoom float64, obs astro.Observer) View {
	if !(minZoom > 0) {
		minZoom = DefaultMinZoom
	}
	if !(maxZoom > 0) {
		maxZoom = DefaultMaxZoom
	}
	if minZoom > maxZoom {
		minZoom, maxZoom = maxZoom, minZoom
	}
	if !finite(obs.LatDeg) || !finite(obs.LonDeg) {
		obs = astro.DefaultObserver()
	}
	v := View{
		MinZoom:  minZoom,
		MaxZoom:  maxZoom,
		Observer: obs,
	}
	v.Zoom = v.clampZoom(1)
	return v
}

// Pan shifts the view by (dx, dy) screen pixels. Pan is unbounded.
func (v *View) Pan(dx, dy float64) {
	if math.IsNaN(dx) || math.IsNaN(dy) {
		return
	}
	v.PanX += dx
	v.PanY += dy
}

// ZoomBy multiplies the zoom level by factor and clamps it. Non-positive
// factors are ignored.
func (v *View) ZoomBy(factor float64) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	v.Zoom = v.clampZoom(v.Zoom * factor)
}

// ZoomTo sets the zoom level, clamped to [MinZoom, MaxZoom].
func (v *View) ZoomTo(level float64) {
	if math.IsNaN(level) {
		return
	}
	v.Zoom = v.clampZoom(level)
}

// Reset restores zoom 1 and removes any pan. The observer is kept.
func (v *View) Reset() {
	v.Zoom = v.clampZoom(1)
	v.PanX = 0
	v.PanY = 0
}

// SetObserver moves the observer and clears its site name. Latitude is
// clamped to [-90, 90] and longitude wrapped into [-180, 180). Non-finite
// coordinates are ignored.
func (v *View) SetObserver(latDeg, lonDeg float64) {
	if !finite(latDeg) || !finite(lonDeg) {
		return
	}
	if latDeg < -90 {
		latDeg = -90
	} else if latDeg > 90 {
		latDeg = 90
	}
	lon := normalize360(lonDeg + 180)
	v.Observer.LatDeg = latDeg
	v.Observer.LonDeg = lon - 180
	v.Observer.Name = ""
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func (v View) clampZoom(z float64) float64 {
	return math.Max(v.MinZoom, math.Min(v.MaxZoom, z))
}
