package filter

import "math"

// Range is an inclusive [Min, Max] interval. A range with Min > Max
// contains nothing.
type Range struct {
	Min float64 `koanf:"min" yaml:"min"`
	Max float64 `koanf:"max" yaml:"max"`
}

// Contains reports whether Min ≤ v ≤ Max. NaN is never contained.
func (r Range) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return v >= r.Min && v <= r.Max
}

// Inverted reports whether the range can match nothing.
func (r Range) Inverted() bool {
	return r.Min > r.Max
}

// WithMin moves the lower bound and drags Max along if it would cross.
func (r Range) WithMin(v float64) Range {
	r.Min = v
	if r.Max < v {
		r.Max = v
	}
	return r
}

// WithMax moves the upper bound and drags Min along if it would cross.
func (r Range) WithMax(v float64) Range {
	r.Max = v
	if r.Min > v {
		r.Min = v
	}
	return r
}

// Nudge shifts Min (or Max when upper is set) by delta, clamped to the
// attribute's slider bounds. The paired slider is dragged along so the
// range never inverts.
func (r Range) Nudge(a Attribute, upper bool, delta float64) Range {
	lo, hi, step := a.Bounds()
	snap := func(v float64) float64 {
		if step > 0 {
			v = math.Round(v/step) * step
		}
		return math.Max(lo, math.Min(hi, v))
	}
	if upper {
		return r.WithMax(snap(r.Max + delta))
	}
	return r.WithMin(snap(r.Min + delta))
}
