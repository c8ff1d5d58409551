package astro

import (
	"math"
	"time"
)

// RiseSetWindow is the next rise-transit-set cycle of a fixed star as the
// chart draws it.
type RiseSetWindow struct {
	Rise        time.Time // Zero if the star is already up or never rises
	Transit     time.Time // Highest point
	Set         time.Time // Zero if the star never sets within the search span
	MaxAltitude float64   // Altitude at transit in degrees
	Circumpolar bool      // Never sets
	NeverRises  bool
}

const (
	// riseSetSpan covers more than one full turn of the chart's sidereal
	// clock.
	riseSetSpan = 24 * time.Hour
	riseSetStep = 10 * time.Minute
)

// RiseTransitSet finds the next horizon crossings and the next transit of a
// star after from. Crossings are linearly interpolated between samples and
// the transit is refined with a parabola through the three highest samples.
func RiseTransitSet(raDeg, decDeg float64, obs Observer, from time.Time) RiseSetWindow {
	peak := CulminationAltitude(decDeg, obs.LatDeg)
	// Lowest point is the lower culmination.
	low := -90 + math.Abs(clamp(obs.LatDeg, -90, 90)+clamp(decDeg, -90, 90))
	switch {
	case low > 0:
		w := RiseSetWindow{Circumpolar: true, MaxAltitude: peak}
		w.Transit, _ = nextTransit(raDeg, decDeg, obs, from)
		return w
	case peak <= 0:
		return RiseSetWindow{NeverRises: true, MaxAltitude: peak}
	}

	var w RiseSetWindow
	w.Transit, w.MaxAltitude = nextTransit(raDeg, decDeg, obs, from)

	n := int(riseSetSpan / riseSetStep)
	prevT := from
	prevAlt := HorizontalAt(raDeg, decDeg, obs, from).AltDeg
	for i := 1; i <= n; i++ {
		t := from.Add(time.Duration(i) * riseSetStep)
		alt := HorizontalAt(raDeg, decDeg, obs, t).AltDeg

		switch {
		case prevAlt <= 0 && alt > 0:
			w.Rise = interpolateCrossing(prevT, t, prevAlt, alt, 0)
		case prevAlt > 0 && alt <= 0:
			w.Set = interpolateCrossing(prevT, t, prevAlt, alt, 0)
			return w
		}
		prevT, prevAlt = t, alt
	}
	return w
}

// nextTransit returns the first altitude maximum after from.
func nextTransit(raDeg, decDeg float64, obs Observer, from time.Time) (time.Time, float64) {
	alt := func(t time.Time) float64 { return HorizontalAt(raDeg, decDeg, obs, t).AltDeg }

	n := int(riseSetSpan / riseSetStep)
	prev, cur := alt(from.Add(-riseSetStep)), alt(from)
	for i := 0; i <= n; i++ {
		t := from.Add(time.Duration(i) * riseSetStep)
		next := alt(t.Add(riseSetStep))
		if cur >= prev && cur > next {
			return refineMaximum(t, riseSetStep, prev, cur, next)
		}
		prev, cur = cur, next
	}
	return time.Time{}, CulminationAltitude(decDeg, obs.LatDeg)
}

// refineMaximum fits y = at² + bt + c through samples at t-dt, t and t+dt
// and returns the vertex. The discrete sample is returned when the
// parabola does not open downward.
func refineMaximum(t time.Time, dt time.Duration, y0, y1, y2 float64) (time.Time, float64) {
	c := y1
	a := (y0+y2)/2 - c
	b := (y2 - y0) / 2
	if a >= 0 {
		return t, y1
	}

	tMax := clamp(-b/(2*a), -1, 1)
	return t.Add(time.Duration(float64(dt) * tMax)), a*tMax*tMax + b*tMax + c
}

// interpolateCrossing finds the time when altitude crosses threshold.
func interpolateCrossing(t1, t2 time.Time, alt1, alt2, threshold float64) time.Time {
	if math.Abs(alt2-alt1) < 0.0001 {
		return t1
	}
	fraction := clamp((threshold-alt1)/(alt2-alt1), 0, 1)
	return t1.Add(time.Duration(float64(t2.Sub(t1)) * fraction))
}
