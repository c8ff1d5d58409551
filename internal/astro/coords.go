// Package astro provides astronomical coordinate transformations and sky math.
package astro

import (
	"math"
	"time"
)

// zenithEpsilon bounds cos(lat)*cos(alt) below which azimuth is undefined.
const zenithEpsilon = 1e-12

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// DefaultObserver returns the built-in observer location (Stockholm).
func DefaultObserver() Observer {
	return Observer{
		LatDeg: 59.3293,
		LonDeg: 18.0686,
		Name:   "Stockholm",
	}
}

// Horizontal holds observer-relative coordinates.
type Horizontal struct {
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith)
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
}

// EquatorialToHorizontal converts equatorial coordinates to horizontal
// coordinates for a given local sidereal time and observer latitude.
//
// RA and LST are in degrees. Uses standard astronomical conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Altitude: 0° = horizon, 90° = zenith
//
// Out-of-range declination and latitude are clamped to [-90, 90]. At the
// zenith, nadir or for an observer on a pole the azimuth is undefined and 0
// is returned.
func EquatorialToHorizontal(raDeg, decDeg, lstDeg, latDeg float64) Horizontal {
	lat := degToRad(clamp(latDeg, -90, 90))
	dec := degToRad(clamp(decDeg, -90, 90))

	// Hour Angle = LST - RA
	ha := degToRad(NormalizeDegrees(lstDeg - raDeg))

	sinAlt := clamp(math.Sin(dec)*math.Sin(lat)+math.Cos(dec)*math.Cos(lat)*math.Cos(ha), -1, 1)
	alt := math.Asin(sinAlt)

	az := 0.0
	denom := math.Cos(lat) * math.Cos(alt)
	if math.Abs(denom) > zenithEpsilon {
		cosAz := clamp((math.Sin(dec)-math.Sin(lat)*sinAlt)/denom, -1, 1)
		az = radToDeg(math.Acos(cosAz))

		// Positive hour angle: object is west of the meridian
		if math.Sin(ha) >= 0 {
			az = 360 - az
		}
	}

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  NormalizeDegrees(az),
	}
}

// HorizontalAt computes altitude and azimuth of an RA/Dec position for an
// observer at instant t.
func HorizontalAt(raDeg, decDeg float64, obs Observer, t time.Time) Horizontal {
	lst := LocalSiderealTime(t, obs.LonDeg)
	return EquatorialToHorizontal(raDeg, decDeg, lst, obs.LatDeg)
}

// CulminationAltitude returns the peak altitude in degrees an object with the
// given declination reaches for an observer at latDeg.
func CulminationAltitude(decDeg, latDeg float64) float64 {
	return 90 - math.Abs(clamp(latDeg, -90, 90)-clamp(decDeg, -90, 90))
}

// AltitudeTier categorizes altitude for UI display.
type AltitudeTier int

const (
	AltitudeNone   AltitudeTier = iota // Below horizon
	AltitudeLow                        // 0-15 degrees
	AltitudeMedium                     // 15-45 degrees
	AltitudeHigh                       // 45+ degrees
)

// GetAltitudeTier returns the tier for a given altitude.
func GetAltitudeTier(altDeg float64) AltitudeTier {
	switch {
	case altDeg <= 0:
		return AltitudeNone
	case altDeg < 15:
		return AltitudeLow
	case altDeg < 45:
		return AltitudeMedium
	default:
		return AltitudeHigh
	}
}

func (t AltitudeTier) String() string {
	switch t {
	case AltitudeLow:
		return "low"
	case AltitudeMedium:
		return "medium"
	case AltitudeHigh:
		return "high"
	default:
		return "below horizon"
	}
}
