// Package filter selects catalog stars whose attributes fall inside
// configured ranges.
package filter

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-starmap/internal/astro"
)

// Attribute names a filterable star property.
type Attribute int

const (
	Magnitude Attribute = iota
	Distance
	Age
	Mass
	Luminosity
	Temperature
)

// Attributes lists every filterable attribute in panel order.
var Attributes = []Attribute{Magnitude, Distance, Age, Mass, Luminosity, Temperature}

func (a Attribute) String() string {
	switch a {
	case Magnitude:
		return "magnitude"
	case Distance:
		return "distance"
	case Age:
		return "age"
	case Mass:
		return "mass"
	case Luminosity:
		return "luminosity"
	case Temperature:
		return "temperature"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// Unit returns the display unit for the attribute.
func (a Attribute) Unit() string {
	switch a {
	case Distance:
		return "ly"
	case Age:
		return "Gyr"
	case Mass, Luminosity:
		return "☉"
	case Temperature:
		return "K"
	default:
		return ""
	}
}

// ParseAttribute parses an attribute name as used in config files.
func ParseAttribute(s string) (Attribute, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "magnitude", "mag":
		return Magnitude, nil
	case "distance", "dist":
		return Distance, nil
	case "age":
		return Age, nil
	case "mass":
		return Mass, nil
	case "luminosity", "lum":
		return Luminosity, nil
	case "temperature", "temp":
		return Temperature, nil
	default:
		return 0, fmt.Errorf("unknown filter attribute %q", s)
	}
}

// Value extracts the attribute from a star. Unknown values are NaN.
func (a Attribute) Value(s astro.Star) float64 {
	switch a {
	case Magnitude:
		return s.Mag
	case Distance:
		return s.DistanceLy
	case Age:
		return s.AgeGyr
	case Mass:
		return s.MassSolar
	case Luminosity:
		return s.Luminosity
	case Temperature:
		return s.TemperatureK
	default:
		return astro.Unknown()
	}
}

// Bounds returns the slider limits and step for the attribute.
func (a Attribute) Bounds() (lo, hi, step float64) {
	switch a {
	case Magnitude:
		return -2, 12, 0.1
	case Distance:
		return 0, 3000, 10
	case Age:
		return 0, 15, 0.1
	case Mass:
		return 0.1, 50, 0.1
	case Luminosity:
		return 0, 200000, 100
	case Temperature:
		return 2000, 40000, 100
	default:
		return 0, 0, 0
	}
}
