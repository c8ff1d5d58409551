package astro

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// catalogNamespace seeds deterministic star IDs.
var catalogNamespace = uuid.MustParse("6f1c7a52-3c1e-4b8e-9a57-2d0e5b8f4c11")

// Star is an immutable catalog record.
//
// Physical attributes that are not known are NaN; see Unknown.
type Star struct {
	ID            uuid.UUID
	Name          string  // Common name (e.g., "Sirius", "Vega")
	Constellation string  // IAU constellation abbreviation
	RAdeg         float64 // Right Ascension in degrees (J2000)
	DecDeg        float64 // Declination in degrees (J2000)
	Mag           float64 // Apparent visual magnitude (lower = brighter)
	DistanceLy    float64 // Distance in light-years
	AgeGyr        float64 // Age in billion years
	MassSolar     float64 // Mass in solar masses
	Luminosity    float64 // Luminosity in solar units
	TemperatureK  float64 // Effective surface temperature in Kelvin
	SpectralClass string  // e.g. "A0V"; first letter selects the color class
	Description   string
}

// Unknown is the value used for physical attributes that are not known.
func Unknown() float64 { return math.NaN() }

// StarID returns the deterministic ID for the star at index in a catalog.
// Names alone are not unique, so the position is part of the key.
func StarID(index int, name string) uuid.UUID {
	return uuid.NewSHA1(catalogNamespace, []byte(strconv.Itoa(index)+":"+name))
}

// ColorClass is the display color family derived from the spectral class.
type ColorClass int

const (
	ColorWhite ColorClass = iota // F, O and unclassified
	ColorRed                     // M
	ColorOrange                  // K
	ColorYellow                  // G
	ColorPaleBlue                // A
	ColorBlue                    // B
)

// ColorClass returns the star's color family.
func (s Star) ColorClass() ColorClass {
	code := strings.TrimSpace(strings.ToUpper(s.SpectralClass))
	if code == "" {
		return ColorWhite
	}
	switch code[0] {
	case 'M':
		return ColorRed
	case 'K':
		return ColorOrange
	case 'G':
		return ColorYellow
	case 'A':
		return ColorPaleBlue
	case 'B':
		return ColorBlue
	default:
		return ColorWhite
	}
}

// Catalog holds a read-only, ordered collection of stars.
type Catalog struct {
	Stars []Star
}

// NewCatalog copies stars into a catalog and assigns IDs to stars that have
// none.
func NewCatalog(stars []Star) Catalog {
	out := make([]Star, len(stars))
	copy(out, stars)
	for i := range out {
		if out[i].ID == uuid.Nil {
			out[i].ID = StarID(i, out[i].Name)
		}
	}
	return Catalog{Stars: out}
}

// Len returns the number of stars.
func (c Catalog) Len() int { return len(c.Stars) }

// ByName returns the first star whose name matches case-insensitively.
func (c Catalog) ByName(name string) (Star, bool) {
	for _, s := range c.Stars {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Star{}, false
}

// ByID returns the star with the given ID.
func (c Catalog) ByID(id uuid.UUID) (Star, bool) {
	for _, s := range c.Stars {
		if s.ID == id {
			return s, true
		}
	}
	return Star{}, false
}
