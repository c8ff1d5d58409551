package filter

import (
	"maps"
	"slices"

	"github.com/litescript/ls-starmap/internal/astro"
)

// Counts is the (visible, total) pair shown as "Showing N of M stars".
type Counts struct {
	Visible int
	Total   int
}

// Defaults returns the ranges applied at startup.
func Defaults() map[Attribute]Range {
	return map[Attribute]Range{
		Magnitude: {Min: -2, Max: 6},
		Distance:  {Min: 0, Max: 3000},
		Age:       {Min: 0, Max: 15},
		Mass:      {Min: 0.1, Max: 50},
	}
}

// ResetRanges returns the preset applied by the reset control.
func ResetRanges() map[Attribute]Range {
	return map[Attribute]Range{
		Magnitude: {Min: -2, Max: 4},
		Distance:  {Min: 1, Max: 1000},
		Age:       {Min: 0, Max: 10},
		Mass:      {Min: 0.1, Max: 25},
	}
}

// Engine holds the current filter snapshot. A star passes when every
// configured attribute contains its value; unconfigured attributes pass.
type Engine struct {
	ranges map[Attribute]Range
}

// NewEngine creates an engine with the given ranges. A nil map means no
// filtering.
func NewEngine(ranges map[Attribute]Range) *Engine {
	e := &Engine{}
	e.SetFilters(ranges)
	return e
}

// SetFilters replaces the whole snapshot.
func (e *Engine) SetFilters(ranges map[Attribute]Range) {
	e.ranges = maps.Clone(ranges)
	if e.ranges == nil {
		e.ranges = make(map[Attribute]Range)
	}
}

// Set configures one attribute.
func (e *Engine) Set(a Attribute, r Range) {
	e.ranges[a] = r
}

// Clear removes the range for one attribute.
func (e *Engine) Clear(a Attribute) {
	delete(e.ranges, a)
}

// Range returns the configured range for a.
func (e *Engine) Range(a Attribute) (Range, bool) {
	r, ok := e.ranges[a]
	return r, ok
}

// Ranges returns a copy of the current snapshot.
func (e *Engine) Ranges() map[Attribute]Range {
	return maps.Clone(e.ranges)
}

// Configured returns the configured attributes in panel order.
func (e *Engine) Configured() []Attribute {
	out := make([]Attribute, 0, len(e.ranges))
	for _, a := range Attributes {
		if _, ok := e.ranges[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Matches reports whether s passes every configured range.
func (e *Engine) Matches(s astro.Star) bool {
	for a, r := range e.ranges {
		if !r.Contains(a.Value(s)) {
			return false
		}
	}
	return true
}

// Visible returns the passing stars in catalog order.
func (e *Engine) Visible(stars []astro.Star) []astro.Star {
	for _, r := range e.ranges {
		if r.Inverted() {
			return []astro.Star{}
		}
	}
	return slices.DeleteFunc(slices.Clone(stars), func(s astro.Star) bool {
		return !e.Matches(s)
	})
}

// Counts returns how many stars of the catalog pass.
func (e *Engine) Counts(stars []astro.Star) Counts {
	n := 0
	for _, s := range stars {
		if e.Matches(s) {
			n++
		}
	}
	return Counts{Visible: n, Total: len(stars)}
}
