package starmap

import (
	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/filter"
	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/metrics"
	"github.com/litescript/ls-starmap/internal/pick"
	"github.com/litescript/ls-starmap/internal/sky"
)

// Option configures a Map.
type Option func(*Map)

// WithClock sets the time source used in live mode.
func WithClock(c astro.Clock) Option {
	return func(m *Map) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithProjector sets the projection mode and chirality.
func WithProjector(p sky.Projector) Option {
	return func(m *Map) {
		m.projector = p
	}
}

// WithZoomLimits sets the zoom clamp range.
func WithZoomLimits(minZoom, maxZoom float64) Option {
	return func(m *Map) {
		m.minZoom, m.maxZoom = minZoom, maxZoom
	}
}

// WithObserver sets the initial observer.
func WithObserver(obs astro.Observer) Option {
	return func(m *Map) {
		m.observer = obs
	}
}

// WithFilters sets the initial filter snapshot. Without it filter.Defaults
// applies.
func WithFilters(ranges map[filter.Attribute]Range) Option {
	return func(m *Map) {
		m.initialFilters = ranges
	}
}

// WithTolerance sets the hit test tolerance.
func WithTolerance(t pick.Tolerance) Option {
	return func(m *Map) {
		m.tolerance = t
	}
}

// WithTouchProfile enlarges stars and uses the touch hit tolerance.
func WithTouchProfile() Option {
	return func(m *Map) {
		m.tolerance = pick.TouchTolerance
		m.sizeScale = touchSizeScale
	}
}

// WithCanvas sets the initial canvas.
func WithCanvas(c sky.Canvas) Option {
	return func(m *Map) {
		m.canvas = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Map) {
		if l != nil {
			m.log = l
		}
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(mm *metrics.Manager) Option {
	return func(m *Map) {
		m.metrics = mm
	}
}
