// Package config defines star map configuration and its layered loading.
//
// Precedence (low to high): defaults, YAML file, STARMAP_* environment,
// command-line flags (applied by the caller).
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/filter"
	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/pick"
	"github.com/litescript/ls-starmap/internal/sky"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" yaml:"log_level"`

	// LogFile receives log output. Empty discards logs in the TUI and
	// writes to stderr otherwise.
	LogFile string `koanf:"log_file" yaml:"log_file"`

	// Metrics dumps the Prometheus text exposition to stderr on exit.
	Metrics bool `koanf:"metrics" yaml:"metrics"`

	Observer   ObserverConfig   `koanf:"observer" yaml:"observer"`
	View       ViewConfig       `koanf:"view" yaml:"view"`
	Projection ProjectionConfig `koanf:"projection" yaml:"projection"`
	Input      InputConfig      `koanf:"input" yaml:"input"`

	// Filters maps attribute names (magnitude, distance, age, mass,
	// luminosity, temperature) to inclusive ranges.
	Filters map[string]filter.Range `koanf:"filters" yaml:"filters"`
}

// ObserverConfig is the observer location in degrees (East positive).
type ObserverConfig struct {
	Lat  float64 `koanf:"lat" yaml:"lat"`
	Lon  float64 `koanf:"lon" yaml:"lon"`
	Name string  `koanf:"name" yaml:"name"`
}

// ViewConfig bounds the zoom level.
type ViewConfig struct {
	MinZoom float64 `koanf:"min_zoom" yaml:"min_zoom"`
	MaxZoom float64 `koanf:"max_zoom" yaml:"max_zoom"`
}

// ProjectionConfig selects the projection policy.
type ProjectionConfig struct {
	// Mode is linear (alias dome) or stereographic.
	Mode string `koanf:"mode" yaml:"mode"`

	// Mirror puts East on the left.
	Mirror bool `koanf:"mirror" yaml:"mirror"`
}

// InputConfig selects the hit test profile: pointer or touch.
type InputConfig struct {
	Profile string `koanf:"profile" yaml:"profile"`
}

// New creates a Config with defaults. Context is accepted first to match
// Load and is currently unused.
func New(_ context.Context) *Config {
	obs := astro.DefaultObserver()
	c := &Config{
		LogLevel: "info",
		Observer: ObserverConfig{
			Lat:  obs.LatDeg,
			Lon:  obs.LonDeg,
			Name: obs.Name,
		},
		View: ViewConfig{
			MinZoom: sky.DefaultMinZoom,
			MaxZoom: sky.DefaultMaxZoom,
		},
		Projection: ProjectionConfig{Mode: sky.ModeLinear.String()},
		Input:      InputConfig{Profile: "pointer"},
		Filters:    make(map[string]filter.Range),
	}
	for a, r := range filter.Defaults() {
		c.Filters[a.String()] = r
	}
	return c
}

// Validate checks the configuration for values the star map cannot use.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Observer.Lat < -90 || c.Observer.Lat > 90 {
		return fmt.Errorf("%w: observer latitude %v outside [-90, 90]", ErrInvalidConfig, c.Observer.Lat)
	}
	if c.Observer.Lon < -180 || c.Observer.Lon > 180 {
		return fmt.Errorf("%w: observer longitude %v outside [-180, 180]", ErrInvalidConfig, c.Observer.Lon)
	}
	if c.View.MinZoom <= 0 {
		return fmt.Errorf("%w: min_zoom must be positive, got %v", ErrInvalidConfig, c.View.MinZoom)
	}
	if c.View.MinZoom > c.View.MaxZoom {
		return fmt.Errorf("%w: min_zoom %v exceeds max_zoom %v", ErrInvalidConfig, c.View.MinZoom, c.View.MaxZoom)
	}
	if _, err := sky.ParseMode(c.Projection.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, ok := pick.ParseProfile(strings.ToLower(c.Input.Profile)); !ok {
		return fmt.Errorf("%w: unknown input profile %q", ErrInvalidConfig, c.Input.Profile)
	}
	if _, err := c.FilterRanges(); err != nil {
		return err
	}
	return nil
}

// ObserverValue returns the configured observer.
func (c *Config) ObserverValue() astro.Observer {
	return astro.Observer{LatDeg: c.Observer.Lat, LonDeg: c.Observer.Lon, Name: c.Observer.Name}
}

// Projector returns the configured projection policy.
func (c *Config) Projector() (sky.Projector, error) {
	mode, err := sky.ParseMode(c.Projection.Mode)
	if err != nil {
		return sky.Projector{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	p := sky.Projector{Mode: mode}
	if c.Projection.Mirror {
		p.Chirality = sky.ChiralityMirrored
	}
	return p, nil
}

// Touch reports whether the touch input profile is selected.
func (c *Config) Touch() bool {
	return strings.EqualFold(c.Input.Profile, "touch")
}

// FilterRanges converts the filter map to typed attributes.
func (c *Config) FilterRanges() (map[filter.Attribute]filter.Range, error) {
	out := make(map[filter.Attribute]filter.Range, len(c.Filters))
	for name, r := range c.Filters {
		a, err := filter.ParseAttribute(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		out[a] = r
	}
	return out, nil
}
