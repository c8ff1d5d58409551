package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/litescript/ls-starmap/internal/config"
	"github.com/litescript/ls-starmap/internal/filter"
	"github.com/litescript/ls-starmap/internal/sky"
	"github.com/smartystreets/goconvey/convey"
)

const sampleYAML = `
log_level: debug
observer:
  lat: -33.87
  lon: 151.21
  name: Sydney
view:
  max_zoom: 5
projection:
  mode: stereographic
  mirror: true
input:
  profile: touch
filters:
  magnitude:
    min: -1
    max: 3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starmap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		t.Setenv(config.EnvConfigFile, "")

		convey.Convey("When loading with defaults only", func() {
			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it matches New", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New(ctx))
			})
		})

		convey.Convey("When loading a YAML file", func() {
			cfg, err := config.Load(ctx, writeConfig(t, sampleYAML))

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Observer.Lat, convey.ShouldEqual, -33.87)
				convey.So(cfg.Observer.Name, convey.ShouldEqual, "Sydney")
				convey.So(cfg.View.MaxZoom, convey.ShouldEqual, 5.0)
				convey.So(cfg.View.MinZoom, convey.ShouldEqual, 0.5)
				convey.So(cfg.Touch(), convey.ShouldBeTrue)

				p, err := cfg.Projector()
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.Mode, convey.ShouldEqual, sky.ModeStereographic)
				convey.So(p.Chirality, convey.ShouldEqual, sky.ChiralityMirrored)
			})

			convey.Convey("Then file filters merge over the default filters", func() {
				ranges, err := cfg.FilterRanges()
				convey.So(err, convey.ShouldBeNil)
				convey.So(ranges[filter.Magnitude], convey.ShouldResemble, filter.Range{Min: -1, Max: 3})
				convey.So(ranges[filter.Distance], convey.ShouldResemble, filter.Defaults()[filter.Distance])
			})
		})

		convey.Convey("When the file is named by STARMAP_CONFIG", func() {
			t.Setenv(config.EnvConfigFile, writeConfig(t, sampleYAML))
			cfg, err := config.Load(ctx, "")

			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Observer.Name, convey.ShouldEqual, "Sydney")
		})

		convey.Convey("When environment variables are set alongside a file", func() {
			path := writeConfig(t, sampleYAML)
			t.Setenv("STARMAP_LOG_LEVEL", "warn")
			t.Setenv("STARMAP_OBSERVER__LAT", "12.5")
			t.Setenv("STARMAP_PROJECTION__MIRROR", "false")
			t.Setenv("STARMAP_VIEW__MIN_ZOOM", "0.25")

			cfg, err := config.Load(ctx, path)

			convey.Convey("Then the environment wins over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.Observer.Lat, convey.ShouldEqual, 12.5)
				convey.So(cfg.Observer.Lon, convey.ShouldEqual, 151.21)
				convey.So(cfg.Projection.Mirror, convey.ShouldBeFalse)
				convey.So(cfg.View.MinZoom, convey.ShouldEqual, 0.25)
			})
		})

		convey.Convey("When the YAML is malformed", func() {
			cfg, err := config.Load(ctx, writeConfig(t, "invalid: yaml: content: ["))

			convey.Convey("Then a load error is returned", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file does not exist", func() {
			cfg, err := config.Load(ctx, "/non/existent/starmap.yaml")

			convey.So(cfg, convey.ShouldBeNil)
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the loaded values are invalid", func() {
			t.Setenv("STARMAP_VIEW__MIN_ZOOM", "4")
			cfg, err := config.Load(ctx, "")

			convey.So(cfg, convey.ShouldBeNil)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
