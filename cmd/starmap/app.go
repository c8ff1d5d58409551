package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/config"
	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/metrics"
	"github.com/litescript/ls-starmap/internal/starmap"
)

// globalFlags are shared by every command and override the loaded config.
type globalFlags struct {
	configPath string
	logLevel   string
	logFile    string
	lat, lon   float64
	metrics    bool
}

// app holds the process-wide dependencies for one command run.
type app struct {
	cfg     *config.Config
	log     *logging.Logger
	metrics *metrics.Manager
	logOut  *os.File
}

// newApp loads configuration and sets up logging and metrics. When quiet
// is set and no log file is configured, logs are discarded so they do not
// corrupt the terminal UI.
func newApp(ctx context.Context, cmd *cobra.Command, gf *globalFlags, quiet bool) (*app, error) {
	cfg, err := config.Load(ctx, gf.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = gf.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = gf.logFile
	}
	if flags.Changed("metrics") {
		cfg.Metrics = gf.metrics
	}
	if flags.Changed("lat") || flags.Changed("lon") {
		if flags.Changed("lat") {
			cfg.Observer.Lat = gf.lat
		}
		if flags.Changed("lon") {
			cfg.Observer.Lon = gf.lon
		}
		cfg.Observer.Name = ""
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	level := logging.ParseLevel(cfg.LogLevel)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.logOut = f
		a.log = logging.NewWithWriter(f, level)
	case quiet:
		a.log = logging.Discard()
	default:
		a.log = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	}

	a.metrics = metrics.NewManager(metrics.WithMetricsEnabled(cfg.Metrics))
	return a, nil
}

// newMap builds a star map over the bundled catalog from the config.
func (a *app) newMap(opts ...starmap.Option) (*starmap.Map, error) {
	proj, err := a.cfg.Projector()
	if err != nil {
		return nil, err
	}
	ranges, err := a.cfg.FilterRanges()
	if err != nil {
		return nil, err
	}

	base := []starmap.Option{
		starmap.WithObserver(a.cfg.ObserverValue()),
		starmap.WithProjector(proj),
		starmap.WithZoomLimits(a.cfg.View.MinZoom, a.cfg.View.MaxZoom),
		starmap.WithFilters(ranges),
		starmap.WithLogger(a.log),
		starmap.WithMetrics(a.metrics),
	}
	if a.cfg.Touch() {
		base = append(base, starmap.WithTouchProfile())
	}
	return starmap.New(astro.DefaultCatalog(), append(base, opts...)...), nil
}

// close dumps metrics when enabled and releases the log file.
func (a *app) close(w io.Writer) {
	if a.cfg.Metrics {
		if err := a.metrics.WriteText(w); err != nil {
			a.log.Warn("metrics export failed", logging.Error(err))
		}
	}
	if a.logOut != nil {
		_ = a.logOut.Close()
	}
}
