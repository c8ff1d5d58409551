package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/starmap"
	"github.com/litescript/ls-starmap/internal/ui"
	"github.com/litescript/ls-starmap/internal/version"
)

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:           "starmap",
		Short:         "Interactive star chart of the sky above an observer",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, gf)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&gf.configPath, "config", "c", "", "YAML config file (default $STARMAP_CONFIG)")
	pf.StringVar(&gf.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&gf.logFile, "log-file", "", "Write logs to this file")
	pf.Float64Var(&gf.lat, "lat", 0, "Observer latitude in degrees (north positive)")
	pf.Float64Var(&gf.lon, "lon", 0, "Observer longitude in degrees (east positive)")
	pf.BoolVar(&gf.metrics, "metrics", false, "Print Prometheus metrics to stderr on exit")

	root.AddCommand(newRenderCmd(gf), newWhereCmd(gf), newVersionCmd())
	return root
}

func runTUI(cmd *cobra.Command, gf *globalFlags) error {
	a, err := newApp(cmd.Context(), cmd, gf, true)
	if err != nil {
		return err
	}
	defer a.close(cmd.ErrOrStderr())

	sm, err := a.newMap()
	if err != nil {
		return err
	}

	model := ui.New(sm, ui.Options{Log: a.log, Metrics: a.metrics})
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	a.log.Info("starting", logging.String("version", version.Version))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func newRenderCmd(gf *globalFlags) *cobra.Command {
	var (
		width, height int
		at            string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the chart and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := parseAt(at)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cmd, gf, false)
			if err != nil {
				return err
			}
			defer a.close(cmd.ErrOrStderr())

			sm, err := a.newMap(starmap.WithCanvas(ui.CanvasFor(width, height)))
			if err != nil {
				return err
			}
			sm.SetObserverTime(t)

			out := cmd.OutOrStdout()
			return writeFrame(out, sm, width, height, isTerminal(out))
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Chart width in columns")
	cmd.Flags().IntVar(&height, "height", 40, "Chart height in rows")
	cmd.Flags().StringVar(&at, "at", "", "Render for this RFC 3339 time instead of now")
	return cmd
}

func writeFrame(w io.Writer, sm *starmap.Map, width, height int, color bool) error {
	f := sm.Render()
	_, err := fmt.Fprintf(w, "%s\nShowing %d of %d stars · LST %.2f° · %s\n",
		ui.RenderDome(f, width, height, color),
		f.Counts.Visible, f.Counts.Total, f.LST,
		f.Time.UTC().Format(time.RFC3339))
	return err
}

// position is one star's place in the sky for the where command.
type position struct {
	Name      string  `yaml:"name"`
	Altitude  float64 `yaml:"altitude"`
	Azimuth   float64 `yaml:"azimuth"`
	Peak      float64 `yaml:"peak"`
	Tier      string  `yaml:"tier"`
	Magnitude float64 `yaml:"magnitude"`

	Rise        time.Time `yaml:"rise,omitempty"`
	Transit     time.Time `yaml:"transit,omitempty"`
	Set         time.Time `yaml:"set,omitempty"`
	Circumpolar bool      `yaml:"circumpolar,omitempty"`
}

// whereReport is the YAML document printed by where --yaml.
type whereReport struct {
	Time      time.Time  `yaml:"time"`
	Latitude  float64    `yaml:"latitude"`
	Longitude float64    `yaml:"longitude"`
	LST       float64    `yaml:"lst"`
	Stars     []position `yaml:"stars"`
}

func newWhereCmd(gf *globalFlags) *cobra.Command {
	var (
		at     string
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "where [star...]",
		Short: "Print altitude and azimuth for named stars, or every visible star",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseAt(at)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cmd, gf, false)
			if err != nil {
				return err
			}
			defer a.close(cmd.ErrOrStderr())

			sm, err := a.newMap()
			if err != nil {
				return err
			}
			sm.SetObserverTime(t)

			report, err := locate(sm, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			}
			return writeWhere(out, report)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Compute for this RFC 3339 time instead of now")
	cmd.Flags().BoolVarP(&asYAML, "yaml", "y", false, "Output as YAML")
	return cmd
}

// locate computes positions for the named stars, or for every star that
// passes the filters when names is empty.
func locate(sm *starmap.Map, names []string) (whereReport, error) {
	obs := sm.Observer()
	t := sm.Now()
	report := whereReport{
		Time:      t.UTC(),
		Latitude:  obs.LatDeg,
		Longitude: obs.LonDeg,
		LST:       astro.LocalSiderealTime(t, obs.LonDeg),
	}

	stars := sm.VisibleStars()
	if len(names) > 0 {
		stars = make([]astro.Star, 0, len(names))
		for _, name := range names {
			s, ok := sm.Catalog().ByName(name)
			if !ok {
				return whereReport{}, fmt.Errorf("unknown star %q", name)
			}
			stars = append(stars, s)
		}
	}

	for _, s := range stars {
		h := astro.EquatorialToHorizontal(s.RAdeg, s.DecDeg, report.LST, obs.LatDeg)
		w := astro.RiseTransitSet(s.RAdeg, s.DecDeg, obs, t)
		report.Stars = append(report.Stars, position{
			Name:      s.Name,
			Altitude:  round2(h.AltDeg),
			Azimuth:   round2(h.AzDeg),
			Peak:      round2(astro.CulminationAltitude(s.DecDeg, obs.LatDeg)),
			Tier:      astro.GetAltitudeTier(h.AltDeg).String(),
			Magnitude: s.Mag,

			Rise:        utcOrZero(w.Rise),
			Transit:     utcOrZero(w.Transit),
			Set:         utcOrZero(w.Set),
			Circumpolar: w.Circumpolar,
		})
	}
	return report, nil
}

func utcOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC().Truncate(time.Second)
}

func writeWhere(w io.Writer, r whereReport) error {
	if _, err := fmt.Fprintf(w, "%s  lat %.4f  lon %.4f  LST %.2f°\n",
		r.Time.Format(time.RFC3339), r.Latitude, r.Longitude, r.LST); err != nil {
		return err
	}
	for _, p := range r.Stars {
		if _, err := fmt.Fprintf(w, "%-16s alt %7.2f°  az %6.2f°  peak %6.2f°  %s\n",
			p.Name, p.Altitude, p.Azimuth, p.Peak, p.Tier); err != nil {
			return err
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// parseAt parses an RFC 3339 time. Empty or "now" means live time.
func parseAt(s string) (time.Time, error) {
	if s == "" || strings.EqualFold(s, "now") {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at time %q: %w", s, err)
	}
	return t, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
