// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/filter"
	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/metrics"
	"github.com/litescript/ls-starmap/internal/pick"
	"github.com/litescript/ls-starmap/internal/sky"
	"github.com/litescript/ls-starmap/internal/starmap"
	"github.com/litescript/ls-starmap/internal/version"
)

// Layout
const (
	headerRows = 2
	footerRows = 2
	panelWidth = 48
	panelGap   = 2

	// Below this width the side panel is hidden.
	minWidthForPanel = 100

	keyPanPixels = 40.0
	timeStep     = time.Hour
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic redraws in live mode.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time
)

// Options configures the root model.
type Options struct {
	Log     *logging.Logger
	Metrics *metrics.Manager

	// Now overrides the wall clock used for gesture timing.
	Now func() time.Time
}

// events collects map notifications between frames.
type events struct {
	counts   starmap.Counts
	selected string
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	sm      *starmap.Map
	log     *logging.Logger
	metrics *metrics.Manager
	now     func() time.Time

	// UI state
	width     int
	height    int
	domeCols  int
	domeRows  int
	ready     bool
	statusMsg string
	animTick  int

	gesture pick.Gesture
	active  filter.Attribute
	events  *events
}

// New creates a new root UI model around sm.
func New(sm *starmap.Map, opts Options) Model {
	m := Model{
		sm:      sm,
		log:     opts.Log,
		metrics: opts.Metrics,
		now:     opts.Now,
		events:  &events{},
	}
	if m.log == nil {
		m.log = logging.Discard()
	}
	m.log = m.log.Named("ui")
	if m.now == nil {
		m.now = time.Now
	}

	ev := m.events
	sm.OnCounts(func(c starmap.Counts) { ev.counts = c })
	sm.OnSelectionChanged(func(s *astro.Star) {
		if s == nil {
			ev.selected = ""
			return
		}
		ev.selected = s.Name
	})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.domeCols = msg.Width
		if msg.Width >= minWidthForPanel {
			m.domeCols = msg.Width - panelWidth - panelGap
		}
		m.domeRows = max(1, msg.Height-headerRows-footerRows)
		m.sm.SetCanvas(CanvasFor(m.domeCols, m.domeRows))

	case TickMsg:
		cmds = append(cmds, tickCmd())
		if m.sm.Live() {
			m.sm.Render()
		}

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	m.statusMsg = ""
	switch msg.String() {
	case "left", "h":
		m.sm.Pan(keyPanPixels, 0)
	case "right", "l":
		m.sm.Pan(-keyPanPixels, 0)
	case "up", "k":
		m.sm.Pan(0, keyPanPixels)
	case "down", "j":
		m.sm.Pan(0, -keyPanPixels)
	case "+", "=":
		m.sm.ZoomIn()
	case "-", "_":
		m.sm.ZoomOut()
	case "0":
		m.sm.ResetView()

	case "tab":
		m.active = cycleAttribute(m.active, 1)
	case "shift+tab":
		m.active = cycleAttribute(m.active, -1)
	case "[":
		m.nudge(false, -1)
	case "]":
		m.nudge(false, 1)
	case "{":
		m.nudge(true, -1)
	case "}":
		m.nudge(true, 1)
	case "c":
		m.sm.ClearRange(m.active)
		m.statusMsg = fmt.Sprintf("Cleared %s filter", m.active)
	case "r":
		m.sm.ResetFilters()
		m.statusMsg = "Filters reset"

	case "n":
		m.sm.SelectNext(1)
	case "N":
		m.sm.SelectNext(-1)
	case "esc":
		m.sm.ClearSelection()

	case "t":
		if m.sm.Live() {
			m.sm.SetObserverTime(m.sm.Now())
			m.statusMsg = "Time frozen"
		} else {
			m.sm.SetObserverTime(time.Time{})
			m.statusMsg = "Live time"
		}
	case ",":
		m.sm.SetObserverTime(m.sm.Now().Add(-timeStep))
	case ".":
		m.sm.SetObserverTime(m.sm.Now().Add(timeStep))

	case "m":
		p := m.sm.Projector()
		if p.Chirality == sky.ChiralityStandard {
			p.Chirality = sky.ChiralityMirrored
		} else {
			p.Chirality = sky.ChiralityStandard
		}
		m.sm.SetProjector(p)
		m.statusMsg = "Chirality: " + p.Chirality.String()
	case "p":
		p := m.sm.Projector()
		if p.Mode == sky.ModeLinear {
			p.Mode = sky.ModeStereographic
		} else {
			p.Mode = sky.ModeLinear
		}
		m.sm.SetProjector(p)
		m.statusMsg = "Projection: " + p.Mode.String()
	}
}

// nudge moves one end of the active filter by one slider step. An
// unconfigured attribute starts from its full slider range.
func (m *Model) nudge(upper bool, dir float64) {
	lo, hi, step := m.active.Bounds()
	r, ok := m.sm.Range(m.active)
	if !ok {
		r = filter.Range{Min: lo, Max: hi}
	}
	m.sm.SetRange(m.active, r.Nudge(m.active, upper, dir*step))
}

func cycleAttribute(a filter.Attribute, dir int) filter.Attribute {
	n := len(filter.Attributes)
	for i, attr := range filter.Attributes {
		if attr == a {
			return filter.Attributes[((i+dir)%n+n)%n]
		}
	}
	return filter.Attributes[0]
}

// handleMouse feeds pointer events to the gesture classifier. Left drag
// pans, a left click selects, the wheel zooms and a right drag pinches
// about the dome center.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := CellToPixel(msg.X, msg.Y-headerRows)
	pt := orb.Point{x, y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.sm.ZoomBy(sky.WheelZoomIn)
		case tea.MouseButtonWheelDown:
			m.sm.ZoomBy(sky.WheelZoomOut)
		case tea.MouseButtonLeft:
			if m.inDome(msg) {
				m.gesture.Press(pt, m.now())
			}
		case tea.MouseButtonRight:
			if m.inDome(msg) {
				c := m.sm.Projector().Center(m.sm.View(), m.sm.Canvas())
				m.gesture.Press(c, m.now())
				m.gesture.PressSecond(pt)
			}
		}

	case tea.MouseActionMotion:
		switch m.gesture.State() {
		case pick.StatePressed, pick.StatePanning:
			if dx, dy, ok := m.gesture.Move(pt); ok {
				m.sm.Pan(dx, dy)
			}
		case pick.StatePinching:
			if f := m.gesture.MoveSecond(pt); f != 1 {
				m.sm.ZoomBy(f)
			}
		}

	case tea.MouseActionRelease:
		if m.gesture.State() == pick.StateIdle {
			return
		}
		out := m.gesture.Release(m.now())
		m.metrics.RecordGesture(out.Kind.String())
		m.log.Debug("gesture", logging.String("kind", out.Kind.String()))
		if out.Kind == pick.KindTap {
			m.sm.SelectAt(out.Point[0], out.Point[1])
		}
	}
}

func (m Model) inDome(msg tea.MouseMsg) bool {
	row := msg.Y - headerRows
	return msg.X >= 0 && msg.X < m.domeCols && row >= 0 && row < m.domeRows
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	f := m.sm.Frame()
	content := RenderDome(f, m.domeCols, m.domeRows, true)
	if m.width >= minWidthForPanel {
		panel := lipgloss.NewStyle().Width(panelWidth).Render(m.renderPanel(f))
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, strings.Repeat(" ", panelGap), panel)
	}

	return m.renderHeader(f) + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader(f *starmap.Frame) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	obs := f.View.Observer
	site := fmt.Sprintf("%.2f°, %.2f°", obs.LatDeg, obs.LonDeg)
	if obs.Name != "" {
		site = obs.Name + " (" + site + ")"
	}

	clock := "LIVE"
	if !m.sm.Live() {
		clock = "FROZEN"
	}

	status := strings.Join([]string{
		valueStyle.Render(site),
		valueStyle.Render(f.Time.UTC().Format("2006-01-02 15:04:05 UTC")),
		dimStyle.Render("LST ") + valueStyle.Render(formatLST(f.LST)),
		dimStyle.Render(clock),
		dimStyle.Render(fmt.Sprintf("%s · %s · ×%.2f", f.Projector.Mode, f.Projector.Chirality, f.View.Zoom)),
	}, dimStyle.Render("  |  "))

	return m.renderTitle() + "  " + dimStyle.Render(version.Short()) + "\n  " + status
}

// renderTitle renders the application name with a horizontal gradient.
func (m Model) renderTitle() string {
	runes := []rune("  ✶ ls-starmap")
	var b strings.Builder
	for col, r := range runes {
		style := lipgloss.NewStyle().Foreground(titleColor(col, len(runes))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

func (m Model) renderPanel(f *starmap.Frame) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Filters"))
	b.WriteString("\n")
	b.WriteString(RenderCounts(m.events.counts))
	b.WriteString("\n\n")
	b.WriteString(RenderFilterPanel(m.sm.Filters(), m.active))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Selection"))
	b.WriteString("\n")
	if ps, ok := f.SelectedStar(); ok {
		b.WriteString(RenderStarInfo(ps, f.View.Observer, f.Time))
	} else if s, ok := m.sm.Selected(); ok {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
		b.WriteString(dimStyle.Render(s.Name + " is outside the view"))
	} else {
		b.WriteString(RenderNoSelection())
	}
	return b.String()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := " "
	if m.sm.Live() {
		spinner = spinnerFrames[m.animTick%len(spinnerFrames)]
	}

	help := dimStyle.Render("arrows: pan | +/-: zoom | 0: reset | tab: filter | [ ] { }: range | r: reset filters | n/N: star | t: time | ,/.: ±1h | p: projection | m: mirror | q: quit")
	footer := "  " + accentStyle.Render(spinner) + "  " + help

	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	} else if m.events.selected != "" {
		footer += "\n  " + dimStyle.Render("Selected "+m.events.selected)
	}
	return footer
}

// formatLST formats sidereal degrees as hours, minutes and seconds.
func formatLST(deg float64) string {
	secs := int(deg / 15 * 3600)
	return fmt.Sprintf("%02dh%02dm%02ds", secs/3600, secs/60%60, secs%60)
}

// titleStops are the hex stops of the title gradient, left to right.
var titleStops = [][3]float64{
	{0x3B, 0x82, 0xF6},
	{0x8B, 0x5C, 0xF6},
	{0xD9, 0x46, 0xEF},
	{0xEC, 0x48, 0x99},
}

// titleColor returns the gradient color of rune i in a title of n runes.
func titleColor(i, n int) lipgloss.Color {
	t := 0.0
	if n > 1 {
		t = float64(min(max(i, 0), n-1)) / float64(n-1)
	}
	seg := t * float64(len(titleStops)-1)
	k := min(int(seg), len(titleStops)-2)
	f := seg - float64(k)

	var rgb [3]int
	for c := range rgb {
		a, b := titleStops[k][c], titleStops[k+1][c]
		rgb[c] = int(math.Round(a + f*(b-a)))
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2]))
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
