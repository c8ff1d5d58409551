// Package starmap ties the catalog, filters, projection and hit testing into
// one explicit context object owned by the host.
package starmap

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/filter"
	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/metrics"
	"github.com/litescript/ls-starmap/internal/pick"
	"github.com/litescript/ls-starmap/internal/sky"
)

// Rendering constants.
const (
	cullFactor     = 1.5 // Stars beyond cullFactor·R·zoom are not drawn
	ghostAlpha     = 0.3
	touchSizeScale = 1.5
	labelMaxMag    = 2.5
	compassOffset  = 20
	selectionRing  = 35
	defaultWidth   = 800
	defaultHeight  = 800
	defaultMargin  = 30
	minStarSize    = 1.0
	baseStarSize   = 10.0
	sizePerMagStep = 3.0
	glowSizeFactor = 2.0
)

type (
	Counts = filter.Counts
	Range  = filter.Range
)

// Projection is a star's current screen position and altitude.
type Projection struct {
	X, Y float64
	Alt  float64
}

// Map holds all star map state. It is not safe for concurrent use; the
// host goroutine owns it.
type Map struct {
	catalog astro.Catalog
	engine  *filter.Engine
	visible []astro.Star

	clock     astro.Clock
	fixedTime time.Time

	projector sky.Projector
	view      sky.View
	canvas    sky.Canvas
	tolerance pick.Tolerance
	sizeScale float64

	selected    uuid.UUID
	hasSelected bool

	frame      *Frame
	stale      bool
	generation uint64

	onCounts    []func(Counts)
	onSelection []func(*astro.Star)

	log     *logging.Logger
	metrics *metrics.Manager

	// construction-only
	minZoom, maxZoom float64
	observer         astro.Observer
	initialFilters   map[filter.Attribute]Range
}

// New creates a Map over catalog.
func New(catalog astro.Catalog, opts ...Option) *Map {
	m := &Map{
		catalog:        astro.NewCatalog(catalog.Stars),
		clock:          astro.SystemClock{},
		canvas:         sky.NewCanvas(defaultWidth, defaultHeight, defaultMargin),
		tolerance:      pick.PointerTolerance,
		sizeScale:      1,
		log:            logging.Discard(),
		minZoom:        sky.DefaultMinZoom,
		maxZoom:        sky.DefaultMaxZoom,
		observer:       astro.DefaultObserver(),
		initialFilters: filter.Defaults(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.view = sky.NewView(m.minZoom, m.maxZoom, m.observer)
	m.engine = filter.NewEngine(m.initialFilters)
	m.initialFilters = nil
	m.refilter()
	m.stale = true

	m.log.Debug("star map created",
		logging.Int("stars", catalog.Len()),
		logging.String("projection", m.projector.Mode.String()),
		logging.String("chirality", m.projector.Chirality.String()))
	return m
}

// Catalog returns the full catalog.
func (m *Map) Catalog() astro.Catalog { return m.catalog }

// --- filters ---

// SetFilters replaces the filter snapshot.
func (m *Map) SetFilters(ranges map[filter.Attribute]Range) {
	m.engine.SetFilters(ranges)
	m.filtersChanged()
}

// SetRange configures a single attribute.
func (m *Map) SetRange(a filter.Attribute, r Range) {
	m.engine.Set(a, r)
	m.filtersChanged()
}

// ClearRange removes the filter on a single attribute.
func (m *Map) ClearRange(a filter.Attribute) {
	m.engine.Clear(a)
	m.filtersChanged()
}

// ResetFilters applies the reset preset.
func (m *Map) ResetFilters() {
	m.SetFilters(filter.ResetRanges())
}

// Filters returns a copy of the filter snapshot.
func (m *Map) Filters() map[filter.Attribute]Range { return m.engine.Ranges() }

// Range returns the configured range for a.
func (m *Map) Range(a filter.Attribute) (Range, bool) { return m.engine.Range(a) }

// VisibleStars returns the stars passing the filters in catalog order.
func (m *Map) VisibleStars() []astro.Star { return slices.Clone(m.visible) }

// Counts returns the current (visible, total) pair.
func (m *Map) Counts() Counts {
	return Counts{Visible: len(m.visible), Total: m.catalog.Len()}
}

func (m *Map) refilter() {
	m.visible = m.engine.Visible(m.catalog.Stars)
	m.metrics.UpdateCounts(len(m.visible), m.catalog.Len())
}

func (m *Map) filtersChanged() {
	m.refilter()
	m.invalidate()
	m.metrics.RecordFilterChange()

	c := m.Counts()
	m.log.Debug("filters changed", logging.Int("visible", c.Visible), logging.Int("total", c.Total))
	m.emitCounts(c)

	if m.hasSelected && !m.isVisible(m.selected) {
		m.setSelection(uuid.Nil, false)
	}
}

func (m *Map) isVisible(id uuid.UUID) bool {
	return slices.ContainsFunc(m.visible, func(s astro.Star) bool { return s.ID == id })
}

// --- observer and time ---

// Observer returns the current observer.
func (m *Map) Observer() astro.Observer { return m.view.Observer }

// SetObserverLocation moves the observer.
func (m *Map) SetObserverLocation(latDeg, lonDeg float64) {
	m.view.SetObserver(latDeg, lonDeg)
	m.invalidate()
	m.log.Debug("observer moved",
		logging.Float64("lat", m.view.Observer.LatDeg),
		logging.Float64("lon", m.view.Observer.LonDeg))
}

// SetObserverName labels the current observer location.
func (m *Map) SetObserverName(name string) { m.view.Observer.Name = name }

// SetObserverTime freezes the chart at t. The zero time returns to
// following the clock.
func (m *Map) SetObserverTime(t time.Time) {
	m.fixedTime = t
	m.invalidate()
}

// Live reports whether the chart follows the clock.
func (m *Map) Live() bool { return m.fixedTime.IsZero() }

// Now returns the instant the chart is computed for.
func (m *Map) Now() time.Time {
	if !m.fixedTime.IsZero() {
		return m.fixedTime
	}
	return m.clock.Now()
}

// --- view ---

// View returns a copy of the view state.
func (m *Map) View() sky.View { return m.view }

// Projector returns the projection policy.
func (m *Map) Projector() sky.Projector { return m.projector }

// SetProjector changes the projection policy.
func (m *Map) SetProjector(p sky.Projector) {
	m.projector = p
	m.invalidate()
}

// Canvas returns the current canvas.
func (m *Map) Canvas() sky.Canvas { return m.canvas }

// SetCanvas changes the drawing surface.
func (m *Map) SetCanvas(c sky.Canvas) {
	m.canvas = c
	m.invalidate()
}

// Pan shifts the view by screen pixels.
func (m *Map) Pan(dx, dy float64) {
	m.view.Pan(dx, dy)
	m.invalidate()
}

// ZoomBy multiplies the zoom level.
func (m *Map) ZoomBy(factor float64) {
	m.view.ZoomBy(factor)
	m.invalidate()
}

// ZoomTo sets the zoom level.
func (m *Map) ZoomTo(level float64) {
	m.view.ZoomTo(level)
	m.invalidate()
}

// ZoomIn zooms in one step.
func (m *Map) ZoomIn() { m.ZoomBy(sky.ZoomStep) }

// ZoomOut zooms out one step.
func (m *Map) ZoomOut() { m.ZoomBy(1 / sky.ZoomStep) }

// ResetView restores zoom 1 and removes pan.
func (m *Map) ResetView() {
	m.view.Reset()
	m.invalidate()
}

// --- projection ---

// Project computes the star's current screen position.
func (m *Map) Project(s astro.Star) Projection {
	h := astro.HorizontalAt(s.RAdeg, s.DecDeg, m.view.Observer, m.Now())
	p := m.projector.Project(h.AltDeg, h.AzDeg, m.view, m.canvas)
	return Projection{X: p.X, Y: p.Y, Alt: h.AltDeg}
}

// Unproject returns the sky position under a screen point.
func (m *Map) Unproject(x, y float64) (alt, az float64, ok bool) {
	return m.projector.Unproject(x, y, m.view, m.canvas)
}

// Compass returns the N/E/S/W label positions for the current view.
func (m *Map) Compass() []sky.CompassPoint {
	return m.projector.Compass(m.view, m.canvas, compassOffset)
}

// StarSize returns the core radius for a magnitude at the current zoom.
// An unknown magnitude draws at the minimum size.
func (m *Map) StarSize(mag float64) float64 {
	if math.IsNaN(mag) || math.IsInf(mag, 0) {
		return minStarSize * m.sizeScale * m.view.Zoom
	}
	return math.Max(minStarSize, baseStarSize-sizePerMagStep*mag) * m.sizeScale * m.view.Zoom
}

// Stale reports whether the last frame no longer reflects the state.
func (m *Map) Stale() bool { return m.stale || m.frame == nil }

func (m *Map) invalidate() { m.stale = true }

// Render projects every visible star and returns the new frame. In live
// mode each call samples the clock.
func (m *Map) Render() *Frame {
	start := time.Now()
	now := m.Now()
	lst := astro.LocalSiderealTime(now, m.view.Observer.LonDeg)

	m.generation++
	f := &Frame{
		Generation:    m.generation,
		Time:          now,
		LST:           lst,
		Canvas:        m.canvas,
		View:          m.view,
		Projector:     m.projector,
		Center:        m.projector.Center(m.view, m.canvas),
		HorizonRadius: m.projector.RingRadius(0, m.view, m.canvas),
		Rings: []float64{
			m.projector.RingRadius(30, m.view, m.canvas),
			m.projector.RingRadius(60, m.view, m.canvas),
		},
		Compass:  m.Compass(),
		Stars:    make([]ProjectedStar, 0, len(m.visible)),
		Counts:   m.Counts(),
		Selected: -1,
		index:    make(map[uuid.UUID]int, len(m.visible)),
	}

	cull := cullFactor * m.canvas.DomeRadius * m.view.Zoom
	for _, s := range m.visible {
		h := astro.EquatorialToHorizontal(s.RAdeg, s.DecDeg, lst, m.view.Observer.LatDeg)
		p := m.projector.Project(h.AltDeg, h.AzDeg, m.view, m.canvas)
		if planar.Distance(orb.Point{p.X, p.Y}, f.Center) > cull {
			continue
		}

		size := m.StarSize(s.Mag)
		alpha := 1.0
		if h.AltDeg < 0 {
			alpha = ghostAlpha
		}
		ps := ProjectedStar{
			Star:      s,
			X:         p.X,
			Y:         p.Y,
			Alt:       h.AltDeg,
			Az:        h.AzDeg,
			Size:      size,
			Glow:      size * glowSizeFactor,
			HitRadius: m.tolerance.Effective(size * glowSizeFactor),
			Alpha:     alpha,
			Labeled:   s.Mag <= labelMaxMag,
		}
		if m.hasSelected && s.ID == m.selected {
			ps.Labeled = true
			f.Selected = len(f.Stars)
		}
		f.index[s.ID] = len(f.Stars)
		f.Stars = append(f.Stars, ps)
	}

	m.frame = f
	m.stale = false

	m.metrics.RecordFrame(time.Since(start), len(m.visible))
	m.emitCounts(f.Counts)
	return f
}

// Frame returns the last rendered frame, rendering first if it is stale.
func (m *Map) Frame() *Frame {
	if m.Stale() {
		return m.Render()
	}
	return m.frame
}

// --- hit testing and selection ---

// HitTest returns the drawn star nearest to (x, y) within tolerance.
func (m *Map) HitTest(x, y float64) (*astro.Star, bool) {
	f := m.Frame()
	i, ok := pick.FindNearest(orb.Point{x, y}, f.candidates(), m.tolerance)
	m.metrics.RecordHitTest(ok)
	if !ok {
		return nil, false
	}
	s := f.Stars[i].Star
	return &s, true
}

// SelectAt selects the star under (x, y). The selection is unchanged on a
// miss.
func (m *Map) SelectAt(x, y float64) bool {
	s, ok := m.HitTest(x, y)
	if !ok {
		return false
	}
	return m.Select(s.ID)
}

// Select selects a visible star by ID.
func (m *Map) Select(id uuid.UUID) bool {
	if !m.isVisible(id) {
		return false
	}
	m.setSelection(id, true)
	return true
}

// ClearSelection removes the selection.
func (m *Map) ClearSelection() {
	m.setSelection(uuid.Nil, false)
}

// Selected returns the selected star.
func (m *Map) Selected() (*astro.Star, bool) {
	if !m.hasSelected {
		return nil, false
	}
	s, ok := m.catalog.ByID(m.selected)
	if !ok {
		return nil, false
	}
	return &s, true
}

// SelectNext moves the selection through the visible stars in catalog
// order. dir is +1 or -1.
func (m *Map) SelectNext(dir int) bool {
	n := len(m.visible)
	if n == 0 {
		return false
	}
	i := -1
	if m.hasSelected {
		i = slices.IndexFunc(m.visible, func(s astro.Star) bool { return s.ID == m.selected })
	}
	switch {
	case i < 0 && dir < 0:
		i = n - 1
	case i < 0:
		i = 0
	default:
		i = ((i+dir)%n + n) % n
	}
	return m.Select(m.visible[i].ID)
}

func (m *Map) setSelection(id uuid.UUID, has bool) {
	if has == m.hasSelected && id == m.selected {
		return
	}
	m.selected, m.hasSelected = id, has
	m.invalidate()
	m.metrics.RecordSelectionChange()

	sel, _ := m.Selected()
	if sel != nil {
		m.log.Info("star selected", logging.String("name", sel.Name))
	} else {
		m.log.Debug("selection cleared")
	}
	for _, fn := range m.onSelection {
		fn(sel)
	}
}

// --- notifications ---

// OnCounts registers fn for (visible, total) updates. fn is called once
// immediately with the current counts.
func (m *Map) OnCounts(fn func(Counts)) {
	if fn == nil {
		return
	}
	m.onCounts = append(m.onCounts, fn)
	fn(m.Counts())
}

// OnSelectionChanged registers fn for selection changes. fn receives nil
// when the selection is cleared.
func (m *Map) OnSelectionChanged(fn func(*astro.Star)) {
	if fn != nil {
		m.onSelection = append(m.onSelection, fn)
	}
}

func (m *Map) emitCounts(c Counts) {
	for _, fn := range m.onCounts {
		fn(c)
	}
}
