package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Hit test result labels.
const (
	HitResultHit  = "hit"
	HitResultMiss = "miss"
)

// Manager owns the star map metrics. A nil *Manager is valid and records
// nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         *prometheus.Registry

	framesRendered  prometheus.Counter
	frameDuration   prometheus.Histogram
	starsProjected  prometheus.Counter
	starsVisible    prometheus.Gauge
	starsTotal      prometheus.Gauge
	hitTests        *prometheus.CounterVec
	gestures        *prometheus.CounterVec
	filterChanges   prometheus.Counter
	selectionEvents prometheus.Counter
}

// NewManager creates a manager. Without WithRegistry a private registry is
// used, so several managers can coexist.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "starmap",
		subsystem:        "chart",
		histogramBuckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50},
		enabled:          true,
		constLabels:      make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.framesRendered = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "frames_rendered_total",
		Help:        "Total number of frames rendered",
		ConstLabels: m.constLabels,
	})

	m.frameDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "frame_duration_milliseconds",
		Help:        "Time spent projecting one frame in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.starsProjected = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stars_projected_total",
		Help:        "Total number of star projections computed",
		ConstLabels: m.constLabels,
	})

	m.starsVisible = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stars_visible",
		Help:        "Stars passing the current filters",
		ConstLabels: m.constLabels,
	})

	m.starsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "catalog_stars",
		Help:        "Stars in the catalog",
		ConstLabels: m.constLabels,
	})

	m.hitTests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "hit_tests_total",
			Help:        "Hit tests by result",
			ConstLabels: m.constLabels,
		},
		[]string{"result"},
	)

	m.gestures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "gestures_total",
			Help:        "Classified pointer gestures by kind",
			ConstLabels: m.constLabels,
		},
		[]string{"kind"},
	)

	m.filterChanges = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "filter_changes_total",
		Help:        "Total number of filter snapshot changes",
		ConstLabels: m.constLabels,
	})

	m.selectionEvents = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "selection_changes_total",
		Help:        "Total number of selection changes",
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) active() bool { return m != nil && m.enabled }

// RecordFrame records one render pass.
func (m *Manager) RecordFrame(d time.Duration, projected int) {
	if !m.active() {
		return
	}
	m.framesRendered.Inc()
	m.frameDuration.Observe(float64(d) / float64(time.Millisecond))
	m.starsProjected.Add(float64(projected))
}

// UpdateCounts sets the visible and total star gauges.
func (m *Manager) UpdateCounts(visible, total int) {
	if !m.active() {
		return
	}
	m.starsVisible.Set(float64(visible))
	m.starsTotal.Set(float64(total))
}

// RecordHitTest counts a hit test outcome.
func (m *Manager) RecordHitTest(hit bool) {
	if !m.active() {
		return
	}
	result := HitResultMiss
	if hit {
		result = HitResultHit
	}
	m.hitTests.WithLabelValues(result).Inc()
}

// RecordGesture counts a classified gesture.
func (m *Manager) RecordGesture(kind string) {
	if !m.active() {
		return
	}
	m.gestures.WithLabelValues(kind).Inc()
}

// RecordFilterChange counts a filter snapshot change.
func (m *Manager) RecordFilterChange() {
	if !m.active() {
		return
	}
	m.filterChanges.Inc()
}

// RecordSelectionChange counts a selection change.
func (m *Manager) RecordSelectionChange() {
	if !m.active() {
		return
	}
	m.selectionEvents.Inc()
}

// Registry returns the registry the metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (m *Manager) WriteText(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGatherFailed, err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
