package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating two managers with default options", func() {
			a := NewManager()
			b := NewManager()

			Convey("Then each gets its own registry", func() {
				So(a.Registry(), ShouldNotBeNil)
				So(a.Registry(), ShouldNotPointTo, b.Registry())
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(
				WithNamespace("test"),
				WithSubsystem("sky"),
				WithHistogramBuckets([]float64{1, 2}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithRegistry(registry),
			)

			Convey("Then metrics use the given registry and names", func() {
				So(m.Registry(), ShouldPointTo, registry)
				m.RecordFrame(time.Millisecond, 3)
				n, err := testutil.GatherAndCount(registry, "test_sky_frames_rendered_total")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
			})
		})
	})
}

func TestManagerRecording(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		m := NewManager()

		Convey("When frames are rendered", func() {
			m.RecordFrame(2*time.Millisecond, 40)
			m.RecordFrame(3*time.Millisecond, 38)

			Convey("Then counters advance", func() {
				So(testutil.ToFloat64(m.framesRendered), ShouldEqual, 2)
				So(testutil.ToFloat64(m.starsProjected), ShouldEqual, 78)
			})
		})

		Convey("When counts are updated", func() {
			m.UpdateCounts(12, 52)
			So(testutil.ToFloat64(m.starsVisible), ShouldEqual, 12)
			So(testutil.ToFloat64(m.starsTotal), ShouldEqual, 52)
		})

		Convey("When hit tests and gestures are recorded", func() {
			m.RecordHitTest(true)
			m.RecordHitTest(false)
			m.RecordHitTest(false)
			m.RecordGesture("tap")
			m.RecordFilterChange()
			m.RecordSelectionChange()

			Convey("Then labelled counters advance per label", func() {
				So(testutil.ToFloat64(m.hitTests.WithLabelValues(HitResultHit)), ShouldEqual, 1)
				So(testutil.ToFloat64(m.hitTests.WithLabelValues(HitResultMiss)), ShouldEqual, 2)
				So(testutil.ToFloat64(m.gestures.WithLabelValues("tap")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.filterChanges), ShouldEqual, 1)
				So(testutil.ToFloat64(m.selectionEvents), ShouldEqual, 1)
			})
		})

		Convey("When metrics are disabled", func() {
			off := NewManager(WithMetricsEnabled(false))
			off.RecordFrame(time.Millisecond, 10)
			off.RecordHitTest(true)

			Convey("Then nothing is recorded", func() {
				So(testutil.ToFloat64(off.framesRendered), ShouldEqual, 0)
			})
		})

		Convey("When the manager is nil", func() {
			var nilManager *Manager

			Convey("Then recording is a no-op", func() {
				So(func() {
					nilManager.RecordFrame(time.Millisecond, 1)
					nilManager.UpdateCounts(1, 2)
					nilManager.RecordHitTest(true)
					nilManager.RecordGesture("pan")
				}, ShouldNotPanic)
				So(nilManager.WriteText(&bytes.Buffer{}), ShouldBeNil)
			})
		})
	})
}

func TestWriteText(t *testing.T) {
	Convey("Given a manager with recorded data", t, func() {
		m := NewManager()
		m.RecordFrame(time.Millisecond, 5)
		m.RecordHitTest(true)

		Convey("When written as text", func() {
			var buf bytes.Buffer
			err := m.WriteText(&buf)

			Convey("Then the exposition format contains the metrics", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldContainSubstring, "# TYPE starmap_chart_frames_rendered_total counter")
				So(buf.String(), ShouldContainSubstring, "starmap_chart_frames_rendered_total 1")
				So(buf.String(), ShouldContainSubstring, `starmap_chart_hit_tests_total{result="hit"} 1`)
			})
		})
	})
}
