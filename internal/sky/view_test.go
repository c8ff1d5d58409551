package sky

import (
	"math"
	"testing"

	"github.com/litescript/ls-starmap/internal/astro"
)

func TestNewView_Limits(t *testing.T) {
	tests := []struct {
		name         string
		min, max     float64
		wantMin, wantMax float64
	}{
		{"defaults on zero", 0, 0, DefaultMinZoom, DefaultMaxZoom},
		{"swapped", 5, 0.1, 0.1, 5},
		{"explicit", 0.1, 5, 0.1, 5},
		{"min above one", 2, 4, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(tt.min, tt.max, astro.DefaultObserver())
			if v.MinZoom != tt.wantMin || v.MaxZoom != tt.wantMax {
				t.Errorf("limits = [%v, %v], want [%v, %v]", v.MinZoom, v.MaxZoom, tt.wantMin, tt.wantMax)
			}
			if v.Zoom < v.MinZoom || v.Zoom > v.MaxZoom {
				t.Errorf("initial zoom %v outside limits", v.Zoom)
			}
		})
	}
}

func TestView_ZoomByConvergesToMax(t *testing.T) {
	v := NewView(DefaultMinZoom, DefaultMaxZoom, astro.DefaultObserver())
	for i := 0; i < 100; i++ {
		v.ZoomBy(ZoomStep)
		if v.Zoom > v.MaxZoom {
			t.Fatalf("zoom %v exceeded max %v after %d steps", v.Zoom, v.MaxZoom, i+1)
		}
	}
	if v.Zoom != v.MaxZoom {
		t.Errorf("zoom = %v, want clamped at %v", v.Zoom, v.MaxZoom)
	}

	for i := 0; i < 100; i++ {
		v.ZoomBy(WheelZoomOut)
	}
	if v.Zoom != v.MinZoom {
		t.Errorf("zoom = %v, want clamped at %v", v.Zoom, v.MinZoom)
	}
}

func TestView_ZoomIgnoresBadInput(t *testing.T) {
	v := NewView(DefaultMinZoom, DefaultMaxZoom, astro.DefaultObserver())
	v.ZoomBy(0)
	v.ZoomBy(-2)
	v.ZoomBy(math.NaN())
	v.ZoomBy(math.Inf(1))
	v.ZoomTo(math.NaN())
	if v.Zoom != 1 {
		t.Errorf("zoom = %v, want unchanged 1", v.Zoom)
	}

	v.ZoomTo(100)
	if v.Zoom != DefaultMaxZoom {
		t.Errorf("ZoomTo(100) = %v, want %v", v.Zoom, DefaultMaxZoom)
	}
}

func TestView_PanRoundTrip(t *testing.T) {
	p := Projector{}
	c := NewCanvas(640, 480, 30)
	v := NewView(DefaultMinZoom, DefaultMaxZoom, astro.DefaultObserver())
	v.ZoomTo(1.3)

	before := p.Project(33, 201, v, c)
	v.Pan(123.5, -77.25)
	moved := p.Project(33, 201, v, c)
	v.Pan(-123.5, 77.25)
	after := p.Project(33, 201, v, c)

	if moved.X == before.X && moved.Y == before.Y {
		t.Error("pan did not move the projected point")
	}
	if after.X != before.X || after.Y != before.Y {
		t.Errorf("pan round trip: %+v != %+v", after, before)
	}
}

func TestView_Reset(t *testing.T) {
	v := NewView(DefaultMinZoom, DefaultMaxZoom, astro.DefaultObserver())
	v.Pan(10, 20)
	v.ZoomTo(2)
	v.SetObserver(10, 20)
	v.Reset()

	if v.Zoom != 1 || v.PanX != 0 || v.PanY != 0 {
		t.Errorf("after Reset: zoom=%v pan=(%v,%v)", v.Zoom, v.PanX, v.PanY)
	}
	if v.Observer.LatDeg != 10 || v.Observer.LonDeg != 20 {
		t.Errorf("Reset must keep the observer, got %+v", v.Observer)
	}
}

func TestView_SetObserver(t *testing.T) {
	v := NewView(DefaultMinZoom, DefaultMaxZoom, astro.DefaultObserver())

	v.SetObserver(120, 190)
	if v.Observer.LatDeg != 90 {
		t.Errorf("lat = %v, want clamped 90", v.Observer.LatDeg)
	}
	if math.Abs(v.Observer.LonDeg-(-170)) > 1e-9 {
		t.Errorf("lon = %v, want -170", v.Observer.LonDeg)
	}
	if v.Observer.Name != "" {
		t.Errorf("name = %q, want cleared", v.Observer.Name)
	}

	v.SetObserver(-33.87, 151.21)
	if v.Observer.LatDeg != -33.87 || math.Abs(v.Observer.LonDeg-151.21) > 1e-9 {
		t.Errorf("observer = %+v", v.Observer)
	}

	for _, bad := range [][2]float64{
		{math.NaN(), 10},
		{10, math.NaN()},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	} {
		v.SetObserver(bad[0], bad[1])
		if v.Observer.LatDeg != -33.87 || math.Abs(v.Observer.LonDeg-151.21) > 1e-9 {
			t.Errorf("SetObserver(%v, %v) changed observer to %+v", bad[0], bad[1], v.Observer)
		}
	}
}

func TestNewView_NonFiniteObserver(t *testing.T) {
	v := NewView(DefaultMinZoom, DefaultMaxZoom, astro.Observer{LatDeg: math.NaN(), LonDeg: 5})
	want := astro.DefaultObserver()
	if v.Observer.LatDeg != want.LatDeg || v.Observer.LonDeg != want.LonDeg {
		t.Errorf("observer = %+v, want default %+v", v.Observer, want)
	}
}
