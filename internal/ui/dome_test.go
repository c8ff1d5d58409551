package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/starmap"
)

var testTime = time.Date(2024, 3, 20, 21, 30, 0, 0, time.UTC)

// testCatalog places stars relative to the local meridian of an observer
// at (0, 0) at testTime.
func testCatalog() astro.Catalog {
	lst := astro.LocalSiderealTime(testTime, 0)
	anti := astro.NormalizeDegrees(lst + 180)
	return astro.NewCatalog([]astro.Star{
		{Name: "Zenith", RAdeg: lst, DecDeg: 0, Mag: 0, DistanceLy: 10, AgeGyr: 1, MassSolar: 1, SpectralClass: "A0V"},
		{Name: "North45", RAdeg: lst, DecDeg: 45, Mag: 1, DistanceLy: 20, AgeGyr: 2, MassSolar: 2, SpectralClass: "M1"},
		{Name: "Ghost", RAdeg: anti, DecDeg: 60, Mag: 2, DistanceLy: 30, AgeGyr: 3, MassSolar: 3},
		{Name: "Faint", RAdeg: lst, DecDeg: -45, Mag: 5, DistanceLy: 40, AgeGyr: 4, MassSolar: 4},
	})
}

func newTestMap(opts ...starmap.Option) *starmap.Map {
	base := []starmap.Option{
		starmap.WithClock(astro.FixedClock(testTime)),
		starmap.WithObserver(astro.Observer{LatDeg: 0, LonDeg: 0}),
		starmap.WithCanvas(CanvasFor(100, 50)),
		starmap.WithFilters(nil),
	}
	return starmap.New(testCatalog(), append(base, opts...)...)
}

func gridRunes(out string) [][]rune {
	lines := strings.Split(out, "\n")
	grid := make([][]rune, len(lines))
	for i, l := range lines {
		grid[i] = []rune(l)
	}
	return grid
}

func TestCellPixelMapping(t *testing.T) {
	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, 4, 8},
		{3, 2, 28, 40},
		{50, 25, 404, 408},
	}

	for _, tt := range tests {
		x, y := CellToPixel(tt.col, tt.row)
		if x != tt.x || y != tt.y {
			t.Errorf("CellToPixel(%d, %d) = (%v, %v), want (%v, %v)", tt.col, tt.row, x, y, tt.x, tt.y)
		}
		col, row := PixelToCell(x, y)
		if col != tt.col || row != tt.row {
			t.Errorf("PixelToCell(%v, %v) = (%d, %d), want (%d, %d)", x, y, col, row, tt.col, tt.row)
		}
	}

	if col, row := PixelToCell(-1, -1); col != -1 || row != -1 {
		t.Errorf("PixelToCell(-1, -1) = (%d, %d), want (-1, -1)", col, row)
	}
}

func TestCanvasFor(t *testing.T) {
	c := CanvasFor(100, 50)
	if c.Width != 800 || c.Height != 800 {
		t.Errorf("canvas = %vx%v, want 800x800", c.Width, c.Height)
	}
	if c.DomeRadius != 370 {
		t.Errorf("DomeRadius = %v, want 370", c.DomeRadius)
	}
}

func TestRenderDome(t *testing.T) {
	sm := newTestMap()
	out := RenderDome(sm.Render(), 100, 50, false)
	grid := gridRunes(out)

	if len(grid) != 50 {
		t.Fatalf("got %d rows, want 50", len(grid))
	}
	for i, row := range grid {
		if len(row) != 100 {
			t.Fatalf("row %d has %d cells, want 100", i, len(row))
		}
	}

	// Zenith star at the dome center, labeled to its right
	if got := grid[25][50]; got != glyphStarBright {
		t.Errorf("zenith cell = %q, want %q", got, glyphStarBright)
	}
	if got := string(grid[25][52:58]); got != "Zenith" {
		t.Errorf("zenith label = %q, want %q", got, "Zenith")
	}

	// North at the top in the standard orientation
	if got := grid[0][50]; got != 'N' {
		t.Errorf("north label cell = %q, want 'N'", got)
	}
	if got := grid[1][50]; got != glyphHorizon {
		t.Errorf("horizon cell = %q, want %q", got, glyphHorizon)
	}

	// Faint star due south is drawn but not labeled
	row := string(grid[36][48:53])
	if !strings.ContainsRune(row, glyphStarVeryDim) {
		t.Errorf("faint star row = %q, want %q", row, glyphStarVeryDim)
	}
	if strings.Contains(string(grid[36]), "Faint") {
		t.Error("faint star should not be labeled")
	}
}

func TestRenderDome_Selection(t *testing.T) {
	sm := newTestMap()
	if !sm.SelectAt(400, 400) {
		t.Fatal("SelectAt on zenith star failed")
	}
	grid := gridRunes(RenderDome(sm.Frame(), 100, 50, false))

	if got := string(grid[25][49:52]); got != "(✶)" {
		t.Errorf("selection ring = %q, want %q", got, "(✶)")
	}
	if got := string(grid[25][53:61]); got != "◄ Zenith" {
		t.Errorf("selected label = %q, want %q", got, "◄ Zenith")
	}
}

func TestRenderDome_Empty(t *testing.T) {
	sm := newTestMap()
	if got := RenderDome(sm.Render(), 0, 10, false); got != "" {
		t.Errorf("zero-width dome = %q, want empty", got)
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		mag   float64
		alpha float64
		glyph rune
		color string
	}{
		{-1.4, 1, glyphStarBright, "#ffffff"},
		{2.0, 1, glyphStarMedium, "#ffffff"},
		{3.5, 1, glyphStarDim, "#ffffff"},
		{5.0, 1, glyphStarVeryDim, "#ffffff"},
		{0.0, 0.3, glyphStarBright, fade("#ffffff", colorBackground, 0.3)},
	}

	for _, tt := range tests {
		ps := starmap.ProjectedStar{Star: astro.Star{Mag: tt.mag}, Alpha: tt.alpha}
		glyph, color := starGlyph(ps)
		if glyph != tt.glyph {
			t.Errorf("starGlyph(mag %v) glyph = %q, want %q", tt.mag, glyph, tt.glyph)
		}
		if string(color) != tt.color {
			t.Errorf("starGlyph(mag %v, alpha %v) color = %s, want %s", tt.mag, tt.alpha, color, tt.color)
		}
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		fg, bg string
		alpha  float64
		want   string
	}{
		{"#ffffff", "#000000", 1, "#ffffff"},
		{"#ffffff", "#000000", 0, "#000000"},
		{"#ffffff", "#000000", 0.5, "#808080"},
		{"#ffaa77", "#000511", 1, "#ffaa77"},
		{"bogus", "#000000", 1, "#ffffff"},
	}

	for _, tt := range tests {
		if got := fade(tt.fg, tt.bg, tt.alpha); got != tt.want {
			t.Errorf("fade(%s, %s, %v) = %s, want %s", tt.fg, tt.bg, tt.alpha, got, tt.want)
		}
	}
}
