package ui

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/sky"
	"github.com/litescript/ls-starmap/internal/starmap"
)

const (
	// Each terminal cell covers CellWidth×CellHeight logical pixels, so
	// pixel tolerances apply unchanged in the terminal.
	CellWidth  = 8
	CellHeight = 16

	// domeMargin is the pixel gap between the horizon circle and the
	// shorter canvas edge.
	domeMargin = 30

	// Star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '•' // mag 3.0-4.0
	glyphStarVeryDim = '·' // mag > 4.0

	glyphHorizon = '∙'
	glyphRing    = '⋅'

	colorBackground = "#000511"
	colorHorizon    = "60"  // muted purple
	colorRing       = "237" // faint gray
	colorCompass    = "252"
	colorLabel      = "250"
	colorSelected   = "229" // bright gold
)

// Star colors by spectral family.
var starColors = map[astro.ColorClass]string{
	astro.ColorWhite:    "#ffffff",
	astro.ColorRed:      "#ffaa77",
	astro.ColorOrange:   "#ffcc88",
	astro.ColorYellow:   "#ffff88",
	astro.ColorPaleBlue: "#aaccff",
	astro.ColorBlue:     "#88aaff",
}

// CanvasFor returns the logical canvas for a cols×rows cell area.
func CanvasFor(cols, rows int) sky.Canvas {
	return sky.NewCanvas(float64(cols*CellWidth), float64(rows*CellHeight), domeMargin)
}

// CellToPixel returns the logical pixel at the center of a cell.
func CellToPixel(col, row int) (x, y float64) {
	return float64(col*CellWidth) + CellWidth/2, float64(row*CellHeight) + CellHeight/2
}

// PixelToCell returns the cell containing a logical pixel.
func PixelToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// cellGrid is a character canvas with per-cell foreground colors.
type cellGrid struct {
	cols, rows int
	runes      [][]rune
	colors     [][]lipgloss.Color
	bold       [][]bool
}

func newCellGrid(cols, rows int) *cellGrid {
	g := &cellGrid{cols: cols, rows: rows}
	g.runes = make([][]rune, rows)
	g.colors = make([][]lipgloss.Color, rows)
	g.bold = make([][]bool, rows)
	for y := 0; y < rows; y++ {
		g.runes[y] = make([]rune, cols)
		g.colors[y] = make([]lipgloss.Color, cols)
		g.bold[y] = make([]bool, cols)
		for x := 0; x < cols; x++ {
			g.runes[y][x] = ' '
			g.colors[y][x] = "236"
		}
	}
	return g
}

func (g *cellGrid) set(col, row int, r rune, color lipgloss.Color) bool {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return false
	}
	g.runes[row][col] = r
	g.colors[row][col] = color
	return true
}

func (g *cellGrid) setPixel(x, y float64, r rune, color lipgloss.Color) (int, int, bool) {
	col, row := PixelToCell(x, y)
	return col, row, g.set(col, row, r, color)
}

func (g *cellGrid) render(styled bool) string {
	var b strings.Builder
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if !styled || g.runes[y][x] == ' ' {
				b.WriteRune(g.runes[y][x])
				continue
			}
			style := lipgloss.NewStyle().Foreground(g.colors[y][x]).Bold(g.bold[y][x])
			b.WriteString(style.Render(string(g.runes[y][x])))
		}
		if y < g.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// starLabel tracks a drawn star for label placement.
type starLabel struct {
	col, row   int
	name       string
	selected   bool
	labelStart int
	labelEnd   int
}

// RenderDome draws a frame onto a cols×rows character grid. The frame
// should have been rendered for CanvasFor(cols, rows).
func RenderDome(f *starmap.Frame, cols, rows int, styled bool) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	g := newCellGrid(cols, rows)

	drawCircle(g, f.Center[0], f.Center[1], f.Rings[0], glyphRing, colorRing)
	drawCircle(g, f.Center[0], f.Center[1], f.Rings[1], glyphRing, colorRing)
	drawCircle(g, f.Center[0], f.Center[1], f.HorizonRadius, glyphHorizon, colorHorizon)

	for _, cp := range f.Compass {
		col, row, ok := g.setPixel(cp.X, cp.Y, rune(cp.Label[0]), colorCompass)
		if ok {
			g.bold[row][col] = true
		}
	}

	// Dim stars first so bright ones win shared cells
	order := make([]int, len(f.Stars))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		sa, sb := f.Stars[a], f.Stars[b]
		switch {
		case a == f.Selected:
			return 1
		case b == f.Selected:
			return -1
		case sa.Star.Mag > sb.Star.Mag:
			return -1
		case sa.Star.Mag < sb.Star.Mag:
			return 1
		default:
			return 0
		}
	})

	var labels []starLabel
	for _, i := range order {
		ps := f.Stars[i]
		selected := i == f.Selected
		glyph, color := starGlyph(ps)
		col, row, ok := g.setPixel(ps.X, ps.Y, glyph, color)
		if !ok {
			continue
		}
		if selected {
			g.colors[row][col] = colorSelected
			g.bold[row][col] = true
			g.set(col-1, row, '(', colorSelected)
			g.set(col+1, row, ')', colorSelected)
		}
		if ps.Labeled {
			labels = append(labels, starLabel{col: col, row: row, name: ps.Star.Name, selected: selected})
		}
	}
	renderLabels(g, labels)

	return g.render(styled)
}

// drawCircle plots a circle of radius r pixels.
func drawCircle(g *cellGrid, cx, cy, r float64, glyph rune, color lipgloss.Color) {
	if r <= 0 {
		return
	}
	steps := int(math.Max(64, 2*math.Pi*r/CellWidth*2))
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		g.setPixel(cx+r*math.Cos(t), cy+r*math.Sin(t), glyph, color)
	}
}

// renderLabels draws star names right of their glyphs. The selected
// star's label takes priority in overlapping regions.
func renderLabels(g *cellGrid, labels []starLabel) {
	for i := range labels {
		l := &labels[i]
		l.labelStart = l.col + 2
		n := len([]rune(l.name))
		if l.selected {
			n += 2
			l.labelStart++
		}
		l.labelEnd = l.labelStart + n
	}

	claims := make(map[int]map[int]bool)
	for _, l := range labels {
		if !l.selected {
			continue
		}
		claims[l.row] = make(map[int]bool)
		for x := l.col - 1; x < l.labelEnd; x++ {
			claims[l.row][x] = true
		}
	}

	for _, l := range labels {
		text := l.name
		color := lipgloss.Color(colorLabel)
		if l.selected {
			text = "◄ " + l.name
			color = colorSelected
		}
		for i, r := range []rune(text) {
			x := l.labelStart + i
			if !l.selected && claims[l.row][x] {
				continue
			}
			g.set(x, l.row, r, color)
		}
	}
}

// starGlyph returns the glyph and color for a projected star. Brighter
// stars get more prominent symbols; ghost stars are faded toward the
// background.
func starGlyph(ps starmap.ProjectedStar) (rune, lipgloss.Color) {
	var glyph rune
	switch mag := ps.Star.Mag; {
	case mag < 1.5:
		glyph = glyphStarBright
	case mag < 3.0:
		glyph = glyphStarMedium
	case mag < 4.0:
		glyph = glyphStarDim
	default:
		glyph = glyphStarVeryDim
	}
	color := starColors[ps.Star.ColorClass()]
	if ps.Alpha < 1 {
		color = fade(color, colorBackground, ps.Alpha)
	}
	return glyph, lipgloss.Color(color)
}

// fade blends hex color fg over bg with the given alpha.
func fade(fg, bg string, alpha float64) string {
	fr, fgG, fb := parseHex(fg)
	br, bgG, bb := parseHex(bg)
	mix := func(f, b int) int {
		return int(math.Round(float64(b) + (float64(f)-float64(b))*alpha))
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(fr, br), mix(fgG, bgG), mix(fb, bb))
}

func parseHex(s string) (r, g, b int) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
