// Package term draws a confetti surface into a terminal through tcell.
//
// Each cell stands for a CellWidth x CellHeight block of surface pixels. A
// piece is drawn in the cell under its center with a shade glyph chosen by
// how much of it faces the viewer. Terminals have no alpha, so opacity is
// applied by blending toward the background color.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/phanxgames/confetti"
)

// Default cell size in surface pixels. A piece is one cell wide and tall.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// shades from most to least covered.
var shades = []struct {
	min   float64
	glyph rune
}{
	{0.66, '█'},
	{0.33, '▓'},
	{0.10, '▒'},
	{0, '░'},
}

// Renderer draws a confetti element onto a tcell screen.
type Renderer struct {
	Screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
	Background confetti.Color
}

// NewRenderer returns a renderer with the default cell size and a black
// background.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		Screen:     screen,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Background: confetti.Color{A: 1},
	}
}

// Layout sizes c's surface to the screen in surface pixels.
func (r *Renderer) Layout(c *confetti.Confetti) {
	cols, rows := r.Screen.Size()
	c.Surface().Resize(float64(cols)*r.CellWidth, float64(rows)*r.CellHeight)
}

// Draw clears the screen, draws every piece, then the overlay, and shows
// the result.
func (r *Renderer) Draw(c *confetti.Confetti) {
	bg := r.tcellColor(r.Background, 1)
	r.Screen.SetStyle(tcell.StyleDefault.Background(bg))
	r.Screen.Clear()

	palette := c.Palette()
	for _, n := range c.Surface().Root().Children() {
		r.drawPiece(n, palette, bg)
	}
	for _, n := range c.Surface().Overlay().Children() {
		r.drawRect(n)
	}
	r.Screen.Show()
}

// Cell returns the cell under a surface point.
func (r *Renderer) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / r.CellWidth)), int(math.Floor(y / r.CellHeight))
}

func (r *Renderer) drawPiece(n *confetti.Node, palette *confetti.Palette, bg tcell.Color) {
	if n.Type != confetti.NodeTypePiece || !n.Visible || n.Opacity <= 0 {
		return
	}
	col, row := r.Cell(n.Center())
	if !r.inBounds(col, row) {
		return
	}
	style := tcell.StyleDefault.
		Foreground(r.tcellColor(palette.Color(n.Class), n.Opacity)).
		Background(bg)
	r.Screen.SetContent(col, row, Shade(n.Coverage()), nil, style)
}

func (r *Renderer) drawRect(n *confetti.Node) {
	if n.Type != confetti.NodeTypeRect || !n.Visible || n.Opacity <= 0 {
		return
	}
	c0, r0 := r.Cell(n.X, n.Y)
	c1, r1 := r.Cell(n.X+n.Width, n.Y+n.Height)
	style := tcell.StyleDefault.Background(r.tcellColor(n.Color, n.Opacity))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if r.inBounds(col, row) {
				r.Screen.SetContent(col, row, ' ', nil, style)
			}
		}
	}
}

func (r *Renderer) inBounds(col, row int) bool {
	cols, rows := r.Screen.Size()
	return col >= 0 && row >= 0 && col < cols && row < rows
}

// tcellColor blends c over the background by c.A*opacity.
func (r *Renderer) tcellColor(c confetti.Color, opacity float64) tcell.Color {
	alpha := c.A * opacity
	fg := colorful.Color{R: c.R, G: c.G, B: c.B}
	back := colorful.Color{R: r.Background.R, G: r.Background.G, B: r.Background.B}
	blended := back.BlendRgb(fg, math.Max(0, math.Min(1, alpha))).Clamped()
	cr, cg, cb := blended.RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

// Shade returns the glyph for a piece with the given coverage.
func Shade(coverage float64) rune {
	for _, s := range shades {
		if coverage >= s.min {
			return s.glyph
		}
	}
	return shades[len(shades)-1].glyph
}
