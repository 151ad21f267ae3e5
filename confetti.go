package confetti

import (
	"image/color"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Range is a half-open [Min, Max) interval used for randomized piece
// attributes.
type Range struct {
	Min, Max float64
}

// Random returns a value drawn uniformly from [Min, Max) using r.
func (rg Range) Random(r Rand) float64 {
	if rg.Min == rg.Max {
		return rg.Min
	}
	return rg.Min + r.Float64()*(rg.Max-rg.Min)
}

// Rand is the source of randomness for spawning pieces. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand forwards to the math/rand/v2 top-level functions.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Viewport reports the size of the visible area in pixels.
type Viewport interface {
	Size() (width, height float64)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	Width, Height float64
}

// Size returns the fixed width and height.
func (v FixedViewport) Size() (float64, float64) {
	return v.Width, v.Height
}

// ColorClass selects one of the six palette slots a piece is painted with.
type ColorClass uint8

const (
	ColorClass1 ColorClass = iota + 1 // blue unless overridden
	ColorClass2                       // red
	ColorClass3                       // lime
	ColorClass4                       // yellow
	ColorClass5                       // magenta
	ColorClass6                       // cyan
)

// NumColorClasses is the number of palette slots.
const NumColorClasses = 6

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypePiece                     // a confetti piece painted from the palette
	NodeTypeRect                      // a solid rectangle painted with Node.Color
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
