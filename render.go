package confetti

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderCommand is a single draw instruction: a unit white quad transformed
// and tinted.
type RenderCommand struct {
	Transform [6]float64
	Color     Color // straight alpha; premultiplied at submission
	node      *Node
}

// whitePixel is a 1x1 white image scaled up to draw solid quads. Created on
// first draw.
var whitePixel *ebiten.Image

func whitePixelImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// appendCommands walks n's children in order and appends one command per
// visible piece or rect. Pieces are painted from p.
func appendCommands(cmds []RenderCommand, n *Node, p *Palette) []RenderCommand {
	for _, child := range n.children {
		if !child.Visible || child.Opacity <= 0 {
			continue
		}
		switch child.Type {
		case NodeTypePiece:
			c := p.Color(child.Class)
			c.A *= clamp01(child.Opacity)
			cmds = append(cmds, RenderCommand{
				Transform: computePieceTransform(child),
				Color:     c,
				node:      child,
			})
		case NodeTypeRect:
			c := child.Color
			c.A *= clamp01(child.Opacity)
			cmds = append(cmds, RenderCommand{
				Transform: computeRectTransform(child),
				Color:     c,
				node:      child,
			})
		case NodeTypeContainer:
			cmds = appendCommands(cmds, child, p)
		}
	}
	return cmds
}

// submitCommands draws every command onto target.
func submitCommands(target *ebiten.Image, cmds []RenderCommand) {
	img := whitePixelImage()
	var op ebiten.DrawImageOptions
	for i := range cmds {
		cmd := &cmds[i]
		op.GeoM.Reset()
		m := cmd.Transform
		op.GeoM.SetElement(0, 0, m[0])
		op.GeoM.SetElement(1, 0, m[1])
		op.GeoM.SetElement(0, 1, m[2])
		op.GeoM.SetElement(1, 1, m[3])
		op.GeoM.SetElement(0, 2, m[4])
		op.GeoM.SetElement(1, 2, m[5])

		a := float32(cmd.Color.A)
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
		target.DrawImage(img, &op)
	}
}
