package confetti

import "math"

// computePieceTransform returns the affine matrix [a, b, c, d, tx, ty] that
// maps a unit square onto the node's on-screen quad.
//
// The node is rotated about X, then Y, then Z (applied to points right to
// left: Rx * Ry * Rz) around its center and projected orthographically onto
// the screen plane, then moved to (X, Y):
//
//	Scale(W, H) -> Translate(-W/2, -H/2) -> Project(Rx*Ry*Rz) -> Translate(X+W/2, Y+H/2)
func computePieceTransform(n *Node) [6]float64 {
	sx, cx := math.Sincos(n.RotX * math.Pi / 180)
	sy, cy := math.Sincos(n.RotY * math.Pi / 180)
	sz, cz := math.Sincos(n.RotZ * math.Pi / 180)

	// Upper-left 2x2 block of Rx * Ry * Rz.
	a := cy * cz
	c := -cy * sz
	b := cx*sz + sx*sy*cz
	d := cx*cz - sx*sy*sz

	hw := n.Width / 2
	hh := n.Height / 2
	return [6]float64{
		a * n.Width,
		b * n.Width,
		c * n.Height,
		d * n.Height,
		n.X + hw - (a*hw + c*hh),
		n.Y + hh - (b*hw + d*hh),
	}
}

// computeRectTransform returns the affine matrix mapping a unit square onto
// an axis-aligned rectangle node.
func computeRectTransform(n *Node) [6]float64 {
	return [6]float64{n.Width, 0, 0, n.Height, n.X, n.Y}
}

// projectedArea returns the absolute determinant of the matrix's linear
// part divided by the unrotated area, in [0, 1]. It is 1 when the piece faces
// the viewer and 0 when it is seen edge-on.
func projectedArea(m [6]float64, w, h float64) float64 {
	if w == 0 || h == 0 {
		return 0
	}
	return math.Abs(m[0]*m[3]-m[1]*m[2]) / (w * h)
}

// applyTransform maps a local point through m.
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func applyTransform(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Transform returns the affine matrix that maps a unit square onto the
// node's on-screen quad. Containers return the zero matrix.
func (n *Node) Transform() [6]float64 {
	switch n.Type {
	case NodeTypePiece:
		return computePieceTransform(n)
	case NodeTypeRect:
		return computeRectTransform(n)
	}
	return [6]float64{}
}

// Coverage returns how much of the node's own area is visible after
// rotation, from 0 (edge-on) to 1 (facing the viewer).
func (n *Node) Coverage() float64 {
	m := n.Transform()
	return projectedArea(m, n.Width, n.Height)
}

// Center returns the on-screen center of the node's quad.
func (n *Node) Center() (float64, float64) {
	return applyTransform(n.Transform(), 0.5, 0.5)
}
