package confetti

import "strconv"

const (
	pieceWidth  = 8
	pieceHeight = 16

	// removeMargin is how far past the left, right or bottom edge a piece may
	// drift before it is removed.
	removeMargin = 20

	// fadeFactor scales opacity once per frame while fading.
	fadeFactor = 0.985
)

// Spawn ranges. All are half-open [Min, Max).
var (
	spawnY        = Range{-100, 0}
	spawnRotation = Range{0, 360}
	spawnXSpeed   = Range{-1, 1}
	spawnYSpeed   = Range{1, 3}
	spawnRotSpeed = Range{-2, 5}
	fadingOpacity = Range{75, 100}
)

// Particle is the state of one piece of confetti. Speeds are per frame and
// fixed at spawn. Opacity is a percentage in [0, 100].
type Particle struct {
	X, Y             float64
	XRot, YRot, ZRot float64

	XSpeed, YSpeed                  float64
	XRotSpeed, YRotSpeed, ZRotSpeed float64

	Opacity float64
	Class   ColorClass

	node *Node
}

// Node returns the display node backing p. It is nil once p is removed.
func (p *Particle) Node() *Node {
	return p.node
}

// newParticle draws a fresh piece for a viewport of the given width.
func newParticle(r Rand, viewportWidth float64, fading bool) *Particle {
	p := &Particle{
		X:         Range{0, viewportWidth}.Random(r),
		Y:         spawnY.Random(r),
		XRot:      spawnRotation.Random(r),
		YRot:      spawnRotation.Random(r),
		ZRot:      spawnRotation.Random(r),
		XSpeed:    spawnXSpeed.Random(r),
		YSpeed:    spawnYSpeed.Random(r),
		XRotSpeed: spawnRotSpeed.Random(r),
		YRotSpeed: spawnRotSpeed.Random(r),
		ZRotSpeed: spawnRotSpeed.Random(r),
		Opacity:   100,
	}
	if fading {
		p.Opacity = fadingOpacity.Random(r)
	}
	p.Class = ColorClass(r.IntN(NumColorClasses)) + ColorClass1
	return p
}

// step advances p by one frame.
func (p *Particle) step(fading bool) {
	p.X += p.XSpeed
	p.Y += p.YSpeed
	p.XRot += p.XRotSpeed
	p.YRot += p.YRotSpeed
	p.ZRot += p.ZRotSpeed
	if fading {
		p.Opacity *= fadeFactor
	}
}

// outOfBounds reports whether p should be removed for a viewport of the
// given size. It depends only on p's current state.
func (p *Particle) outOfBounds(width, height float64) bool {
	return p.X < -removeMargin ||
		p.X > width+removeMargin ||
		p.Y > height+removeMargin ||
		p.Opacity <= 0
}

// sync pushes p's state to its node.
func (p *Particle) sync() {
	n := p.node
	n.X = p.X
	n.Y = p.Y
	n.RotX = p.XRot
	n.RotY = p.YRot
	n.RotZ = p.ZRot
	n.Opacity = p.Opacity / 100
}

// attach creates p's node under parent and syncs its initial state.
func (p *Particle) attach(parent *Node, id int) {
	p.node = NewPiece("piece-"+strconv.Itoa(id), p.Class)
	p.sync()
	parent.AddChild(p.node)
}

// detach removes p's node from the display tree.
func (p *Particle) detach() {
	if p.node == nil {
		return
	}
	p.node.Dispose()
	p.node = nil
}
