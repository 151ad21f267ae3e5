package confetti

// Host is the rendering surface a Simulator inserts piece nodes into.
// IsConnected is polled once per tick; when it reports false the simulation
// tears down.
type Host interface {
	IsConnected() bool
	Root() *Node
}

// Surface is the isolated container that holds the confetti pieces. It
// tracks whether it is attached to a display and the size of that display.
// Surface implements both Host and Viewport.
type Surface struct {
	root      *Node
	overlay   *Node
	connected bool

	width, height float64
}

// NewSurface creates a disconnected surface of the given size with empty
// piece and overlay layers.
func NewSurface(width, height float64) *Surface {
	return &Surface{
		root:    NewContainer("pieces"),
		overlay: NewContainer("overlay"),
		width:   width,
		height:  height,
	}
}

// Root returns the container that holds one node per live piece.
func (s *Surface) Root() *Node {
	return s.root
}

// Overlay returns the container drawn above the pieces. Nodes added here are
// not counted as pieces.
func (s *Surface) Overlay() *Node {
	return s.overlay
}

// Connect marks the surface as attached to a display.
func (s *Surface) Connect() {
	s.connected = true
}

// Disconnect marks the surface as detached. A running simulation notices on
// its next tick.
func (s *Surface) Disconnect() {
	s.connected = false
}

// IsConnected reports whether the surface is attached to a display.
func (s *Surface) IsConnected() bool {
	return s.connected
}

// Resize sets the viewport size in pixels.
func (s *Surface) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// Size returns the viewport size in pixels.
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}
