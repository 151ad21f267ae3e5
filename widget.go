package confetti

import "github.com/hajimehoshi/ebiten/v2"

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Confetti is the full-screen confetti element: an attribute set, the
// surface pieces are drawn on and the simulator that drives them.
//
// Connect starts a session; Disconnect ends it on the next frame. Call
// Update once per tick and Draw once per frame, or hand the element to Run.
type Confetti struct {
	attrs   *Attributes
	palette *Palette
	surface *Surface
	sim     *Simulator
	clock   *StepClock // nil when Options.Clock was supplied

	cmds []RenderCommand

	ScreenshotDir   string
	screenshotQueue []string
	testRunner      *TestRunner
}

// New creates a disconnected element with default attributes.
func New(opts Options) *Confetti {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	c := &Confetti{
		attrs:         NewAttributes(),
		palette:       DefaultPalette(),
		surface:       NewSurface(w, h),
		ScreenshotDir: "screenshots",
	}
	if opts.Clock == nil {
		c.clock = NewStepClock()
		opts.Clock = c.clock
	}
	c.sim = NewSimulator(c.surface, opts)
	return c
}

// SetAttribute sets an attribute and applies it to the running session.
func (c *Confetti) SetAttribute(name, value string) {
	c.attrs.Set(name, value)
	c.attributesChanged()
}

// RemoveAttribute removes an attribute and applies its absence.
func (c *Confetti) RemoveAttribute(name string) {
	c.attrs.Remove(name)
	c.attributesChanged()
}

// HasAttribute reports whether the attribute is present.
func (c *Confetti) HasAttribute(name string) bool {
	return c.attrs.Has(name)
}

// Attribute returns an attribute's value and whether it is present.
func (c *Confetti) Attribute(name string) (string, bool) {
	return c.attrs.Get(name)
}

// Particles returns the configured target piece count.
func (c *Confetti) Particles() int {
	return c.attrs.Particles()
}

func (c *Confetti) attributesChanged() {
	c.palette = ResolvePalette(c.attrs.Colors())
	c.sim.SetConfig(c.attrs.Config())
}

// Connect attaches the element to the display and starts (or tops up) the
// session with the current attributes.
func (c *Confetti) Connect() {
	c.surface.Connect()
	c.sim.Start(c.attrs.Config())
}

// Disconnect detaches the element. The session removes every piece on its
// next tick and stops.
func (c *Confetti) Disconnect() {
	c.surface.Disconnect()
}

// IsConnected reports whether the element is attached.
func (c *Confetti) IsConnected() bool {
	return c.surface.IsConnected()
}

// Surface returns the surface pieces are attached to.
func (c *Confetti) Surface() *Surface {
	return c.surface
}

// Simulator returns the simulator driving the pieces.
func (c *Confetti) Simulator() *Simulator {
	return c.sim
}

// Palette returns the resolved class colors.
func (c *Confetti) Palette() *Palette {
	return c.palette
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, child count warnings are printed, and per-frame counts are
// logged to stderr.
func (c *Confetti) SetDebugMode(enabled bool) {
	c.sim.SetDebugMode(enabled)
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update.
func (c *Confetti) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Update runs one tick: the test runner step, then one frame of the clock
// when the element owns it.
func (c *Confetti) Update() error {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	if c.clock != nil {
		c.clock.Step()
	}
	return nil
}

// Draw renders the pieces, then the overlay, onto screen.
func (c *Confetti) Draw(screen *ebiten.Image) {
	c.cmds = appendCommands(c.cmds[:0], c.surface.Root(), c.palette)
	c.cmds = appendCommands(c.cmds, c.surface.Overlay(), c.palette)
	submitCommands(screen, c.cmds)
	c.flushScreenshots(screen)
}

// Layout resizes the surface to the outside size and returns it unchanged.
func (c *Confetti) Layout(outsideWidth, outsideHeight int) (int, int) {
	c.surface.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
