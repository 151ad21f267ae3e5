package confetti

// FrameFunc is called once per frame. Returning false unregisters it.
type FrameFunc func() bool

// FrameClock schedules work to run once per displayed frame.
type FrameClock interface {
	OnFrame(fn FrameFunc)
}

// StepClock is a FrameClock advanced explicitly by calling Step, once per
// ebiten tick in a running game or by hand in tests.
type StepClock struct {
	funcs []FrameFunc
	frame uint64
}

// NewStepClock returns an empty clock.
func NewStepClock() *StepClock {
	return &StepClock{}
}

// OnFrame registers fn to run on every subsequent Step until it returns false.
// A func registered during a Step first runs on the next Step.
func (c *StepClock) OnFrame(fn FrameFunc) {
	c.funcs = append(c.funcs, fn)
}

// Step runs every registered func once, in registration order, and drops the
// ones that returned false.
func (c *StepClock) Step() {
	c.frame++
	current := c.funcs
	c.funcs = nil
	kept := current[:0]
	for _, fn := range current {
		if fn() {
			kept = append(kept, fn)
		}
	}
	for i := len(kept); i < len(current); i++ {
		current[i] = nil
	}
	c.funcs = append(kept, c.funcs...)
}

// Pending returns the number of registered funcs.
func (c *StepClock) Pending() int {
	return len(c.funcs)
}

// Frame returns the number of completed Steps.
func (c *StepClock) Frame() uint64 {
	return c.frame
}
