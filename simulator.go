package confetti

import "math"

// DefaultParticles is the target piece count when none is configured.
const DefaultParticles = 60

// fadingRatio divides the target count to get the remaining-piece count at
// which EventFading fires.
const fadingRatio = 1.25

// Config controls one simulation session.
type Config struct {
	// Particles is the number of pieces created when the session starts.
	Particles int
	// Fading makes pieces start partly transparent and fade every frame.
	Fading bool
}

// DefaultConfig returns the configuration of an element with no attributes.
func DefaultConfig() Config {
	return Config{Particles: DefaultParticles}
}

// Options carries the collaborators a Simulator (and a Confetti) depends on.
// Zero fields are filled with defaults.
type Options struct {
	// Viewport reports the visible area. Defaults to the host when it
	// implements Viewport.
	Viewport Viewport
	// Clock drives ticks. Defaults to a StepClock.
	Clock FrameClock
	// Events receives EventFading. Defaults to discarding events.
	Events EventSink
	// Rand draws spawn attributes. Defaults to math/rand/v2.
	Rand Rand
	// Width and Height size a Confetti's surface before the first Layout.
	// Default 800x600. Ignored by NewSimulator.
	Width, Height float64
}

// Simulator owns the pieces of one confetti session: it spawns them, moves
// them once per frame and removes them when they leave the viewport or fade
// out. It is not safe for concurrent use; every method and every tick must
// run on the same goroutine.
type Simulator struct {
	host     Host
	viewport Viewport
	clock    FrameClock
	events   EventSink
	rng      Rand

	cfg         Config
	particles   []*Particle
	running     bool
	tearingDown bool
	nextID      int

	debug bool
	stats frameStats
}

// NewSimulator creates an idle simulator that renders into host.
// Panics if opts.Viewport is nil and host does not implement Viewport.
func NewSimulator(host Host, opts Options) *Simulator {
	s := &Simulator{
		host:     host,
		viewport: opts.Viewport,
		clock:    opts.Clock,
		events:   opts.Events,
		rng:      opts.Rand,
		cfg:      DefaultConfig(),
	}
	if s.viewport == nil {
		vp, ok := host.(Viewport)
		if !ok {
			panic("confetti: no viewport and host does not report a size")
		}
		s.viewport = vp
	}
	if s.clock == nil {
		s.clock = NewStepClock()
	}
	if s.events == nil {
		s.events = discardSink{}
	}
	if s.rng == nil {
		s.rng = globalRand{}
	}
	return s
}

// Start tops the session up to cfg.Particles pieces and schedules the first
// tick. It never removes pieces. Calling Start on a running session only
// spawns the shortfall; no second tick chain is scheduled. Calling it from an
// event listener while the session is tearing down only records cfg; the
// tick tops up once teardown finishes and the host is connected again.
func (s *Simulator) Start(cfg Config) {
	s.cfg = cfg
	if s.tearingDown {
		return
	}
	s.topUp()
	if s.running {
		return
	}
	s.running = true
	s.clock.OnFrame(s.tick)
}

// topUp spawns pieces until the live count reaches the configured target.
func (s *Simulator) topUp() {
	for len(s.particles) < s.cfg.Particles {
		s.spawn(s.cfg.Fading)
	}
}

// SetConfig replaces the live configuration. The fading flag takes effect on
// the next tick and the particle count on the next removal; no pieces are
// spawned or removed.
func (s *Simulator) SetConfig(cfg Config) {
	s.cfg = cfg
}

// Config returns the live configuration.
func (s *Simulator) Config() Config {
	return s.cfg
}

// Running reports whether a tick is scheduled.
func (s *Simulator) Running() bool {
	return s.running
}

// Len returns the number of live pieces.
func (s *Simulator) Len() int {
	return len(s.particles)
}

// Particles returns the live pieces. The returned slice MUST NOT be mutated
// and is only valid until the next tick.
func (s *Simulator) Particles() []*Particle {
	return s.particles
}

// Clock returns the clock that drives this simulator.
func (s *Simulator) Clock() FrameClock {
	return s.clock
}

// SetDebugMode enables per-frame count logging to stderr and node misuse
// checks.
func (s *Simulator) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// tick is the per-frame callback. It returns false, ending the session, once
// the host is no longer connected. A host reconnected during teardown (by a
// fading listener) gets a fresh set of pieces on the same tick chain.
func (s *Simulator) tick() bool {
	if !s.host.IsConnected() {
		s.teardown()
		if s.host.IsConnected() {
			s.topUp()
			return true
		}
		s.running = false
		return false
	}
	s.update()
	return true
}

// spawn creates one piece and attaches its node to the host.
func (s *Simulator) spawn(fading bool) {
	w, _ := s.viewport.Size()
	p := newParticle(s.rng, w, fading)
	s.nextID++
	p.attach(s.host.Root(), s.nextID)
	s.particles = append(s.particles, p)
	s.stats.spawned++
}

// update advances every piece one frame and removes those that are out of
// bounds or fully faded. Removed pieces are swapped out of the slice.
func (s *Simulator) update() {
	w, h := s.viewport.Size()
	fading := s.cfg.Fading

	i := 0
	for i < len(s.particles) {
		p := s.particles[i]
		p.step(fading)
		if p.outOfBounds(w, h) {
			s.remove(p)
			last := len(s.particles) - 1
			s.particles[i] = s.particles[last]
			s.particles[last] = nil
			s.particles = s.particles[:last]
			continue
		}
		p.sync()
		i++
	}

	if s.debug {
		s.stats.frame++
		s.stats.alive = len(s.particles)
		debugLog(s.stats)
	}
	s.stats.spawned = 0
	s.stats.removed = 0
}

// teardown removes every piece. Used when the host disconnects.
func (s *Simulator) teardown() {
	s.tearingDown = true
	defer func() { s.tearingDown = false }()
	for i, p := range s.particles {
		s.remove(p)
		s.particles[i] = nil
	}
	s.particles = s.particles[:0]
}

// remove detaches p's node and fires EventFading when the remaining node
// count exactly matches the threshold. The match is exact: a session whose
// count is already below the threshold, for example after the target was
// raised mid-session, never fires.
func (s *Simulator) remove(p *Particle) {
	p.detach()
	s.stats.removed++
	if s.host.Root().NumChildren() == fadingThreshold(s.cfg.Particles) {
		s.events.Dispatch(Event{Name: EventFading, Bubbles: true})
	}
}

// fadingThreshold returns round(particles/1.25), rounding halves up.
func fadingThreshold(particles int) int {
	return int(math.Floor(float64(particles)/fadingRatio + 0.5))
}
