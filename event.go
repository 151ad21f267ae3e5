package confetti

// EventFading is dispatched once when the number of pieces left on screen
// reaches round(particles/1.25) during a removal.
const EventFading = "confettiAnimationFading"

// Event is a lifecycle notification. It carries no payload beyond its name.
type Event struct {
	Name    string
	Bubbles bool
}

// EventSink receives lifecycle notifications. Dispatch is fire-and-forget.
type EventSink interface {
	Dispatch(ev Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(ev Event)

// Dispatch calls f(ev).
func (f EventSinkFunc) Dispatch(ev Event) {
	f(ev)
}

type discardSink struct{}

func (discardSink) Dispatch(Event) {}

// Dispatcher is an EventSink that fans events out to listeners registered by
// name, in registration order.
type Dispatcher struct {
	listeners map[string][]func(Event)
}

// NewDispatcher returns a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[string][]func(Event))}
}

// AddEventListener registers fn for events with the given name.
func (d *Dispatcher) AddEventListener(name string, fn func(Event)) {
	d.listeners[name] = append(d.listeners[name], fn)
}

// RemoveEventListeners drops every listener registered for name.
func (d *Dispatcher) RemoveEventListeners(name string) {
	delete(d.listeners, name)
}

// Dispatch calls every listener registered for ev.Name.
func (d *Dispatcher) Dispatch(ev Event) {
	for _, fn := range d.listeners[ev.Name] {
		fn(ev)
	}
}
