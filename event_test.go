package confetti

import "testing"

func TestDispatcherRoutesByName(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.AddEventListener(EventFading, func(ev Event) { got = append(got, "first:"+ev.Name) })
	d.AddEventListener(EventFading, func(ev Event) { got = append(got, "second:"+ev.Name) })
	d.AddEventListener("other", func(ev Event) { got = append(got, "other") })

	d.Dispatch(Event{Name: EventFading, Bubbles: true})

	want := []string{"first:" + EventFading, "second:" + EventFading}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("listeners ran %v, want %v", got, want)
	}
}

func TestDispatcherRemoveListeners(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.AddEventListener(EventFading, func(Event) { calls++ })
	d.RemoveEventListeners(EventFading)
	d.Dispatch(Event{Name: EventFading})
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestEventSinkFunc(t *testing.T) {
	var got Event
	var sink EventSink = EventSinkFunc(func(ev Event) { got = ev })
	sink.Dispatch(Event{Name: "x", Bubbles: true})
	if got.Name != "x" || !got.Bubbles {
		t.Errorf("got %+v", got)
	}
}
