package confetti

import "testing"

func TestStepClockRunsEachFrame(t *testing.T) {
	c := NewStepClock()
	calls := 0
	c.OnFrame(func() bool {
		calls++
		return true
	})

	for i := 0; i < 3; i++ {
		c.Step()
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if c.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", c.Frame())
	}
}

func TestStepClockUnregistersOnFalse(t *testing.T) {
	c := NewStepClock()
	calls := 0
	c.OnFrame(func() bool {
		calls++
		return calls < 2
	})

	c.Step()
	if c.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", c.Pending())
	}
	c.Step()
	if c.Pending() != 0 {
		t.Fatalf("Pending = %d, want 0", c.Pending())
	}
	c.Step()
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestStepClockOrder(t *testing.T) {
	c := NewStepClock()
	var order []string
	c.OnFrame(func() bool { order = append(order, "a"); return true })
	c.OnFrame(func() bool { order = append(order, "b"); return false })
	c.OnFrame(func() bool { order = append(order, "c"); return true })

	c.Step()
	c.Step()

	want := []string{"a", "b", "c", "a", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestStepClockRegisterDuringStep(t *testing.T) {
	c := NewStepClock()
	innerCalls := 0
	c.OnFrame(func() bool {
		c.OnFrame(func() bool {
			innerCalls++
			return true
		})
		return false
	})

	c.Step()
	if innerCalls != 0 {
		t.Errorf("func registered during a step ran %d times in that step", innerCalls)
	}
	if c.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", c.Pending())
	}
	c.Step()
	if innerCalls != 1 {
		t.Errorf("innerCalls = %d, want 1", innerCalls)
	}
}
