package confetti

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewPieceDefaults(t *testing.T) {
	n := NewPiece("piece", ColorClass3)
	assertNodeDefaults(t, n, "piece", NodeTypePiece)
	if n.Class != ColorClass3 {
		t.Errorf("Class = %d, want %d", n.Class, ColorClass3)
	}
	if n.Width != 8 || n.Height != 16 {
		t.Errorf("size = %vx%v, want 8x16", n.Width, n.Height)
	}
}

func TestNewRectDefaults(t *testing.T) {
	c := Color{R: 1, A: 0.5}
	n := NewRect("rect", 100, 20, c)
	assertNodeDefaults(t, n, "rect", NodeTypeRect)
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
	if n.Width != 100 || n.Height != 20 {
		t.Errorf("size = %vx%v, want 100x20", n.Width, n.Height)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", n.Opacity)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewPiece("c", ColorClass1)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewPiece("child", ColorClass1)
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.Children()[0] != child {
		t.Error("Children()[0] should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	if p1.NumChildren() != 1 {
		t.Fatal("p1 should have 1 child")
	}

	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent) // should panic
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewContainer("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

// --- RemoveChild ---

func TestRemoveChildKeepsOrder(t *testing.T) {
	parent := NewContainer("parent")
	a := NewPiece("a", ColorClass1)
	b := NewPiece("b", ColorClass2)
	c := NewPiece("c", ColorClass3)
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.RemoveChild(b)

	if b.Parent != nil {
		t.Error("b.Parent should be nil")
	}
	got := parent.Children()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("children = %v, want [a c]", got)
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent() // should not panic
	if n.Parent != nil {
		t.Error("Parent should stay nil")
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewPiece("grandchild", ColorClass1)
	root := NewContainer("root")
	root.AddChild(parent)
	parent.AddChild(child)
	child.AddChild(grandchild)

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("whole subtree should be disposed")
	}
	if parent.ID != 0 || child.ID != 0 || grandchild.ID != 0 {
		t.Error("disposed nodes should have ID = 0")
	}
	if root.NumChildren() != 0 {
		t.Error("root should have 0 children after dispose")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose() // should not panic
	if !n.IsDisposed() {
		t.Error("should still be disposed")
	}
}

// --- Debug checks ---

func TestDebugPanicsOnDisposedNode(t *testing.T) {
	globalDebug = true
	defer func() { globalDebug = false }()

	parent := NewContainer("parent")
	child := NewPiece("child", ColorClass1)
	child.Dispose()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for disposed child in debug mode")
		}
	}()
	parent.AddChild(child)
}
