package confetti

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, got, want [6]float64) {
	t.Helper()
	names := [6]string{"a", "b", "c", "d", "tx", "ty"}
	for i := range got {
		assertNear(t, names[i], got[i], want[i])
	}
}

func TestPieceTransformIdentity(t *testing.T) {
	n := NewPiece("p", ColorClass1)
	n.X, n.Y = 30, 40
	assertMatrix(t, n.Transform(), [6]float64{8, 0, 0, 16, 30, 40})
}

func TestPieceTransformRotZKeepsCenter(t *testing.T) {
	n := NewPiece("p", ColorClass1)
	n.X, n.Y = 30, 40
	n.RotZ = 90

	m := n.Transform()
	assertMatrix(t, m, [6]float64{0, 8, -16, 0, 42, 44})

	cx, cy := n.Center()
	assertNear(t, "cx", cx, 34)
	assertNear(t, "cy", cy, 48)
}

func TestPieceCenterUnderAnyRotation(t *testing.T) {
	n := NewPiece("p", ColorClass2)
	n.X, n.Y = 100, 200
	for _, rot := range [][3]float64{{10, 20, 30}, {90, 0, 45}, {-45, 180, 270}} {
		n.RotX, n.RotY, n.RotZ = rot[0], rot[1], rot[2]
		cx, cy := n.Center()
		assertNear(t, "cx", cx, 104)
		assertNear(t, "cy", cy, 208)
	}
}

func TestPieceCoverage(t *testing.T) {
	tests := []struct {
		name             string
		rotX, rotY, rotZ float64
		want             float64
	}{
		{"facing", 0, 0, 0, 1},
		{"spun flat", 0, 0, 73, 1},
		{"edge-on about Y", 0, 90, 0, 0},
		{"edge-on about X", 90, 0, 0, 0},
		{"half turned", 0, 60, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewPiece("p", ColorClass1)
			n.RotX, n.RotY, n.RotZ = tt.rotX, tt.rotY, tt.rotZ
			assertNear(t, "coverage", n.Coverage(), tt.want)
		})
	}
}

func TestRectTransform(t *testing.T) {
	n := NewRect("r", 50, 10, ColorWhite)
	n.X, n.Y = 5, 6
	assertMatrix(t, n.Transform(), [6]float64{50, 0, 0, 10, 5, 6})
	assertNear(t, "coverage", n.Coverage(), 1)
}

func TestContainerTransformIsZero(t *testing.T) {
	n := NewContainer("c")
	assertMatrix(t, n.Transform(), [6]float64{})
	assertNear(t, "coverage", n.Coverage(), 0)
}
