package core

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestVecNormalize(t *testing.T) {
	v, ok := V(3, 4).Normalize()
	if !ok {
		t.Fatal("Normalize of (3,4) should succeed")
	}
	if !almostEqual(v.X, 0.6) || !almostEqual(v.Y, 0.8) {
		t.Errorf("Normalize(3,4) = (%v, %v), expected (0.6, 0.8)", v.X, v.Y)
	}
	if !almostEqual(v.Len(), 1.0) {
		t.Errorf("Normalized length = %v, expected 1", v.Len())
	}
}

func TestVecNormalizeZero(t *testing.T) {
	// The degenerate case must be reported, not produce NaN
	v, ok := V(0, 0).Normalize()
	if ok {
		t.Error("Normalize of zero vector should report failure")
	}
	if v.X != 0 || v.Y != 0 {
		t.Errorf("Normalize of zero vector returned (%v, %v), expected zero", v.X, v.Y)
	}
}

func TestVecRotate(t *testing.T) {
	// Rotating the x unit vector by 90 degrees gives the y unit vector
	v := V(1, 0).Rotate(math.Pi / 2)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Errorf("Rotate(1,0) by pi/2 = (%v, %v), expected (0, 1)", v.X, v.Y)
	}

	// Rotation preserves length
	w := V(3, -7).Rotate(0.3)
	if !almostEqual(w.Len(), V(3, -7).Len()) {
		t.Errorf("Rotation changed length: %v vs %v", w.Len(), V(3, -7).Len())
	}
}

func TestVecClampLen(t *testing.T) {
	v := V(300, 400).ClampLen(100)
	if !almostEqual(v.Len(), 100) {
		t.Errorf("ClampLen(100) length = %v, expected 100", v.Len())
	}
	// Direction is preserved
	if !almostEqual(v.X, 60) || !almostEqual(v.Y, 80) {
		t.Errorf("ClampLen changed direction: (%v, %v)", v.X, v.Y)
	}

	// Vectors under the cap are untouched
	w := V(3, 4).ClampLen(100)
	if w.X != 3 || w.Y != 4 {
		t.Errorf("ClampLen modified vector under the cap: (%v, %v)", w.X, w.Y)
	}

	// Zero vector stays zero
	z := V(0, 0).ClampLen(100)
	if !z.IsZero() {
		t.Error("ClampLen of zero vector should stay zero")
	}
}

func TestVecDot(t *testing.T) {
	if d := V(1, 0).Dot(V(0, 1)); d != 0 {
		t.Errorf("Dot of perpendicular vectors = %v, expected 0", d)
	}
	if d := V(1, 2).Dot(V(3, 4)); d != 11 {
		t.Errorf("Dot(1,2)(3,4) = %v, expected 11", d)
	}
	// Sign convention: opposing vectors have negative dot product
	if d := V(1, 0).Dot(V(-1, 0)); d >= 0 {
		t.Errorf("Dot of opposing vectors = %v, expected negative", d)
	}
}

func TestVecDistance(t *testing.T) {
	if d := V(0, 0).Distance(V(3, 4)); !almostEqual(d, 5) {
		t.Errorf("Distance = %v, expected 5", d)
	}
}
