package core

import "testing"

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(80, 24)

	// World origin lands in the middle of the screen
	x, y := cam.WorldToCell(V(0, 0))
	if x != 40 || y != 12 {
		t.Errorf("Origin projects to (%v, %v), expected (40, 12)", x, y)
	}

	// Cell -> world -> cell lands back inside the same cell
	p := cam.CellToWorld(10, 5)
	cx, cy := cam.WorldToCell(p)
	if int(cx) != 10 || int(cy) != 5 {
		t.Errorf("Round trip of cell (10,5) gave (%v, %v)", cx, cy)
	}
}

func TestCameraYAxisFlip(t *testing.T) {
	cam := NewCamera(80, 24)

	// World +y is up, cell +y is down
	_, yTop := cam.WorldToCell(V(0, 100))
	_, yBottom := cam.WorldToCell(V(0, -100))
	if yTop >= yBottom {
		t.Errorf("World up should map to lower cell row: top=%v bottom=%v", yTop, yBottom)
	}
}

func TestCameraHalfExtents(t *testing.T) {
	cam := NewCamera(80, 24)
	halfW, halfH := cam.HalfExtents()
	if halfW != 400 || halfH != 240 {
		t.Errorf("HalfExtents = (%v, %v), expected (400, 240)", halfW, halfH)
	}
}

func TestCameraResize(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.SetViewport(120, 40)

	halfW, halfH := cam.HalfExtents()
	if halfW != 600 || halfH != 400 {
		t.Errorf("After resize HalfExtents = (%v, %v), expected (600, 400)", halfW, halfH)
	}

	// Degenerate viewport is clamped, not zero
	cam.SetViewport(0, -5)
	halfW, halfH = cam.HalfExtents()
	if halfW <= 0 || halfH <= 0 {
		t.Errorf("Degenerate viewport produced non-positive extents (%v, %v)", halfW, halfH)
	}
}
