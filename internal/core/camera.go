package core

// Camera projects between world space and screen cells. World space is y-up
// with the origin at the center of the viewport; cell space is y-down with
// the origin at the top-left. Terminal cells are roughly twice as tall as
// they are wide, so the vertical scale is double the horizontal one to keep
// circles looking circular.
//
// The camera is persistent infrastructure: it survives round resets and only
// changes when the viewport is resized.
type Camera struct {
	cellW float64 // world units per cell horizontally
	cellH float64 // world units per cell vertically

	screenW int
	screenH int
}

// Default world-units-per-cell scales. At 80x24 cells this yields a world of
// 800x480 units, which keeps the classic tuning constants (speeds of
// 100-300 units/s, a 50-unit border band) meaningful.
const (
	DefaultCellW = 10.0
	DefaultCellH = 20.0
)

// NewCamera creates a camera with the default scale and the given viewport.
func NewCamera(screenW, screenH int) *Camera {
	c := &Camera{cellW: DefaultCellW, cellH: DefaultCellH}
	c.SetViewport(screenW, screenH)
	return c
}

// SetViewport updates the viewport size in cells. Safe to call every tick;
// all bounds math derives from the current value, so runtime resizing is
// picked up immediately.
func (c *Camera) SetViewport(screenW, screenH int) {
	if screenW < 1 {
		screenW = 1
	}
	if screenH < 1 {
		screenH = 1
	}
	c.screenW = screenW
	c.screenH = screenH
}

// HalfExtents returns half the visible world width and height.
func (c *Camera) HalfExtents() (halfW, halfH float64) {
	return float64(c.screenW) * c.cellW / 2, float64(c.screenH) * c.cellH / 2
}

// WorldToCell projects a world position to fractional cell coordinates.
func (c *Camera) WorldToCell(p Vec) (x, y float64) {
	x = float64(c.screenW)/2 + p.X/c.cellW
	y = float64(c.screenH)/2 - p.Y/c.cellH
	return x, y
}

// CellToWorld projects a cell position (cursor) into world space, using the
// cell's center.
func (c *Camera) CellToWorld(cellX, cellY int) Vec {
	return Vec{
		X: (float64(cellX) + 0.5 - float64(c.screenW)/2) * c.cellW,
		Y: (float64(c.screenH)/2 - float64(cellY) - 0.5) * c.cellH,
	}
}

// ScaleX returns the horizontal world-units-per-cell scale.
func (c *Camera) ScaleX() float64 { return c.cellW }

// ScaleY returns the vertical world-units-per-cell scale.
func (c *Camera) ScaleY() float64 { return c.cellH }
