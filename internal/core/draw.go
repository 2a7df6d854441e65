package core

import "math"

// CmdKind identifies a draw primitive.
type CmdKind int

const (
	CmdCircle CmdKind = iota
	CmdLine
	CmdRect
)

// DrawCmd is a world-space draw primitive. The game emits a list of these
// per tick; the rasterizer (or any other backend) turns them into output.
// The game never touches cells directly for world objects.
type DrawCmd struct {
	Kind   CmdKind
	Pos    Vec     // circle center, line start, rect center
	End    Vec     // line end
	Radius float64 // circle radius in world units
	Size   Vec     // rect width/height in world units
	Rune   rune
	Color  Color
	Fill   bool
}

// StrokeCircle creates an outlined circle command.
func StrokeCircle(center Vec, radius float64, c Color) DrawCmd {
	return DrawCmd{Kind: CmdCircle, Pos: center, Radius: radius, Rune: '•', Color: c}
}

// FillCircle creates a filled circle command.
func FillCircle(center Vec, radius float64, c Color) DrawCmd {
	return DrawCmd{Kind: CmdCircle, Pos: center, Radius: radius, Rune: '█', Color: c, Fill: true}
}

// Line creates a line segment command.
func Line(a, b Vec, c Color) DrawCmd {
	return DrawCmd{Kind: CmdLine, Pos: a, End: b, Rune: '·', Color: c}
}

// RectOutline creates a rectangle outline command from center and size.
func RectOutline(center, size Vec, c Color) DrawCmd {
	return DrawCmd{Kind: CmdRect, Pos: center, Size: size, Rune: '░', Color: c}
}

// Rasterize draws the commands into the screen buffer through the camera.
// Later commands overwrite earlier ones, so callers order back-to-front.
func Rasterize(dst *Screen, cam *Camera, cmds []DrawCmd) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case CmdCircle:
			rasterCircle(dst, cam, cmd)
		case CmdLine:
			rasterLine(dst, cam, cmd)
		case CmdRect:
			rasterRect(dst, cam, cmd)
		}
	}
}

func rasterCircle(dst *Screen, cam *Camera, cmd DrawCmd) {
	cx, cy := cam.WorldToCell(cmd.Pos)
	rx := cmd.Radius / cam.ScaleX()
	ry := cmd.Radius / cam.ScaleY()

	// Degenerate to a single cell when the circle is smaller than the grid.
	if rx < 0.5 || ry < 0.5 {
		dst.SetCell(int(cx), int(cy), cmd.Rune, cmd.Color)
		return
	}

	// Ring thickness of about one cell, in normalized radius units.
	thickness := 1.0 / math.Max(rx, ry)

	x0 := int(math.Floor(cx - rx - 1))
	x1 := int(math.Ceil(cx + rx + 1))
	y0 := int(math.Floor(cy - ry - 1))
	y1 := int(math.Ceil(cy + ry + 1))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			d := math.Sqrt(dx*dx + dy*dy)

			if cmd.Fill {
				if d <= 1 {
					dst.SetCell(x, y, cmd.Rune, cmd.Color)
				}
			} else if d <= 1 && d >= 1-thickness {
				dst.SetCell(x, y, cmd.Rune, cmd.Color)
			}
		}
	}
}

func rasterLine(dst *Screen, cam *Camera, cmd DrawCmd) {
	x0, y0 := cam.WorldToCell(cmd.Pos)
	x1, y1 := cam.WorldToCell(cmd.End)

	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t
		dst.SetCell(int(x), int(y), cmd.Rune, cmd.Color)
	}
}

func rasterRect(dst *Screen, cam *Camera, cmd DrawCmd) {
	half := cmd.Size.Scale(0.5)
	left, top := cam.WorldToCell(Vec{X: cmd.Pos.X - half.X, Y: cmd.Pos.Y + half.Y})
	right, bottom := cam.WorldToCell(Vec{X: cmd.Pos.X + half.X, Y: cmd.Pos.Y - half.Y})

	ix0, iy0 := int(math.Round(left)), int(math.Round(top))
	ix1, iy1 := int(math.Round(right)), int(math.Round(bottom))

	for x := ix0; x <= ix1; x++ {
		dst.SetCell(x, iy0, cmd.Rune, cmd.Color)
		dst.SetCell(x, iy1, cmd.Rune, cmd.Color)
	}
	for y := iy0; y <= iy1; y++ {
		dst.SetCell(ix0, y, cmd.Rune, cmd.Color)
		dst.SetCell(ix1, y, cmd.Rune, cmd.Color)
	}
}
