package core

import "math"

// Vec is a 2D vector in world units. The Y axis points up, matching the
// simulation's coordinate system rather than the terminal's.
type Vec struct {
	X, Y float64
}

// V is a shorthand constructor.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the vector's length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between v and o.
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Len()
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in v's direction. The second return is
// false for the zero vector, whose direction is undefined.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if l == 0 {
		return Vec{}, false
	}
	return Vec{v.X / l, v.Y / l}, true
}

// Rotate returns v rotated counterclockwise by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// ClampLen caps the vector's length at max, preserving direction.
func (v Vec) ClampLen(max float64) Vec {
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Scale(max / l)
}

// ClampF clamps v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxF returns the larger of two floats.
func MaxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Max returns the larger of two ints.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two ints.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
