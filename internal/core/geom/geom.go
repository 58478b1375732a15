// Package geom holds the small amount of 2D math shared by the simulation and the renderer.
package geom

import "math"

// Vec2 is a point or offset in world units. +X is right, +Y is up.
type Vec2 struct {
	X, Y float32
}

// V is shorthand for Vec2{x, y}.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{abs32(v.X), abs32(v.Y)}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float32) Vec2 {
	s, c := math.Sincos(float64(angle))
	return Vec2{
		X: v.X*float32(c) - v.Y*float32(s),
		Y: v.X*float32(s) + v.Y*float32(c),
	}
}

// Within reports whether o lies in the axis-aligned box of half-extent rad around v.
// Edges are inclusive.
func (v Vec2) Within(o, rad Vec2) bool {
	d := o.Sub(v).Abs()
	return d.X <= rad.X && d.Y <= rad.Y
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
