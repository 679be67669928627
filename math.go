// Package glade is a deterministic, ECS-driven 2D game engine runtime built
// on top of Ebitengine. It supplies frame orchestration, an entity-component
// store, a 2D sprite/tilemap render pipeline and broad-phase collision
// queries; windowing, audio mixing and game-specific data schemas are left to
// the host application.
package glade

import "math"

// Vec2 is a 2D vector or point, used throughout for positions, velocities
// and sizes.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Sqrt(v.Dot(v)) }

func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp2 linearly interpolates between a and b by t in [0,1].
func Lerp2(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// Lerp linearly interpolates between a and b by t in [0,1]; t is not clamped
// so callers can extrapolate deliberately.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Color is a straight-alpha RGBA color in [0,1] per channel.
type Color struct {
	R, G, B, A float64
}

var ColorWhite = Color{1, 1, 1, 1}

// Lerp linearly interpolates each channel toward o by t in [0,1].
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: Lerp(c.R, o.R, t),
		G: Lerp(c.G, o.G, t),
		B: Lerp(c.B, o.B, t),
		A: Lerp(c.A, o.A, t),
	}
}

// Premultiplied returns the color with RGB multiplied by alpha, the form
// Ebitengine's ColorScale expects for straight compositing.
func (c Color) Premultiplied() Color {
	return Color{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// Rect is an axis-aligned rectangle in X/Y/Width/Height form, used for
// viewports and UI layout where origin+extent is the natural shape.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// AABB is an axis-aligned bounding box in min/max corner form, used for
// collision and spatial-grid queries where overlap and penetration math is
// the common operation.
type AABB struct {
	Min, Max Vec2
}

func NewAABB(center Vec2, halfExtent Vec2) AABB {
	return AABB{Min: center.Sub(halfExtent), Max: center.Add(halfExtent)}
}

func (b AABB) Intersects(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y
}

func (b AABB) Center() Vec2 {
	return Vec2{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

func (b AABB) HalfExtent() Vec2 {
	return Vec2{(b.Max.X - b.Min.X) / 2, (b.Max.Y - b.Min.Y) / 2}
}

func (b AABB) Expand(margin float64) AABB {
	return AABB{
		Min: Vec2{b.Min.X - margin, b.Min.Y - margin},
		Max: Vec2{b.Max.X + margin, b.Max.Y + margin},
	}
}

// Penetration returns the minimum-translation vector to push b out of o, and
// whether the two boxes overlap at all. When they don't overlap the returned
// vector is zero.
func (b AABB) Penetration(o AABB) (Vec2, bool) {
	if !b.Intersects(o) {
		return Vec2{}, false
	}
	overlapX := math.Min(b.Max.X, o.Max.X) - math.Max(b.Min.X, o.Min.X)
	overlapY := math.Min(b.Max.Y, o.Max.Y) - math.Max(b.Min.Y, o.Min.Y)
	bc, oc := b.Center(), o.Center()
	mtv := Vec2{}
	if overlapX < overlapY {
		if bc.X < oc.X {
			mtv.X = -overlapX
		} else {
			mtv.X = overlapX
		}
	} else {
		if bc.Y < oc.Y {
			mtv.Y = -overlapY
		} else {
			mtv.Y = overlapY
		}
	}
	return mtv, true
}
