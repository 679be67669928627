// Package camera provides a 2D camera: position, zoom and optional rotation
// compose into a view matrix, with world<->screen conversion, visible-bounds
// culling, exponential-smoothing follow and bounds clamping. Operates on
// plain positions an ECS render system supplies rather than a node-tree
// viewport model.
package camera

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/greenglade/glade"
)

// Camera converts between world space and screen space for one viewport.
type Camera struct {
	Position glade.Vec2
	Zoom     float64 // 1.0 = no scaling; clamped to [MinZoom, MaxZoom]
	Rotation float64 // radians

	ViewportWidth, ViewportHeight float64

	followTarget    *glade.Vec2
	followSmoothing float64 // half-life-derived smoothing rate, 1/seconds

	hasBounds bool
	bounds    glade.AABB

	scrollX, scrollY *gween.Tween

	dirty         bool
	viewMatrix    glade.Mat4
	invViewMatrix glade.Mat4
}

const (
	MinZoom = 0.1
	MaxZoom = 10.0
)

// New returns a camera centered at the origin with zoom 1, sized to the
// given viewport in pixels.
func New(viewportW, viewportH float64) *Camera {
	c := &Camera{
		Position:      glade.Vec2{},
		Zoom:          1,
		ViewportWidth: viewportW, ViewportHeight: viewportH,
		dirty: true,
	}
	c.computeViewMatrix()
	return c
}

// MarkDirty forces the view matrix to be recomputed on next use; callers
// that mutate Position/Zoom/Rotation directly (bypassing Follow/ScrollTo)
// must call this.
func (c *Camera) MarkDirty() { c.dirty = true }

// SetZoom clamps and applies a new zoom level.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = glade.Clamp(z, MinZoom, MaxZoom)
	c.dirty = true
}

// Follow makes the camera exponentially chase target's position every
// Update call. smoothing is a rate in 1/seconds; the camera closes the
// fraction 1-exp(-smoothing*dt) of the remaining distance each tick, so
// smoothing = ln(2)/halfLife gives a camera that halves the distance to the
// target every halfLife seconds.
func (c *Camera) Follow(target *glade.Vec2, smoothing float64) {
	c.followTarget = target
	c.followSmoothing = smoothing
}

// Unfollow stops following, leaving the camera at its current position.
func (c *Camera) Unfollow() { c.followTarget = nil }

// SetBounds clamps the camera's visible area to stay within b (in world
// space). A viewport larger than b centers the camera on b instead of
// clamping.
func (c *Camera) SetBounds(b glade.AABB) {
	c.hasBounds = true
	c.bounds = b
}

func (c *Camera) ClearBounds() { c.hasBounds = false }

// ScrollTo eases the camera's position to target over duration seconds using
// an ease-out-quad curve, independent of Follow (calling both is allowed;
// ScrollTo's per-axis tweens simply override Position each Update while
// they're still running).
func (c *Camera) ScrollTo(target glade.Vec2, duration float64) {
	c.scrollX = gween.New(float32(c.Position.X), float32(target.X), float32(duration), ease.OutQuad)
	c.scrollY = gween.New(float32(c.Position.Y), float32(target.Y), float32(duration), ease.OutQuad)
}

// Update advances follow smoothing and any in-flight ScrollTo tween by dt
// seconds, then clamps to bounds if set.
func (c *Camera) Update(dt float64) {
	moved := false

	if c.scrollX != nil {
		x, done := c.scrollX.Update(float32(dt))
		c.Position.X = float64(x)
		if done {
			c.scrollX = nil
		}
		moved = true
	}
	if c.scrollY != nil {
		y, done := c.scrollY.Update(float32(dt))
		c.Position.Y = float64(y)
		if done {
			c.scrollY = nil
		}
		moved = true
	}

	if c.followTarget != nil && c.scrollX == nil && c.scrollY == nil {
		alpha := 1 - math.Exp(-c.followSmoothing*dt)
		c.Position = glade.Lerp2(c.Position, *c.followTarget, alpha)
		moved = true
	}

	if c.hasBounds {
		c.clampToBounds()
		moved = true
	}

	if moved {
		c.dirty = true
	}
}

func (c *Camera) clampToBounds() {
	halfW := (c.ViewportWidth / 2) / c.Zoom
	halfH := (c.ViewportHeight / 2) / c.Zoom
	bw := c.bounds.Max.X - c.bounds.Min.X
	bh := c.bounds.Max.Y - c.bounds.Min.Y

	if bw <= 2*halfW {
		c.Position.X = (c.bounds.Min.X + c.bounds.Max.X) / 2
	} else {
		c.Position.X = glade.Clamp(c.Position.X, c.bounds.Min.X+halfW, c.bounds.Max.X-halfW)
	}
	if bh <= 2*halfH {
		c.Position.Y = (c.bounds.Min.Y + c.bounds.Max.Y) / 2
	} else {
		c.Position.Y = glade.Clamp(c.Position.Y, c.bounds.Min.Y+halfH, c.bounds.Max.Y-halfH)
	}
}

// rawViewMatrix translates the world so the camera sits at the origin,
// rotates by -Rotation and scales by Zoom — the §4.5 view_matrix() operation
// in isolation, camera-space units that are already pixel-scaled (1 world
// unit * Zoom = 1 pixel) but still centered on (0,0) rather than the
// viewport's top-left.
func (c *Camera) rawViewMatrix() glade.Mat4 {
	cosR, sinR := math.Cos(-c.Rotation), math.Sin(-c.Rotation)
	sx, sy := c.Zoom, c.Zoom

	a := cosR * sx
	b := sinR * sx
	cc := -sinR * sy
	d := cosR * sy

	m := glade.Identity4()
	m[0], m[1] = a, b
	m[4], m[5] = cc, d
	m[12] = -(a*c.Position.X + cc*c.Position.Y)
	m[13] = -(b*c.Position.X + d*c.Position.Y)
	return m
}

// ProjectionMatrix is the §4.5 projection_matrix() operation: an orthographic
// projection over the viewport's width and height, centered at the origin,
// mapping rawViewMatrix's camera-space coordinates into clip space [-1,1].
func (c *Camera) ProjectionMatrix() glade.Mat4 {
	halfW, halfH := c.ViewportWidth/2, c.ViewportHeight/2
	return glade.Orthographic(-halfW, halfW, -halfH, halfH, -1, 1)
}

// viewportMatrix is the hardware viewport transform a GPU applies after the
// vertex shader emits clip space: it maps clip space [-1,1] back to pixel
// space [0,ViewportWidth]x[0,ViewportHeight]. Ebitengine's DrawTriangles32
// takes pixel coordinates directly rather than performing this step itself,
// so it's made explicit here to compose with ProjectionMatrix.
func (c *Camera) viewportMatrix() glade.Mat4 {
	return glade.TranslateScale2D(1, 1, c.ViewportWidth/2, c.ViewportHeight/2)
}

// computeViewMatrix composes rawViewMatrix, ProjectionMatrix and
// viewportMatrix into the single world-to-screen-pixel matrix every other
// camera operation uses, the same three stages (model/view, projection,
// viewport) a GPU pipeline runs, collapsed here because Ebitengine has no
// separate clip-space stage for the engine to upload a projection into.
func (c *Camera) computeViewMatrix() {
	clip := c.ProjectionMatrix().Mul(c.rawViewMatrix())
	m := c.viewportMatrix().Mul(clip)
	c.viewMatrix = m
	c.invViewMatrix = invertAffine4(m)
	c.dirty = false
}

// ViewMatrix returns the camera's current world-to-screen matrix.
func (c *Camera) ViewMatrix() glade.Mat4 {
	if c.dirty {
		c.computeViewMatrix()
	}
	return c.viewMatrix
}

func invertAffine4(m glade.Mat4) glade.Mat4 {
	aff := glade.AffineFromMat4(m)
	a, b, cc, d, tx, ty := aff[0], aff[1], aff[2], aff[3], aff[4], aff[5]
	det := a*d - b*cc
	if math.Abs(det) < 1e-12 {
		return glade.Identity4()
	}
	invDet := 1 / det
	ia, ib := d*invDet, -b*invDet
	icc, id := -cc*invDet, a*invDet
	itx := -(ia*tx + icc*ty)
	ity := -(ib*tx + id*ty)
	out := glade.Identity4()
	out[0], out[1] = ia, ib
	out[4], out[5] = icc, id
	out[12], out[13] = itx, ity
	return out
}

func apply(m glade.Mat4, p glade.Vec2) glade.Vec2 {
	aff := glade.AffineFromMat4(m)
	return glade.Vec2{
		X: aff[0]*p.X + aff[2]*p.Y + aff[4],
		Y: aff[1]*p.X + aff[3]*p.Y + aff[5],
	}
}

// WorldToScreen converts a world-space point to screen pixels.
func (c *Camera) WorldToScreen(p glade.Vec2) glade.Vec2 {
	return apply(c.ViewMatrix(), p)
}

// ScreenToWorld converts a screen-pixel point back to world space.
func (c *Camera) ScreenToWorld(p glade.Vec2) glade.Vec2 {
	if c.dirty {
		c.computeViewMatrix()
	}
	return apply(c.invViewMatrix, p)
}

// VisibleBounds returns the world-space AABB covering the full viewport,
// computed from the inverse-transformed viewport corners so it stays correct
// under rotation.
func (c *Camera) VisibleBounds() glade.AABB {
	corners := [4]glade.Vec2{
		c.ScreenToWorld(glade.Vec2{X: 0, Y: 0}),
		c.ScreenToWorld(glade.Vec2{X: c.ViewportWidth, Y: 0}),
		c.ScreenToWorld(glade.Vec2{X: 0, Y: c.ViewportHeight}),
		c.ScreenToWorld(glade.Vec2{X: c.ViewportWidth, Y: c.ViewportHeight}),
	}
	min, max := corners[0], corners[0]
	for _, p := range corners[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return glade.AABB{Min: min, Max: max}
}
