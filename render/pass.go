package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/greenglade/glade"
)

// UniformBuffer holds the view-projection matrix a render pass applies —
// the value a GPU pipeline would upload once per pass as a shader uniform.
// Ebitengine draws don't take an explicit matrix uniform, so each pass
// applies it to sprite positions directly before batching instead of
// uploading it to the GPU; the type still exists as its own value so the
// render pass boundary matches the spec's "one uniform buffer write per
// pass" contract.
type UniformBuffer struct {
	ViewProjection glade.Mat4
}

// IdentityUniformBuffer is the UI pass's uniform buffer: an identity view (no
// camera offset, zoom or rotation) composed with a pixel-space orthographic
// projection over [0,viewportWidth]x[0,viewportHeight], so HUD sprites
// already authored in screen pixels pass through this pass unchanged.
func IdentityUniformBuffer(viewportWidth, viewportHeight float64) UniformBuffer {
	projection := glade.Orthographic(0, viewportWidth, 0, viewportHeight, -1, 1)
	viewport := glade.TranslateScale2D(1, 1, viewportWidth/2, viewportHeight/2)
	return UniformBuffer{ViewProjection: viewport.Mul(projection)}
}

// ApplyViewProjection transforms every sprite's position in place from the
// space ub.ViewProjection maps from (world space for the world pass, screen
// pixels for the UI pass's identity buffer) into screen pixels.
func ApplyViewProjection(sprites []Sprite, ub UniformBuffer) {
	vp := ub.ViewProjection
	for i := range sprites {
		p := sprites[i].Position
		sprites[i].Position = glade.Vec2{
			X: vp[0]*p.X + vp[4]*p.Y + vp[12],
			Y: vp[1]*p.X + vp[5]*p.Y + vp[13],
		}
	}
}

// Renderer owns the texture cache and batcher shared by every pass in a
// frame.
type Renderer struct {
	Textures *TextureCache
	batcher  *Batcher
}

func NewRenderer() *Renderer {
	tc := NewTextureCache()
	return &Renderer{Textures: tc, batcher: NewBatcher(tc)}
}

// ClearColor fills target with c before any pass draws, the equivalent of a
// GPU render pass's load-clear-value.
func ClearColor(target *ebiten.Image, c glade.Color) {
	target.Fill(toNRGBA(c))
}

func toNRGBA(c glade.Color) color.NRGBA {
	clamp := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return uint8(v * 255)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// WorldPass draws world-space sprites (already placed in screen space via
// ApplyViewProjection) in two layer buckets — below entities, then
// entities-and-above — so ground decoration never draws over a character
// even if Y-sort ties land oddly.
func (r *Renderer) WorldPass(target *ebiten.Image, sprites []Sprite) {
	r.batcher.Begin(target)
	r.batcher.Submit(sprites)
	r.batcher.End()
}

// UIPass draws screen-space sprites with an identity view, always on top of
// the world pass.
func (r *Renderer) UIPass(target *ebiten.Image, sprites []Sprite) {
	r.batcher.Begin(target)
	r.batcher.Submit(sprites)
	r.batcher.End()
}
