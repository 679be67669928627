package render

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxQuadsPerFlush bounds how many sprites accumulate in one vertex/index
// buffer before a forced flush, sized generously since DrawTriangles32
// (unlike the uint16-indexed DrawTriangles) isn't capped at 65535 indices.
const maxQuadsPerFlush = 4096

// Batcher accumulates consecutive same-texture sprites into one vertex/index
// buffer and flushes them with a single DrawTriangles32 call: a run of
// same-key sprites is one GPU draw, and a texture change or a full buffer
// forces a flush.
type Batcher struct {
	tc     *TextureCache
	target *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint32
	current  TextureID
	quads    int

	sortScratch []Sprite
}

func NewBatcher(tc *TextureCache) *Batcher {
	return &Batcher{tc: tc, current: NoTexture}
}

// Begin starts accumulating draws against target, the surface DrawTriangles32
// calls will render into (the screen image, or an offscreen render target).
func (b *Batcher) Begin(target *ebiten.Image) {
	b.target = target
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.current = NoTexture
	b.quads = 0
}

// Submit sorts sprites by draw order and appends them to the batch, flushing
// whenever the texture changes or the buffer hits capacity.
func (b *Batcher) Submit(sprites []Sprite) {
	for i := range sprites {
		sprites[i].order = i
	}
	stableSort(sprites, &b.sortScratch)
	for i := range sprites {
		s := &sprites[i]
		if s.Texture != b.current || b.quads >= maxQuadsPerFlush {
			b.Flush()
			b.current = s.Texture
		}
		b.appendQuad(s)
	}
}

// Flush issues the accumulated batch as a single draw call, if non-empty.
func (b *Batcher) Flush() {
	if b.quads == 0 {
		return
	}
	img := b.tc.Image(b.current)
	if img != nil && b.target != nil {
		b.target.DrawTriangles32(b.vertices, b.indices, img, &ebiten.DrawTrianglesOptions{
			ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		})
	} else {
		log.Printf("render: skipping flush of %d quad(s), texture %v has no image", b.quads, b.current)
	}
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.quads = 0
}

// End flushes any remaining accumulated draws.
func (b *Batcher) End() { b.Flush() }

func (b *Batcher) appendQuad(s *Sprite) {
	texW, texH := b.tc.Size(s.Texture)
	if texW == 0 || texH == 0 {
		log.Printf("render: skipping sprite with missing or zero-size texture %v", s.Texture)
		return
	}

	ox := s.Origin.X * s.Size.X
	oy := s.Origin.Y * s.Size.Y

	corners := [4][2]float64{
		{-ox, -oy},
		{s.Size.X - ox, -oy},
		{-ox, s.Size.Y - oy},
		{s.Size.X - ox, s.Size.Y - oy},
	}
	sx, sy := s.Scale.X, s.Scale.Y
	sin, cos := math.Sin(s.Rotation), math.Cos(s.Rotation)

	// Ebitengine's Vertex.SrcX/SrcY are texture pixel coordinates, not
	// normalized UVs, so the source rect's corners are used directly.
	u0, v0 := float32(s.Region.X), float32(s.Region.Y)
	u1, v1 := float32(s.Region.X+s.Region.Width), float32(s.Region.Y+s.Region.Height)
	if s.FlipH {
		u0, u1 = u1, u0
	}
	if s.FlipV {
		v0, v1 = v1, v0
	}
	uvs := [4][2]float32{{u0, v0}, {u1, v0}, {u0, v1}, {u1, v1}}

	tint := s.Tint.Premultiplied()
	cr, cg, cbl, ca := float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A)

	base := uint32(len(b.vertices))
	for i, c := range corners {
		cx, cy := c[0]*sx, c[1]*sy
		rx := cx*cos - cy*sin
		ry := cx*sin + cy*cos
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX: float32(s.Position.X + rx), DstY: float32(s.Position.Y + ry),
			SrcX: uvs[i][0], SrcY: uvs[i][1],
			ColorR: cr, ColorG: cg, ColorB: cbl, ColorA: ca,
		})
	}
	b.indices = append(b.indices, base+0, base+1, base+2, base+1, base+3, base+2)
	b.quads++
}
