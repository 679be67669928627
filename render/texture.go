// Package render turns per-frame sprite and tilemap records into batched
// Ebitengine draw calls: a ref-counted texture cache, a sprite batcher that
// coalesces consecutive same-texture quads into one DrawTriangles32 call,
// and world/UI render passes that sort then submit. The renderer receives a
// plain slice of Sprite records built fresh from ECS queries each frame;
// nothing here is stored across frames as a persistent render-command cache.
package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureID is an opaque handle into a TextureCache.
type TextureID int

const NoTexture TextureID = -1

type textureEntry struct {
	image    *ebiten.Image
	width    int
	height   int
	refCount int
}

// TextureCache owns a set of *ebiten.Image handles, ref-counted so a texture
// shared by many sprites is only uploaded once and only freed once nothing
// references it.
type TextureCache struct {
	entries []textureEntry
	free    []TextureID
}

func NewTextureCache() *TextureCache {
	return &TextureCache{}
}

// LoadRGBA8 uploads a tightly-packed RGBA8 pixel buffer (width*height*4
// bytes) and returns a handle with an initial refcount of 1.
func (c *TextureCache) LoadRGBA8(width, height int, pixels []byte) (TextureID, error) {
	if width <= 0 || height <= 0 {
		return NoTexture, fmt.Errorf("render: invalid texture dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return NoTexture, fmt.Errorf("render: pixel buffer length %d does not match %dx%d RGBA8", len(pixels), width, height)
	}
	img := ebiten.NewImage(width, height)
	img.WritePixels(pixels)
	entry := textureEntry{image: img, width: width, height: height, refCount: 1}

	if n := len(c.free); n > 0 {
		id := c.free[n-1]
		c.free = c.free[:n-1]
		c.entries[id] = entry
		return id, nil
	}
	c.entries = append(c.entries, entry)
	return TextureID(len(c.entries) - 1), nil
}

// Acquire increments id's refcount, for a second owner of the same texture.
func (c *TextureCache) Acquire(id TextureID) {
	if !c.valid(id) {
		return
	}
	c.entries[id].refCount++
}

// Release decrements id's refcount, freeing the underlying image once it
// reaches zero.
func (c *TextureCache) Release(id TextureID) {
	if !c.valid(id) {
		return
	}
	e := &c.entries[id]
	e.refCount--
	if e.refCount > 0 {
		return
	}
	e.image.Deallocate()
	*e = textureEntry{}
	c.free = append(c.free, id)
}

func (c *TextureCache) valid(id TextureID) bool {
	return id >= 0 && int(id) < len(c.entries) && c.entries[id].image != nil
}

// Image returns id's underlying Ebitengine image, or nil if id is invalid.
func (c *TextureCache) Image(id TextureID) *ebiten.Image {
	if !c.valid(id) {
		return nil
	}
	return c.entries[id].image
}

// Size returns id's pixel dimensions.
func (c *TextureCache) Size(id TextureID) (w, h int) {
	if !c.valid(id) {
		return 0, 0
	}
	return c.entries[id].width, c.entries[id].height
}
