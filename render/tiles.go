package render

import (
	"github.com/greenglade/glade"
	"github.com/greenglade/glade/tilemap"
)

// TilesetTexture pairs a loaded tileset with the texture cache handle its
// atlas image was uploaded under, so BuildTileSprites can resolve a GID's
// owning tileset to a drawable texture.
type TilesetTexture struct {
	Tileset *tilemap.Tileset
	Texture TextureID
}

func textureFor(gid uint32, m *tilemap.Tilemap, textures []TilesetTexture) (TextureID, glade.Rect, bool) {
	ts := m.TilesetFor(gid)
	if ts == nil {
		return NoTexture, glade.Rect{}, false
	}
	for _, tt := range textures {
		if tt.Tileset == ts {
			return tt.Texture, ts.Region(m.LocalID(gid)), true
		}
	}
	return NoTexture, glade.Rect{}, false
}

func kindToLayer(k tilemap.Kind) Layer {
	if k == tilemap.AboveEntities {
		return LayerWorldAbove
	}
	return LayerWorldBelow
}

// BuildTileSprites turns a tilemap into culled, drawable sprites: only
// tiles within visible (expanded by margin tiles on every side, per
// VisibleTileRange) are emitted, one Sprite per non-empty cell, tagged with
// the render Layer and ZOrder its source tile layer carries so the world
// pass's stable sort places it correctly relative to Y-sorted entities.
// Invisible layers and empty (GID 0) cells produce no sprites.
func BuildTileSprites(m *tilemap.Tilemap, textures []TilesetTexture, visible glade.AABB, margin int) []Sprite {
	minX, minY, maxX, maxY := m.VisibleTileRange(visible, margin)

	var out []Sprite
	for _, layer := range m.Layers {
		if !layer.Visible {
			continue
		}
		renderLayer := kindToLayer(layer.Kind)
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				gid := layer.At(m, x, y)
				if gid == 0 {
					continue
				}
				tex, region, ok := textureFor(gid, m, textures)
				if !ok {
					continue
				}
				_, flipH, flipV, _ := tilemap.SplitGID(gid)
				out = append(out, Sprite{
					Texture:  tex,
					Region:   region,
					Position: glade.Vec2{X: float64(x * m.TileSize), Y: float64(y * m.TileSize)},
					Size:     glade.Vec2{X: float64(m.TileSize), Y: float64(m.TileSize)},
					Scale:    DefaultScale,
					Tint:     glade.ColorWhite,
					FlipH:    flipH,
					FlipV:    flipV,
					Layer:    renderLayer,
					ZOrder:   int32(layer.ZOrder),
					SortY:    float64(y * m.TileSize),
				})
			}
		}
	}
	return out
}
