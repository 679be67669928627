package render

import "github.com/greenglade/glade"

// Layer buckets sprites into broad draw order: everything below entities
// (ground tiles, shadows), entities and anything above them, and screen-space
// UI drawn with an identity view last.
type Layer int

const (
	LayerWorldBelow Layer = iota
	LayerWorldAbove
	LayerUI
)

// Sprite is a transient per-frame draw record built fresh from ECS state
// each frame — the renderer never retains these across frames, matching the
// "sprite records are not components" rule: systems read positions and
// tints out of components and hand the renderer a plain value describing
// what to draw this frame only.
type Sprite struct {
	Texture  TextureID
	Region   glade.Rect // source rect in texture pixels
	Position glade.Vec2 // world position (world layers) or screen position (UI layer)
	Size     glade.Vec2
	Origin   glade.Vec2 // pivot as a fraction of Size; {0.5,0.5} is centered
	Scale    glade.Vec2 // per-axis multiplier applied to corner offsets before rotation; zero value {0,0} is almost never wanted, use DefaultScale
	Rotation float64
	Tint     glade.Color
	FlipH    bool
	FlipV    bool

	Layer  Layer
	ZOrder int32
	SortY  float64 // Y-sort key within (Layer, ZOrder); typically Position.Y + a per-entity offset

	order int // emission order, the final stability tiebreak
}

// DefaultOrigin is the usual centered pivot.
var DefaultOrigin = glade.Vec2{X: 0.5, Y: 0.5}

// DefaultScale is the identity scale: sprites drawn at their natural Size.
var DefaultScale = glade.Vec2{X: 1, Y: 1}

func less(a, b *Sprite) bool {
	if a.Layer != b.Layer {
		return a.Layer < b.Layer
	}
	if a.ZOrder != b.ZOrder {
		return a.ZOrder < b.ZOrder
	}
	if a.SortY != b.SortY {
		return a.SortY < b.SortY
	}
	return a.order < b.order
}
