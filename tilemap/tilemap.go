// Package tilemap holds a multi-layer grid of tiles, their per-cell
// solidity and their atlas regions, loaded from the engine's JSON map
// format. It keeps the grid/solidity/JSON-loading concerns and leaves
// rendering to the render package, which consumes it by query instead of
// owning it.
package tilemap

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/greenglade/glade"
	"github.com/greenglade/glade/anim"
)

// Tile flag bits, high bits of a raw GID: the same convention Tiled uses to
// store flip state, kept here as a domain enrichment for multi-tileset
// atlas addressing.
const (
	FlipHorizontal uint32 = 1 << 31
	FlipVertical   uint32 = 1 << 30
	FlipDiagonal   uint32 = 1 << 29
	FlagMask              = FlipHorizontal | FlipVertical | FlipDiagonal
	idMask                = ^FlagMask
)

// SplitGID separates a raw tile GID into its tileset-local id and flip flags.
func SplitGID(gid uint32) (id uint32, flipH, flipV, flipD bool) {
	id = gid & idMask
	flipH = gid&FlipHorizontal != 0
	flipV = gid&FlipVertical != 0
	flipD = gid&FlipDiagonal != 0
	return
}

// Tileset maps a contiguous range of GIDs, starting at FirstGID, to atlas
// regions in one shared tileset image. An optional domain enrichment a map
// can declare so a multi-tileset world still addresses tiles by a single
// GID the way Tiled-exported data does; a map with a single implicit
// tileset simply omits this.
type Tileset struct {
	FirstGID              uint32
	TileWidth, TileHeight int
	Columns               int
	TileCount             int

	clips map[uint32]*anim.Clip // local tile id -> animation clip, if animated
}

// Region returns the atlas-pixel rect for localID, computed from the
// tileset's column count on the assumption of a uniform tile grid image.
func (ts *Tileset) Region(localID uint32) glade.Rect {
	if ts.Columns <= 0 {
		return glade.Rect{}
	}
	col := int(localID) % ts.Columns
	row := int(localID) / ts.Columns
	return glade.Rect{
		X: float64(col * ts.TileWidth), Y: float64(row * ts.TileHeight),
		Width: float64(ts.TileWidth), Height: float64(ts.TileHeight),
	}
}

// Clip returns localID's animation clip, if the tileset defines one for it.
func (ts *Tileset) Clip(localID uint32) (*anim.Clip, bool) {
	c, ok := ts.clips[localID]
	return c, ok
}

// Kind is a tile layer's draw-order bucket relative to entities: kind and
// z-order jointly determine draw order.
type Kind int

const (
	BelowEntities Kind = iota
	AboveEntities
)

func (k Kind) String() string {
	if k == AboveEntities {
		return "above"
	}
	return "below"
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "below", "":
		return BelowEntities, nil
	case "above":
		return AboveEntities, nil
	default:
		return 0, fmt.Errorf("invalid kind %q, want \"below\" or \"above\"", s)
	}
}

// Layer is one grid of GIDs, row-major, Width*Height entries, drawn in the
// order (Kind, ZOrder) places it relative to entities and other layers.
type Layer struct {
	Name    string
	ZOrder  int
	Visible bool
	Kind    Kind
	Tiles   []uint32 // GIDs; length must equal Width*Height
}

func (l *Layer) at(width int, x, y int) uint32 {
	i := y*width + x
	if i < 0 || i >= len(l.Tiles) {
		return 0
	}
	return l.Tiles[i]
}

// Spawn is a named point a host places entities at: the player's start
// position, a map transition's arrival point.
type Spawn struct {
	ID   string
	X, Y float64
}

// Trigger is an AABB-in-pixels tied to a map transition target. The engine
// only carries the data; firing on overlap is a gameplay system's job (see
// the collision package's Kind=Trigger colliders for the mechanism).
type Trigger struct {
	Bounds      glade.AABB
	TargetMap   string
	TargetSpawn string
}

// Tilemap is a fixed-size grid shared by every layer: ordered layers, a
// flat per-cell solidity bitmap independent of any single layer, named
// spawns and triggers.
type Tilemap struct {
	Width, Height int
	TileSize      int

	Layers    []*Layer
	Collision []bool // flat Width*Height bitmap, row-major
	Spawns    []Spawn
	Triggers  []Trigger
	Tilesets  []*Tileset // optional: atlas addressing for multi-tileset maps
}

// SpawnByID looks up a spawn by name, the usual way a host resolves "which
// spawn does this trigger's target_spawn name."
func (m *Tilemap) SpawnByID(id string) (Spawn, bool) {
	for _, s := range m.Spawns {
		if s.ID == id {
			return s, true
		}
	}
	return Spawn{}, false
}

// TilesetFor returns the tileset with the highest FirstGID not above gid's
// id, or nil if gid is 0 (empty tile) or every tileset starts above it.
// TileCount is not checked, so an id past a tileset's last tile still
// resolves to that tileset.
func (m *Tilemap) TilesetFor(gid uint32) *Tileset {
	id, _, _, _ := SplitGID(gid)
	if id == 0 {
		return nil
	}
	var best *Tileset
	for _, ts := range m.Tilesets {
		if ts.FirstGID <= id && (best == nil || ts.FirstGID > best.FirstGID) {
			best = ts
		}
	}
	return best
}

// LocalID returns gid's id relative to its owning tileset's FirstGID.
func (m *Tilemap) LocalID(gid uint32) uint32 {
	ts := m.TilesetFor(gid)
	if ts == nil {
		return 0
	}
	id, _, _, _ := SplitGID(gid)
	return id - ts.FirstGID
}

// IsSolid reports whether cell (x,y) is solid per the flat collision
// bitmap. Out-of-bounds cells are not solid by this query alone; the
// "treat out-of-bounds as a wall" rule belongs to QuerySolid instead.
func (m *Tilemap) IsSolid(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Collision[y*m.Width+x]
}

// TileBounds returns the world-space AABB of tile (x,y), valid for any
// integer coordinate including ones outside the map (used by QuerySolid to
// report out-of-bounds tiles as walls).
func (m *Tilemap) TileBounds(x, y int) glade.AABB {
	origin := glade.Vec2{X: float64(x * m.TileSize), Y: float64(y * m.TileSize)}
	return glade.AABB{
		Min: origin,
		Max: origin.Add(glade.Vec2{X: float64(m.TileSize), Y: float64(m.TileSize)}),
	}
}

// WorldToTile converts a world-space point to tile grid coordinates.
func (m *Tilemap) WorldToTile(p glade.Vec2) (int, int) {
	return int(math.Floor(p.X / float64(m.TileSize))), int(math.Floor(p.Y / float64(m.TileSize)))
}

// TileHit is one solid tile (in-bounds or the implicit out-of-bounds wall)
// overlapping a QuerySolid box.
type TileHit struct {
	X, Y   int
	Bounds glade.AABB
}

// QuerySolid returns every solid tile overlapping box. The tile range is
// computed via floor/ceil against TileSize with no bounds clamping: tiles
// outside [0,Width)x[0,Height) are reported too, since they act as an
// implicit wall, and every tile in range whose bounds overlap box and which
// is solid (in-bounds bit set, or out-of-bounds) is returned.
func (m *Tilemap) QuerySolid(box glade.AABB) []TileHit {
	minX := int(math.Floor(box.Min.X / float64(m.TileSize)))
	minY := int(math.Floor(box.Min.Y / float64(m.TileSize)))
	maxX := int(math.Ceil(box.Max.X/float64(m.TileSize))) - 1
	maxY := int(math.Ceil(box.Max.Y/float64(m.TileSize))) - 1

	var hits []TileHit
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			tb := m.TileBounds(x, y)
			if !tb.Intersects(box) {
				continue
			}
			outOfBounds := x < 0 || y < 0 || x >= m.Width || y >= m.Height
			if outOfBounds || m.IsSolid(x, y) {
				hits = append(hits, TileHit{X: x, Y: y, Bounds: tb})
			}
		}
	}
	return hits
}

// VisibleTileRange returns the inclusive, map-clamped tile-coordinate range
// from floor(bounds.Min/TileSize) to ceil(bounds.Max/TileSize), expanded by
// margin tiles on every side. The max side therefore reaches one tile past
// the last tile bounds overlaps unless bounds.Max lies exactly on a tile
// edge. The margin prevents edge popping under sub-pixel camera motion.
func (m *Tilemap) VisibleTileRange(bounds glade.AABB, margin int) (minX, minY, maxX, maxY int) {
	minX = int(math.Floor(bounds.Min.X/float64(m.TileSize))) - margin
	minY = int(math.Floor(bounds.Min.Y/float64(m.TileSize))) - margin
	maxX = int(math.Ceil(bounds.Max.X/float64(m.TileSize))) + margin
	maxY = int(math.Ceil(bounds.Max.Y/float64(m.TileSize))) + margin
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > m.Width-1 {
		maxX = m.Width - 1
	}
	if maxY > m.Height-1 {
		maxY = m.Height - 1
	}
	return
}

// --- JSON loading -----------------------------------------------------

type jsonRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type jsonTrigger struct {
	Bounds      jsonRect `json:"bounds"`
	TargetMap   string   `json:"target_map"`
	TargetSpawn string   `json:"target_spawn"`
}

type jsonSpawn struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type jsonLayer struct {
	Name    string   `json:"name"`
	ZOrder  int      `json:"z_order"`
	Visible *bool    `json:"visible"`
	Kind    string   `json:"kind"`
	Tiles   []uint32 `json:"tiles"`
}

type jsonTileAnimFrame struct {
	TileID   uint32 `json:"tileid"`
	Duration uint32 `json:"duration"` // milliseconds
}

type jsonTileDef struct {
	ID        uint32              `json:"id"`
	Solid     bool                `json:"solid"`
	Animation []jsonTileAnimFrame `json:"animation"`
}

type jsonTileset struct {
	FirstGID   uint32        `json:"firstgid"`
	TileWidth  int           `json:"tilewidth"`
	TileHeight int           `json:"tileheight"`
	Columns    int           `json:"columns"`
	TileCount  int           `json:"tilecount"`
	Tiles      []jsonTileDef `json:"tiles"`
}

type jsonMap struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	TileSize int           `json:"tile_size"`
	Layers   []jsonLayer   `json:"layers"`
	Collision []bool       `json:"collision"`
	Spawns   []jsonSpawn   `json:"spawns"`
	Triggers []jsonTrigger `json:"triggers"`
	Tilesets []jsonTileset `json:"tilesets"`
}

// LoadJSON parses the engine's tilemap JSON document: width/height/tile_size,
// ordered layers each carrying a flat GID array, a flat per-cell collision
// bitmap, optional named spawns and triggers. path is used only to identify
// the offending file in error messages; it need not be a real filesystem
// path. Layer and collision array lengths are validated strictly; spawns
// and triggers are permissive (omit freely).
func LoadJSON(path string, data []byte) (*Tilemap, error) {
	var doc jsonMap
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("tilemap: %s: invalid format: %w", path, err)
	}
	if doc.Width <= 0 || doc.Height <= 0 || doc.TileSize <= 0 {
		return nil, fmt.Errorf("tilemap: %s: invalid format: width/height/tile_size must be positive, got %dx%d@%d",
			path, doc.Width, doc.Height, doc.TileSize)
	}

	m := &Tilemap{Width: doc.Width, Height: doc.Height, TileSize: doc.TileSize}
	cellCount := doc.Width * doc.Height

	if doc.Collision == nil {
		m.Collision = make([]bool, cellCount)
	} else {
		if len(doc.Collision) != cellCount {
			return nil, fmt.Errorf("tilemap: %s: invalid format: field \"collision\" has length %d, want %d (width*height)",
				path, len(doc.Collision), cellCount)
		}
		m.Collision = doc.Collision
	}

	for _, jt := range doc.Tilesets {
		ts := &Tileset{
			FirstGID: jt.FirstGID, TileWidth: jt.TileWidth, TileHeight: jt.TileHeight,
			Columns: jt.Columns, TileCount: jt.TileCount,
			clips: make(map[uint32]*anim.Clip),
		}
		for _, td := range jt.Tiles {
			if len(td.Animation) > 0 {
				frames := make([]anim.Frame, 0, len(td.Animation))
				for _, af := range td.Animation {
					frames = append(frames, anim.Frame{
						Region:   ts.Region(af.TileID),
						Duration: float64(af.Duration) / 1000.0,
					})
				}
				ts.clips[td.ID] = anim.NewClip(frames, true)
			}
		}
		m.Tilesets = append(m.Tilesets, ts)
	}

	for li, jl := range doc.Layers {
		if len(jl.Tiles) != cellCount {
			return nil, fmt.Errorf("tilemap: %s: invalid format: layer %q (index %d) field \"tiles\" has length %d, want %d (width*height)",
				path, jl.Name, li, len(jl.Tiles), cellCount)
		}
		kind, err := parseKind(jl.Kind)
		if err != nil {
			return nil, fmt.Errorf("tilemap: %s: invalid format: layer %q: %w", path, jl.Name, err)
		}
		visible := true
		if jl.Visible != nil {
			visible = *jl.Visible
		}
		m.Layers = append(m.Layers, &Layer{
			Name: jl.Name, ZOrder: jl.ZOrder, Visible: visible, Kind: kind, Tiles: jl.Tiles,
		})
	}

	for _, js := range doc.Spawns {
		m.Spawns = append(m.Spawns, Spawn{ID: js.ID, X: js.X, Y: js.Y})
	}
	for _, jt := range doc.Triggers {
		m.Triggers = append(m.Triggers, Trigger{
			Bounds: glade.AABB{
				Min: glade.Vec2{X: jt.Bounds.X, Y: jt.Bounds.Y},
				Max: glade.Vec2{X: jt.Bounds.X + jt.Bounds.W, Y: jt.Bounds.Y + jt.Bounds.H},
			},
			TargetMap:   jt.TargetMap,
			TargetSpawn: jt.TargetSpawn,
		})
	}

	return m, nil
}

// At returns layer's GID at (x,y), or 0 (empty) outside its bounds.
func (l *Layer) At(m *Tilemap, x, y int) uint32 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return l.at(m.Width, x, y)
}
