// Package spatial is a uniform-grid broad phase: entities register their
// AABB against the cells they overlap, and callers query a region or ask for
// every overlapping pair without an O(n^2) scan.
package spatial

import (
	"github.com/greenglade/glade"
)

type cellCoord struct{ cx, cy int32 }

// Grid buckets axis-aligned boxes into fixed-size cells. It is generic over
// the caller's identifier type so it has no dependency on the ecs package —
// callers typically instantiate Grid[ecs.Entity].
type Grid[ID comparable] struct {
	cellSize float64
	cells    map[cellCoord][]ID
	boxes    map[ID]glade.AABB
}

// New returns a grid with the given cell size. Cell size should be on the
// order of the largest common entity extent; too small fragments entities
// across many cells, too large defeats the broad phase's pruning.
func New[ID comparable](cellSize float64) *Grid[ID] {
	return &Grid[ID]{
		cellSize: cellSize,
		cells:    make(map[cellCoord][]ID),
		boxes:    make(map[ID]glade.AABB),
	}
}

func cellIndex(v, size float64) int32 {
	c := v / size
	i := int32(c)
	if c < 0 && float64(i) != c {
		i--
	}
	return i
}

// Insert registers id with bounding box b, overwriting any previous box for
// the same id.
func (g *Grid[ID]) Insert(id ID, b glade.AABB) {
	g.Remove(id)
	g.boxes[id] = b
	minCx, minCy := cellIndex(b.Min.X, g.cellSize), cellIndex(b.Min.Y, g.cellSize)
	maxCx, maxCy := cellIndex(b.Max.X, g.cellSize), cellIndex(b.Max.Y, g.cellSize)
	for cy := minCy; cy <= maxCy; cy++ {
		for cx := minCx; cx <= maxCx; cx++ {
			key := cellCoord{cx, cy}
			g.cells[key] = append(g.cells[key], id)
		}
	}
}

// Remove clears id's registration, if any.
func (g *Grid[ID]) Remove(id ID) {
	b, ok := g.boxes[id]
	if !ok {
		return
	}
	delete(g.boxes, id)
	minCx, minCy := cellIndex(b.Min.X, g.cellSize), cellIndex(b.Min.Y, g.cellSize)
	maxCx, maxCy := cellIndex(b.Max.X, g.cellSize), cellIndex(b.Max.Y, g.cellSize)
	for cy := minCy; cy <= maxCy; cy++ {
		for cx := minCx; cx <= maxCx; cx++ {
			key := cellCoord{cx, cy}
			bucket := g.cells[key]
			for i, v := range bucket {
				if v == id {
					bucket[i] = bucket[len(bucket)-1]
					bucket = bucket[:len(bucket)-1]
					break
				}
			}
			if len(bucket) == 0 {
				delete(g.cells, key)
			} else {
				g.cells[key] = bucket
			}
		}
	}
}

// Clear removes every registration, keeping allocated cell buckets for reuse.
func (g *Grid[ID]) Clear() {
	for k := range g.cells {
		delete(g.cells, k)
	}
	for k := range g.boxes {
		delete(g.boxes, k)
	}
}

// Query returns every distinct id whose stored box overlaps region. Ids
// spanning multiple cells that all intersect region are only reported once.
func (g *Grid[ID]) Query(region glade.AABB) []ID {
	minCx, minCy := cellIndex(region.Min.X, g.cellSize), cellIndex(region.Min.Y, g.cellSize)
	maxCx, maxCy := cellIndex(region.Max.X, g.cellSize), cellIndex(region.Max.Y, g.cellSize)
	seen := make(map[ID]bool)
	var out []ID
	for cy := minCy; cy <= maxCy; cy++ {
		for cx := minCx; cx <= maxCx; cx++ {
			for _, id := range g.cells[cellCoord{cx, cy}] {
				if seen[id] {
					continue
				}
				if !g.boxes[id].Intersects(region) {
					continue
				}
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// Pair is an unordered overlapping pair returned by BroadPhase.
type Pair[ID comparable] struct {
	A, B ID
}

// BroadPhase returns every unordered pair of distinct registered ids whose
// boxes overlap, each pair reported exactly once, by scanning each
// populated cell and pruning same-cell duplicate pairs that were already
// reported from a cell both ids share.
func (g *Grid[ID]) BroadPhase() []Pair[ID] {
	// ID is only comparable, not orderable, so {a,b} and {b,a} can't be
	// folded into one map key by sorting; track both orientations instead.
	reported := make(map[ID]map[ID]bool)
	already := func(a, b ID) bool {
		if reported[a] != nil && reported[a][b] {
			return true
		}
		if reported[b] != nil && reported[b][a] {
			return true
		}
		return false
	}
	var out []Pair[ID]
	for _, bucket := range g.cells {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				if already(a, b) {
					continue
				}
				if !g.boxes[a].Intersects(g.boxes[b]) {
					continue
				}
				if reported[a] == nil {
					reported[a] = make(map[ID]bool)
				}
				reported[a][b] = true
				out = append(out, Pair[ID]{A: a, B: b})
			}
		}
	}
	return out
}
