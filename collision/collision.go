// Package collision implements narrow-phase collision resolution: the
// minimum-translation-vector separation between two overlapping AABBs, the
// solid/trigger distinction (displace vs. emit an event), and tile-grid
// resolution against a tilemap's solidity bitmap.
package collision

import (
	"github.com/greenglade/glade"
	"github.com/greenglade/glade/tilemap"
)

// Kind distinguishes a collider that physically blocks movement (Solid)
// from one that only reports overlap without displacing anything
// (Trigger).
type Kind int

const (
	Solid Kind = iota
	Trigger
)

// Collider is the per-entity collision shape: an axis-aligned half-extent
// around the entity's current position.
type Collider struct {
	HalfExtent glade.Vec2
	Kind       Kind
}

// Bounds returns the world-space AABB of the collider centered at center.
func (c Collider) Bounds(center glade.Vec2) glade.AABB {
	return glade.NewAABB(center, c.HalfExtent)
}

// TriggerEvent[ID] records that a trigger collider overlapped a solid one
// this tick. ID is the caller's entity identifier type — collision stays
// decoupled from the ecs package the same way the spatial package does, so
// callers typically instantiate these as TriggerEvent[ecs.Entity].
type TriggerEvent[ID comparable] struct {
	Solid, Trigger ID
}

// ZeroAlongMTV returns vel with its component along mtv's axis zeroed: the
// "stop moving into what you hit" half of solid-vs-solid resolution. mtv is
// expected to have exactly one non-zero axis, which Penetration always
// produces.
func ZeroAlongMTV(vel, mtv glade.Vec2) glade.Vec2 {
	if mtv.X != 0 {
		return glade.Vec2{X: 0, Y: vel.Y}
	}
	if mtv.Y != 0 {
		return glade.Vec2{X: vel.X, Y: 0}
	}
	return vel
}

// Body[ID] bundles the per-entity state ResolvePair reads and mutates: a
// position every collider has, and an optional velocity — nil marks a
// static collider (scenery, a closed door) that never gets displaced even
// when the other body in the pair does.
type Body[ID comparable] struct {
	ID       ID
	Position *glade.Vec2
	Velocity *glade.Vec2
	Collider Collider
}

// ResolvePair runs the full per-pair resolution for two colliders the
// broad phase already reported as sharing a grid cell:
//
//   - trigger vs. solid: no displacement, a TriggerEvent is returned.
//   - trigger vs. trigger: no displacement, no event. Neither side blocks
//     movement, and the event is defined only for the solid/trigger case.
//   - solid vs. solid: the body (or bodies) carrying a non-nil Velocity are
//     displaced by the MTV. Split evenly if both move, the full MTV applied
//     to whichever one moves if only one does, and left untouched if
//     neither has a velocity (two static solids can overlap at map-load
//     time without either one flinching). That velocity is zeroed along
//     the MTV's axis.
//
// It returns (nil, false) when the two boxes don't actually overlap.
func ResolvePair[ID comparable](a, b Body[ID]) (event *TriggerEvent[ID], displaced bool) {
	boxA := a.Collider.Bounds(*a.Position)
	boxB := b.Collider.Bounds(*b.Position)
	mtv, overlapping := boxA.Penetration(boxB)
	if !overlapping {
		return nil, false
	}

	aSolid := a.Collider.Kind == Solid
	bSolid := b.Collider.Kind == Solid
	switch {
	case aSolid && bSolid:
		switch {
		case a.Velocity != nil && b.Velocity != nil:
			half := mtv.Scale(0.5)
			*a.Position = a.Position.Add(half)
			*b.Position = b.Position.Sub(half)
			*a.Velocity = ZeroAlongMTV(*a.Velocity, mtv)
			*b.Velocity = ZeroAlongMTV(*b.Velocity, mtv)
			return nil, true
		case a.Velocity != nil:
			*a.Position = a.Position.Add(mtv)
			*a.Velocity = ZeroAlongMTV(*a.Velocity, mtv)
			return nil, true
		case b.Velocity != nil:
			*b.Position = b.Position.Sub(mtv)
			*b.Velocity = ZeroAlongMTV(*b.Velocity, mtv)
			return nil, true
		default:
			return nil, false
		}
	case aSolid && !bSolid:
		return &TriggerEvent[ID]{Solid: a.ID, Trigger: b.ID}, false
	case bSolid && !aSolid:
		return &TriggerEvent[ID]{Solid: b.ID, Trigger: a.ID}, false
	default:
		return nil, false
	}
}

// ResolveAgainstTilemap pushes (position, halfExtent) out of every solid
// tile it overlaps in m, one tile at a time against the box's updated
// bounds so a corner straddling two solid tiles resolves without
// tunnelling into the second tile once the first push happens. It zeroes
// velocity along each push's axis and
// reports whether any displacement occurred. maxIterations bounds the
// number of pushes applied in one call (4 comfortably covers a single
// corner overlap; callers resolving deep interpenetration across many
// tiles in one tick can pass a larger value).
func ResolveAgainstTilemap(m *tilemap.Tilemap, position, velocity *glade.Vec2, halfExtent glade.Vec2, maxIterations int) bool {
	moved := false
	for i := 0; i < maxIterations; i++ {
		box := glade.NewAABB(*position, halfExtent)
		hits := m.QuerySolid(box)
		if len(hits) == 0 {
			break
		}
		mtv, ok := box.Penetration(hits[0].Bounds)
		if !ok {
			break
		}
		*position = position.Add(mtv)
		if velocity != nil {
			*velocity = ZeroAlongMTV(*velocity, mtv)
		}
		moved = true
	}
	return moved
}

// TriggersOverlapping returns every trigger in m whose bounds overlap box.
// The tilemap-level counterpart to an entity TriggerEvent, for a door/area
// transition check against the static map data rather than another entity.
func TriggersOverlapping(m *tilemap.Tilemap, box glade.AABB) []tilemap.Trigger {
	var out []tilemap.Trigger
	for _, tr := range m.Triggers {
		if tr.Bounds.Intersects(box) {
			out = append(out, tr)
		}
	}
	return out
}
