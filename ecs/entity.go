package ecs

// Entity is an opaque handle: the low 32 bits are a slot index, the high 32
// bits are that slot's generation at the time the entity was spawned. A
// handle whose generation no longer matches the slot's current generation is
// stale and every lookup treats it as not-alive.
type Entity uint64

const indexMask = 0xFFFFFFFF

func newEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

func (e Entity) index() uint32      { return uint32(e & indexMask) }
func (e Entity) generation() uint32 { return uint32(e >> 32) }

// Null is the zero entity; it never matches a live handle because slot 0's
// generation starts at 1 the first time it's spawned (see World.Spawn).
const Null Entity = 0

// World owns entity liveness and every component storage and resource
// registered against it.
type World struct {
	generations []uint32
	freeList    []uint32
	aliveCount  int

	storages  map[typeKey]erasedStorage
	resources map[typeKey]any

	debug bool
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{
		storages:  make(map[typeKey]erasedStorage),
		resources: make(map[typeKey]any),
	}
}

// SetDebug toggles panic-on-misuse checks (double free, stale-handle writes,
// a Query2/Query3 naming the same component type twice)
// used by tests and development builds; production builds leave it off and
// get a (zero, false) result instead of a panic.
func (w *World) SetDebug(on bool) { w.debug = on }

// Spawn allocates a new entity, reusing a free slot's index with its
// generation incremented when one is available.
func (w *World) Spawn() Entity {
	if n := len(w.freeList); n > 0 {
		idx := w.freeList[n-1]
		w.freeList = w.freeList[:n-1]
		w.aliveCount++
		return newEntity(idx, w.generations[idx])
	}
	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	w.aliveCount++
	return newEntity(idx, 1)
}

// IsAlive reports whether e refers to a currently spawned entity.
func (w *World) IsAlive(e Entity) bool {
	idx := e.index()
	if int(idx) >= len(w.generations) {
		return false
	}
	return w.generations[idx] == e.generation()
}

// Despawn frees e's slot, removes its components from every registered
// storage, and bumps the slot's generation so stale copies of e stop
// resolving as alive. Despawning an already-dead or stale handle is a no-op
// in release builds and a panic when debug mode is enabled.
func (w *World) Despawn(e Entity) {
	if !w.IsAlive(e) {
		if w.debug {
			panic("ecs: despawn of dead or stale entity")
		}
		return
	}
	idx := e.index()
	for _, s := range w.storages {
		s.remove(e)
	}
	w.generations[idx]++
	w.freeList = append(w.freeList, idx)
	w.aliveCount--
}

// AliveCount returns the number of currently spawned entities.
func (w *World) AliveCount() int { return w.aliveCount }
