package ecs

import "testing"

type position struct{ X, Y float64 }

func TestInsertGetHas(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	if Has[position](w, e) {
		t.Fatalf("unexpected component before insert")
	}
	Insert(w, e, position{1, 2})
	if !Has[position](w, e) {
		t.Fatalf("expected component after insert")
	}
	p, ok := Get[position](w, e)
	if !ok || *p != (position{1, 2}) {
		t.Fatalf("got %+v, %v", p, ok)
	}
}

func TestInsertOverwriteReturnsOld(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	Insert(w, e, position{1, 2})
	old, had := Insert(w, e, position{3, 4})
	if !had || old != (position{1, 2}) {
		t.Fatalf("expected old value {1 2}, got %+v had=%v", old, had)
	}
	if Len[position](w) != 1 {
		t.Fatalf("overwrite must not grow storage, len=%d", Len[position](w))
	}
}

func TestRemoveSwapPatchesSparse(t *testing.T) {
	w := NewWorld()
	entities := make([]Entity, 5)
	for i := range entities {
		entities[i] = w.Spawn()
		Insert(w, entities[i], position{float64(i), 0})
	}
	// Remove the first entity; its dense slot is filled by swapping in the
	// last entity's component, and that entity's Get must still resolve.
	Remove[position](w, entities[0])
	for i := 1; i < len(entities); i++ {
		p, ok := Get[position](w, entities[i])
		if !ok {
			t.Fatalf("entity %d lost its component after unrelated remove", i)
		}
		if p.X != float64(i) {
			t.Fatalf("entity %d component corrupted: got X=%v want %v", i, p.X, i)
		}
	}
	if Len[position](w) != len(entities)-1 {
		t.Fatalf("expected %d remaining, got %d", len(entities)-1, Len[position](w))
	}
}

func TestRemoveLastElementNoSwap(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	Insert(w, e, position{1, 1})
	v, ok := Remove[position](w, e)
	if !ok || v != (position{1, 1}) {
		t.Fatalf("got %+v %v", v, ok)
	}
	if Len[position](w) != 0 {
		t.Fatalf("expected empty storage")
	}
}

func TestRemoveMissingReturnsFalse(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	if _, ok := Remove[position](w, e); ok {
		t.Fatalf("expected false removing absent component")
	}
}
