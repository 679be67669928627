package ecs

// Query1 visits every entity carrying a component of type A, in dense
// storage order (insertion order modulo swap-remove reshuffles — not a
// stable iteration order across structural changes).
func Query1[A any](w *World, fn func(e Entity, a *A)) {
	s := storageFor[A](w)
	for i := range s.dense {
		fn(s.entities[i], &s.dense[i])
	}
}

// Query2 visits every entity carrying both A and B. It iterates whichever
// storage currently holds fewer entities and probes the other by Get, so
// cost scales with the smaller component population rather than the larger
// one.
func Query2[A, B any](w *World, fn func(e Entity, a *A, b *B)) {
	if w.debug && keyOf[A]() == keyOf[B]() {
		panic("ecs: Query2 borrows the same component storage twice")
	}
	sa := storageFor[A](w)
	sb := storageFor[B](w)
	if len(sa.dense) <= len(sb.dense) {
		for i := range sa.dense {
			e := sa.entities[i]
			if b, ok := sb.get(e); ok {
				fn(e, &sa.dense[i], b)
			}
		}
		return
	}
	for i := range sb.dense {
		e := sb.entities[i]
		if a, ok := sa.get(e); ok {
			fn(e, a, &sb.dense[i])
		}
	}
}

// Query3 visits every entity carrying A, B and C, driven by the smallest of
// the three storages.
func Query3[A, B, C any](w *World, fn func(e Entity, a *A, b *B, c *C)) {
	if w.debug {
		ka, kb, kc := keyOf[A](), keyOf[B](), keyOf[C]()
		if ka == kb || ka == kc || kb == kc {
			panic("ecs: Query3 borrows the same component storage twice")
		}
	}
	sa := storageFor[A](w)
	sb := storageFor[B](w)
	sc := storageFor[C](w)

	n := len(sa.dense)
	driver := 0
	if len(sb.dense) < n {
		n = len(sb.dense)
		driver = 1
	}
	if len(sc.dense) < n {
		driver = 2
	}

	switch driver {
	case 0:
		for i := range sa.dense {
			e := sa.entities[i]
			b, ok := sb.get(e)
			if !ok {
				continue
			}
			c, ok := sc.get(e)
			if !ok {
				continue
			}
			fn(e, &sa.dense[i], b, c)
		}
	case 1:
		for i := range sb.dense {
			e := sb.entities[i]
			a, ok := sa.get(e)
			if !ok {
				continue
			}
			c, ok := sc.get(e)
			if !ok {
				continue
			}
			fn(e, a, &sb.dense[i], c)
		}
	default:
		for i := range sc.dense {
			e := sc.entities[i]
			a, ok := sa.get(e)
			if !ok {
				continue
			}
			b, ok := sb.get(e)
			if !ok {
				continue
			}
			fn(e, a, b, &sc.dense[i])
		}
	}
}
