package render

// stableSort orders sprites by (Layer, ZOrder, SortY, emission order) using
// a zero-allocation-on-the-hot-path bottom-up merge sort: it buffers into
// scratch, merges runs of doubling size, and detects an already-sorted
// input to return immediately, which is the common case when very little
// moved between frames.
func stableSort(sprites []Sprite, scratch *[]Sprite) {
	n := len(sprites)
	if n < 2 {
		return
	}

	sorted := true
	for i := 1; i < n; i++ {
		if less(&sprites[i], &sprites[i-1]) {
			sorted = false
			break
		}
	}
	if sorted {
		return
	}

	if cap(*scratch) < n {
		*scratch = make([]Sprite, n)
	}
	buf := (*scratch)[:n]

	src, dst := sprites, buf
	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			mergeRun(src, dst, i, min(i+width, n), min(i+2*width, n))
		}
		src, dst = dst, src
	}
	if &src[0] != &sprites[0] {
		copy(sprites, src)
	}
}

func mergeRun(src, dst []Sprite, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if less(&src[j], &src[i]) {
			dst[k] = src[j]
			j++
		} else {
			dst[k] = src[i]
			i++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
