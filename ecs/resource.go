package ecs

// SetResource stores the single instance of T a world carries — singleton
// state like the day-night color or the active tilemap, as opposed to
// per-entity component data.
func SetResource[T any](w *World, v T) {
	w.resources[keyOf[T]()] = v
}

// GetResource returns the world's T resource, if one has been set.
func GetResource[T any](w *World) (T, bool) {
	v, ok := w.resources[keyOf[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// RemoveResource deletes the world's T resource.
func RemoveResource[T any](w *World) {
	delete(w.resources, keyOf[T]())
}
