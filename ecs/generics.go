package ecs

// Add stores a copy of value on e, replacing any existing component of the kind.
func Add[T any](w *World, e Entity, handle ComponentHandle[T], value T) error {
	v := value
	return w.addComponent(e, handle.ID(), &v)
}

// Get returns a pointer to the stored component; writes through it are visible
// to every later reader in the same tick.
func Get[T any](w *World, e Entity, handle ComponentHandle[T]) (*T, bool) {
	value, ok := w.getComponent(e, handle.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// ForEach calls fn for every entity carrying the component, in entity order.
func ForEach[T any](w *World, handle ComponentHandle[T], fn func(Entity, *T)) {
	for _, e := range w.Query(handle) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}
