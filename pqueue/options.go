package pqueue

// Option configures a MinHeap at construction time.
type Option[T any] func(*MinHeap[T])

// WithCapacity preallocates room for n elements.
// Panics if n < 0.
func WithCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic("pqueue: WithCapacity(n<0)")
	}
	return func(h *MinHeap[T]) {
		h.data = make([]T, 0, n)
	}
}

// WithMoveHook registers fn to be called every time an element is stored at a
// new index, and with index -1 when it is removed by Pop.
// Panics on nil.
func WithMoveHook[T any](fn func(item T, index int)) Option[T] {
	if fn == nil {
		panic("pqueue: WithMoveHook(nil)")
	}
	return func(h *MinHeap[T]) {
		h.onMove = fn
	}
}
