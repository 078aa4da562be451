package pqueue

import "fmt"

// MinHeap is a binary min-heap ordered by a caller-supplied less function.
//
// Elements that compare equal under less are interchangeable: the heap makes
// no promise about which of them Pop returns first.
//
// MinHeap is not safe for concurrent use.
type MinHeap[T any] struct {
	data   []T
	less   func(a, b T) bool
	onMove func(item T, index int)
}

// New returns an empty heap ordered by less. Panics if less is nil.
func New[T any](less func(a, b T) bool, opts ...Option[T]) *MinHeap[T] {
	if less == nil {
		panic("pqueue: New(nil less)")
	}
	h := &MinHeap[T]{less: less}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Len returns the number of elements in the heap.
func (h *MinHeap[T]) Len() int { return len(h.data) }

// Peek returns the minimum element without removing it.
func (h *MinHeap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	return h.data[0], true
}

// At returns the element stored at index i. Panics if i is out of range.
func (h *MinHeap[T]) At(i int) T {
	h.checkIndex(i)

	return h.data[i]
}

// Insert appends x and sifts it up until its parent is not greater.
// Complexity: O(log n).
func (h *MinHeap[T]) Insert(x T) {
	h.data = append(h.data, x)
	i := len(h.data) - 1
	h.moved(i)
	h.siftUp(i)
}

// Pop removes and returns the minimum element, or false on an empty heap.
//
// The root is swapped with the last element, the old root is cut off the end
// and the new root is sifted down.
// Complexity: O(log n).
func (h *MinHeap[T]) Pop() (T, bool) {
	n := len(h.data)
	if n == 0 {
		var zero T
		return zero, false
	}
	if n > 1 {
		h.swap(0, n-1)
	}

	top := h.data[n-1]
	var zero T
	h.data[n-1] = zero
	h.data = h.data[:n-1]
	if h.onMove != nil {
		h.onMove(top, -1)
	}
	if len(h.data) > 1 {
		h.heapify(0)
	}

	return top, true
}

// DecreaseKey overwrites the element at index i with x and sifts it up.
//
// x must not be greater than the element it replaces. Violating this, or
// passing an index outside [0, Len()), panics: both mean the caller lost track
// of the heap and continuing would corrupt its order.
// Complexity: O(log n).
func (h *MinHeap[T]) DecreaseKey(i int, x T) {
	h.checkIndex(i)
	if h.less(h.data[i], x) {
		panic(fmt.Errorf("%w: index %d", ErrKeyIncrease, i))
	}
	h.data[i] = x
	h.moved(i)
	h.siftUp(i)
}

// heapify restores the heap order below i by sifting data[i] down, always
// swapping with the smaller child.
func (h *MinHeap[T]) heapify(i int) {
	n := len(h.data)
	for {
		smallest := i
		l, r := left(i), right(i)
		if l < n && h.less(h.data[l], h.data[smallest]) {
			smallest = l
		}
		if r < n && h.less(h.data[r], h.data[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(h.data[i], h.data[p]) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

func (h *MinHeap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.moved(i)
	h.moved(j)
}

func (h *MinHeap[T]) moved(i int) {
	if h.onMove != nil {
		h.onMove(h.data[i], i)
	}
}

func (h *MinHeap[T]) checkIndex(i int) {
	if i < 0 || i >= len(h.data) {
		panic(fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, len(h.data)))
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
