// Package pqueue provides MinHeap, an array-backed binary min-heap with
// positional decrease-key.
//
// Layout: a dense 0-indexed slice where, for every index i,
//
//	parent(i) = (i-1)/2, left(i) = 2i+1, right(i) = 2i+2
//
// and data[i] is never greater than either existing child.
//
// Only Insert, Pop and DecreaseKey change the shape of the heap. Each of them
// may move elements, so a position noted before a call may be stale after it.
// Callers that need to find an element again register a move hook
// (WithMoveHook); the heap reports every new position of every element, and
// -1 when an element leaves the heap.
//
// DecreaseKey with a key that is larger than the current one is a programming
// error: the heap panics instead of silently breaking its order.
package pqueue
