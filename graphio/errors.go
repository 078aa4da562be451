package graphio

import "errors"

// Sentinel errors returned by Read. They are wrapped with the line number;
// test with errors.Is.
var (
	// ErrMissingVertex indicates a non-blank line without any integer.
	ErrMissingVertex = errors.New("graphio: line has no vertex id")

	// ErrMissingWeight indicates a neighbor without a weight.
	ErrMissingWeight = errors.New("graphio: neighbor without weight")

	// ErrUnknownVertex indicates an edge to a vertex that no line declares.
	ErrUnknownVertex = errors.New("graphio: edge to undeclared vertex")
)
