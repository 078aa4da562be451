// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name.
//   • Generate never panics at runtime; option constructors do on nonsense input.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates vertexCount < 1.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidNeighborMax indicates neighborMax is not below vertexCount, or does
// not exceed neighborMin (neighborMin = neighborMax = 0 is allowed).
var ErrInvalidNeighborMax = errors.New("builder: invalid maximum neighbor count")

// ErrInvalidNeighborMin indicates neighborMin is negative or not below vertexCount.
var ErrInvalidNeighborMin = errors.New("builder: invalid minimum neighbor count")

// ErrTooManyEdges indicates neighborMin·vertexCount exceeds the number of
// edges a simple undirected graph on vertexCount vertices can hold.
var ErrTooManyEdges = errors.New("builder: too many edges requested")

// ErrNeedRandSource indicates no RNG was configured (see WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates every whole-graph build left some vertex below
// neighborMin. Retry with another seed, more restarts or looser bounds.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped sentinel with the method name:
// "<method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
