package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/bits"
	"strconv"
)

// Sentinel errors used by the option constructors and the engine.
var (
	// ErrBadInfThreshold indicates WithInfEdgeThreshold(0), which would make
	// every edge, zero-weight ones included, impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrOptionType indicates a typed option (WithTieBreak, WithOnSettle,
	// WithOnRelax) whose vertex type differs from the graph's key type.
	ErrOptionType = errors.New("dijkstra: option vertex type does not match graph")
)

// Distance is either Unreached or Reached(d).
//
// The zero value is Unreached.
type Distance struct {
	value   uint64
	reached bool
}

// Unreached is the distance of a vertex no path has been found to.
var Unreached = Distance{}

// Reached returns the finite distance d.
func Reached(d uint64) Distance { return Distance{value: d, reached: true} }

// Value returns the finite distance and true, or 0 and false for Unreached.
func (d Distance) Value() (uint64, bool) { return d.value, d.reached }

// IsReached reports whether d is finite.
func (d Distance) IsReached() bool { return d.reached }

// Less orders distances ascending with Unreached after every finite value.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.reached:
		return false
	case !o.reached:
		return true
	default:
		return d.value < o.value
	}
}

// Equal reports whether d and o denote the same distance.
func (d Distance) Equal(o Distance) bool { return d == o }

// Add returns d+w. The second result is false when d is Unreached or the sum
// overflows uint64.
func (d Distance) Add(w uint64) (Distance, bool) {
	if !d.reached {
		return Unreached, false
	}
	sum, carry := bits.Add64(d.value, w, 0)
	if carry != 0 {
		return Unreached, false
	}

	return Reached(sum), true
}

// String renders d as a decimal number or "unreached".
func (d Distance) String() string {
	if !d.reached {
		return "unreached"
	}

	return strconv.FormatUint(d.value, 10)
}

// MarshalJSON encodes Unreached as null and a finite distance as a number.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.reached {
		return []byte("null"), nil
	}

	return strconv.AppendUint(nil, d.value, 10), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (d *Distance) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Unreached
		return nil
	}
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("dijkstra: decode distance %q: %w", b, err)
	}
	*d = Reached(v)

	return nil
}

// Node is the per-vertex record kept in the heap and returned once settled.
//
// Predecessor is meaningful only when HasPredecessor is true. The source and
// every unreached vertex have no predecessor.
type Node[K comparable] struct {
	Vertex         K
	Distance       Distance
	Predecessor    K
	HasPredecessor bool
}

// Prev returns the predecessor on the shortest path, if any.
func (n Node[K]) Prev() (K, bool) { return n.Predecessor, n.HasPredecessor }

// String renders the node as (vertex, distance, predecessor|none).
func (n Node[K]) String() string {
	if !n.HasPredecessor {
		return fmt.Sprintf("(%v, %s, none)", n.Vertex, n.Distance)
	}

	return fmt.Sprintf("(%v, %s, %v)", n.Vertex, n.Distance, n.Predecessor)
}

// Options configures a ShortestPaths run.
//
// MaxDistance      – relaxations that would exceed it are skipped. Default math.MaxUint64.
// InfEdgeThreshold – edges with weight ≥ it are skipped. Default 0 (disabled).
// Logger           – receives debug records when non-nil. Default nil.
//
// The typed hooks are set through WithTieBreak, WithOnSettle and WithOnRelax.
type Options struct {
	MaxDistance      uint64
	InfEdgeThreshold uint64
	Logger           *slog.Logger

	// typed hooks, checked against the graph's key type when a run starts
	tieBreak any
	onSettle any
	onRelax  any
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// DefaultOptions returns the configuration used when no option is given:
// no distance cap, no impassable edges, no hooks and no logging.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxUint64,
		InfEdgeThreshold: 0,
	}
}

// WithMaxDistance caps exploration: a relaxation whose candidate distance is
// greater than max is skipped, so vertices only reachable beyond max stay
// Unreached. WithMaxDistance(0) reaches nothing but the source and
// zero-weight paths from it.
func WithMaxDistance(max uint64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as
// impassable. Panics if threshold is 0.
func WithInfEdgeThreshold(threshold uint64) Option {
	if threshold == 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger enables debug logging of settlements and relaxations.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTieBreak orders vertices with equal distance by less. Use it when the
// settlement order among ties must be reproducible across graph layouts.
// Panics on nil.
func WithTieBreak[K comparable](less func(a, b K) bool) Option {
	if less == nil {
		panic("dijkstra: WithTieBreak(nil)")
	}
	return func(o *Options) {
		o.tieBreak = less
	}
}

// WithOnSettle registers fn, called with each Node right after it is
// finalized and appended to the result. Panics on nil.
func WithOnSettle[K comparable](fn func(n Node[K])) Option {
	if fn == nil {
		panic("dijkstra: WithOnSettle(nil)")
	}
	return func(o *Options) {
		o.onSettle = fn
	}
}

// WithOnRelax registers fn, called after every successful decrease-key with
// the improved vertex and its previous and new distance. Panics on nil.
func WithOnRelax[K comparable](fn func(v K, before, after Distance)) Option {
	if fn == nil {
		panic("dijkstra: WithOnRelax(nil)")
	}
	return func(o *Options) {
		o.onRelax = fn
	}
}
