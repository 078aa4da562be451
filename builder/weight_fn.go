// Package builder helpers for edge-weight distributions.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/shortpath/core"
)

// DefaultWeightBound is the exclusive upper bound of DefaultWeightFn.
const DefaultWeightBound core.Weight = 100

// WeightFn produces an edge weight from the builder's RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) core.Weight

// DefaultWeightFn draws uniformly from [0, DefaultWeightBound).
// Complexity: O(1).
func DefaultWeightFn(rng *rand.Rand) core.Weight {
	return core.Weight(rng.Int63n(int64(DefaultWeightBound)))
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value core.Weight) WeightFn {
	return func(_ *rand.Rand) core.Weight {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from [min, max] inclusive.
// Panics if max < min or if max does not fit in an int64.
func UniformWeightFn(min, max core.Weight) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	if max >= 1<<63 {
		panic(fmt.Sprintf("UniformWeightFn: max=%d does not fit in int64", max))
	}
	span := int64(max-min) + 1

	return func(rng *rand.Rand) core.Weight {
		return min + core.Weight(rng.Int63n(span))
	}
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeightFn.
func WithUniformWeight(min, max core.Weight) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w core.Weight) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}
