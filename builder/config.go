// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng         = nil               (must be set through WithSeed/WithRand)
//   • weightFn    = DefaultWeightFn   (uniform [0,100))
//   • maxAttempts = defaultMaxAttempts per requested edge
//   • maxRestarts = defaultMaxRestarts whole-graph builds

package builder

import "math/rand"

// builderConfig aggregates all knobs used by Generate.
// It is passed by value to keep it immutable for callers.
type builderConfig struct {
	// RNG for every stochastic choice; nil is rejected by Generate.
	rng *rand.Rand
	// Weight generator for every undirected edge.
	weightFn WeightFn
	// Random neighbor draws per requested edge before the exhaustive scan.
	maxAttempts int
	// Whole-graph builds before ErrConstructFailed.
	maxRestarts int
}

const (
	// defaultMaxAttempts bounds the rejection sampling per edge.
	defaultMaxAttempts = 64
	// defaultMaxRestarts bounds the number of whole-graph builds.
	defaultMaxRestarts = 100
)

// newBuilderConfig applies options in order on top of the defaults
// (later options override earlier ones).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		weightFn:    DefaultWeightFn,
		maxAttempts: defaultMaxAttempts,
		maxRestarts: defaultMaxRestarts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
