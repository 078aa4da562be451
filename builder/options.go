// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes Generate by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithMaxAttempts sets how many random neighbor draws Generate may spend on a
// single edge before it scans every vertex for one. Panics if n < 1.
func WithMaxAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}

// WithMaxRestarts sets how many whole-graph builds Generate may start before
// failing with ErrConstructFailed. Panics if n < 1.
func WithMaxRestarts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxRestarts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxRestarts = n
	}
}
