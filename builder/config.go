// SPDX-License-Identifier: MIT
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil          (pure/deterministic unless seeded)
//   • weightFn = constant core.DefaultWeight

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphq/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator, called once per emitted edge.
	weightFn func(*rand.Rand) float64
}

// newBuilderConfig applies opts in order over the defaults (later wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: ConstantWeightFn(core.DefaultWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
