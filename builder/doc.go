// SPDX-License-Identifier: MIT
// Package builder generates deterministic edge-list fixtures over the
// vertex range [1, n].
//
// The package offers:
//
//   - Constructors: Cycle, Path, Star, Complete, Grid, Wheel, RandomSparse.
//     Each returns a Constructor closure; BuildEdges applies any number of
//     them in order to one shared EdgeSet.
//   - Options (BuilderOption): WithSeed / WithRand for stochastic
//     constructors, WithWeightFn for edge weights.
//   - Weight distributions: ConstantWeightFn, UniformWeightFn.
//   - ByName: resolves a constructor from a kind string, for the CLI.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order give an
//     identical edge list, in an identical order.
//   - Option constructors panic on meaningless inputs; constructors return
//     sentinel errors and never panic.
//   - Edges default to core.DefaultWeight, so fixtures are unit-weight unless
//     a weight function is supplied.
package builder
