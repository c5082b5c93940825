// SPDX-License-Identifier: MIT
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as
// a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates that ByName was given an unsupported kind.
var ErrUnknownKind = errors.New("builder: unknown kind")
