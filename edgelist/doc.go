// SPDX-License-Identifier: MIT
// Package edgelist reads and writes the plain-text edge-list format:
//
//	5          <- vertex count N
//	1 2        <- unweighted edge, weight 1
//	2 3 0.5    <- weighted edge
//
// Blank lines are skipped anywhere. Tokens beyond the third on an edge line
// are ignored. Every parse error matches ErrMalformedInput (and therefore
// core.ErrMalformedInput) and names the 1-based line it came from.
//
// A Document keeps the raw edge lines, not a deduplicated graph: the
// statistics reporter counts every line, while Graph applies the
// last-write-wins rule of core.Build.
package edgelist
