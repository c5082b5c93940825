// SPDX-License-Identifier: MIT
// Package query is the dispatch layer over an immutable core.Graph.
//
// An Engine owns one Graph and answers traversal, component and
// shortest-path queries. For shortest paths it picks the algorithm from the
// whole graph:
//
//  1. any negative weight → core.ErrNegativeWeight, nothing is computed;
//  2. every weight equal to 1 → BFS hop counts;
//  3. otherwise → Dijkstra.
//
// Unreachable destinations are not errors: the Route reports
// Reachable == false, an infinite Distance and a nil Path.
//
// The Engine logs through a logrus.FieldLogger and counts queries on a
// Prometheus registry. It holds no per-query state, so one Engine may serve
// concurrent callers; ShortestPathsFrom and Run fan out with errgroup.
package query
