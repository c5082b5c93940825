// Package graphq loads an undirected weighted graph from an edge-list file
// and answers structural queries over it.
//
// 🚀 What is in the box?
//
//	• Edge-list parsing and writing with line-accurate errors (edgelist/)
//	• An immutable, insertion-ordered graph with matrix and list views (core/, matrix/)
//	• Traversals: DFS and BFS with levels, parents and hooks (dfs/, bfs/)
//	• Connected components (components/)
//	• Shortest paths: BFS on unit weights, Dijkstra otherwise (bfs/, dijkstra/, paths/)
//	• Degree statistics (stats/)
//	• A query engine with logging, metrics and bounded concurrency (query/)
//	• Text, YAML and JSON rendering (report/)
//	• Topology generators for tests and demos (builder/)
//
// The graphq command (cmd/graphq) wires all of the above behind cobra
// sub-commands and a viper-backed configuration.
//
// Quick example:
//
//	4 4        1───2
//	1 2 1      │   │
//	2 3 1      4───3
//	3 4 1
//	1 4 5      graphq path 1 4  →  [1 2 3 4], distance 3
//
// Vertices are the integers 1..N declared on the first line; every later line
// is "u v [weight]". A missing weight means 1.
package graphq
