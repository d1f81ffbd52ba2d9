// Package vcsolve is a toolkit for computing exact Minimum Vertex Covers
// on small-to-medium simple graphs.
//
// 🚀 What is vcsolve?
//
//	A branch-and-reduce solver that never gives up exactness for speed:
//
//	  • cover/       — the solver itself: kernelization rules, lower
//	    bounds, branching strategies, and the recursion driver
//	  • core/        — the underlying thread-safe Graph, Vertex, Edge types
//	  • bfs/         — the farthest-pair traversal the st-cut branching
//	    strategy leans on
//	  • flow/        — max-flow (Dinic et al.) backing the mincut/st-cut
//	    branching strategies
//	  • builder/     — deterministic graph constructors used throughout
//	    the test suite (paths, cycles, wheels, Platonic solids, ...)
//
// ✨ Why branch-and-reduce?
//
//   - Exact          — every answer is a certified minimum, not an
//     approximation
//   - Kernelized     — reduction rules (degree-1, domination, LP,
//     folding, packing, ...) shrink the instance before any branching
//   - Configurable   — reduction depth, lower-bound strength, and
//     branching strategy are all tunable via cover.ConfigOption
//
// Quick ASCII example — a 4-cycle has minimum vertex cover size 2:
//
//	    A───B
//	    │   │
//	    D───C
//
//	cover.New([][]int{{1,3},{0,2},{1,3},{0,2}}, 4)
//	// optimal: {A,C} or {B,D}
//
// Dive into cover/doc.go for the solver's internals.
//
//	go get github.com/katalvlaran/vcsolve
package vcsolve
