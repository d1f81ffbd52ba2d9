// Package cover is an exact branch-and-reduce solver for the Minimum
// Vertex Cover problem (equivalently Maximum Independent Set) on
// undirected simple graphs.
//
// Given the adjacency structure of a graph G=(V,E), Solver.Solve returns a
// vertex cover of minimum cardinality together with the optimum value, or
// reports that the caller's time budget was exhausted first.
//
// 🚀 What is cover?
//
//	A single-threaded, allocation-conscious kernelization engine that brings
//	together:
//
//	  • A reversible modification stack (fold / alternative gadgets) that
//	    shrinks a subgraph and can be undone bit-for-bit on backtracking.
//	  • Eight reduction rules run to a fixed point between branch points.
//	  • Three composable lower-bound estimators (clique, LP, cycle).
//	  • Degree-based and structural (mirror-aware) branching.
//	  • Connected-component decomposition that recurses on subproblems.
//
// ✨ Why use cover?
//
//   - Exact       — always returns a provably minimum cover (or times out cleanly).
//   - Deterministic — no goroutines, no global state; behavior is a pure
//     function of the input graph and the supplied Config.
//   - Reversible    — every reduction can be undone, so a single Solver can be
//     reused across reduce/branch/backtrack without re-allocating.
//
// Under the hood, everything is organized as:
//
//	config.go       — immutable Config and its functional options
//	bitset.go        — generation-counter membership set, the `used` scratch
//	modification.go  — Fold / Alternative gadgets (apply, undo, reverse)
//	state.go         — adjacency, assignment vector, counters, restore journal
//	reduce.go        — deg1/dominate/unconfined/lp/fold2/twin/funnel/desk
//	bounds.go        — clique/lp/cycle lower bounds
//	matching.go       — the bipartite matching backing the LP bound/reduction
//	packing.go        — packing-constraint bookkeeping and its reduction
//	branch.go         — vertex selection, mirrors, the branch/bound recursion
//	decompose.go      — connected-component split and sub-solver dispatch
//	solver.go         — Solver: the public entry points of this package
//	adapters.go       — bridges to core.Graph / flow.Dinic for the optional
//	                    mincut- and st-cut-based branching strategies
//
// cover deliberately does not read DIMACS/METIS files, does not expose a
// CLI, and does not solve the weighted or approximate variants of vertex
// cover; those concerns live outside this package.
package cover
