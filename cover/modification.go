package cover

import "sort"

// modKind tags which reversible gadget a modification record encodes.
type modKind uint8

const (
	modFold modKind = iota
	modAlternative
)

// modification is a reversible record that replaced a subgraph with a
// smaller proxy subgraph. It is a tagged variant, not a class hierarchy:
// ownership lives solely in State.mods, so reverse/restore take the
// owning State by short-lived mutable borrow instead of a modification
// holding a back-pointer to its solver (spec §9, "cyclic ownership").
type modification struct {
	kind modKind

	// removed holds the original vertices eliminated by the gadget. For
	// a Fold this is S followed by NS[1:] (|S| elements then |S|
	// elements). For an Alternative this is A followed by B (k elements
	// each).
	removed []int

	// vs holds the vertices that survive the gadget in the reduced
	// graph. For a Fold, vs[0] is the proxy (it reuses NS[0]'s id) and
	// vs[1:] are the external neighbours, in sorted order. For an
	// Alternative, vs[:splitAt] is A' = N(A)\B and vs[splitAt:] is
	// B' = N(B)\A, both sorted.
	vs []int

	// splitAt is |A'|; meaningless for a Fold.
	splitAt int

	// newAdj[i] is the adjacency list installed at vs[i] while the
	// gadget is in force.
	newAdj [][]int

	// oldAdj[i] is vs[i]'s adjacency immediately before the gadget was
	// applied; restore splices it back in verbatim.
	oldAdj [][]int

	// crtAdd is the fixed cover-size cost this gadget contributes while it
	// sits on the stack: |S| for a Fold (the proxy, if later set to 0,
	// still buys S's |S| members their forced-1 neighbours; if the proxy
	// is set to 1, NS loses one member but S gains |S|, a wash), |A| for
	// an Alternative (both of its k-vs-k children cost exactly k). Pushed
	// into s.crt by pushModification and unwound by restore, so crt keeps
	// tracking |{i : x[i]==1}| over the ORIGINAL graph even while the
	// gadget hides its true members behind x==2.
	crtAdd int
}

// apply installs m onto the state: marks m.removed as folded (x=2), and
// rewires each vs[i] to newAdj[i] after saving its current adjacency into
// oldAdj[i]. It does not touch rn; the caller journals that separately so
// restore(targetRn) can unwind modifications and plain `set` calls
// through one uniform counter.
func (m *modification) apply(s *State) {
	m.oldAdj = make([][]int, len(m.vs))
	for i, v := range m.vs {
		m.oldAdj[i] = s.adj[v]
		s.adj[v] = m.newAdj[i]
	}
	for _, v := range m.removed {
		if s.x[v] != -1 {
			precondition("fold/alternative over a decided vertex")
		}
		s.x[v] = 2
	}
}

// undo reverses apply: splices oldAdj back over vs and restores every
// removed vertex to undecided.
func (m *modification) undo(s *State) {
	for _, v := range m.removed {
		s.x[v] = -1
	}
	for i, v := range m.vs {
		s.adj[v] = m.oldAdj[i]
	}
}

// reverse lifts a completed assignment y (indexed like x) through a single
// modification, per spec §4.1.
func (m *modification) reverse(y []int8) {
	switch m.kind {
	case modFold:
		proxy := m.vs[0]
		half := len(m.removed) / 2
		sGroup, nsGroup := m.removed[:half], m.removed[half:]
		if y[proxy] == 1 {
			for _, u := range nsGroup {
				y[u] = 1
			}
			for _, v := range sGroup {
				y[v] = 0
			}
		} else {
			for _, v := range sGroup {
				y[v] = 1
			}
			for _, u := range nsGroup {
				y[u] = 0
			}
		}
	case modAlternative:
		aPrime := m.vs[:m.splitAt]
		inA := false
		for _, v := range aPrime {
			if y[v] == 1 {
				inA = true
				break
			}
		}
		half := len(m.removed) / 2
		aOrig, bOrig := m.removed[:half], m.removed[half:]
		if !inA {
			for _, v := range aOrig {
				y[v] = 0
			}
			for _, v := range bOrig {
				y[v] = 1
			}
		} else {
			for _, v := range aOrig {
				y[v] = 1
			}
			for _, v := range bOrig {
				y[v] = 0
			}
		}
	}
}

// sortedExternalNeighbors collects the distinct undecided neighbours of
// group that do not themselves lie in skip, sorted ascending.
func sortedExternalNeighbors(s *State, group []int, skip map[int]bool) []int {
	seen := map[int]bool{}
	out := make([]int, 0, 4)
	for _, v := range group {
		for _, u := range s.adj[v] {
			if !skip[u] && s.x[u] < 0 && !seen[u] {
				seen[u] = true
				out = append(out, u)
			}
		}
	}
	sort.Ints(out)
	return out
}

// withoutMembers returns adj filtered to drop every vertex present in
// skip, preserving order.
func withoutMembers(adj []int, skip map[int]bool) []int {
	out := make([]int, 0, len(adj))
	for _, u := range adj {
		if !skip[u] {
			out = append(out, u)
		}
	}
	return out
}

// unionSorted merges base (already filtered, order preserved) with add
// (sorted, disjoint from base by construction), returning a deduplicated,
// sorted adjacency list.
func unionSorted(base, add []int) []int {
	present := map[int]bool{}
	out := make([]int, 0, len(base)+len(add))
	for _, v := range base {
		if !present[v] {
			present[v] = true
			out = append(out, v)
		}
	}
	for _, v := range add {
		if !present[v] {
			present[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// computeFold builds and installs the Fold(S, NS) gadget (spec §4.1): S is
// absorbed entirely into NS[0], which becomes the proxy vertex; the
// remaining members of NS are removed alongside S. Precondition: len(NS)
// == len(S)+1 and NS is exactly the union of undecided external
// neighbours of S (fold2 and twin both establish this before calling in).
func (s *State) computeFold(S, NS []int) {
	if len(NS) != len(S)+1 {
		precondition("computeFold: |NS| must be |S|+1")
	}
	skip := make(map[int]bool, len(S)+len(NS))
	for _, v := range S {
		skip[v] = true
	}
	for _, v := range NS {
		skip[v] = true
	}
	proxy := NS[0]
	ext := sortedExternalNeighbors(s, append(append([]int{}, S...), NS...), skip)

	removed := append(append([]int{}, S...), NS[1:]...)
	vs := append([]int{proxy}, ext...)
	newAdj := make([][]int, len(vs))
	newAdj[0] = ext
	for i, u := range ext {
		rest := withoutMembers(s.adj[u], skip)
		newAdj[i+1] = unionSorted(rest, []int{proxy})
	}
	s.pushModification(&modification{kind: modFold, removed: removed, vs: vs, newAdj: newAdj, crtAdd: len(S)})
}

// computeAlternative builds and installs the Alternative(A, B) gadget
// (spec §4.1): A and B are removed; A'=N(A)\B and B'=N(B)\A survive with a
// complete bipartite join spliced between them, on top of whatever
// external edges they already carried. Per spec §4.1, any vertex that is
// simultaneously an external neighbour of A and of B cannot be left to
// the gadget's A'/B' split — it is forced into the cover outright via
// set(u,1) before the record is built, and so never appears in vs.
func (s *State) computeAlternative(A, B []int) {
	skip := make(map[int]bool, len(A)+len(B))
	for _, v := range A {
		skip[v] = true
	}
	for _, v := range B {
		skip[v] = true
	}
	aRaw := sortedExternalNeighbors(s, A, skip)
	bRaw := sortedExternalNeighbors(s, B, skip)
	inA := make(map[int]bool, len(aRaw))
	for _, v := range aRaw {
		inA[v] = true
	}
	for _, u := range bRaw {
		if inA[u] {
			s.set(u, 1)
		}
	}

	aPrime := sortedExternalNeighbors(s, A, skip)
	bPrime := sortedExternalNeighbors(s, B, skip)

	removed := append(append([]int{}, A...), B...)
	vs := append(append([]int{}, aPrime...), bPrime...)
	newAdj := make([][]int, len(vs))
	for i, u := range aPrime {
		rest := withoutMembers(s.adj[u], skip)
		newAdj[i] = unionSorted(rest, bPrime)
	}
	for i, u := range bPrime {
		rest := withoutMembers(s.adj[u], skip)
		newAdj[len(aPrime)+i] = unionSorted(rest, aPrime)
	}
	s.pushModification(&modification{kind: modAlternative, removed: removed, vs: vs, splitAt: len(aPrime), newAdj: newAdj, crtAdd: len(A)})
}
