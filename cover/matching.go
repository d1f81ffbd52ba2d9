package cover

// The LP/crown machinery works over the bipartite "double cover" of the
// undecided subgraph: a left copy and a right copy of every undecided
// vertex, with a left-right edge for every surviving original edge.
// inM[u] is the left vertex currently matched to right copy u; outM[v] is
// the right vertex currently matched to left copy v. A maximum matching
// here is exactly a half-integral optimum of the vertex-cover LP
// relaxation (spec §4.4's "lp bound").

// updateMatching brings inM/outM to a maximum matching of the current
// undecided subgraph, reusing whatever matching already exists (dropping
// edges whose endpoint became decided) and augmenting from there via
// repeated Hopcroft–Karp-style phases: a BFS layering from every
// currently-unmatched left vertex, then a DFS blocking-flow pass along
// strictly increasing levels.
func (s *State) updateMatching() {
	for v := 0; v < s.n; v++ {
		if s.outM[v] >= 0 && (s.x[v] >= 0 || s.x[s.outM[v]] >= 0) {
			s.inM[s.outM[v]] = -1
			s.outM[v] = -1
		}
	}
	for {
		s.used.Clear()
		queue := s.que[:0]
		level := s.level
		for v := 0; v < s.n; v++ {
			if s.x[v] < 0 && s.outM[v] < 0 {
				level[v] = 0
				s.used.Add(v)
				queue = append(queue, v)
			}
		}
		foundFree := false
		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			s.iterBuf[v] = len(s.adj[v]) - 1
			for _, u := range s.adj[v] {
				if s.x[u] < 0 && s.used.Add(s.n+u) {
					w := s.inM[u]
					if w < 0 {
						foundFree = true
					} else {
						level[w] = level[v] + 1
						s.used.Add(w)
						queue = append(queue, w)
					}
				}
			}
		}
		if !foundFree {
			return
		}
		for v := s.n - 1; v >= 0; v-- {
			if s.x[v] < 0 && s.outM[v] < 0 {
				s.matchDFS(v, level)
			}
		}
	}
}

// matchDFS looks for an augmenting path from left vertex v along
// strictly-increasing levels, consuming s.iterBuf[v] as a per-vertex
// cursor into adj[v] (shared with every other rule that borrows it —
// always reinitialized by the caller before use).
func (s *State) matchDFS(v int, level []int) bool {
	for s.iterBuf[v] >= 0 {
		u := s.adj[v][s.iterBuf[v]]
		s.iterBuf[v]--
		if s.x[u] >= 0 {
			continue
		}
		w := s.inM[u]
		if w < 0 || (level[v] < level[w] && s.iterBuf[w] >= 0 && s.matchDFS(w, level)) {
			s.inM[u] = v
			s.outM[v] = u
			return true
		}
	}
	return false
}

// reduceLP is the `lp` rule: bring the matching to maximum, then apply
// the König-style forcing step — every left vertex reachable in the
// residual graph from a free left vertex, whose right copy is NOT
// reachable, must be in the independent set. (A second, chord-aware
// tightening pass exists in the original engine but its "ok" flag is
// unconditionally overwritten to false before use — spec's open question
// (a) — so it is intentionally left disabled here too.)
func (s *State) reduceLP() bool {
	oldRN := s.rn
	s.updateMatching()
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 && s.used.Get(v) && !s.used.Get(s.n+v) {
			s.set(v, 0)
		}
	}
	return s.rn != oldRN
}

// lpValue returns the half-integral LP relaxation value crt + rn/2,
// valid once the matching is up to date (spec §4.4's lp bound, before
// rounding up for the integer bound).
func (s *State) lpValue() float64 {
	return float64(s.crt) + float64(s.rn)/2.0
}
