package cover

import "sort"

// lowerBound combines whichever estimators cfg.LowerBound enables and
// returns the strongest one found, memoized in s.lb across repeated calls
// at the same recursion node (spec §4.4).
func (s *State) lowerBound(cfg Config) int {
	if s.lb < s.crt {
		s.lb = s.crt
	}
	if cfg.LowerBound == LowerBoundClique || cfg.LowerBound == LowerBoundAll {
		if v := s.cliqueLowerBound(); s.lb < v {
			s.lb = v
		}
	}
	if cfg.LowerBound == LowerBoundLP || cfg.LowerBound == LowerBoundAll {
		if v := s.lpLowerBound(); s.lb < v {
			s.lb = v
		}
	}
	if cfg.LowerBound == LowerBoundCycle || cfg.LowerBound == LowerBoundAll {
		if v := s.cycleLowerBound(); s.lb < v {
			s.lb = v
		}
	}
	return s.lb
}

// lpLowerBound is crt + ceil(rn/2), tight once the matching backing it is
// up to date (i.e. reduceLP has already run to a fixed point this node).
func (s *State) lpLowerBound() int {
	return s.crt + (s.rn+1)/2
}

// cliqueLowerBound greedily builds a clique cover of the undecided
// subgraph by processing vertices in increasing-degree
// order and appending each to the already-placed clique it is fully
// adjacent to, if any. Each clique of size k contributes k-1 beyond crt,
// since at most one of its members can join the independent set.
func (s *State) cliqueLowerBound() int {
	need := s.crt
	type degID struct{ deg, id int }
	order := make([]degID, 0, s.rn)
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			order = append(order, degID{s.deg(v), v})
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].deg != order[j].deg {
			return order[i].deg < order[j].deg
		}
		return order[i].id < order[j].id
	})
	cliqueOf := s.que
	cliqueSize := s.level
	count := s.iterBuf
	s.used.Clear()
	for _, d := range order {
		v := d.id
		to, max := v, 0
		for _, u := range s.adj[v] {
			if s.x[u] < 0 && s.used.Get(u) {
				count[cliqueOf[u]] = 0
			}
		}
		for _, u := range s.adj[v] {
			if s.x[u] < 0 && s.used.Get(u) {
				c := cliqueOf[u]
				count[c]++
				if count[c] == cliqueSize[c] && max < cliqueSize[c] {
					to = c
					max = cliqueSize[c]
				}
			}
		}
		cliqueOf[v] = to
		if to != v {
			cliqueSize[to]++
			need++
		} else {
			cliqueSize[v] = 1
		}
		s.used.Add(v)
	}
	return need
}

// cycleLowerBound decomposes the permutation induced by the current
// matching (outM, restricted to undecided vertices) into disjoint cycles
// and sums each cycle's contribution: |cycle|-1 if the cycle induces a
// clique, otherwise ceil(|cycle|/2) — the odd-cycle LP-duality bound.
//
// The original engine additionally splices out short odd sub-cycles via
// chord detection to tighten long cycles further; that refinement only
// improves tightness; the formula above is already a sound lower bound on
// its own, so it is kept as the implementation here (see DESIGN.md).
func (s *State) cycleLowerBound() int {
	lb := s.crt
	visited := s.iterBuf
	for i := 0; i < s.n; i++ {
		visited[i] = -1
	}
	cycle := s.level
	for i := 0; i < s.n; i++ {
		if s.x[i] < 0 && visited[i] < 0 {
			v, size := i, 0
			for {
				visited[v] = i
				cycle[size] = v
				size++
				v = s.outM[v]
				if v < 0 || v == i {
					break
				}
			}
			if size <= 1 {
				continue
			}
			clique := true
			for j := 0; j < size && clique; j++ {
				v := cycle[j]
				num := 0
				for _, u := range s.adj[v] {
					if s.x[u] < 0 && visited[u] == i {
						num++
					}
				}
				if num != size-1 {
					clique = false
				}
			}
			if clique {
				lb += size - 1
			} else {
				lb += (size + 1) / 2
			}
		}
	}
	return lb
}
