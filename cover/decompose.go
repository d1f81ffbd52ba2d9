package cover

import "time"

// components returns the connected components of the currently undecided
// subgraph, each as a list of original vertex ids. Called rarely enough
// (once per recursion node at most) that borrowing modTmp as a DFS stack
// is safe: no other rule is mid-borrow while decompose runs.
func (s *State) components() [][]int {
	s.used.Clear()
	stack := s.modTmp[:0]
	var comps [][]int
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 && !s.used.Get(v) {
			s.used.Add(v)
			stack = append(stack[:0], v)
			var comp []int
			for len(stack) > 0 {
				u := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				comp = append(comp, u)
				for _, w := range s.adj[u] {
					if s.x[w] < 0 && s.used.Add(w) {
						stack = append(stack, w)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// subAdjacency builds a dense 0..len(comp)-1 adjacency list for the
// induced subgraph on comp, local index i corresponding to comp[i].
func subAdjacency(s *State, comp []int) [][]int {
	localOf := make(map[int]int, len(comp))
	for i, v := range comp {
		localOf[v] = i
	}
	adj := make([][]int, len(comp))
	for i, v := range comp {
		var la []int
		for _, u := range s.adj[v] {
			if lu, ok := localOf[u]; ok {
				la = append(la, lu)
			}
		}
		adj[i] = la
	}
	return adj
}

// solveSubproblem runs a complete, independent branch-and-reduce search
// over adj (its own State, its own incumbent) and returns its optimal
// cover size together with the optimal assignment, lifted through its own
// modification stack.
func solveSubproblem(adj [][]int, cfg Config, deadline time.Time) (int, []int8, error) {
	sub := newState(adj, len(adj), cfg.Seed)
	if err := sub.rec(cfg, deadline); err != nil {
		return 0, nil, err
	}
	return sub.opt, sub.y, nil
}

// tryDecompose implements spec §4.6/§4.7: split the undecided subgraph
// into connected components and, whenever there is more than one, solve
// each to completion independently and combine additively — sound because
// no edge crosses components, so the components' optimal covers never
// interact. Returns shrank=true whenever a split was found, regardless of
// whether the combined total actually improved s.opt (per spec §4.7:
// "if it split or shrank, return").
func (s *State) tryDecompose(cfg Config, deadline time.Time) (shrank bool, err error) {
	comps := s.components()
	if len(comps) < 2 {
		return false, nil
	}
	total := s.crt
	y := make([]int8, s.n)
	copy(y, s.x)
	for _, comp := range comps {
		adj := subAdjacency(s, comp)
		opt, suby, serr := solveSubproblem(adj, cfg, deadline)
		if serr != nil {
			return false, serr
		}
		total += opt
		for local, orig := range comp {
			y[orig] = suby[local]
		}
	}
	if total < s.opt {
		s.reverse(y)
		s.opt = total
		s.y = y
	}
	return true, nil
}
