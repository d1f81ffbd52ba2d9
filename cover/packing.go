package cover

// Constraint is a packing constraint: in any completion of the current
// partial solution, at most Limit of Vertices may be placed into the
// independent set. Constraint.Vertices holds ORIGINAL vertex ids — ids
// that may since have been absorbed by a fold/alternative — so evaluating
// a constraint always goes through State.projected, never raw x reads.
type Constraint struct {
	Limit    int
	Vertices []int
}

// projected returns v's current effective assignment, chasing through any
// fold/alternative that has absorbed v. Unlike a live x read, this never
// reports -1 for a folded vertex: the gadget's own structure already
// determines a committed (if possibly provisional) 0/1 value for it,
// exactly mirroring what reverse(y) would assign v if called right now.
// Only a vertex that is still directly live (x[v] == -1) projects to -1.
func (s *State) projected(v int) int8 {
	if s.x[v] != 2 {
		return s.x[v]
	}
	for i := len(s.mods) - 1; i >= 0; i-- {
		m := s.mods[i]
		idx := indexOf(m.removed, v)
		if idx < 0 {
			continue
		}
		half := len(m.removed) / 2
		switch m.kind {
		case modFold:
			proxyVal := s.projected(m.vs[0])
			if idx < half { // v in S
				if proxyVal == 1 {
					return 0
				}
				return 1
			}
			if proxyVal == 1 { // v in NS
				return 1
			}
			return 0
		case modAlternative:
			inA := false
			for _, av := range m.vs[:m.splitAt] {
				if s.projected(av) == 1 {
					inA = true
					break
				}
			}
			if idx < half { // v in A
				if !inA {
					return 0
				}
				return 1
			}
			if !inA { // v in B
				return 1
			}
			return 0
		}
	}
	precondition("projected vertex not found in any modification")
	return 2
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

// reducePacking implements spec §4.8. It returns infeasible=true the
// instant any constraint is violated (the caller must treat the whole
// node as pruned) and changed=true if any `set` call fired.
func (s *State) reducePacking() (infeasible, changed bool) {
	oldRN := s.rn
	for pi := 0; pi < len(s.packing); pi++ {
		c := s.packing[pi]
		limit := c.Limit
		sum := 0
		live := s.level[:0]
		for _, v := range c.Vertices {
			pv := s.projected(v)
			if pv < 0 {
				live = append(live, v)
			} else if pv == 1 {
				sum++
			}
		}
		switch {
		case sum > limit:
			return true, s.rn != oldRN
		case sum == limit && len(live) > 0:
			s.used.Clear()
			count := s.iterBuf
			for _, v := range live {
				s.used.Add(v)
				count[v] = -1
			}
			for _, v := range live {
				for _, u := range s.adj[v] {
					if s.x[u] < 0 {
						if s.used.Add(u) {
							count[u] = 1
						} else if count[u] < 0 {
							return true, s.rn != oldRN
						} else {
							count[u]++
						}
					}
				}
			}
			for _, v := range live {
				for _, u := range s.adj[v] {
					if s.x[u] < 0 && count[u] == 1 {
						extra := s.que[:0]
						for _, w := range s.adj[u] {
							if s.x[w] < 0 && !s.used.Get(w) {
								extra = append(extra, w)
							}
						}
						verts := make([]int, 0, len(extra)+1)
						verts = append(verts, u)
						verts = append(verts, extra...)
						s.packing = append(s.packing, Constraint{Limit: 1, Vertices: verts})
					}
				}
			}
			for _, v := range live {
				if s.x[v] != -1 {
					continue // may have been dominated by an earlier set() in this same pass
				}
				s.set(v, 0)
			}
		case sum+len(live) > limit+1:
			s.used.Clear()
			for _, v := range live {
				s.used.Add(v)
			}
			if len(live) == 0 {
				continue
			}
			for _, v := range s.adj[live[0]] {
				if s.x[v] >= 0 || s.used.Get(v) {
					continue
				}
				contacts := 0
				for _, u := range s.adj[v] {
					if s.used.Get(u) {
						contacts++
					}
				}
				if sum+contacts > limit {
					verts := make([]int, 0, len(s.adj[v])+1)
					verts = append(verts, v)
					for _, u := range s.adj[v] {
						if s.x[u] < 0 {
							verts = append(verts, u)
						}
					}
					s.packing = append(s.packing, Constraint{Limit: 2, Vertices: verts})
					s.set(v, 1)
					break
				}
			}
		}
	}
	return false, s.rn != oldRN
}
