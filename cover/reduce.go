package cover

// reduce runs the eight rules to a fixed point in the priority order
// fixed by spec §4.3: deg1 → (dominate if level<2 else unconfined) → lp →
// packing → fold2 → twin → funnel → desk, restarting from the top on any
// change. It returns infeasible=true the moment the packing reduction
// detects a contradiction; the caller must treat this recursion node as
// pruned without inspecting rn/crt further (restore still applies).
func (s *State) reduce(cfg Config) (infeasible bool) {
	for {
		if cfg.Reduction >= ReductionBasic {
			s.reduceDeg1()
		}
		if cfg.Reduction >= ReductionBasic && cfg.Reduction < ReductionFull && s.reduceDominate() {
			continue
		}
		if cfg.Reduction >= ReductionFull && s.reduceUnconfined(cfg) {
			continue
		}
		if cfg.Reduction >= ReductionLP && s.reduceLP() {
			continue
		}
		if cfg.Reduction >= ReductionPacking {
			inf, changed := s.reducePacking()
			if inf {
				return true
			}
			if changed {
				continue
			}
		}
		if cfg.Reduction >= ReductionLP && s.reduceFold2() {
			continue
		}
		if cfg.Reduction >= ReductionFull && s.reduceTwin() {
			continue
		}
		if cfg.Reduction >= ReductionFull && s.reduceFunnel() {
			continue
		}
		if cfg.Reduction >= ReductionFull && s.reduceDesk() {
			continue
		}
		return false
	}
}

// reduceDeg1 places every undecided vertex of undecided-degree <= 1 into
// the independent set, propagating via a work-list until none remain.
func (s *State) reduceDeg1() bool {
	oldRN := s.rn
	degree := s.iterBuf
	s.used.Clear()
	queue := s.que[:0]
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			degree[v] = s.deg(v)
			if degree[v] <= 1 {
				queue = append(queue, v)
				s.used.Add(v)
			}
		}
	}
	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if s.x[v] >= 0 {
			continue
		}
		for _, u := range s.adj[v] {
			if s.x[u] < 0 {
				for _, w := range s.adj[u] {
					if s.x[w] < 0 {
						degree[w]--
						if degree[w] <= 1 && s.used.Add(w) {
							queue = append(queue, w)
						}
					}
				}
			}
		}
		s.set(v, 0)
	}
	return s.rn != oldRN
}

// reduceDominate sets v to 1 whenever N[v] contains N[u] for some
// undecided neighbour u (v is dominated and can never improve on
// choosing u instead).
func (s *State) reduceDominate() bool {
	oldRN := s.rn
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			s.used.Clear()
			s.used.Add(v)
			for _, u := range s.adj[v] {
				if s.x[u] < 0 {
					s.used.Add(u)
				}
			}
			for _, u := range s.adj[v] {
				if s.x[u] < 0 {
					dominated := true
					for _, w := range s.adj[u] {
						if s.x[w] < 0 && !s.used.Get(w) {
							dominated = false
							break
						}
					}
					if dominated {
						s.set(v, 1)
						break
					}
				}
			}
		}
	}
	return s.rn != oldRN
}

// reduceFold2 folds any undecided v with exactly two undecided,
// non-adjacent neighbours a,b into {a,b}; if a~b instead, v is forced
// into the independent set (it can never help: one of a,b already covers
// that edge).
func (s *State) reduceFold2() bool {
	oldRN := s.rn
	tmp := s.level
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			p := 0
			for _, u := range s.adj[v] {
				if s.x[u] < 0 {
					if p < 2 {
						tmp[p] = u
					}
					p++
					if p > 2 {
						break
					}
				}
			}
			if p != 2 {
				continue
			}
			a, b := tmp[0], tmp[1]
			adjacent := false
			for _, w := range s.adj[a] {
				if w == b {
					adjacent = true
					break
				}
			}
			if adjacent {
				s.set(v, 0)
				continue
			}
			s.computeFold([]int{v}, []int{a, b})
		}
	}
	return s.rn != oldRN
}

// reduceTwin folds two undecided-degree-3 vertices u,v that share the
// exact same 3-neighbourhood NS into NS, when NS is independent;
// otherwise (NS contains an edge) both u and v are forced into the
// independent set.
func (s *State) reduceTwin() bool {
	oldRN := s.rn
	vUsed := s.iterBuf
	for i := 0; i < s.n; i++ {
		vUsed[i] = 0
	}
	uid := 0
	ns := make([]int, 3)
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 && s.deg(v) == 3 {
			p := 0
			matched := false
			for _, u := range s.adj[v] {
				if s.x[u] >= 0 {
					continue
				}
				ns[p] = u
				uid++
				for _, w := range s.adj[u] {
					if s.x[w] < 0 && w != v {
						if p == 0 {
							vUsed[w] = uid
						} else if vUsed[w] == uid-1 {
							vUsed[w]++
							if p == 2 && s.deg(w) == 3 {
								twin := w
								uid++
								for _, z := range ns {
									vUsed[z] = uid
								}
								independent := true
								for _, z := range ns {
									for _, a := range s.adj[z] {
										if s.x[a] < 0 && vUsed[a] == uid {
											independent = false
										}
									}
								}
								if independent {
									s.computeFold([]int{v, twin}, append([]int(nil), ns...))
								} else {
									s.set(v, 0)
									s.set(twin, 0)
								}
								matched = true
							}
						}
					}
				}
				p++
				if matched {
					break
				}
			}
		}
	}
	return s.rn != oldRN
}

// reduceFunnel detects a vertex v whose undecided neighbourhood is
// {u1} ∪ C with C a clique and u1 its unique non-clique neighbour, and —
// when u1 (or a symmetric partner u2) has few enough private external
// neighbours — encodes the binary choice as an Alternative({v},{u}).
func (s *State) reduceFunnel() bool {
	oldRN := s.rn
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			s.funnelAt(v)
		}
	}
	return s.rn != oldRN
}

func (s *State) funnelAt(v int) {
	s.used.Clear()
	tmp := s.level
	p := 0
	for _, u := range s.adj[v] {
		if s.x[u] < 0 && s.used.Add(u) {
			tmp[p] = u
			p++
		}
	}
	if p <= 1 {
		s.set(v, 0)
		return
	}
	u1 := -1
	for i := 0; i < p; i++ {
		d := 0
		for _, u := range s.adj[tmp[i]] {
			if s.x[u] < 0 && s.used.Get(u) {
				d++
			}
		}
		if d+1 < p {
			u1 = tmp[i]
			break
		}
	}
	if u1 < 0 {
		s.set(v, 0)
		return
	}
	id := s.iterBuf
	for i := 0; i < p; i++ {
		id[tmp[i]] = -1
	}
	for _, u := range s.adj[u1] {
		if s.x[u] < 0 {
			id[u] = 0
		}
	}
	u2 := -1
	for i := 0; i < p; i++ {
		if tmp[i] != u1 && id[tmp[i]] < 0 {
			u2 = tmp[i]
			break
		}
	}
	if u2 < 0 {
		return
	}
	s.used.Remove(u1)
	s.used.Remove(u2)
	d1, d2 := 0, 0
	for _, w := range s.adj[u1] {
		if s.x[w] < 0 && s.used.Get(w) {
			d1++
		}
	}
	for _, w := range s.adj[u2] {
		if s.x[w] < 0 && s.used.Get(w) {
			d2++
		}
	}
	if d1 < p-2 && d2 < p-2 {
		return
	}
	for i := 0; i < p; i++ {
		u := tmp[i]
		if u == u1 || u == u2 {
			continue
		}
		d := 0
		for _, w := range s.adj[u] {
			if s.x[w] < 0 && s.used.Get(w) {
				d++
			}
		}
		if d < p-3 {
			return
		}
	}
	chosen := u2
	if d1 == p-2 {
		chosen = u2
	} else {
		chosen = u1
	}
	s.computeAlternative([]int{v}, []int{chosen})
}

// reduceDesk implements the quadrangle rule: v with neighbours u1,u2
// whose private external degree sums to <= 3, mirrored by a symmetric w,
// folds the choice into an Alternative({v,w},{u1,u2}).
func (s *State) reduceDesk() bool {
	oldRN := s.rn
	tmp := s.level
	nv := s.iterBuf
	for i := 0; i < s.n; i++ {
		nv[i] = -1
	}
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			d := 0
			for _, u := range s.adj[v] {
				if s.x[u] < 0 {
					if d < 4 {
						tmp[d] = u
					}
					d++
					nv[u] = v
					if d > 4 {
						break
					}
				}
			}
			if d != 2 {
				continue
			}
			u1, u2 := tmp[0], tmp[1]
			s.used.Clear()
			s.used.Add(v)
			s.used.Add(u1)
			s.used.Add(u2)
			priv1 := privateExternalDegree(s, u1)
			priv2 := privateExternalDegree(s, u2)
			if priv1+priv2 > 3 {
				continue
			}
			for _, w := range s.adj[u1] {
				if s.x[w] < 0 && w != v && nv[w] == w && adjacentTo(s, w, u2) {
					s.computeAlternative([]int{v, w}, []int{u1, u2})
					break
				}
			}
		}
	}
	return s.rn != oldRN
}

func privateExternalDegree(s *State, u int) int {
	d := 0
	for _, w := range s.adj[u] {
		if s.x[w] < 0 && !s.used.Get(w) {
			d++
		}
	}
	return d
}

func adjacentTo(s *State, a, b int) bool {
	for _, w := range s.adj[a] {
		if w == b {
			return true
		}
	}
	return false
}

// reduceUnconfined implements the classical unconfined/diamond rule: it
// grows a "child" set S={v} by repeatedly absorbing an exclusive
// neighbour's unique outside contact; if the closure ever finds an
// outside vertex with no exclusive child, v is forced into the cover and
// a unit packing constraint over N[v] is emitted (when packing is
// enabled). The diamond extension additionally forces v when two children
// share the same pair of outside neighbours.
func (s *State) reduceUnconfined(cfg Config) bool {
	oldRN := s.rn
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			s.unconfinedAt(v, cfg)
		}
	}
	return s.rn != oldRN
}

func (s *State) unconfinedAt(v int, cfg Config) {
	s.used.Clear()
	s.used.Add(v)
	ns := s.level
	deg := s.iterBuf
	size := 0
	for _, u := range s.adj[v] {
		if s.x[u] < 0 {
			s.used.Add(u)
			ns[size] = u
			deg[u] = 1
			size++
		}
	}
	p := 1
	for {
		progressed := false
		for i := 0; i < size; i++ {
			u := ns[i]
			if deg[u] != 1 {
				continue
			}
			z := -1
			for _, w := range s.adj[u] {
				if s.x[w] < 0 && !s.used.Get(w) {
					if z >= 0 {
						z = -2
						break
					}
					z = w
				}
			}
			if z == -1 {
				if cfg.Reduction >= ReductionPacking {
					s.emitUnitPacking(v)
				}
				s.set(v, 1)
				return
			}
			if z >= 0 {
				progressed = true
				s.used.Add(z)
				p++
				for _, w := range s.adj[z] {
					if s.x[w] < 0 {
						if s.used.Add(w) {
							ns[size] = w
							deg[w] = 1
							size++
						} else {
							deg[w]++
						}
					}
				}
			}
		}
		if !progressed {
			break
		}
	}
	if s.x[v] >= 0 || p < 2 {
		return
	}
	s.used.Clear()
	for i := 0; i < size; i++ {
		s.used.Add(ns[i])
	}
	v1 := make([]int, size)
	v2 := make([]int, size)
	for i := 0; i < size; i++ {
		v1[i], v2[i] = -1, -1
		u := ns[i]
		if deg[u] != 2 {
			continue
		}
		a, b := -1, -1
		ok := true
		for _, w := range s.adj[u] {
			if s.x[w] < 0 && !s.used.Get(w) {
				switch {
				case a < 0:
					a = w
				case b < 0:
					b = w
				default:
					ok = false
				}
			}
		}
		if !ok {
			continue
		}
		if a > b {
			a, b = b, a
		}
		v1[i], v2[i] = a, b
	}
	for i := 0; i < size; i++ {
		if v1[i] < 0 || v2[i] < 0 {
			continue
		}
		u := ns[i]
		s.used.Clear()
		for _, w := range s.adj[u] {
			if s.x[w] < 0 {
				s.used.Add(w)
			}
		}
		for j := i + 1; j < size; j++ {
			if v1[i] == v1[j] && v2[i] == v2[j] && !s.used.Get(ns[j]) {
				if cfg.Reduction >= ReductionPacking {
					s.emitUnitPacking(v)
				}
				s.set(v, 1)
				return
			}
		}
	}
}

// emitUnitPacking adds the constraint "(1; v, N(v))": at most one of v
// and its undecided neighbours may end up in the independent set (v is
// about to be forced into the cover, so this is the justification trail a
// subsequent restore can re-check).
func (s *State) emitUnitPacking(v int) {
	verts := make([]int, 0, s.deg(v)+1)
	verts = append(verts, v)
	for _, u := range s.adj[v] {
		if s.x[u] < 0 {
			verts = append(verts, u)
		}
	}
	s.packing = append(s.packing, Constraint{Limit: 1, Vertices: verts})
}
