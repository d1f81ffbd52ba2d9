package cover

import (
	"sort"
	"time"
)

// selectBranchVertex picks the vertex branchStep will split on, per
// cfg.Branching (spec §4.5), falling back to BranchMaxDegree whenever the
// chosen strategy's collaborator (articulation search, min-cut) finds
// nothing to work with.
func (s *State) selectBranchVertex(cfg Config) int {
	switch cfg.Branching {
	case BranchRandom:
		return s.randomUndecidedVertex()
	case BranchMinDegree:
		return s.minDegreeVertex()
	case BranchArticulation:
		if v, ok := s.articulationPoint(); ok {
			return v
		}
		return s.maxDegreeVertex()
	case BranchGlobalMincut:
		if v, ok := s.globalMinCutVertex(); ok {
			return v
		}
		return s.maxDegreeVertex()
	case BranchSTCut:
		if v, ok := s.stCutVertex(); ok {
			return v
		}
		return s.maxDegreeVertex()
	default:
		return s.maxDegreeVertex()
	}
}

func (s *State) randomUndecidedVertex() int {
	count := 0
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			count++
		}
	}
	if count == 0 {
		precondition("randomUndecidedVertex: no undecided vertex")
	}
	pick := s.rng.Intn(count)
	idx := 0
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			if idx == pick {
				return v
			}
			idx++
		}
	}
	precondition("randomUndecidedVertex: unreachable")
	return -1
}

func (s *State) minDegreeVertex() int {
	best, bestDeg := -1, s.n+1
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			if d := s.deg(v); d < bestDeg {
				best, bestDeg = v, d
			}
		}
	}
	return best
}

// maxDegreeVertex picks the undecided vertex of maximum undecided degree,
// breaking ties by the fewest edges among its undecided neighbours (spec
// §6's "max-degree-min-edges" default strategy): preferring a neighbourhood
// that is sparser, and so cheaper for the reduction engine to simplify
// once this vertex is decided.
func (s *State) maxDegreeVertex() int {
	best, bestDeg, bestEdges := -1, -1, -1
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			d := s.deg(v)
			if d > bestDeg {
				best, bestDeg, bestEdges = v, d, s.neighborEdgeCount(v)
			} else if d == bestDeg {
				if e := s.neighborEdgeCount(v); e < bestEdges {
					best, bestEdges = v, e
				}
			}
		}
	}
	return best
}

func (s *State) neighborEdgeCount(v int) int {
	count := 0
	for _, u := range s.adj[v] {
		if s.x[u] < 0 {
			count += s.deg(u)
		}
	}
	return count
}

// mirrorsOf computes the mirrors of v (the classical measure-and-conquer
// branching refinement): an undecided u at distance exactly 2 from v is a
// mirror when N(v)\N(u) induces a clique. Whenever the branch that puts v
// into the cover is explored, every mirror can safely join it too, since
// no optimal solution excludes v from the cover while also excluding a
// mirror from it.
func (s *State) mirrorsOf(v int) []int {
	s.used.Clear()
	s.used.Add(v)
	for _, u := range s.adj[v] {
		if s.x[u] < 0 {
			s.used.Add(u)
		}
	}
	cand := map[int]bool{}
	for _, u := range s.adj[v] {
		if s.x[u] < 0 {
			for _, w := range s.adj[u] {
				if s.x[w] < 0 && !s.used.Get(w) {
					cand[w] = true
				}
			}
		}
	}
	var mirrors []int
	for w := range cand {
		nw := map[int]bool{}
		for _, z := range s.adj[w] {
			if s.x[z] < 0 {
				nw[z] = true
			}
		}
		var diff []int
		for _, u := range s.adj[v] {
			if s.x[u] < 0 && !nw[u] {
				diff = append(diff, u)
			}
		}
		clique := true
		for i := 0; i < len(diff) && clique; i++ {
			for j := i + 1; j < len(diff); j++ {
				if !adjacentTo(s, diff[i], diff[j]) {
					clique = false
					break
				}
			}
		}
		if clique {
			mirrors = append(mirrors, w)
		}
	}
	sort.Ints(mirrors)
	return mirrors
}

// emitMirrorPacking adds spec §4.5 step 3's branch-vertex packing row
// before the first (v-into-cover) child: at most (2 if v has mirrors,
// else 1) of v's undecided neighbours may still join the cover, since this
// child is about to commit v — and every mirror — to the cover itself.
func (s *State) emitMirrorPacking(v int, hasMirrors bool) {
	limit := 1
	if hasMirrors {
		limit = 2
	}
	verts := make([]int, 0, s.deg(v))
	for _, u := range s.adj[v] {
		if s.x[u] < 0 {
			verts = append(verts, u)
		}
	}
	s.packing = append(s.packing, Constraint{Limit: limit, Vertices: verts})
}

// emitSatellitePacking adds spec §4.5 step 6's per-neighbour "satellite"
// rows before the second (v-into-independent-set) child, run only when
// branching found no mirrors. For every undecided neighbour u of v, the
// vertices privately adjacent to u (u's undecided neighbours outside
// {v}∪N(v)) form a row. The row's limit is raised from 1 to 2 when some
// other neighbour u2 of v — reached via u's first private neighbour —
// dominates u: every one of u's private neighbours is also a neighbour of
// u2, and u2 has no undecided neighbour outside {v}∪N(v) or equal to u.
func (s *State) emitSatellitePacking(v int) {
	s.used.Clear()
	s.used.Add(v)
	for _, u := range s.adj[v] {
		if s.x[u] < 0 {
			s.used.Add(u)
		}
	}
	ws := s.modTmp
	for i := range ws {
		ws[i] = -1
	}
	for _, u := range s.adj[v] {
		if s.x[u] >= 0 {
			continue
		}
		verts := make([]int, 0, 4)
		for _, w := range s.adj[u] {
			if s.x[w] < 0 && !s.used.Get(w) {
				verts = append(verts, w)
				ws[w] = u
			}
		}
		if len(verts) == 0 {
			continue
		}
		limit := 1
		w1 := verts[0]
		for _, u2 := range s.adj[w1] {
			if s.x[u2] < 0 && s.used.Get(u2) && u2 != u {
				c := 0
				dominated := true
				for _, w := range s.adj[u2] {
					if s.x[w] < 0 {
						if ws[w] == u {
							c++
						} else if w == u || !s.used.Get(w) {
							dominated = false
							break
						}
					}
				}
				if dominated && c == len(verts) {
					limit = 2
					break
				}
			}
		}
		s.packing = append(s.packing, Constraint{Limit: limit, Vertices: verts})
	}
}

// branchStep implements spec §4.5/§4.7's two-way split: one child commits
// v and its mirrors to the cover, the other commits v to the independent
// set (cascading its neighbours into the cover via set's domination rule).
// Both children are explored via rec before restoring back to rn0, so a
// single branchStep call leaves State exactly as it found it — including
// any packing rows pushed by emitMirrorPacking/emitSatellitePacking along
// the way, which are truncated back to packingLen0 on each restore path.
func (s *State) branchStep(cfg Config, deadline time.Time) error {
	v := s.selectBranchVertex(cfg)
	mirrors := s.mirrorsOf(v)
	rn0 := s.rn
	packingLen0 := len(s.packing)

	if cfg.Reduction >= ReductionPacking {
		s.emitMirrorPacking(v, len(mirrors) > 0)
	}

	s.set(v, 1)
	for _, m := range mirrors {
		if s.x[m] < 0 {
			s.set(m, 1)
		}
	}
	if err := s.rec(cfg, deadline); err != nil {
		return err
	}
	s.restore(rn0)
	s.packing = s.packing[:packingLen0]

	if cfg.Reduction >= ReductionPacking && len(mirrors) == 0 {
		s.emitSatellitePacking(v)
	}

	s.set(v, 0)
	if err := s.rec(cfg, deadline); err != nil {
		return err
	}
	s.restore(rn0)
	s.packing = s.packing[:packingLen0]

	return nil
}
