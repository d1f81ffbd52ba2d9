package cover

import (
	"math"
	"time"
)

// Solver is the external handle described in spec §6: one adjacency, one
// Config, one underlying State, plus whatever snapshot InitialReduceGraph
// captured. It is not safe for concurrent use — exactly one goroutine
// drives a Solver's search at a time (spec §5).
type Solver struct {
	cfg  Config
	s    *State
	snap *snapshot
}

// New builds a Solver over a 0-indexed, symmetric adjacency list of N
// vertices (adj may list fewer than N entries; the remainder are phantom
// slots, permanently marked x=2 and not used by decompose). It returns
// ErrInvalidAdjacency if adj is not symmetric, contains a self-loop, or
// adj is longer than N.
func New(adj [][]int, N int, opts ...ConfigOption) (*Solver, error) {
	if len(adj) > N {
		return nil, ErrInvalidAdjacency
	}
	present := make([]map[int]bool, len(adj))
	for v, nbrs := range adj {
		present[v] = make(map[int]bool, len(nbrs))
		for _, u := range nbrs {
			if u == v {
				return nil, ErrInvalidAdjacency
			}
			if u < 0 || u >= len(adj) {
				return nil, ErrInvalidAdjacency
			}
			present[v][u] = true
		}
	}
	for v, nbrs := range adj {
		for _, u := range nbrs {
			if !present[u][v] {
				return nil, ErrInvalidAdjacency
			}
		}
	}
	cfg := NewConfig(opts...)
	return &Solver{cfg: cfg, s: newState(adj, N, cfg.Seed)}, nil
}

// AddStartingSolution seeds the incumbent from a caller-supplied cover y0
// (spec §6): len(y0) must equal N, and y0 must already be a valid cover of
// the original graph (every edge has an endpoint with y0[v]==1). size is
// the number of 1s in y0, provided by the caller to avoid a rescan.
func (sv *Solver) AddStartingSolution(y0 []int8, size int) error {
	if len(y0) != sv.s.N {
		return ErrInvalidStartingSolution
	}
	for v := 0; v < sv.s.n; v++ {
		if y0[v] != 1 {
			for _, u := range sv.s.adj[v] {
				if y0[u] != 1 {
					return ErrInvalidStartingSolution
				}
			}
		}
	}
	if size < sv.s.opt {
		sv.s.opt = size
		y := make([]int8, sv.s.N)
		copy(y, y0)
		sv.s.y = y
	}
	return nil
}

// Solve runs the branch-and-reduce search to completion, or until
// deadline passes (a zero deadline means no time limit). On completion it
// returns the minimum vertex cover size; on timeout it returns
// ErrTimedOut, matching spec §7's "sentinel" policy translated into Go's
// error-return idiom. When cfg.OutputLP was set via WithOutputLP, Solve
// instead returns the rounded-up LP bound without searching — printing it
// is left to the caller, since nothing else in this module performs I/O.
func (sv *Solver) Solve(deadline time.Time) (int, error) {
	if sv.cfg.OutputLP {
		sv.s.updateMatching()
		return int(math.Ceil(sv.s.lpValue())), nil
	}
	if err := sv.s.rec(sv.cfg, deadline); err != nil {
		return 0, err
	}
	return sv.s.opt, nil
}

// rec is the recursion driver of spec §4.7: time check, optional extra
// decompose, reduce, lower-bound pruning against the incumbent, solved
// check, decompose, branch — in that exact order.
func (s *State) rec(cfg Config, deadline time.Time) error {
	if !deadline.IsZero() && time.Now().After(deadline) {
		return ErrTimedOut
	}
	if cfg.ExtraDecomp {
		shrank, err := s.tryDecompose(cfg, deadline)
		if err != nil {
			return err
		}
		if shrank {
			return nil
		}
	}
	if infeasible := s.reduce(cfg); infeasible {
		return nil
	}
	if lb := s.lowerBound(cfg); lb >= s.opt {
		return nil
	}
	if s.rn == 0 {
		if s.crt < s.opt {
			s.opt = s.crt
			y := make([]int8, s.n)
			copy(y, s.x)
			s.reverse(y)
			s.y = y
		}
		return nil
	}
	shrank, err := s.tryDecompose(cfg, deadline)
	if err != nil {
		return err
	}
	if shrank {
		return nil
	}
	return s.branchStep(cfg, deadline)
}

// ReduceGraph runs the reduction engine to a fixed point without
// branching, leaving the state at its kernel. It returns true if the
// packing reduction detected an infeasible configuration (only possible
// if a starting solution or earlier search left stray packing
// constraints behind).
func (sv *Solver) ReduceGraph() bool {
	return sv.s.reduce(sv.cfg)
}

// InitialReduceGraph reduces to a kernel as ReduceGraph does, then
// snapshots the state so RestoreToSnapshot can return to exactly this
// kernel later.
func (sv *Solver) InitialReduceGraph() bool {
	infeasible := sv.s.reduce(sv.cfg)
	snap := sv.s.snapshot()
	sv.snap = &snap
	return infeasible
}

// RestoreToSnapshot rewinds to the kernel captured by InitialReduceGraph.
// Calling it without a prior InitialReduceGraph call is a precondition
// violation.
func (sv *Solver) RestoreToSnapshot() {
	if sv.snap == nil {
		precondition("RestoreToSnapshot: no snapshot captured")
	}
	sv.s.restoreSnapshot(*sv.snap)
}

// ComputeMaximalIS implements spec §6's fast greedy: reduce, then
// repeatedly set an arbitrary remaining undecided vertex to 0 (independent
// set) and reduce again, until every vertex is decided. It returns the
// assignment lifted to the original graph via reverse — always a valid
// (if not necessarily minimum) cover.
func (sv *Solver) ComputeMaximalIS() []int8 {
	s := sv.s
	for {
		s.reduce(sv.cfg)
		v := -1
		for i := 0; i < s.n; i++ {
			if s.x[i] < 0 {
				v = i
				break
			}
		}
		if v < 0 {
			break
		}
		s.set(v, 0)
	}
	y := make([]int8, s.n)
	copy(y, s.x)
	s.reverse(y)
	return y
}

// GetCurrentISSize returns the number of vertices currently and
// concretely placed in the independent set (x==0); folded-away vertices
// are not counted (see GetCurrentISSizeWithFolds).
func (sv *Solver) GetCurrentISSize() int {
	count := 0
	for v := 0; v < sv.s.n; v++ {
		if sv.s.x[v] == 0 {
			count++
		}
	}
	return count
}

// GetCurrentISSizeWithFolds extends GetCurrentISSize with an optimistic
// estimate of the independent-set mass already locked in by active
// fold/alternative gadgets: each gadget's "S" (resp. "A") side contributes
// len(removed)/2 vertices that are guaranteed to end up on one side or the
// other of the final split once the gadget resolves.
func (sv *Solver) GetCurrentISSizeWithFolds() int {
	count := sv.GetCurrentISSize()
	for _, m := range sv.s.mods {
		count += len(m.removed) / 2
	}
	return count
}

// FoldedVerticesExist reports whether any fold/alternative gadget is
// currently installed.
func (sv *Solver) FoldedVerticesExist() bool {
	return len(sv.s.mods) > 0
}

// NumberOfNodesRemaining returns the count of still-undecided vertices.
func (sv *Solver) NumberOfNodesRemaining() int {
	return sv.s.rn
}

// NumberOfEdgesRemaining returns the number of edges in the undecided
// subgraph.
func (sv *Solver) NumberOfEdgesRemaining() int {
	total := 0
	for v := 0; v < sv.s.n; v++ {
		if sv.s.x[v] < 0 {
			total += sv.s.deg(v)
		}
	}
	return total / 2
}

// ExtendFinerIS merges a partial independent-set mask obtained on the
// current reduced graph (mask[v] meaningful only for still-undecided v;
// already-decided entries are ignored and overwritten) back into a cover
// on the original graph, by lifting it through the modification stack.
func (sv *Solver) ExtendFinerIS(mask []int8) ([]int8, error) {
	if len(mask) != sv.s.n {
		return nil, ErrInvalidStartingSolution
	}
	y := make([]int8, sv.s.n)
	for v := 0; v < sv.s.n; v++ {
		if sv.s.x[v] >= 0 {
			y[v] = sv.s.x[v]
		} else {
			y[v] = mask[v]
		}
	}
	sv.s.reverse(y)
	return y, nil
}
