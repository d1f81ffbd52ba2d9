package cover

import "math/rand"

// State owns the mutable search state described in spec §3: adjacency,
// the per-vertex assignment vector, the restore journal, and the scratch
// buffers every reduction/bound/branching rule borrows. There is exactly
// one State per Solver (and one per sub-solver decompose spins up); it is
// never shared across goroutines.
//
// Assignment values, matching spec §3:
//
//	-1 undecided
//	 0 in the independent set (not in the cover)
//	 1 in the cover
//	 2 temporarily absent (removed by a fold/alternative)
type State struct {
	N int // logical universe size, including phantom slots [n, N)
	n int // number of real vertices; adj has length n

	adj []adjList
	x   []int8

	rn  int // count of undecided indices
	crt int // count of indices with x[i]==1

	// journal is the restore stack. A non-negative entry is a vertex id
	// pushed by set(); the sentinel modJournalMark entry means "pop one
	// modification from mods".
	journal []int
	mods    []*modification

	// packing holds the active packing constraints (spec §3, §4.8).
	packing []Constraint

	// Scratch buffers reused across rules (spec §9: allocate once as
	// fields, document which indices are live per borrow).
	que     []int
	level   []int
	iterBuf []int
	modTmp  []int
	used    *genSet

	// inM/outM back the bipartite-matching LP bound: outM[v] is the
	// right-side vertex matched from left copy v (or -1), inM[u] is the
	// left-side vertex matched to right copy u (or -1).
	inM  []int
	outM []int

	lb int // memoized lower bound across calls within one recursion node

	// opt/y track the best complete assignment found so far by rec()
	// within this State's own search (spec §4.7's incumbent `opt`). A
	// sub-solver spun up by decompose has its own independent opt/y; they
	// are never shared across State instances.
	opt int
	y   []int8

	rng *rand.Rand
}

type adjList = []int

const modJournalMark = -1

// newState allocates a State over a 0-indexed, symmetric adjacency list
// of n real vertices, reserving phantom slots [n, N). Phantom slots are
// permanently decided: every one of them is marked x=2 (irrelevant to any
// count). Nothing repurposes them as forced-out/forced-in markers:
// decompose builds its sub-solvers with N == n and no phantom slots.
// seed drives BranchRandom's vertex choice.
func newState(adj [][]int, N int, seed int64) *State {
	n := len(adj)
	s := &State{
		N:       N,
		n:       n,
		adj:     make([]adjList, N),
		x:       make([]int8, N),
		journal: make([]int, 0, n+8),
		que:     make([]int, N+1),
		level:   make([]int, N+1),
		iterBuf: make([]int, N+1),
		modTmp:  make([]int, N+1),
		used:    newGenSet(2*N + 2),
		inM:     make([]int, N),
		outM:    make([]int, N),
		opt:     n + 1,
		y:       make([]int8, N),
		rng:     rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < n; i++ {
		s.adj[i] = adj[i]
		s.x[i] = -1
	}
	for i := n; i < N; i++ {
		s.x[i] = 2
	}
	s.rn = n
	for i := range s.inM {
		s.inM[i] = -1
		s.outM[i] = -1
	}
	return s
}

// deg returns v's undecided degree. Precondition: x[v] == -1.
func (s *State) deg(v int) int {
	if s.x[v] != -1 {
		precondition("deg on a decided vertex")
	}
	d := 0
	for _, u := range s.adj[v] {
		if s.x[u] < 0 {
			d++
		}
	}
	return d
}

// set assigns a to v, journaling the change so restore can undo it. If
// a==0 (v joins the independent set), every still-undecided neighbour of
// v is dominated into the cover (a==1), per spec §4.2 — this is what lets
// a single set(v,0) call cascade through an entire deg1 chain.
func (s *State) set(v int, a int8) {
	if s.x[v] != -1 {
		precondition("set on an already-decided vertex")
	}
	s.x[v] = a
	s.rn--
	s.crt += int(a)
	s.journal = append(s.journal, v)
	if a == 0 {
		for _, u := range s.adj[v] {
			if s.x[u] < 0 {
				s.x[u] = 1
				s.rn--
				s.crt++
				s.journal = append(s.journal, u)
			}
		}
	}
}

// pushModification installs m and journals a sentinel marking where it
// was pushed, so restore(targetRn) knows to pop a modification there.
func (s *State) pushModification(m *modification) {
	m.apply(s)
	s.rn -= len(m.removed)
	s.crt += m.crtAdd
	s.journal = append(s.journal, modJournalMark)
	s.mods = append(s.mods, m)
}

// restore unwinds journal entries (plain decisions and modifications)
// until rn == targetRn, restoring x and adj to byte-identical contents to
// whatever they held when rn last equalled targetRn.
func (s *State) restore(targetRn int) {
	for s.rn < targetRn {
		top := s.journal[len(s.journal)-1]
		s.journal = s.journal[:len(s.journal)-1]
		if top != modJournalMark {
			v := top
			s.crt -= int(s.x[v])
			s.x[v] = -1
			s.rn++
			continue
		}
		m := s.mods[len(s.mods)-1]
		s.mods = s.mods[:len(s.mods)-1]
		m.undo(s)
		s.rn += len(m.removed)
		s.crt -= m.crtAdd
	}
}

// reverse lifts best-known assignment y through every modification on the
// stack, in LIFO (outermost-last) order, turning a cover of the reduced
// graph into a cover of the original graph.
func (s *State) reverse(y []int8) {
	for i := len(s.mods) - 1; i >= 0; i-- {
		s.mods[i].reverse(y)
	}
}

// snapshot captures enough of State to restore to exactly this point
// later via restoreSnapshot, used by InitialReduceGraph/RestoreToSnapshot.
// It is heavier than restore(targetRn): it copies x wholesale so that a
// caller who has continued mutating rn/journal past this point (e.g. via
// further plain `set` calls outside of a Fold/Alternative) can still snap
// back, matching the original's snapshotX field.
type snapshot struct {
	x          []int8
	modLen     int
	rn         int
	crt        int
	journal    int
	packingLen int
}

func (s *State) snapshot() snapshot {
	x := make([]int8, len(s.x))
	copy(x, s.x)
	return snapshot{x: x, modLen: len(s.mods), rn: s.rn, crt: s.crt, journal: len(s.journal), packingLen: len(s.packing)}
}

func (s *State) restoreSnapshot(snap snapshot) {
	for len(s.mods) > snap.modLen {
		m := s.mods[len(s.mods)-1]
		s.mods = s.mods[:len(s.mods)-1]
		m.undo(s)
	}
	copy(s.x, snap.x)
	s.rn = snap.rn
	s.crt = snap.crt
	if snap.journal <= len(s.journal) {
		s.journal = s.journal[:snap.journal]
	}
	if snap.packingLen <= len(s.packing) {
		s.packing = s.packing[:snap.packingLen]
	}
}
