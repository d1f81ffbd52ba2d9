package cover

// genSet is a reusable membership set over {0..cap-1} with O(1) Clear via
// a generation counter: instead of zeroing the backing slice on every
// Clear, it bumps a generation stamp and lazily treats any entry whose
// stamp is stale as absent.
//
// genSet is the `used` scratch buffer referenced throughout spec §4: every
// rule that borrows it calls Clear first and must not assume any residual
// membership from a previous rule's pass.
type genSet struct {
	stamp []uint32
	gen   uint32
}

// newGenSet allocates a genSet over {0..cap-1}.
func newGenSet(cap int) *genSet {
	return &genSet{stamp: make([]uint32, cap)}
}

// Clear empties the set in O(1) by advancing the generation. On the rare
// wraparound of gen, it falls back to an explicit O(cap) zeroing so stale
// stamps from a previous wraparound can never be misread as current.
func (s *genSet) Clear() {
	s.gen++
	if s.gen == 0 {
		for i := range s.stamp {
			s.stamp[i] = 0
		}
		s.gen = 1
	}
}

// Contains reports whether i is a member of the current generation.
func (s *genSet) Contains(i int) bool {
	return s.stamp[i] == s.gen
}

// Add inserts i and reports whether it was newly inserted (false if i was
// already a member of the current generation).
func (s *genSet) Add(i int) bool {
	if s.stamp[i] == s.gen {
		return false
	}
	s.stamp[i] = s.gen
	return true
}

// Remove evicts i from the current generation, regardless of whether it
// was present.
func (s *genSet) Remove(i int) {
	if s.stamp[i] == s.gen {
		s.stamp[i] = s.gen - 1 // never collides with a live generation
	}
}

// Get is a terser alias for Contains, matching the original engine's
// `used.get(v)` call sites.
func (s *genSet) Get(i int) bool { return s.Contains(i) }
