package cover

// ReductionLevel selects which reduction rules reduce() applies.
//
//	0 = deg1 + dominate
//	1 = 0 + lp, fold2
//	2 = 1 + unconfined, twin, funnel, desk (dominate is dropped in favor
//	    of unconfined, which subsumes it)
//	3 = 2 + packing
type ReductionLevel int

const (
	ReductionBasic    ReductionLevel = 0
	ReductionLP       ReductionLevel = 1
	ReductionFull     ReductionLevel = 2
	ReductionPacking  ReductionLevel = 3
	maxReductionLevel                = ReductionPacking
)

// LowerBoundLevel selects which estimators lowerBound() combines.
//
//	0 = crt only
//	1 = + clique cover bound
//	2 = + lp bound
//	3 = + cycle bound
//	4 = all three
type LowerBoundLevel int

const (
	LowerBoundNone    LowerBoundLevel = 0
	LowerBoundClique  LowerBoundLevel = 1
	LowerBoundLP      LowerBoundLevel = 2
	LowerBoundCycle   LowerBoundLevel = 3
	LowerBoundAll     LowerBoundLevel = 4
	maxLowerBoundLevel                = LowerBoundAll
)

// BranchStrategy selects how branching() picks the next branch vertex.
type BranchStrategy int

const (
	// BranchRandom picks a uniformly random undecided vertex.
	BranchRandom BranchStrategy = 0
	// BranchMinDegree picks the undecided vertex of minimum undecided degree.
	BranchMinDegree BranchStrategy = 1
	// BranchMaxDegree picks the undecided vertex of maximum undecided
	// degree, breaking ties by the minimum edge count among its
	// undecided neighbours. This is the default.
	BranchMaxDegree BranchStrategy = 2
	// BranchArticulation prefers an articulation point of the undecided
	// subgraph, falling back to BranchMaxDegree when none exists.
	BranchArticulation BranchStrategy = 3
	// BranchGlobalMincut picks the lowest-numbered vertex of a minimum
	// vertex cut (computed via flow.Dinic) separating the two
	// highest-degree undecided vertices. It does not search all vertex
	// pairs for a global min-cut. It falls back to BranchMaxDegree when
	// no cut is found.
	BranchGlobalMincut BranchStrategy = 4
	// BranchSTCut picks the lowest-numbered vertex of a single minimum
	// vertex cut (computed via flow.Dinic) between a double-sweep BFS
	// farthest pair. No bipartite-matching refinement is applied. It
	// falls back to BranchMaxDegree when no cut is found.
	BranchSTCut BranchStrategy = 5
)

// Config is an immutable bundle of search knobs, resolved once via
// NewConfig and threaded through every Solver derived from it (including
// the sub-solvers decompose creates). There is no package-level mutable
// configuration: every read goes through a Config value held by the
// Solver that needs it.
type Config struct {
	Reduction   ReductionLevel
	LowerBound  LowerBoundLevel
	Branching   BranchStrategy
	OutputLP    bool
	ExtraDecomp bool
	Seed        int64
}

// ConfigOption customizes a Config before it is frozen by NewConfig.
type ConfigOption func(*Config)

// WithReduction overrides the reduction level (default ReductionPacking).
func WithReduction(level ReductionLevel) ConfigOption {
	return func(c *Config) { c.Reduction = level }
}

// WithLowerBound overrides the lower-bound level (default LowerBoundAll).
func WithLowerBound(level LowerBoundLevel) ConfigOption {
	return func(c *Config) { c.LowerBound = level }
}

// WithBranching overrides the branch vertex selection strategy (default
// BranchMaxDegree).
func WithBranching(strategy BranchStrategy) ConfigOption {
	return func(c *Config) { c.Branching = strategy }
}

// WithOutputLP makes Solve compute and report the LP bound only, skipping
// search entirely.
func WithOutputLP() ConfigOption {
	return func(c *Config) { c.OutputLP = true }
}

// WithExtraDecomp enables a decomposition attempt on every recursion node,
// not only immediately after branching.
func WithExtraDecomp() ConfigOption {
	return func(c *Config) { c.ExtraDecomp = true }
}

// WithSeed fixes the RNG seed consumed by BranchRandom, so that runs using
// it are reproducible. The default (zero value) seeds from a fixed
// constant, never from wall-clock time or a package-level global.
func WithSeed(seed int64) ConfigOption {
	return func(c *Config) { c.Seed = seed }
}

// NewConfig resolves a Config from functional options, defaulting to the
// strongest reduction/lower-bound combination and the max-degree branching
// strategy — the same defaults the original engine ships with.
func NewConfig(opts ...ConfigOption) Config {
	cfg := Config{
		Reduction:  ReductionPacking,
		LowerBound: LowerBoundAll,
		Branching:  BranchMaxDegree,
		Seed:       1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Reduction < 0 {
		cfg.Reduction = 0
	}
	if cfg.Reduction > maxReductionLevel {
		cfg.Reduction = maxReductionLevel
	}
	if cfg.LowerBound < 0 {
		cfg.LowerBound = 0
	}
	if cfg.LowerBound > maxLowerBoundLevel {
		cfg.LowerBound = maxLowerBoundLevel
	}
	return cfg
}
