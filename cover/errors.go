package cover

import "errors"

// Sentinel errors returned by cover's public operations.
var (
	// ErrTimedOut is returned by Solve when the caller's deadline elapsed
	// before the search could prove optimality. The solver's internal
	// state is left well-formed (every push paired with a pop along the
	// path that returned) but the best-known cover may not be optimal.
	ErrTimedOut = errors.New("cover: time budget exhausted")

	// ErrInvalidAdjacency is returned by New when the adjacency list is
	// not symmetric, contains a self-loop, or references an out-of-range
	// vertex id.
	ErrInvalidAdjacency = errors.New("cover: invalid adjacency")

	// ErrInvalidStartingSolution is returned by AddStartingSolution when
	// the supplied assignment does not have length N or is not a valid
	// cover of the original graph.
	ErrInvalidStartingSolution = errors.New("cover: invalid starting solution")
)

// precondition panics with a "cover: "-prefixed message. Per spec, a
// programmer precondition violation (e.g. set on an already-decided
// vertex) is fatal and not recoverable: it signals a bug in the engine
// itself, never a property of the input graph.
func precondition(msg string) {
	panic("cover: precondition violated: " + msg)
}
