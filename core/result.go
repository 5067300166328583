package core

// Outcome tags the result of a goal-directed search.
type Outcome int

const (
	// Failure means the space was exhausted without reaching a goal, or a
	// precondition (invalid start or goal) rejected the search.
	Failure Outcome = iota
	// Found means Result.Path holds a path from the initial state to a goal.
	Found
	// Cutoff means a depth bound truncated at least one branch, so a larger
	// bound might still succeed.
	Cutoff
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Cutoff:
		return "cutoff"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the sole artifact a goal-directed search returns.
//   - Outcome: Found, Cutoff or Failure.
//   - Path: initial..goal inclusive, non-nil only when Outcome == Found.
//   - Bound: depth bound that produced the result (depth-limited searches).
//   - Expanded: number of states whose successors were generated.
type Result[S comparable] struct {
	Outcome  Outcome
	Path     []S
	Bound    int
	Expanded int
}

// FoundPath returns a Found result for path.
func FoundPath[S comparable](path []S) Result[S] {
	return Result[S]{Outcome: Found, Path: path}
}

// CutoffResult returns a Cutoff result.
func CutoffResult[S comparable]() Result[S] {
	return Result[S]{Outcome: Cutoff}
}

// FailureResult returns a Failure result.
func FailureResult[S comparable]() Result[S] {
	return Result[S]{Outcome: Failure}
}

// Found reports whether r carries a path.
func (r Result[S]) Found() bool { return r.Outcome == Found }

// Len returns the number of transitions in the path, or -1 without one.
func (r Result[S]) Len() int {
	if r.Outcome != Found {
		return -1
	}

	return len(r.Path) - 1
}
