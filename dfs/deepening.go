package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// IterativeDeepening runs DepthLimited with bounds 0, 1, …, maxBound-1 and
// returns the first Found result. Every bound starts from a fresh stack, so
// nothing is shared across iterations. Since bounds grow by one, the first
// path found has the fewest transitions.
//
// A bound that ends in Failure means the space was exhausted within it, and
// deeper bounds cannot succeed: the loop stops early. If every bound ends in
// Cutoff the result is still Failure; completeness is bounded by maxBound.
// A Recorder returning false also ends the loop with Failure.
//
// Result.Bound is the bound of the last iteration run and Result.Expanded
// sums all iterations.
// Returns ErrNilProblem or ErrNegativeLimit for invalid input.
func IterativeDeepening[S comparable](p *core.Problem[S], maxBound int, opts ...Option[S]) (core.Result[S], error) {
	if p == nil {
		return core.Result[S]{}, ErrNilProblem
	}
	if maxBound < 0 {
		return core.Result[S]{}, fmt.Errorf("%w: max bound %d", ErrNegativeLimit, maxBound)
	}
	o := buildOptions(opts)

	total := 0
	last := 0
	for bound := 0; bound < maxBound; bound++ {
		res, stopped := depthLimited(p, bound, &o)
		total += res.Expanded
		last = bound
		if o.OnIteration != nil {
			o.OnIteration(bound, res)
		}
		if stopped {
			break
		}
		switch res.Outcome {
		case core.Found:
			res.Expanded = total

			return res, nil
		case core.Failure:
			return core.Result[S]{Outcome: core.Failure, Bound: bound, Expanded: total}, nil
		}
	}

	return core.Result[S]{Outcome: core.Failure, Bound: last, Expanded: total}, nil
}
