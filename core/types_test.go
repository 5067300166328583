package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

// line is a symmetric 1-D space 0..n-1 without a Reverser.
type line int

func (l line) Neighbors(s int) []int {
	var out []int
	if s > 0 {
		out = append(out, s-1)
	}
	if s+1 < int(l) {
		out = append(out, s+1)
	}

	return out
}

func (l line) Valid(s int) bool { return s >= 0 && s < int(l) }

func TestNewProblem_NilSpace(t *testing.T) {
	p, err := core.NewProblem[string](nil, "A")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, core.ErrNilSpace)
}

func TestNewProblem_NilGoalFunc(t *testing.T) {
	_, err := core.NewProblem[int](line(3), 0, core.WithGoalFunc[int](nil))
	assert.ErrorIs(t, err, core.ErrNilGoal)
}

func TestProblem_NoGoal(t *testing.T) {
	p, err := core.NewProblem[int](line(3), 0)
	require.NoError(t, err)

	_, ok := p.Goal()
	assert.False(t, ok)
	for s := 0; s < 3; s++ {
		assert.False(t, p.IsGoal(s), "no goal configured means nothing is a goal")
	}
}

func TestProblem_GoalState(t *testing.T) {
	p, err := core.NewProblem[int](line(5), 0, core.WithGoal(4))
	require.NoError(t, err)

	g, ok := p.Goal()
	assert.True(t, ok)
	assert.Equal(t, 4, g)
	assert.True(t, p.IsGoal(4))
	assert.False(t, p.IsGoal(3))
	assert.Equal(t, 0, p.Initial())
	assert.Equal(t, []int{1}, p.Expand(0))
	assert.True(t, p.Valid(4))
	assert.False(t, p.Valid(5))
}

func TestProblem_GoalFuncOverridesPredicate(t *testing.T) {
	even := func(s int) bool { return s%2 == 0 }
	p, err := core.NewProblem[int](line(5), 1, core.WithGoal(3), core.WithGoalFunc(even))
	require.NoError(t, err)

	g, ok := p.Goal()
	assert.True(t, ok)
	assert.Equal(t, 3, g, "goal state is kept")
	assert.True(t, p.IsGoal(2))
	assert.False(t, p.IsGoal(3))
}

func TestProblem_ExpandReverse(t *testing.T) {
	// symmetric space falls back to Neighbors
	p, err := core.NewProblem[int](line(3), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, p.ExpandReverse(1))

	// Adjacency implements Reverser
	g := core.NewAdjacency[string]()
	g.Add("A", "B")
	q, err := core.NewProblem[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, q.ExpandReverse("B"))
	assert.Empty(t, q.ExpandReverse("A"))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "found", core.Found.String())
	assert.Equal(t, "cutoff", core.Cutoff.String())
	assert.Equal(t, "failure", core.Failure.String())
	assert.Equal(t, "unknown", core.Outcome(42).String())
}

func TestResult_Len(t *testing.T) {
	assert.Equal(t, 2, core.FoundPath([]string{"A", "B", "C"}).Len())
	assert.Equal(t, 0, core.FoundPath([]string{"A"}).Len())
	assert.Equal(t, -1, core.CutoffResult[string]().Len())
	assert.Equal(t, -1, core.FailureResult[string]().Len())
	assert.True(t, core.FoundPath([]int{1}).Found())
	assert.False(t, core.FailureResult[int]().Found())
}
