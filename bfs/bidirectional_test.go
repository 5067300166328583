package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

func mazeGrid(t testing.TB) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(maze, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	return g
}

// requireValidPath checks endpoints, adjacency and absence of repeats.
func requireValidPath(t *testing.T, g *gridgraph.Grid, path []gridgraph.Cell, start, goal gridgraph.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	seen := make(map[gridgraph.Cell]bool, len(path))
	for i, c := range path {
		assert.False(t, seen[c], "state %v repeated", c)
		seen[c] = true
		assert.False(t, g.Blocked(c), "state %v is blocked", c)
		if i > 0 {
			assert.Equal(t, 1, gridgraph.Manhattan(path[i-1], c), "%v → %v is not a move", path[i-1], c)
		}
	}
}

func TestBidirectional_Maze(t *testing.T) {
	g := mazeGrid(t)
	p, err := core.NewProblem[gridgraph.Cell](g, cell(0, 0), core.WithGoal(cell(4, 4)))
	require.NoError(t, err)

	res, err := bfs.Bidirectional(p)
	require.NoError(t, err)
	require.True(t, res.Found())

	want := []gridgraph.Cell{
		cell(0, 0), cell(1, 0), cell(2, 0), cell(2, 1), cell(2, 2),
		cell(3, 2), cell(3, 3), cell(3, 4), cell(4, 4),
	}
	assert.Equal(t, want, res.Path)
	assert.Equal(t, 10, res.Expanded)
	requireValidPath(t, g, res.Path, cell(0, 0), cell(4, 4))
}

func TestBidirectional_BlockedEndpoints(t *testing.T) {
	g := mazeGrid(t)
	for name, pair := range map[string][2]gridgraph.Cell{
		"blocked start": {cell(0, 1), cell(4, 4)},
		"blocked goal":  {cell(0, 0), cell(4, 3)},
		"outside grid":  {cell(0, 0), cell(9, 9)},
	} {
		t.Run(name, func(t *testing.T) {
			p, err := core.NewProblem[gridgraph.Cell](g, pair[0], core.WithGoal(pair[1]))
			require.NoError(t, err)

			dequeued := 0
			res, err := bfs.Bidirectional(p, bfs.WithOnDequeue(func(gridgraph.Cell, int) { dequeued++ }))
			require.NoError(t, err)
			assert.Equal(t, core.Failure, res.Outcome)
			assert.Nil(t, res.Path)
			assert.Zero(t, res.Expanded)
			assert.Zero(t, dequeued)
		})
	}
}

func TestBidirectional_StartIsGoal(t *testing.T) {
	p, err := core.NewProblem[gridgraph.Cell](mazeGrid(t), cell(2, 2), core.WithGoal(cell(2, 2)))
	require.NoError(t, err)

	res, err := bfs.Bidirectional(p)
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, []gridgraph.Cell{cell(2, 2)}, res.Path)
	assert.Zero(t, res.Expanded)
}

func TestBidirectional_Errors(t *testing.T) {
	_, err := bfs.Bidirectional[string](nil)
	assert.ErrorIs(t, err, bfs.ErrNilProblem)

	g := core.NewAdjacency[string]()
	g.Add("A", "B")
	p, err := core.NewProblem[string](g, "A")
	require.NoError(t, err)
	_, err = bfs.Bidirectional(p)
	assert.ErrorIs(t, err, bfs.ErrNoGoalState)

	p, err = core.NewProblem[string](g, "A", core.WithGoal("B"))
	require.NoError(t, err)
	_, err = bfs.Bidirectional(p, bfs.WithMaxDepth[string](-3))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBidirectional_Unreachable(t *testing.T) {
	walled := [][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	}
	g, err := gridgraph.NewGrid(walled, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	p, err := core.NewProblem[gridgraph.Cell](g, cell(0, 0), core.WithGoal(cell(2, 3)))
	require.NoError(t, err)

	res, err := bfs.Bidirectional(p)
	require.NoError(t, err)
	assert.Equal(t, core.Failure, res.Outcome)
	assert.Equal(t, -1, res.Len())
	assert.Positive(t, res.Expanded)
}

// The backward side must walk edges against their direction.
func TestBidirectional_DirectedUsesPredecessors(t *testing.T) {
	g := core.NewAdjacency[string]()
	g.Add("A", "B")
	g.Add("B", "C")
	g.Add("D", "C")

	p, err := core.NewProblem[string](g, "A", core.WithGoal("C"))
	require.NoError(t, err)
	res, err := bfs.Bidirectional(p)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)

	// C→B does not exist, so following successors backward from C would be wrong.
	g2 := core.NewAdjacency[string]()
	g2.Add("A", "B")
	g2.Add("C", "B")
	p2, err := core.NewProblem[string](g2, "A", core.WithGoal("C"))
	require.NoError(t, err)
	res2, err := bfs.Bidirectional(p2)
	require.NoError(t, err)
	assert.Equal(t, core.Failure, res2.Outcome)
}

// Every found path is a valid route, and never shorter than the BFS distance.
func TestBidirectional_AllPairsOnMaze(t *testing.T) {
	g := mazeGrid(t)
	open := g.OpenCells()
	for _, start := range open {
		base, err := bfs.BFS(mustProblem[gridgraph.Cell](t, g, start))
		require.NoError(t, err)
		for _, goal := range open {
			p := mustProblem[gridgraph.Cell](t, g, start, core.WithGoal(goal))
			res, err := bfs.Bidirectional(p)
			require.NoError(t, err)

			d, reachable := base.Depth[goal]
			require.Equal(t, reachable, res.Found(), "%v → %v", start, goal)
			if !reachable {
				continue
			}
			requireValidPath(t, g, res.Path, start, goal)
			assert.GreaterOrEqual(t, len(res.Path), d+1)
		}
	}
}

func TestBidirectional_FilterBlocksAllRoutes(t *testing.T) {
	g := mazeGrid(t)
	p := mustProblem[gridgraph.Cell](t, g, cell(0, 0), core.WithGoal(cell(4, 4)))
	// forbid entering row 2 from row 1 in either orientation
	res, err := bfs.Bidirectional(p, bfs.WithFilterNeighbor(func(from, to gridgraph.Cell) bool {
		return !(from.Row == 1 && to.Row == 2) && !(from.Row == 2 && to.Row == 1)
	}))
	require.NoError(t, err)
	assert.Equal(t, core.Failure, res.Outcome)
}
