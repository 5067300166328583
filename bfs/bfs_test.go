package bfs_test

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
)

// mustProblem wraps a space in a Problem or fails the test.
func mustProblem[S comparable](t testing.TB, sp core.Space[S], start S, opts ...core.ProblemOption[S]) *core.Problem[S] {
	t.Helper()
	p, err := core.NewProblem(sp, start, opts...)
	if err != nil {
		t.Fatalf("NewProblem: %v", err)
	}

	return p
}

// undirected adds u–v in both directions.
func undirected(g *core.Adjacency[string], pairs ...[2]string) {
	for _, e := range pairs {
		g.Add(e[0], e[1])
		g.Add(e[1], e[0])
	}
}

// maze is the 5×5 grid used across bfs and dfs tests.
var maze = [][]int{
	{0, 1, 0, 0, 0},
	{0, 1, 0, 1, 0},
	{0, 0, 0, 1, 0},
	{0, 1, 0, 0, 0},
	{0, 0, 0, 1, 0},
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil problem
	if _, err := bfs.BFS[string](nil); !errors.Is(err, bfs.ErrNilProblem) {
		t.Errorf("nil problem: want ErrNilProblem, got %v", err)
	}
	// start state not in the space
	g := core.NewAdjacency[string]()
	if _, err := bfs.BFS(mustProblem[string](t, g, "missing")); !errors.Is(err, bfs.ErrStartInvalid) {
		t.Errorf("missing start: want ErrStartInvalid, got %v", err)
	}
	// negative MaxDepth is a violation
	g.Add("A")
	p := mustProblem[string](t, g, "A")
	if _, err := bfs.BFS(p, bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-state space.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewAdjacency[string]()
	g.Add("A")
	res, err := bfs.BFS(mustProblem[string](t, g, "A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := core.NewAdjacency[string]()
	undirected(g, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS(mustProblem[string](t, g, "A"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
	if parent, _ := res.Parent.Parent("C"); parent != "B" {
		t.Errorf("Parent[C] = %s; want B (first discoverer)", parent)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start state.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewAdjacency[string]()
	undirected(g, [2]string{"X", "Y"}, [2]string{"P", "Q"})

	resX, _ := bfs.BFS(mustProblem[string](t, g, "X"))
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	resP, _ := bfs.BFS(mustProblem[string](t, g, "P"))
	if !reflect.DeepEqual(resP.Order, []string{"P", "Q"}) {
		t.Errorf("From P: got %v; want [P Q]", resP.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewAdjacency[string]()
	g.Add("A", "B")
	g.Add("B", "C")
	p := mustProblem[string](t, g, "A")
	// depth = 1 should only visit A,B
	if res, _ := bfs.BFS(p, bfs.WithMaxDepth[string](1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(p, bfs.WithMaxDepth[string](0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > space size => same full traversal
	if res, _ := bfs.BFS(p, bfs.WithMaxDepth[string](10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain transitions.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewAdjacency[string]()
	g.Add("A", "B")
	g.Add("B", "C")
	// filter out B→C
	res, _ := bfs.BFS(mustProblem[string](t, g, "A"),
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopAndSharedSuccessor ensures loops and shared successors do not enqueue twice.
func TestBFS_SelfLoopAndSharedSuccessor(t *testing.T) {
	g := core.NewAdjacency[string]()
	g.Add("A", "A", "B", "C")
	g.Add("B", "D")
	g.Add("C", "D")

	enqueued := map[string]int{}
	res, _ := bfs.BFS(mustProblem[string](t, g, "A"),
		bfs.WithOnEnqueue(func(s string, _ int) { enqueued[s]++ }),
	)
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order: got %v; want %v", res.Order, want)
	}
	for s, n := range enqueued {
		if n != 1 {
			t.Errorf("%s enqueued %d times", s, n)
		}
	}
	if res.Edges != 5 {
		t.Errorf("Edges = %d; want 5", res.Edges)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewAdjacency[string]()
	g.Add("A", "B")
	g.Add("B", "C")

	var enq, deq []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		mustProblem[string](t, g, "A"),
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, makeEntry("d", id, d)) }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect BFS depths A@0, B@1, C@2
	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewAdjacency[string]()
	g.Add("X")
	g.Add("Y")
	res, _ := bfs.BFS(mustProblem[string](t, g, "X"))
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	_, err := res.PathTo("Y")
	if !errors.Is(err, core.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestBFS_DepthNonDecreasing checks layer order on the maze from every open cell.
func TestBFS_DepthNonDecreasing(t *testing.T) {
	g, err := gridgraph.NewGrid(maze, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	for _, start := range g.OpenCells() {
		res, err := bfs.BFS(mustProblem[gridgraph.Cell](t, g, start))
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(res.Order); i++ {
			if res.Depth[res.Order[i]] < res.Depth[res.Order[i-1]] {
				t.Fatalf("from %v: %v (depth %d) dequeued after %v (depth %d)",
					start, res.Order[i], res.Depth[res.Order[i]], res.Order[i-1], res.Depth[res.Order[i-1]])
			}
		}
		if len(res.Order) != len(g.OpenCells()) {
			t.Errorf("from %v: reached %d of %d open cells", start, len(res.Order), len(g.OpenCells()))
		}
	}
}

// TestBFS_ShortestOnMaze checks the distance to the far corner.
func TestBFS_ShortestOnMaze(t *testing.T) {
	g, _ := gridgraph.NewGrid(maze, gridgraph.DefaultGridOptions())
	goal := gridgraph.Cell{Row: 4, Col: 4}
	res, err := bfs.BFS(mustProblem[gridgraph.Cell](t, g, gridgraph.Cell{}))
	if err != nil {
		t.Fatal(err)
	}
	if d := res.Depth[goal]; d != 8 {
		t.Errorf("Depth[4,4] = %d; want 8", d)
	}
	path, err := res.PathTo(goal)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 9 {
		t.Errorf("path %v has %d states; want 9", path, len(path))
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same problem do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := core.NewAdjacency[string]()
	g.Add("A", "B")
	p := mustProblem[string](t, g, "A")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(p); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
