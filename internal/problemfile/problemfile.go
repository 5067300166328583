// Package problemfile loads search problems from YAML documents.
//
// A document describes either a grid or an adjacency graph:
//
//	kind: grid
//	grid: [[0,1,0],[0,0,0]]
//	start: [0, 0]
//	goal: [1, 2]
//	connectivity: 4
//
//	kind: graph
//	graph:
//	  A: [B, C]
//	  B: [D]
//	start: A
//	goal: D
//
// Graph keys keep their document order. Grid cells are exposed as "r,c"
// string states so that both kinds share one *core.Problem[string].
package problemfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
)

// Problem kinds.
const (
	KindGrid  = "grid"
	KindGraph = "graph"
)

var (
	// ErrUnknownKind indicates a kind other than "grid" or "graph".
	ErrUnknownKind = errors.New("problemfile: unknown kind")
	// ErrMissingStart indicates a document without a start state.
	ErrMissingStart = errors.New("problemfile: start is required")
	// ErrBadCoordinate indicates a grid state that is not a row,col pair.
	ErrBadCoordinate = errors.New("problemfile: bad grid coordinate")
)

// Definition is a decoded problem document. Start and Goal are state
// strings ("r,c" for grids); an empty Goal means none was given.
type Definition struct {
	Kind         string
	Grid         [][]int
	Connectivity int
	Graph        *core.Adjacency[string]
	Start        string
	Goal         string
}

type document struct {
	Kind         string       `yaml:"kind"`
	Grid         [][]int      `yaml:"grid"`
	Start        stateRef     `yaml:"start"`
	Goal         stateRef     `yaml:"goal"`
	Connectivity int          `yaml:"connectivity"`
	Graph        orderedGraph `yaml:"graph"`
}

// stateRef accepts a node name, a "r,c" string or a [r, c] sequence.
type stateRef struct {
	Value string
}

func (s *stateRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Value = node.Value
		return nil
	case yaml.SequenceNode:
		var rc []int
		if err := node.Decode(&rc); err != nil || len(rc) != 2 {
			return fmt.Errorf("%w: line %d", ErrBadCoordinate, node.Line)
		}
		s.Value = gridgraph.Cell{Row: rc[0], Col: rc[1]}.String()
		return nil
	default:
		return fmt.Errorf("unsupported state type at line %d: %v", node.Line, node.Kind)
	}
}

// orderedGraph decodes a mapping of node → successors in document order.
type orderedGraph struct {
	Adj *core.Adjacency[string]
}

func (g *orderedGraph) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("graph must be a mapping, got %v at line %d", node.Kind, node.Line)
	}
	g.Adj = core.NewAdjacency[string]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var succ []string
		if err := val.Decode(&succ); err != nil {
			return fmt.Errorf("graph node %q: %w", key.Value, err)
		}
		g.Adj.Add(key.Value, succ...)
	}

	return nil
}

// Load reads and parses the problem document at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a problem document.
func Parse(data []byte) (*Definition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing problem file: %w", err)
	}

	d := &Definition{
		Kind:         strings.ToLower(strings.TrimSpace(doc.Kind)),
		Connectivity: doc.Connectivity,
		Start:        doc.Start.Value,
		Goal:         doc.Goal.Value,
	}
	switch d.Kind {
	case KindGrid:
		d.Grid = doc.Grid
	case KindGraph:
		d.Graph = doc.Graph.Adj
		if d.Graph == nil {
			d.Graph = core.NewAdjacency[string]()
		}
	default:
		return nil, fmt.Errorf("%w: %q (use: grid, graph)", ErrUnknownKind, doc.Kind)
	}
	if d.Start == "" {
		return nil, ErrMissingStart
	}

	return d, nil
}

// Space builds the state space. A zero Connectivity falls back to def
// (4 or 8); it is ignored for graphs.
func (d *Definition) Space(def int) (core.Space[string], error) {
	if d.Kind == KindGraph {
		return d.Graph, nil
	}
	conn := d.Connectivity
	if conn == 0 {
		conn = def
	}
	opts := gridgraph.DefaultGridOptions()
	switch conn {
	case 4:
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("problemfile: connectivity %d (use: 4, 8)", conn)
	}
	g, err := gridgraph.NewGrid(d.Grid, opts)
	if err != nil {
		return nil, err
	}

	return gridSpace{g}, nil
}

// Problem builds the search problem, with the goal when one is set.
// Grid states are normalized to the canonical "r,c" form.
func (d *Definition) Problem(defaultConn int) (*core.Problem[string], error) {
	start, goal := d.Start, d.Goal
	if d.Kind == KindGrid {
		var err error
		if start, err = canonical(start); err != nil {
			return nil, err
		}
		if goal != "" {
			if goal, err = canonical(goal); err != nil {
				return nil, err
			}
		}
	}
	sp, err := d.Space(defaultConn)
	if err != nil {
		return nil, err
	}
	var opts []core.ProblemOption[string]
	if goal != "" {
		opts = append(opts, core.WithGoal(goal))
	}

	return core.NewProblem(sp, start, opts...)
}

func canonical(s string) (string, error) {
	c, err := ParseCell(s)
	if err != nil {
		return "", err
	}

	return c.String(), nil
}

// ParseCell parses "r,c" (spaces allowed) into a cell.
func ParseCell(s string) (gridgraph.Cell, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	return gridgraph.Cell{Row: row, Col: col}, nil
}

// gridSpace adapts a Grid to "r,c" string states.
type gridSpace struct {
	g *gridgraph.Grid
}

func (s gridSpace) Neighbors(state string) []string {
	c, err := ParseCell(state)
	if err != nil {
		return nil
	}
	cells := s.g.Neighbors(c)
	out := make([]string, len(cells))
	for i, n := range cells {
		out[i] = n.String()
	}

	return out
}

func (s gridSpace) Valid(state string) bool {
	c, err := ParseCell(state)

	return err == nil && c.String() == state && s.g.Valid(c)
}
