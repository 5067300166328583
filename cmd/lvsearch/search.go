package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/problemfile"
)

// searchFlags are shared by every search subcommand.
type searchFlags struct {
	start     string
	goal      string
	trace     bool
	traceFile string
	limit     int
	maxBound  int
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "override the start state (\"r,c\" for grids)")
	cmd.Flags().StringVar(&f.goal, "goal", "", "override the goal state (\"r,c\" for grids)")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "emit snapshots as JSON lines (overrides config)")
	cmd.Flags().StringVar(&f.traceFile, "trace-file", "", "write snapshots to this file instead of stdout")
}

// --- problem and trace setup ---

func loadProblem(path string, f *searchFlags) (*core.Problem[string], error) {
	def, err := problemfile.Load(path)
	if err != nil {
		return nil, err
	}
	if f.start != "" {
		def.Start = f.start
	}
	if f.goal != "" {
		def.Goal = f.goal
	}
	p, err := def.Problem(cfg.Grid.Connectivity)
	if err != nil {
		return nil, fmt.Errorf("building problem from %s: %w", path, err)
	}
	logger.Debug("problem loaded", "path", path, "kind", def.Kind, "start", p.Initial(), "goal", def.Goal)
	return p, nil
}

// openTrace returns the snapshot writer selected by flags and config, or nil.
// The returned close function is always safe to call.
func openTrace(cmd *cobra.Command, f *searchFlags) (*traceWriter, func() error, error) {
	enabled := cfg.Trace.Enabled
	if cmd.Flags().Changed("trace") {
		enabled = f.trace
	}
	if !enabled {
		return nil, func() error { return nil }, nil
	}
	if f.traceFile == "" {
		return newTraceWriter(cmd.OutOrStdout(), cfg.Trace.MaxSnapshots), func() error { return nil }, nil
	}
	file, err := os.Create(f.traceFile)
	if err != nil {
		return nil, nil, fmt.Errorf("creating trace file: %w", err)
	}
	return newTraceWriter(file, cfg.Trace.MaxSnapshots), file.Close, nil
}

// closeInto runs closeFn and keeps its error in *err unless *err is already set.
func closeInto(err *error, closeFn func() error) {
	if cerr := closeFn(); cerr != nil && *err == nil {
		*err = fmt.Errorf("closing trace: %w", cerr)
	}
}

// --- reporting ---

func printResult(w io.Writer, r core.Result[string]) {
	switch r.Outcome {
	case core.Found:
		fmt.Fprintf(w, "Path to goal: %s\n", strings.Join(r.Path, " -> "))
		fmt.Fprintf(w, "Path length: %d\n", r.Len())
	case core.Cutoff:
		fmt.Fprintf(w, "Cutoff: no path within depth limit %d\n", r.Bound)
	default:
		fmt.Fprintln(w, "No path found")
	}
}

func logResult(algorithm string, r core.Result[string]) {
	logger.Info("search finished",
		"algorithm", algorithm,
		"outcome", r.Outcome.String(),
		"length", r.Len(),
		"bound", r.Bound,
		"expanded", r.Expanded,
	)
}

// --- bfs ---

func bfsCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "bfs <problem.yaml>",
		Short: "Breadth-first traversal; prints the visit order and, with a goal, the shortest path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBFS(cmd, args[0], &f)
		},
	}
	f.register(cmd)
	return cmd
}

func runBFS(cmd *cobra.Command, path string, f *searchFlags) (err error) {
	p, err := loadProblem(path, f)
	if err != nil {
		return err
	}
	tw, closeTrace, err := openTrace(cmd, f)
	if err != nil {
		return err
	}
	defer closeInto(&err, closeTrace)

	var opts []bfs.Option[string]
	if tw != nil {
		opts = append(opts, bfs.WithRecorder[string](tw.Record))
	}
	res, err := bfs.BFS(p, opts...)
	if err != nil {
		return err
	}
	if err := tw.Err(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Visited %d states: %s\n", len(res.Order), strings.Join(res.Order, " "))
	goal, ok := p.Goal()
	if !ok {
		logger.Info("search finished", "algorithm", "bfs", "visited", len(res.Order), "edges", res.Edges)
		return nil
	}
	r := core.FailureResult[string]()
	if path, err := res.PathTo(goal); err == nil {
		r = core.FoundPath(path)
	}
	r.Expanded = len(res.Order)
	printResult(out, r)
	logResult("bfs", r)
	return nil
}

// --- bidi ---

func bidiCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "bidi <problem.yaml>",
		Short: "Bidirectional breadth-first search between start and goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBidi(cmd, args[0], &f)
		},
	}
	f.register(cmd)
	return cmd
}

func runBidi(cmd *cobra.Command, path string, f *searchFlags) (err error) {
	p, err := loadProblem(path, f)
	if err != nil {
		return err
	}
	tw, closeTrace, err := openTrace(cmd, f)
	if err != nil {
		return err
	}
	defer closeInto(&err, closeTrace)

	var opts []bfs.Option[string]
	if tw != nil {
		opts = append(opts, bfs.WithRecorder[string](tw.Record))
	}
	r, err := bfs.Bidirectional(p, opts...)
	if err != nil {
		return err
	}
	if err := tw.Err(); err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), r)
	logResult("bidi", r)
	return nil
}

// --- dfs ---

func dfsCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "dfs <problem.yaml>",
		Short: "Depth-first traversal; prints the visit order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDFS(cmd, args[0], &f)
		},
	}
	f.register(cmd)
	return cmd
}

func runDFS(cmd *cobra.Command, path string, f *searchFlags) (err error) {
	p, err := loadProblem(path, f)
	if err != nil {
		return err
	}
	tw, closeTrace, err := openTrace(cmd, f)
	if err != nil {
		return err
	}
	defer closeInto(&err, closeTrace)

	var opts []dfs.Option[string]
	if tw != nil {
		opts = append(opts, dfs.WithRecorder[string](tw.Record))
	}
	order, err := dfs.Trace(p, opts...)
	if err != nil {
		return err
	}
	if err := tw.Err(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Visited %d states: %s\n", len(order), strings.Join(order, " "))
	logger.Info("search finished", "algorithm", "dfs", "visited", len(order))
	return nil
}

// --- dls ---

func dlsCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "dls <problem.yaml>",
		Short: "Depth-limited search; reports found, cutoff or failure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDLS(cmd, args[0], &f)
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&f.limit, "limit", 0, "depth limit (default from config, 10)")
	return cmd
}

func runDLS(cmd *cobra.Command, path string, f *searchFlags) (err error) {
	p, err := loadProblem(path, f)
	if err != nil {
		return err
	}
	limit := cfg.Search.Limit
	if cmd.Flags().Changed("limit") {
		limit = f.limit
	}
	tw, closeTrace, err := openTrace(cmd, f)
	if err != nil {
		return err
	}
	defer closeInto(&err, closeTrace)

	var opts []dfs.Option[string]
	if tw != nil {
		opts = append(opts, dfs.WithRecorder[string](tw.Record))
	}
	r, err := dfs.DepthLimited(p, limit, opts...)
	if err != nil {
		return err
	}
	if err := tw.Err(); err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), r)
	logResult("dls", r)
	return nil
}

// --- ids ---

func idsCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "ids <problem.yaml>",
		Short: "Iterative deepening search over bounds 0..max-bound-1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIDS(cmd, args[0], &f)
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&f.maxBound, "max-bound", 0, "maximum depth bound, exclusive (default from config, 10)")
	return cmd
}

func runIDS(cmd *cobra.Command, path string, f *searchFlags) (err error) {
	p, err := loadProblem(path, f)
	if err != nil {
		return err
	}
	maxBound := cfg.Search.MaxBound
	if cmd.Flags().Changed("max-bound") {
		maxBound = f.maxBound
	}
	tw, closeTrace, err := openTrace(cmd, f)
	if err != nil {
		return err
	}
	defer closeInto(&err, closeTrace)

	opts := []dfs.Option[string]{
		dfs.WithOnIteration(func(bound int, r core.Result[string]) {
			logger.Debug("iteration", "bound", bound, "outcome", r.Outcome.String(), "expanded", r.Expanded)
		}),
	}
	if tw != nil {
		opts = append(opts, dfs.WithRecorder[string](tw.Record))
	}
	r, err := dfs.IterativeDeepening(p, maxBound, opts...)
	if err != nil {
		return err
	}
	if err := tw.Err(); err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), r)
	logResult("ids", r)
	return nil
}

// --- solve ---

func solveCmd() *cobra.Command {
	var f searchFlags
	var algorithm string
	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Run the configured algorithm (search.algorithm)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algorithm") {
				algorithm = cfg.Search.Algorithm
			}
			logger.Debug("solving", "algorithm", algorithm)
			switch algorithm {
			case "bfs":
				return runBFS(cmd, args[0], &f)
			case "bidi":
				return runBidi(cmd, args[0], &f)
			case "dfs":
				return runDFS(cmd, args[0], &f)
			case "dls":
				return runDLS(cmd, args[0], &f)
			case "ids":
				return runIDS(cmd, args[0], &f)
			default:
				return fmt.Errorf("unknown algorithm %q (use: %s)", algorithm, strings.Join(config.Algorithms, ", "))
			}
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "algorithm to run (default from config)")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "depth limit for dls (default from config, 10)")
	cmd.Flags().IntVar(&f.maxBound, "max-bound", 0, "maximum bound for ids (default from config, 10)")
	return cmd
}
