// Package lvsearch is a small toolkit of uninformed search algorithms over
// implicit state spaces: grids, adjacency lists, or anything that can list a
// state's neighbors.
//
// 🚀 What is lvsearch?
//
//	A generic, zero-global-state library (plus a CLI) that brings together:
//		• Breadth-first traversal with depth, parent links and path recovery
//		• Bidirectional BFS between a start and a goal state
//		• Depth-first traversal with mark-on-pop visitation
//		• Depth-limited search with an explicit cutoff outcome
//		• Iterative deepening over increasing depth bounds
//		• Step-by-step snapshots of every search, as callbacks or iter.Seq
//
// ✨ Why choose lvsearch?
//
//   - Generic states - any comparable type works as a state
//   - Deterministic - neighbor order is preserved, runs repeat exactly
//   - Observable - hooks (OnVisit, OnEnqueue…) and snapshot recorders
//   - Safe - each search owns its own frontier, so a Problem may be shared
//
// Packages:
//
//	core/      - Space, Problem, frontiers, visited set, parent links, Result
//	gridgraph/ - rectangular grids with 4- or 8-connectivity as a Space
//	trace/     - Snapshot, Recorder and the Collector helper
//	bfs/       - BFS, Bidirectional and their Trace sequences
//	dfs/       - Trace, DepthLimited, IterativeDeepening
//	cmd/lvsearch - CLI running any algorithm on a YAML problem file
//
// Quick ASCII example:
//
//	    S . #
//	    . . .
//	    # . G
//
//	BFS from S reaches G in 4 moves; DLS with limit 3 reports a cutoff.
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
