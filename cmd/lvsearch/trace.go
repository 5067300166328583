package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/lvsearch/trace"
)

// traceLine is the JSON form of one snapshot.
type traceLine struct {
	Step     int         `json:"step"`
	Current  string      `json:"current,omitempty"`
	Visited  []string    `json:"visited"`
	Frontier []string    `json:"frontier"`
	Edges    [][2]string `json:"edges"`
}

// traceWriter streams snapshots as JSON lines. It stops the search after
// limit snapshots (when limit > 0) or on the first write error.
type traceWriter struct {
	enc     *json.Encoder
	limit   int
	written int
	err     error
}

func newTraceWriter(w io.Writer, limit int) *traceWriter {
	return &traceWriter{enc: json.NewEncoder(w), limit: limit}
}

// Record implements trace.Recorder.
func (tw *traceWriter) Record(snap trace.Snapshot[string]) bool {
	line := traceLine{
		Step:     snap.Step,
		Current:  snap.Current,
		Visited:  nonNil(snap.Visited),
		Frontier: nonNil(snap.Frontier),
		Edges:    make([][2]string, len(snap.Edges)),
	}
	for i, e := range snap.Edges {
		line.Edges[i] = [2]string{e.From, e.To}
	}
	if err := tw.enc.Encode(line); err != nil {
		tw.err = fmt.Errorf("writing trace: %w", err)
		return false
	}
	tw.written++
	return tw.limit <= 0 || tw.written < tw.limit
}

// Err returns the first write error; nil-safe.
func (tw *traceWriter) Err() error {
	if tw == nil {
		return nil
	}
	return tw.err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
