package core

import (
	"fmt"
	"slices"
)

// ParentMap records, for every discovered state, the state it was discovered
// from. The root is discovered but has no entry in the parent links, which
// serves as the "no predecessor" sentinel.
type ParentMap[S comparable] struct {
	root   S
	parent map[S]S
	seen   map[S]struct{}
}

// NewParentMap returns a ParentMap rooted at root.
func NewParentMap[S comparable](root S, hint int) *ParentMap[S] {
	pm := &ParentMap[S]{
		root:   root,
		parent: make(map[S]S, hint),
		seen:   make(map[S]struct{}, hint),
	}
	pm.seen[root] = struct{}{}

	return pm
}

// Root returns the state every recorded path starts from.
func (pm *ParentMap[S]) Root() S { return pm.root }

// Set records prev as the predecessor of s. The first record wins.
func (pm *ParentMap[S]) Set(s, prev S) {
	if _, ok := pm.seen[s]; ok {
		return
	}
	pm.seen[s] = struct{}{}
	pm.parent[s] = prev
}

// Parent returns the predecessor of s; ok is false for the root and for
// undiscovered states.
func (pm *ParentMap[S]) Parent(s S) (prev S, ok bool) {
	prev, ok = pm.parent[s]

	return prev, ok
}

// Has reports whether s was discovered.
func (pm *ParentMap[S]) Has(s S) bool {
	_, ok := pm.seen[s]

	return ok
}

// Len returns the number of discovered states, root included.
func (pm *ParentMap[S]) Len() int { return len(pm.seen) }

// PathTo walks the parent links from dest back to the root and returns the
// path root..dest. Returns ErrNoPath if dest was never discovered.
// Complexity: O(path length)
func (pm *ParentMap[S]) PathTo(dest S) ([]S, error) {
	if !pm.Has(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []S{dest}
	for cur := dest; ; {
		prev, ok := pm.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}

// Splice joins the two halves of a bidirectional search at meet:
// forward yields start..meet, backward yields goal..meet which is reversed
// and appended without repeating meet.
func Splice[S comparable](forward, backward *ParentMap[S], meet S) ([]S, error) {
	head, err := forward.PathTo(meet)
	if err != nil {
		return nil, fmt.Errorf("core: forward half: %w", err)
	}
	tail, err := backward.PathTo(meet)
	if err != nil {
		return nil, fmt.Errorf("core: backward half: %w", err)
	}
	// tail is goal..meet; flip to meet..goal and drop the meeting point
	slices.Reverse(tail)

	return append(head, tail[1:]...), nil
}
