package core

import "slices"

// Set is the visitation tracker of one search: a monotonically growing set
// of states. Membership tests are O(1) and independent of insertion order;
// Items still reports insertion order so snapshots and meeting-point choice
// stay deterministic.
type Set[S comparable] struct {
	members map[S]struct{}
	order   []S
}

// NewSet returns an empty Set with room for hint states.
func NewSet[S comparable](hint int) *Set[S] {
	return &Set[S]{
		members: make(map[S]struct{}, hint),
		order:   make([]S, 0, hint),
	}
}

// Add inserts s and reports whether it was absent.
func (v *Set[S]) Add(s S) bool {
	if _, ok := v.members[s]; ok {
		return false
	}
	v.members[s] = struct{}{}
	v.order = append(v.order, s)

	return true
}

// Has reports whether s is a member.
func (v *Set[S]) Has(s S) bool {
	_, ok := v.members[s]

	return ok
}

// Len returns the number of members.
func (v *Set[S]) Len() int { return len(v.order) }

// Items returns the members in insertion order. The slice is a copy.
func (v *Set[S]) Items() []S { return slices.Clone(v.order) }

// Clone returns an independent copy of v.
func (v *Set[S]) Clone() *Set[S] {
	c := NewSet[S](len(v.order))
	for _, s := range v.order {
		c.Add(s)
	}

	return c
}

// Intersect returns the first member of v, in insertion order, that is also
// a member of other.
// Complexity: O(min scan of v)
func (v *Set[S]) Intersect(other *Set[S]) (S, bool) {
	for _, s := range v.order {
		if other.Has(s) {
			return s, true
		}
	}
	var zero S

	return zero, false
}
