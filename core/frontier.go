package core

import "slices"

// Frontier is an ordering discipline over discovered-but-unprocessed
// elements. Pop on an empty frontier returns the zero value and false.
type Frontier[E any] interface {
	Push(e E)
	Pop() (E, bool)
	Len() int
	IsEmpty() bool
	// Items returns a copy of the contents in pop order of the discipline's
	// natural layout: queue head first, stack bottom first.
	Items() []E
}

// Entry is a depth-annotated frontier element carrying the path taken from
// the initial state. Path always ends with State.
type Entry[S comparable] struct {
	State S
	Depth int
	Path  []S
}

// Root returns the seed entry (s, 0, [s]).
func Root[S comparable](s S) Entry[S] {
	return Entry[S]{State: s, Depth: 0, Path: []S{s}}
}

// Child returns the entry reached from e by one transition to s.
// The path is copied so siblings never share a backing array.
func (e Entry[S]) Child(s S) Entry[S] {
	path := make([]S, len(e.Path)+1)
	copy(path, e.Path)
	path[len(e.Path)] = s

	return Entry[S]{State: s, Depth: e.Depth + 1, Path: path}
}

// OnPath reports whether s already lies on e's path.
func (e Entry[S]) OnPath(s S) bool {
	return slices.Contains(e.Path, s)
}

// Queue is a FIFO frontier. Popped slots are released by advancing a head
// index; the backing array is compacted once half of it is dead.
type Queue[E any] struct {
	items []E
	head  int
}

// NewQueue returns an empty Queue with capacity hint.
func NewQueue[E any](hint int) *Queue[E] {
	return &Queue[E]{items: make([]E, 0, hint)}
}

// Push appends e at the tail.
func (q *Queue[E]) Push(e E) { q.items = append(q.items, e) }

// Pop removes and returns the head element.
func (q *Queue[E]) Pop() (E, bool) {
	var zero E
	if q.IsEmpty() {
		return zero, false
	}
	e := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return e, true
}

// Len returns the number of queued elements.
func (q *Queue[E]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether the queue is empty.
func (q *Queue[E]) IsEmpty() bool { return q.Len() == 0 }

// Items returns a copy of the queue contents, head first.
func (q *Queue[E]) Items() []E { return slices.Clone(q.items[q.head:]) }

// Stack is a LIFO frontier.
type Stack[E any] struct {
	items []E
}

// NewStack returns an empty Stack with capacity hint.
func NewStack[E any](hint int) *Stack[E] {
	return &Stack[E]{items: make([]E, 0, hint)}
}

// Push places e on top.
func (s *Stack[E]) Push(e E) { s.items = append(s.items, e) }

// Pop removes and returns the top element.
func (s *Stack[E]) Pop() (E, bool) {
	var zero E
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	e := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return e, true
}

// Len returns the number of stacked elements.
func (s *Stack[E]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack is empty.
func (s *Stack[E]) IsEmpty() bool { return len(s.items) == 0 }

// Items returns a copy of the stack contents, bottom first.
func (s *Stack[E]) Items() []E { return slices.Clone(s.items) }

// compile-time checks
var (
	_ Frontier[int]        = (*Queue[int])(nil)
	_ Frontier[Entry[int]] = (*Stack[Entry[int]])(nil)
)
