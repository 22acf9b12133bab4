package priority

import (
	"iter"

	"github.com/enginespot/algo/loser"
	"github.com/enginespot/algo/store"
)

// Pair is an element together with its priority.
type Pair[E any] struct {
	Priority uint64
	Element  E
}

// Queue is a max-priority queue over an ordered store. The entry with the
// greatest Key is served first.
type Queue[E any] struct {
	data       store.Store[Key, E]
	sequencing Sequencing
	next       uint64
}

// New creates an empty queue backed by an in-memory B-tree.
func New[E any](opts ...Option) *Queue[E] {
	return NewWithStore[E](store.NewBTree[Key, E](Key.Less), opts...)
}

// NewWithStore creates a queue on top of s. The queue takes ownership of s;
// s must be empty and must not be used by anything else afterwards.
func NewWithStore[E any](s store.Store[Key, E], opts ...Option) *Queue[E] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue[E]{
		data:       s,
		sequencing: o.sequencing,
	}
}

// From creates a queue holding pairs, inserted in slice order.
func From[E any](pairs []Pair[E], opts ...Option) *Queue[E] {
	q := New[E](opts...)
	for _, p := range pairs {
		q.Insert(p.Element, p.Priority)
	}
	return q
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[E]) IsEmpty() bool {
	return q.data.Len() == 0
}

// Len returns the number of elements in the queue.
func (q *Queue[E]) Len() int {
	return q.data.Len()
}

// Peek returns the highest priority element without removing it.
func (q *Queue[E]) Peek() (E, bool) {
	_, element, ok := q.data.Max()
	return element, ok
}

// PeekKey is like Peek but also returns the key the element is stored under.
func (q *Queue[E]) PeekKey() (Key, E, bool) {
	return q.data.Max()
}

// Insert adds element with the given priority. Under SizeSequence the
// sequence is the current Len, which after pops can equal the sequence of a
// live entry with the same priority; that entry is then replaced and Len
// does not grow.
func (q *Queue[E]) Insert(element E, priority uint64) {
	q.data.Set(Key{Priority: priority, Sequence: q.sequence()}, element)
}

// Pop removes and returns the highest priority element.
func (q *Queue[E]) Pop() (E, bool) {
	key, _, ok := q.data.Max()
	if !ok {
		var zero E
		return zero, false
	}
	return q.data.Delete(key)
}

// All pops elements in priority order until the queue is empty or the
// caller stops iterating.
func (q *Queue[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			element, ok := q.Pop()
			if !ok || !yield(element) {
				return
			}
		}
	}
}

func (q *Queue[E]) sequence() uint64 {
	if q.sequencing == MonotonicSequence {
		seq := q.next
		q.next++
		return seq
	}
	return uint64(q.data.Len())
}

type entry[E any] struct {
	key     Key
	element E
	done    bool
}

type source[E any] struct {
	q *Queue[E]
}

func (s source[E]) All() iter.Seq[entry[E]] {
	return func(yield func(entry[E]) bool) {
		for {
			key, element, ok := s.q.data.Max()
			if !ok {
				return
			}
			s.q.data.Delete(key)
			if !yield(entry[E]{key: key, element: element}) {
				return
			}
		}
	}
}

// Merge drains queues together, yielding elements in descending key order
// across all of them. Each queue is popped one element ahead of what has
// been yielded, so stopping early consumes at most one unyielded element per
// queue.
func Merge[E any](queues ...*Queue[E]) iter.Seq[E] {
	sources := make([]loser.Sequence[entry[E]], 0, len(queues))
	for _, q := range queues {
		sources = append(sources, source[E]{q: q})
	}
	tree := loser.New(sources, entry[E]{done: true}, func(a, b entry[E]) bool {
		if a.done || b.done {
			return !a.done
		}
		return Compare(a.key, b.key) > 0
	})

	return func(yield func(E) bool) {
		for e := range tree.All() {
			if !yield(e.element) {
				return
			}
		}
	}
}
