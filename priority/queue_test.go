package priority_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/enginespot/algo/priority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	tests := []struct {
		name     string
		ops      []operation
		wantLen  int
		wantPeek *string
	}{
		{
			name:    "new queue is empty",
			wantLen: 0,
		},
		{
			name: "highest priority first",
			ops: []operation{
				{opType: opInsert, element: "a", priority: 5},
				{opType: opInsert, element: "b", priority: 10},
				{opType: opInsert, element: "c", priority: 3},
			},
			wantLen:  3,
			wantPeek: ptr("b"),
		},
		{
			name: "later insert wins a tie",
			ops: []operation{
				{opType: opInsert, element: "x", priority: 10},
				{opType: opInsert, element: "y", priority: 10},
			},
			wantLen:  2,
			wantPeek: ptr("y"),
		},
		{
			name: "pop removes the maximum",
			ops: []operation{
				{opType: opInsert, element: "x", priority: 10},
				{opType: opInsert, element: "y", priority: 10},
				{opType: opInsert, element: "z", priority: 11},
				{opType: opPop},
			},
			wantLen:  2,
			wantPeek: ptr("y"),
		},
		{
			name: "pop on empty queue",
			ops: []operation{
				{opType: opPop},
				{opType: opPeek},
			},
			wantLen: 0,
		},
		{
			name: "zero priority",
			ops: []operation{
				{opType: opInsert, element: "low", priority: 0},
			},
			wantLen:  1,
			wantPeek: ptr("low"),
		},
		{
			name: "max priority",
			ops: []operation{
				{opType: opInsert, element: "low", priority: 0},
				{opType: opInsert, element: "high", priority: ^uint64(0)},
			},
			wantLen:  2,
			wantPeek: ptr("high"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := priority.New[string]()

			for _, op := range tt.ops {
				switch op.opType {
				case opInsert:
					q.Insert(op.element, op.priority)
				case opPop:
					_, _ = q.Pop()
				case opPeek:
					_, _ = q.Peek()
				}
			}

			assert.Equal(t, tt.wantLen, q.Len())
			assert.Equal(t, tt.wantLen == 0, q.IsEmpty())

			got, ok := q.Peek()
			if tt.wantPeek == nil {
				assert.False(t, ok)
				assert.Empty(t, got)
				return
			}
			require.True(t, ok)
			assert.Equal(t, *tt.wantPeek, got)
		})
	}
}

func TestQueuePopOrder(t *testing.T) {
	q := priority.New[[]int]()
	assert.True(t, q.IsEmpty())

	q.Insert([]int{0}, 5)
	assert.False(t, q.IsEmpty())
	got, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, []int{0}, got)

	q.Insert([]int{1}, 10)
	q.Insert([]int{2}, 3)
	q.Insert([]int{3}, 4)
	q.Insert([]int{4}, 6)

	for _, want := range [][]int{{1}, {4}, {0}, {3}, {2}} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueueInsert(t *testing.T) {
	q := priority.New[string]()

	q.Insert("x", 10)
	assertPeek(t, q, "x")
	assert.Equal(t, 1, q.Len())

	q.Insert("y", 10)
	assertPeek(t, q, "y")
	assert.Equal(t, 2, q.Len())

	q.Insert("z", 11)
	assertPeek(t, q, "z")
	assert.Equal(t, 3, q.Len())

	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "z", got)
	assertPeek(t, q, "y")
}

func TestQueuePeekPop(t *testing.T) {
	q := priority.From([]priority.Pair[string]{
		{Priority: 5, Element: "a"},
		{Priority: 10, Element: "b"},
		{Priority: 3, Element: "c"},
		{Priority: 4, Element: "d"},
		{Priority: 6, Element: "e"},
	})
	require.False(t, q.IsEmpty())

	for _, want := range []string{"b", "e", "a", "d", "c"} {
		assertPeek(t, q, want)
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Peek()
	assert.False(t, ok)
	_, ok = q.Pop()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
}

func TestQueuePeekDoesNotMutate(t *testing.T) {
	q := priority.From([]priority.Pair[string]{
		{Priority: 1, Element: "a"},
		{Priority: 2, Element: "b"},
	})

	for i := 0; i < 5; i++ {
		assertPeek(t, q, "b")
		assert.Equal(t, 2, q.Len())
	}

	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestQueuePeekKey(t *testing.T) {
	q := priority.New[string]()

	_, _, ok := q.PeekKey()
	assert.False(t, ok)

	q.Insert("a", 7)
	q.Insert("b", 7)

	key, got, ok := q.PeekKey()
	require.True(t, ok)
	assert.Equal(t, priority.Key{Priority: 7, Sequence: 1}, key)
	assert.Equal(t, "b", got)
}

func TestQueueSequencing(t *testing.T) {
	tests := []struct {
		name       string
		sequencing priority.Sequencing
		wantLen    int
		want       []string
	}{
		{
			name:       "size sequence reuses a live key",
			sequencing: priority.SizeSequence,
			wantLen:    1,
			want:       []string{"c"},
		},
		{
			name:       "monotonic sequence never reuses keys",
			sequencing: priority.MonotonicSequence,
			wantLen:    2,
			want:       []string{"c", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := priority.New[string](priority.WithSequencing(tt.sequencing))
			q.Insert("a", 5) // (5, 0)
			q.Insert("b", 1) // (1, 1)

			got, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, "a", got)

			q.Insert("c", 1)
			assert.Equal(t, tt.wantLen, q.Len())
			assert.Equal(t, tt.want, slices.Collect(q.All()))
		})
	}
}

func TestSequencingString(t *testing.T) {
	assert.Equal(t, "size", priority.SizeSequence.String())
	assert.Equal(t, "monotonic", priority.MonotonicSequence.String())
	assert.Equal(t, "unknown", priority.Sequencing(9).String())
}

func TestQueueOrderProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, sequencing := range []priority.Sequencing{priority.SizeSequence, priority.MonotonicSequence} {
		t.Run(sequencing.String(), func(t *testing.T) {
			for round := 0; round < 20; round++ {
				n := rng.Intn(200) + 1
				pairs := make([]priority.Pair[int], n)
				for i := range pairs {
					pairs[i] = priority.Pair[int]{Priority: uint64(rng.Intn(10)), Element: i}
				}

				q := priority.From(pairs, priority.WithSequencing(sequencing))
				require.Equal(t, n, q.Len())

				var prev *priority.Pair[int]
				for !q.IsEmpty() {
					before := q.Len()
					element, ok := q.Pop()
					require.True(t, ok)
					require.Equal(t, before-1, q.Len())

					cur := pairs[element]
					if prev != nil {
						require.LessOrEqual(t, cur.Priority, prev.Priority)
						if cur.Priority == prev.Priority {
							require.Less(t, cur.Element, prev.Element, "later inserts are served first within a priority")
						}
					}
					prev = &cur
				}
				assert.Equal(t, 0, q.Len())
			}
		})
	}
}

func TestFromMatchesInsert(t *testing.T) {
	pairs := []priority.Pair[string]{
		{Priority: 2, Element: "a"},
		{Priority: 9, Element: "b"},
		{Priority: 2, Element: "c"},
		{Priority: 0, Element: "d"},
		{Priority: 9, Element: "e"},
	}

	q := priority.New[string]()
	for _, p := range pairs {
		q.Insert(p.Element, p.Priority)
	}

	assert.Equal(t, slices.Collect(q.All()), slices.Collect(priority.From(pairs).All()))
}

func TestQueueAllStopEarly(t *testing.T) {
	q := priority.From([]priority.Pair[string]{
		{Priority: 1, Element: "a"},
		{Priority: 2, Element: "b"},
		{Priority: 3, Element: "c"},
	})

	for element := range q.All() {
		assert.Equal(t, "c", element)
		break
	}

	assert.Equal(t, 2, q.Len())
	assertPeek(t, q, "b")
}

func TestMerge(t *testing.T) {
	a := priority.From([]priority.Pair[string]{
		{Priority: 5, Element: "a5"},
		{Priority: 1, Element: "a1"},
	})
	b := priority.From([]priority.Pair[string]{
		{Priority: 7, Element: "b7"},
		{Priority: 3, Element: "b3"},
	})
	empty := priority.New[string]()

	got := slices.Collect(priority.Merge(a, empty, b))

	assert.Equal(t, []string{"b7", "a5", "b3", "a1"}, got)
	assert.True(t, a.IsEmpty())
	assert.True(t, b.IsEmpty())
}

func TestMergeRangeAfterRefill(t *testing.T) {
	a := priority.New[string]()
	b := priority.New[string]()
	a.Insert("a1", 1)
	b.Insert("b2", 2)

	merged := priority.Merge(a, b)
	require.Equal(t, []string{"b2", "a1"}, slices.Collect(merged))

	a.Insert("x", 3)
	b.Insert("y", 1)

	assert.Equal(t, []string{"x", "y"}, slices.Collect(merged))
	assert.True(t, a.IsEmpty())
	assert.True(t, b.IsEmpty())
}

func TestMergeNoQueues(t *testing.T) {
	assert.Empty(t, slices.Collect(priority.Merge[string]()))
}

func assertPeek(t *testing.T, q *priority.Queue[string], want string) {
	t.Helper()
	got, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func ptr(s string) *string { return &s }

type opType int

const (
	opInsert opType = iota
	opPop
	opPeek
)

type operation struct {
	opType   opType
	element  string
	priority uint64
}

func BenchmarkQueue(b *testing.B) {
	b.ReportAllocs()
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Insert_%d", size), func(b *testing.B) {
			q := priority.New[int](priority.WithSequencing(priority.MonotonicSequence))
			for i := 0; i < size; i++ {
				q.Insert(i, uint64(rand.Intn(10000)))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q.Insert(i, uint64(rand.Intn(10000)))
			}
		})

		b.Run(fmt.Sprintf("Pop_%d", size), func(b *testing.B) {
			q := priority.New[int](priority.WithSequencing(priority.MonotonicSequence))
			for i := 0; i < size; i++ {
				q.Insert(i, uint64(rand.Intn(10000)))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if q.IsEmpty() {
					b.StopTimer()
					for j := 0; j < size; j++ {
						q.Insert(j, uint64(rand.Intn(10000)))
					}
					b.StartTimer()
				}
				_, _ = q.Pop()
			}
		})
	}
}
