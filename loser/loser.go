// Adapted from https://github.com/bboreham/go-loser/blob/iter/tree.go.
package loser

import (
	"iter"
)

// Sequence is an ordered source of values.
type Sequence[E any] interface {
	All() iter.Seq[E]
}

// New builds a tree merging sequences. sentinel must not be less than any
// value the sequences yield.
func New[E any](sequences []Sequence[E], sentinel E, less func(E, E) bool) *Tree[E] {
	return &Tree[E]{
		sentinel:  sentinel,
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		less:      less,
	}
}

// Tree is laid out such that nodes N and N+1 have parent N/2. The M leaves
// live in positions M..2M-1 and the M-1 internal nodes in 1..M-1. Node 0
// holds the overall winner.
type Tree[E any] struct {
	sentinel  E
	nodes     []node[E]
	sequences []Sequence[E]
	less      func(E, E) bool
}

type node[E any] struct {
	index int              // loser for internal nodes, winner for node 0
	value E                // value of the node at index
	next  func() (E, bool) // leaves only
	done  bool             // leaf source is exhausted
}

// All yields the merged values. Each source is pulled one value ahead of
// what has been yielded. Every call starts a fresh merge over the current
// contents of the sources.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		clear(t.nodes)
		m := len(t.sequences)
		for i, s := range t.sequences {
			next, stop := iter.Pull(s.All())
			defer stop()
			t.nodes[i+m].next = next
			t.moveNext(i + m)
		}
		t.initialize()
		for !t.nodes[t.nodes[0].index].done && yield(t.nodes[0].value) {
			t.moveNext(t.nodes[0].index)
			t.replayGames(t.nodes[0].index)
		}
	}
}

func (t *Tree[E]) moveNext(leaf int) {
	n := &t.nodes[leaf]
	if v, ok := n.next(); ok {
		n.value = v
		return
	}
	n.value = t.sentinel
	n.done = true
}

func (t *Tree[E]) initialize() {
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
}

// playGame returns the winner below pos, recording losers on the way up.
func (t *Tree[E]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.less(nodes[left].value, nodes[right].value) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	nodes[pos].index = loser
	nodes[pos].value = nodes[loser].value
	return winner
}

// replayGames re-runs the matches from leaf pos up to the root after its
// value changed.
func (t *Tree[E]) replayGames(pos int) {
	nodes := t.nodes
	winningValue := nodes[pos].value
	for n := parent(pos); n != 0; n = parent(n) {
		node := &nodes[n]
		if t.less(node.value, winningValue) {
			node.index, pos = pos, node.index
			node.value, winningValue = winningValue, node.value
		}
	}
	nodes[0].index = pos
	nodes[0].value = winningValue
}

func parent(i int) int { return i >> 1 }
