package store

import "github.com/google/btree"

// DefaultDegree is the B-tree degree used by NewBTree.
const DefaultDegree = 8

type entry[K, V any] struct {
	key   K
	value V
}

// BTree is a Store held in memory by a google/btree BTreeG.
type BTree[K, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

// NewBTree creates an empty store ordered by less.
func NewBTree[K, V any](less func(a, b K) bool) *BTree[K, V] {
	return NewBTreeDegree[K, V](DefaultDegree, less)
}

// NewBTreeDegree creates an empty store with the given B-tree degree.
func NewBTreeDegree[K, V any](degree int, less func(a, b K) bool) *BTree[K, V] {
	return &BTree[K, V]{
		tree: btree.NewG[entry[K, V]](degree, func(a, b entry[K, V]) bool {
			return less(a.key, b.key)
		}),
	}
}

// Set stores value under key, replacing any previous value.
func (b *BTree[K, V]) Set(key K, value V) {
	b.tree.ReplaceOrInsert(entry[K, V]{key: key, value: value})
}

// Delete removes key and returns its value.
func (b *BTree[K, V]) Delete(key K) (V, bool) {
	e, ok := b.tree.Delete(entry[K, V]{key: key})
	return e.value, ok
}

// Max returns the entry with the greatest key.
func (b *BTree[K, V]) Max() (K, V, bool) {
	e, ok := b.tree.Max()
	return e.key, e.value, ok
}

// Len returns the number of entries.
func (b *BTree[K, V]) Len() int {
	return b.tree.Len()
}

