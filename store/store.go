// Package store defines the ordered key-value store a priority queue is built
// on and provides an in-memory implementation backed by a B-tree.
//
// A Store only has to offer four primitives: insert by key, remove by key,
// lookup of the maximum key and a size check. Any container that keeps its
// keys in a total order and answers those in logarithmic time qualifies.
package store

// Store is an ordered key-value container.
type Store[K, V any] interface {
	// Set stores value under key, replacing any value already stored there.
	Set(key K, value V)

	// Delete removes key and returns the value it held.
	Delete(key K) (V, bool)

	// Max returns the entry with the greatest key.
	Max() (K, V, bool)

	// Len returns the number of stored entries.
	Len() int
}
