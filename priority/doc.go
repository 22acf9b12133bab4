// Package priority implements a generic max-priority queue on top of an
// ordered key-value store instead of a heap.
//
// Every element is stored under a composite Key of (priority, sequence).
// Keys are ordered by priority and then by sequence, and the queue always
// serves the entry with the greatest key, so the store's own maximum lookup
// decides what comes out next. Among equal priorities the entry with the
// greater sequence, normally the later insert, is served first.
//
// The default store is an in-memory B-tree (see package store); any
// store.Store can be supplied with NewWithStore.
//
// Sequence numbers are taken from the store size at insert time unless
// MonotonicSequence is selected. With SizeSequence a key can be reused after
// pops, in which case the new element replaces the live entry holding that
// key.
//
// Basic usage:
//
//	q := priority.New[string]()
//	q.Insert("task1", 5)
//	q.Insert("task2", 3)
//
//	if top, ok := q.Peek(); ok {
//	    fmt.Println("next:", top)
//	}
//
//	for task := range q.All() {
//	    fmt.Println(task)
//	}
//
// A Queue is not safe for concurrent use.
package priority
