// Package loser implements a k-way merge of ordered sequences using a loser
// tree (tournament tree).
//
// Each source must already yield its values in the order defined by less.
// The merged sequence yields the least remaining value across all sources at
// every step, costing O(log k) comparisons per value for k sources.
//
// The tree needs a sentinel value that sorts after every real value; it
// stands in for exhausted sources and is never yielded.
//
// Basic usage:
//
//	tree := loser.New(sources, math.MaxInt, func(a, b int) bool {
//	    return a < b
//	})
//	for v := range tree.All() {
//	    fmt.Println(v)
//	}
package loser
