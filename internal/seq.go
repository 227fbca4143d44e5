package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Concat2 yields each sequence in turn, stopping early when the consumer does.
// Keys are not merged; a key may be yielded more than once.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// Sorted2 collects seq and yields it in key order. Later duplicates win.
func Sorted2[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		merged := maps.Collect(seq)
		for _, key := range slices.Sorted(maps.Keys(merged)) {
			if !yield(key, merged[key]) {
				return
			}
		}
	}
}
