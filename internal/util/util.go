package util

import (
	"iter"
	"sort"
)

// TransformSlice applies converter to each element of in and returns the
// results in the same order. The CLI uses it to turn a []cst.Diagnostic into
// the lines it prints.
func TransformSlice[T any, R any](in []T, converter func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = converter(v)
	}
	return out
}

// CanonicalMapIter yields map entries in sorted key order. Lint output groups
// violations by rule name in a map first, then needs a stable order to print
// in; ranging over a map directly would make two runs over the same input
// disagree on ordering.
func CanonicalMapIter[T any](m map[string]T) iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
