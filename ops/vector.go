package ops

import (
	"github.com/tychoish/coll/dt"
	"github.com/tychoish/coll/dt/cmp"
)

// PlusAssign is vec += items: it appends the items in place.
func PlusAssign[T any](vec *dt.Vector[T], items ...T) { vec.Add(items...) }

// MinusAssignFunc is vec -= items: for each item it removes the first
// equal element of the vector, in place, and returns the number of
// elements removed.
func MinusAssignFunc[T any](vec *dt.Vector[T], eq cmp.Equality[T], items ...T) int {
	count := 0
	for _, rm := range items {
		if vec.RemoveFirst(eq.Matching(rm)) {
			count++
		}
	}
	return count
}

// MinusAssign is MinusAssignFunc using the == operator.
func MinusAssign[T comparable](vec *dt.Vector[T], items ...T) int {
	return MinusAssignFunc(vec, cmp.EqualNative[T], items...)
}

// VectorContainsFunc reports whether the vector holds an element
// equal to the value.
func VectorContainsFunc[T any](vec *dt.Vector[T], v T, eq cmp.Equality[T]) bool {
	return SliceContainsFunc(vec.Slice(), v, eq)
}

// VectorContains reports whether the vector holds the value, using
// the == operator.
func VectorContains[T comparable](vec *dt.Vector[T], v T) bool {
	return VectorContainsFunc(vec, v, cmp.EqualNative[T])
}

// VectorContainsCustom reports whether the vector holds the value,
// using the element's Equal method.
func VectorContainsCustom[T cmp.Equaler[T]](vec *dt.Vector[T], v T) bool {
	return VectorContainsFunc(vec, v, cmp.EqualCustom[T])
}
