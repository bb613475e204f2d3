package coll

import (
	"slices"

	"github.com/tychoish/coll/dt/cmp"
	"github.com/tychoish/coll/seq"
)

// SortedWith returns the elements of the source ordered by the
// ordering. The sort is stable: equivalent elements keep their
// source order.
func SortedWith[T any](src seq.Source[T], ord cmp.Ordering[T]) []T {
	out := seq.Collect(src)
	slices.SortStableFunc(out, ord)
	return out
}

// Sorted returns the elements of the source in ascending order.
func Sorted[T cmp.OrderableNative](src seq.Source[T]) []T { return SortedWith(src, cmp.Native[T]) }

// SortedDescending returns the elements of the source in descending
// order.
func SortedDescending[T cmp.OrderableNative](src seq.Source[T]) []T {
	return SortedWith(src, cmp.Ordering[T](cmp.Native[T]).Reverse())
}

// SortedBy orders the elements of the source by the key derived from
// each element, keeping ties in source order.
func SortedBy[T any, K cmp.OrderableNative](src seq.Source[T], keyOf func(T) K) []T {
	return SortedWith(src, cmp.By(keyOf))
}

// SortedByDescending is SortedBy in descending key order. Ties keep
// their source order.
func SortedByDescending[T any, K cmp.OrderableNative](src seq.Source[T], keyOf func(T) K) []T {
	return SortedWith(src, cmp.By(keyOf).Reverse())
}

// SortedByCustom orders the elements by a derived key that
// implements the Comparer capability.
func SortedByCustom[T any, K cmp.Comparer[K]](src seq.Source[T], keyOf func(T) K) []T {
	return SortedWith(src, cmp.ByCustom(keyOf))
}
