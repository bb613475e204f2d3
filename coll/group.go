package coll

import (
	"github.com/tychoish/coll/dt"
	"github.com/tychoish/coll/dt/cmp"
	"github.com/tychoish/coll/ers"
	"github.com/tychoish/coll/seq"
)

func identity[T any](v T) T { return v }

// GroupBy groups the elements of the source by key, comparing keys
// with ==. Keys appear in the order they were first seen, and each
// group holds its elements in source order.
func GroupBy[T any, K comparable](src seq.Source[T], keyOf func(T) K) *dt.Groups[K, T] {
	return GroupByWith(src, keyOf, identity[T])
}

// GroupByWith is GroupBy, storing valueOf(element) in each group
// instead of the element.
func GroupByWith[T any, K comparable, V any](src seq.Source[T], keyOf func(T) K, valueOf func(T) V) *dt.Groups[K, V] {
	return groupInto(dt.NewGroups[K, V](), src, keyOf, valueOf)
}

// GroupByEqual is GroupBy for keys with the Equaler capability: two
// keys share a group when Equal reports them equal. Each group keeps
// the first key seen for it.
func GroupByEqual[T any, K cmp.Equaler[K]](src seq.Source[T], keyOf func(T) K) *dt.Groups[K, T] {
	return groupInto(dt.NewGroupsEqual[K, T](), src, keyOf, identity[T])
}

// GroupByFunc groups valueOf(element) by key, comparing keys with the
// equality. Keys need not be comparable with ==.
func GroupByFunc[T any, K any, V any](src seq.Source[T], keyOf func(T) K, valueOf func(T) V, eq cmp.Equality[K]) *dt.Groups[K, V] {
	return groupInto(dt.NewGroupsFunc[K, V](eq), src, keyOf, valueOf)
}

func groupInto[T any, K any, V any](out *dt.Groups[K, V], src seq.Source[T], keyOf func(T) K, valueOf func(T) V) *dt.Groups[K, V] {
	ers.Invariant(keyOf != nil && valueOf != nil, "group by requires key and value functions")
	ForEach(src, func(v T) { out.Add(keyOf(v), valueOf(v)) })
	return out
}

// Partition splits the source into the elements that match the
// predicate and those that do not. Both results preserve source
// order, and every element appears in exactly one of them.
func Partition[T any](src seq.Source[T], fn func(T) bool) (match []T, rest []T) {
	match, rest = []T{}, []T{}
	ForEach(src, func(v T) {
		if fn(v) {
			match = append(match, v)
		} else {
			rest = append(rest, v)
		}
	})
	return match, rest
}

// ToVector collects the source into a new Vector.
func ToVector[T any](src seq.Source[T]) *dt.Vector[T] { return dt.NewVector(seq.Collect(src)...) }

// ToSet collects the distinct elements of the source into a Set,
// in the order they first appear.
func ToSet[T comparable](src seq.Source[T]) *dt.Set[T] {
	out := &dt.Set[T]{}
	ForEach(src, out.Add)
	return out
}

// Distinct returns the distinct elements of the source, in the order
// they first appear.
func Distinct[T comparable](src seq.Source[T]) []T { return ToSet(src).Slice() }
