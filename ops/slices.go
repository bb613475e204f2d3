package ops

import (
	"slices"

	"github.com/tychoish/coll/dt/cmp"
	"github.com/tychoish/coll/ers"
)

// SlicePlus returns a new slice holding the elements of a followed by
// the elements of b.
func SlicePlus[T any](a, b []T) []T { return append(append(make([]T, 0, len(a)+len(b)), a...), b...) }

// SliceMinusFunc returns a new slice holding the elements of a, less
// the first remaining match in a of each element of b, in order.
// Elements of b without a match are ignored, and duplicates in a
// beyond those matched are kept.
func SliceMinusFunc[T any](a, b []T, eq cmp.Equality[T]) []T {
	out := slices.Clone(a)
	for _, rm := range b {
		if idx := slices.IndexFunc(out, eq.Matching(rm)); idx >= 0 {
			out = slices.Delete(out, idx, idx+1)
		}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// SliceMinus is SliceMinusFunc using the == operator.
func SliceMinus[T comparable](a, b []T) []T { return SliceMinusFunc(a, b, cmp.EqualNative[T]) }

// SliceMinusCustom is SliceMinusFunc using the element's Equal method.
func SliceMinusCustom[T cmp.Equaler[T]](a, b []T) []T { return SliceMinusFunc(a, b, cmp.EqualCustom[T]) }

// SliceContainsFunc reports whether any element of the slice is equal
// to the value.
func SliceContainsFunc[T any](s []T, v T, eq cmp.Equality[T]) bool {
	return slices.ContainsFunc(s, eq.Matching(v))
}

// SliceContains reports whether the value is in the slice, using the
// == operator.
func SliceContains[T comparable](s []T, v T) bool { return slices.Contains(s, v) }

// SliceContainsCustom reports whether the value is in the slice,
// using the element's Equal method.
func SliceContainsCustom[T cmp.Equaler[T]](s []T, v T) bool {
	return SliceContainsFunc(s, v, cmp.EqualCustom[T])
}

// SliceGet returns the element at the index, or an
// ErrIndexOutOfRange.
func SliceGet[T any](s []T, idx int) (out T, err error) {
	if idx < 0 || idx >= len(s) {
		return out, ers.Wrapf(ers.ErrIndexOutOfRange, "index %d for length %d", idx, len(s))
	}
	return s[idx], nil
}

// SliceSet replaces the element at the index, or returns an
// ErrIndexOutOfRange.
func SliceSet[T any](s []T, idx int, v T) error {
	if idx < 0 || idx >= len(s) {
		return ers.Wrapf(ers.ErrIndexOutOfRange, "index %d for length %d", idx, len(s))
	}
	s[idx] = v
	return nil
}
