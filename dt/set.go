package dt

import (
	"fmt"
	"iter"
	"slices"
)

// Set is a collection of unique comparable values that remembers the
// order in which values were first added. The zero value is an
// empty, usable set. Callers are responsible for their own
// concurrency control.
type Set[T comparable] struct {
	hash  Map[T, struct{}]
	items []T
}

// NewSet builds a set from the values, dropping duplicates.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) init() { s.hash = DefaultMap(s.hash) }

// Add adds the value, if it is not already present.
func (s *Set[T]) Add(in T) { _ = s.AddCheck(in) }

// AddCheck adds the value, and reports whether it was already
// present.
func (s *Set[T]) AddCheck(in T) bool {
	s.init()
	if s.hash.Check(in) {
		return true
	}
	s.hash[in] = struct{}{}
	s.items = append(s.items, in)
	return false
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Check reports whether the value is in the set.
func (s *Set[T]) Check(in T) bool { return s.Len() > 0 && s.hash.Check(in) }

// Delete removes the value, if present.
func (s *Set[T]) Delete(in T) { _ = s.DeleteCheck(in) }

// DeleteCheck removes the value, and reports whether it was present.
func (s *Set[T]) DeleteCheck(in T) bool {
	if !s.Check(in) {
		return false
	}
	delete(s.hash, in)
	s.items = slices.DeleteFunc(s.items, func(v T) bool { return v == in })
	return true
}

// Slice returns the values in the order they were first added.
func (s *Set[T]) Slice() []T {
	if s == nil {
		return []T{}
	}
	return append(make([]T, 0, len(s.items)), s.items...)
}

// Iterator returns a standard Go iterator over the values, in the
// order they were added.
func (s *Set[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether the two sets contain the same values,
// regardless of order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.Slice() {
		if !other.Check(v) {
			return false
		}
	}
	return true
}

func (s *Set[T]) String() string { return fmt.Sprint(s.Slice()) }
