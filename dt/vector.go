package dt

import (
	"fmt"
	"slices"

	"github.com/tychoish/coll/ers"
)

// Vector is a mutable, ordered, slice-backed container. Structural
// changes (adding and removing elements) are counted so that cursors
// can detect modifications made behind their backs.
//
// The zero value is an empty, usable Vector. Vectors are not safe for
// concurrent use.
type Vector[T any] struct {
	items []T
	mods  int
	str   Memo[string]
}

// NewVector constructs a vector holding a copy of the items.
func NewVector[T any](items ...T) *Vector[T] {
	return &Vector[T]{items: append(make([]T, 0, len(items)), items...)}
}

func (v *Vector[T]) changed() { v.mods++; v.str.Invalidate() }

func (v *Vector[T]) checkIndex(idx, length int) error {
	if idx < 0 || idx >= length {
		return ers.Wrapf(ers.ErrIndexOutOfRange, "index %d for length %d", idx, length)
	}
	return nil
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.items)
}

// Get returns the element at the index, or an ErrIndexOutOfRange
// error.
func (v *Vector[T]) Get(idx int) (T, error) {
	if err := v.checkIndex(idx, v.Len()); err != nil {
		var zero T
		return zero, err
	}
	return v.items[idx], nil
}

// Set replaces the element at the index. Set is not a structural
// change, and does not invalidate cursors.
func (v *Vector[T]) Set(idx int, val T) error {
	if err := v.checkIndex(idx, v.Len()); err != nil {
		return err
	}
	v.items[idx] = val
	v.str.Invalidate()
	return nil
}

// Add appends the items to the end of the vector.
func (v *Vector[T]) Add(items ...T) {
	if len(items) == 0 {
		return
	}
	v.items = append(v.items, items...)
	v.changed()
}

// Insert adds the items at the index, shifting the element currently
// at that index (and all following) to the right. The index may be
// equal to the length, which appends.
func (v *Vector[T]) Insert(idx int, items ...T) error {
	if err := v.checkIndex(idx, v.Len()+1); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	v.items = slices.Insert(v.items, idx, items...)
	v.changed()
	return nil
}

// RemoveAt removes and returns the element at the index.
func (v *Vector[T]) RemoveAt(idx int) (T, error) {
	var zero T
	if err := v.checkIndex(idx, v.Len()); err != nil {
		return zero, err
	}
	out := v.items[idx]
	v.items = slices.Delete(v.items, idx, idx+1)
	v.changed()
	return out, nil
}

// RemoveFirst removes the first element that matches the predicate,
// and returns true when an element was removed.
func (v *Vector[T]) RemoveFirst(match func(T) bool) bool {
	for idx := range v.Len() {
		if match(v.items[idx]) {
			_, _ = v.RemoveAt(idx)
			return true
		}
	}
	return false
}

// Clear removes all elements.
func (v *Vector[T]) Clear() {
	if v.Len() == 0 {
		return
	}
	v.items = nil
	v.changed()
}

// Slice returns a copy of the contents of the vector.
func (v *Vector[T]) Slice() []T {
	if v == nil {
		return []T{}
	}
	return append(make([]T, 0, len(v.items)), v.items...)
}

// Plus returns a new vector with the elements of both vectors, in
// order. Neither input is modified.
func (v *Vector[T]) Plus(other *Vector[T]) *Vector[T] {
	out := NewVector(v.Slice()...)
	out.Add(other.Slice()...)
	return out
}

// Cursor returns a cursor positioned before the first element.
// Cursors over a nil vector panic with ErrUninitializedContainer.
func (v *Vector[T]) Cursor() *Cursor[T] {
	if v == nil {
		panic(ErrUninitializedContainer)
	}
	return &Cursor[T]{vec: v, last: -1, mods: v.mods}
}

// CursorEnd returns a cursor positioned after the last element, for
// reverse traversal.
func (v *Vector[T]) CursorEnd() *Cursor[T] {
	c := v.Cursor()
	c.pos = v.Len()
	return c
}

// CursorAt returns a cursor whose NextIndex is idx. The index may be
// equal to the length.
func (v *Vector[T]) CursorAt(idx int) (*Cursor[T], error) {
	if err := v.checkIndex(idx, v.Len()+1); err != nil {
		return nil, err
	}
	c := v.Cursor()
	c.pos = idx
	return c, nil
}

// String formats the vector as a bracketed list. The formatted value
// is cached until the vector changes.
func (v *Vector[T]) String() string {
	if v == nil {
		return "[]"
	}
	return v.str.Call(func() string { return fmt.Sprint(v.items) })
}
