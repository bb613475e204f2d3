// Package coll implements the eager collection operations: folds,
// grouping, partitioning, sorting, chunking, slicing and aggregates.
//
// Every operation drains its input source completely before it
// returns. Calling one on an unbounded source (seq.Count, seq.Repeat,
// most seq.Produce producers) without a bounding stage such as
// seq.Take never returns; the operations make no attempt to detect
// this.
package coll

import (
	"github.com/tychoish/coll/ers"
	"github.com/tychoish/coll/seq"
)

// Fold combines the elements of the source from left to right,
// starting with the initial value. On an empty source Fold returns
// the initial value.
func Fold[T any, A any](src seq.Source[T], initial A, fn func(A, T) A) A {
	ers.Invariant(fn != nil, "fold requires a function")
	acc := initial
	for v, ok := src.Pull(); ok; v, ok = src.Pull() {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce is Fold, using the first element of the source as the
// initial value. An empty source is an ErrEmptyInput.
func Reduce[T any](src seq.Source[T], fn func(T, T) T) (T, error) {
	ers.Invariant(fn != nil, "reduce requires a function")
	first, ok := src.Pull()
	if !ok {
		return first, ers.Wrap(ers.ErrEmptyInput, "reduce")
	}
	return Fold(src, first, fn), nil
}

// ForEach calls the function on every element of the source.
func ForEach[T any](src seq.Source[T], fn func(T)) {
	ers.Invariant(fn != nil, "for each requires a function")
	for v, ok := src.Pull(); ok; v, ok = src.Pull() {
		fn(v)
	}
}
