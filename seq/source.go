// Package seq implements pull-based lazy sequences.
//
// A Source produces one element per call to Pull, and reports the
// end of the sequence by returning false. Stages (Map, Filter, Take,
// FlatMap, Zip, ...) wrap a Source and produce another, pulling from
// their upstream only when they are pulled themselves, so pipelines
// over unbounded producers are safe as long as a bounding stage (Take,
// TakeWhile, Zip with a finite side) comes before any draining
// operation.
//
// Sources and stages are single-consumer values: they must not be
// pulled from more than one goroutine. Abandoning a pipeline part
// way through is always safe; nothing needs to be closed.
package seq

import (
	"iter"

	"github.com/tychoish/coll/dt"
	"github.com/tychoish/coll/ers"
)

// Source is a producer of an ordered sequence of elements. Pull
// returns the next element and true, or the zero value and false at
// the end of the sequence. Once Pull has returned false, it returns
// false on every later call.
type Source[T any] interface {
	Pull() (T, bool)
}

// SourceFunc adapts a function to the Source interface. The function
// is called as is: wrap it with Fuse if it may resume after ending.
type SourceFunc[T any] func() (T, bool)

func (fn SourceFunc[T]) Pull() (T, bool) { return fn() }

type fused[T any] struct {
	src  Source[T]
	done bool
}

func (f *fused[T]) Pull() (out T, ok bool) {
	if f.done {
		return out, false
	}
	if out, ok = f.src.Pull(); !ok {
		f.done = true
		f.src = nil
	}
	return out, ok
}

// Fuse guarantees that once the source has ended it stays ended,
// regardless of what the underlying producer does afterwards.
func Fuse[T any](src Source[T]) Source[T] {
	if f, ok := src.(*fused[T]); ok {
		return f
	}
	return &fused[T]{src: src}
}

type sliceSource[T any] struct {
	items []T
	idx   int
}

func (s *sliceSource[T]) Pull() (out T, ok bool) {
	if s.idx >= len(s.items) {
		return out, false
	}
	out = s.items[s.idx]
	s.idx++
	return out, true
}

// Slice produces the elements of the slice in order. The slice is not
// copied; re-wrap the slice to iterate it again.
func Slice[T any](in []T) Source[T] { return &sliceSource[T]{items: in} }

// Variadic produces its arguments in order.
func Variadic[T any](in ...T) Source[T] { return Slice(in) }

// Empty produces no elements.
func Empty[T any]() Source[T] { return Slice[T](nil) }

// FromVector produces a snapshot of the vector's current contents.
func FromVector[T any](vec *dt.Vector[T]) Source[T] { return Slice(vec.Slice()) }

// FromRange produces the members of the range, in order. Ranges of
// any size are produced lazily.
func FromRange(r dt.Range) Source[int] {
	last, more := r.Last().Get()
	next, step := r.Start(), r.Increment()
	return SourceFunc[int](func() (int, bool) {
		if !more {
			return 0, false
		}
		out := next
		if more = out != last; more {
			next += step
		}
		return out, true
	})
}

// Produce calls the function once per pull. The function decides
// when (if ever) the sequence ends by returning false; the returned
// source stays ended afterwards.
func Produce[T any](step func() (T, bool)) Source[T] {
	ers.Invariant(step != nil, "produce requires a step function")
	return Fuse[T](SourceFunc[T](step))
}

// Generate is an explicit state machine: each pull calls step with a
// pointer to the state, and the step function emits at most one
// element and leaves the state ready for the next pull.
func Generate[S any, T any](state S, step func(*S) (T, bool)) Source[T] {
	ers.Invariant(step != nil, "generate requires a step function")
	return Produce(func() (T, bool) { return step(&state) })
}

// Iterate produces seed, next(seed), next(next(seed)), ... without
// end.
func Iterate[T any](seed T, next func(T) T) Source[T] {
	ers.Invariant(next != nil, "iterate requires a next function")
	started := false
	return SourceFunc[T](func() (T, bool) {
		if started {
			seed = next(seed)
		}
		started = true
		return seed, true
	})
}

// Count produces start, start+1, start+2, ... without end.
func Count(start int) Source[int] { return Iterate(start, func(n int) int { return n + 1 }) }

// Repeat produces the value without end.
func Repeat[T any](value T) Source[T] {
	return SourceFunc[T](func() (T, bool) { return value, true })
}

// Counter wraps a source and records how many times it was pulled,
// including the final pull that reported the end of the sequence.
type Counter[T any] struct {
	src   Source[T]
	pulls int
	ended bool
}

// Counted instruments the source with a pull counter.
func Counted[T any](src Source[T]) *Counter[T] { return &Counter[T]{src: src} }

func (c *Counter[T]) Pull() (out T, ok bool) {
	c.pulls++
	if out, ok = c.src.Pull(); !ok {
		c.ended = true
	}
	return out, ok
}

// Pulls returns the number of calls to Pull.
func (c *Counter[T]) Pulls() int { return c.pulls }

// Ended reports whether the source has reported the end of the
// sequence.
func (c *Counter[T]) Ended() bool { return c.ended }

// Seq adapts a source for use with the range keyword. The returned
// iterator drains the (single-use) source: ranging over it twice only
// produces elements once.
func Seq[T any](src Source[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := src.Pull(); ok; v, ok = src.Pull() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains the source into a slice. Collect must not be used on
// unbounded sources.
func Collect[T any](src Source[T]) []T {
	out := []T{}
	for v, ok := src.Pull(); ok; v, ok = src.Pull() {
		out = append(out, v)
	}
	return out
}
