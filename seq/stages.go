package seq

import (
	"github.com/tychoish/coll/dt"
	"github.com/tychoish/coll/ers"
)

// stage holds the state shared by every stage: the upstream source,
// and whether this stage has ended. Stages never pull again from an
// upstream that has reported the end of the sequence.
type stage[T any] struct {
	src  Source[T]
	done bool
}

func (s *stage[T]) next() (out T, ok bool) {
	if s.done {
		return out, false
	}
	if out, ok = s.src.Pull(); !ok {
		s.end()
	}
	return out, ok
}

func (s *stage[T]) end() { s.done = true; s.src = nil }

func checkCount(op string, n int) error {
	return ers.Whenf(n < 0, ers.ErrInvalidArgument, "%s count %d is negative", op, n)
}

type mapStage[T any, O any] struct {
	stage[T]
	fn func(T) O
}

func (s *mapStage[T, O]) Pull() (out O, _ bool) {
	v, ok := s.next()
	if !ok {
		return out, false
	}
	return s.fn(v), true
}

// Map produces fn(v) for every element v of the source.
func Map[T any, O any](src Source[T], fn func(T) O) Source[O] {
	ers.Invariant(fn != nil, "map requires a function")
	return &mapStage[T, O]{stage: stage[T]{src: src}, fn: fn}
}

// MapIndexed is Map, where the function also receives the position
// of the element in the source.
func MapIndexed[T any, O any](src Source[T], fn func(int, T) O) Source[O] {
	ers.Invariant(fn != nil, "map requires a function")
	idx := -1
	return Map(src, func(v T) O { idx++; return fn(idx, v) })
}

// WithIndex pairs each element with its position.
func WithIndex[T any](src Source[T]) Source[dt.Tuple[int, T]] {
	return MapIndexed(src, dt.MakeTuple[int, T])
}

type filterStage[T any] struct {
	stage[T]
	fn func(T) bool
}

func (s *filterStage[T]) Pull() (out T, ok bool) {
	for out, ok = s.next(); ok; out, ok = s.next() {
		if s.fn(out) {
			return out, true
		}
	}
	return out, false
}

// Filter produces the elements of the source for which the predicate
// is true.
func Filter[T any](src Source[T], fn func(T) bool) Source[T] {
	ers.Invariant(fn != nil, "filter requires a predicate")
	return &filterStage[T]{stage: stage[T]{src: src}, fn: fn}
}

// FilterNot produces the elements of the source for which the
// predicate is false.
func FilterNot[T any](src Source[T], fn func(T) bool) Source[T] {
	ers.Invariant(fn != nil, "filter requires a predicate")
	return Filter(src, func(v T) bool { return !fn(v) })
}

type filterMapStage[T any, O any] struct {
	stage[T]
	fn func(T) (O, bool)
}

func (s *filterMapStage[T, O]) Pull() (out O, _ bool) {
	for v, ok := s.next(); ok; v, ok = s.next() {
		if o, keep := s.fn(v); keep {
			return o, true
		}
	}
	return out, false
}

// FilterMap converts the elements of the source, dropping those for
// which the function returns false.
func FilterMap[T any, O any](src Source[T], fn func(T) (O, bool)) Source[O] {
	ers.Invariant(fn != nil, "filter map requires a function")
	return &filterMapStage[T, O]{stage: stage[T]{src: src}, fn: fn}
}

type takeStage[T any] struct {
	stage[T]
	limit int
	count int
}

func (s *takeStage[T]) Pull() (out T, ok bool) {
	if s.count >= s.limit {
		s.end()
		return out, false
	}
	if out, ok = s.next(); ok {
		s.count++
	}
	return out, ok
}

// Take produces at most the first n elements of the source. Take
// never pulls more than n times from its source, which makes it safe
// to use on unbounded sources. Negative counts are an
// ErrInvalidArgument.
func Take[T any](src Source[T], n int) (Source[T], error) {
	if err := checkCount("take", n); err != nil {
		return nil, err
	}
	return &takeStage[T]{stage: stage[T]{src: src}, limit: n}, nil
}

type dropStage[T any] struct {
	stage[T]
	skip int
}

func (s *dropStage[T]) Pull() (T, bool) {
	for ; s.skip > 0; s.skip-- {
		if _, ok := s.next(); !ok {
			s.skip = 0
			break
		}
	}
	return s.next()
}

// Drop skips the first n elements of the source (or all of them, if
// there are fewer), and then produces the rest. The elements are
// skipped on the first pull, not when the stage is constructed.
// Negative counts are an ErrInvalidArgument.
func Drop[T any](src Source[T], n int) (Source[T], error) {
	if err := checkCount("drop", n); err != nil {
		return nil, err
	}
	return &dropStage[T]{stage: stage[T]{src: src}, skip: n}, nil
}

type takeWhileStage[T any] struct {
	stage[T]
	fn func(T) bool
}

func (s *takeWhileStage[T]) Pull() (out T, ok bool) {
	if out, ok = s.next(); ok && !s.fn(out) {
		s.end()
		var zero T
		return zero, false
	}
	return out, ok
}

// TakeWhile produces elements of the source until the first element
// for which the predicate is false. That element is pulled but not
// produced.
func TakeWhile[T any](src Source[T], fn func(T) bool) Source[T] {
	ers.Invariant(fn != nil, "take while requires a predicate")
	return &takeWhileStage[T]{stage: stage[T]{src: src}, fn: fn}
}

type dropWhileStage[T any] struct {
	stage[T]
	fn      func(T) bool
	dropped bool
}

func (s *dropWhileStage[T]) Pull() (out T, ok bool) {
	if s.dropped {
		return s.next()
	}
	s.dropped = true
	for out, ok = s.next(); ok; out, ok = s.next() {
		if !s.fn(out) {
			return out, true
		}
	}
	return out, false
}

// DropWhile skips elements of the source while the predicate is true,
// and then produces the rest, starting with the first element for
// which the predicate was false.
func DropWhile[T any](src Source[T], fn func(T) bool) Source[T] {
	ers.Invariant(fn != nil, "drop while requires a predicate")
	return &dropWhileStage[T]{stage: stage[T]{src: src}, fn: fn}
}

type flatMapStage[T any, O any] struct {
	stage[T]
	fn    func(T) Source[O]
	inner Source[O]
}

func (s *flatMapStage[T, O]) Pull() (out O, ok bool) {
	for {
		if s.inner != nil {
			if out, ok = s.inner.Pull(); ok {
				return out, true
			}
			s.inner = nil
		}

		v, more := s.next()
		if !more {
			return out, false
		}
		s.inner = s.fn(v)
	}
}

// FlatMap expands each element of the source into a sequence, and
// produces the elements of those sequences in order. Each inner
// sequence is exhausted before the next element of the source is
// pulled.
func FlatMap[T any, O any](src Source[T], fn func(T) Source[O]) Source[O] {
	ers.Invariant(fn != nil, "flat map requires a function")
	return &flatMapStage[T, O]{stage: stage[T]{src: src}, fn: fn}
}

// Flatten produces the elements of each of the sources in order.
func Flatten[T any](src Source[Source[T]]) Source[T] {
	return FlatMap(src, func(in Source[T]) Source[T] { return in })
}

// FlattenSlices produces the elements of each of the slices in order.
func FlattenSlices[T any](src Source[[]T]) Source[T] { return FlatMap(src, Slice[T]) }

// Concat produces the elements of each source in turn.
func Concat[T any](srcs ...Source[T]) Source[T] { return Flatten(Slice(srcs)) }

type zipStage[A any, B any] struct {
	left  Source[A]
	right Source[B]
	done  bool
}

func (s *zipStage[A, B]) Pull() (out dt.Tuple[A, B], _ bool) {
	if s.done {
		return out, false
	}

	a, ok := s.left.Pull()
	if !ok {
		s.end()
		return out, false
	}
	b, ok := s.right.Pull()
	if !ok {
		s.end()
		return out, false
	}

	return dt.MakeTuple(a, b), true
}

func (s *zipStage[A, B]) end() { s.done = true; s.left = nil; s.right = nil }

// Zip pairs the elements of two sources, ending as soon as either
// source ends. When the left source ends first, the right source is
// not pulled again.
func Zip[A any, B any](left Source[A], right Source[B]) Source[dt.Tuple[A, B]] {
	return &zipStage[A, B]{left: left, right: right}
}

// ZipWith combines the elements of two sources pairwise.
func ZipWith[A any, B any, O any](left Source[A], right Source[B], fn func(A, B) O) Source[O] {
	ers.Invariant(fn != nil, "zip requires a function")
	return Map(Zip(left, right), func(t dt.Tuple[A, B]) O { return fn(t.One, t.Two) })
}

type chunkStage[T any] struct {
	stage[T]
	size int
}

func (s *chunkStage[T]) Pull() ([]T, bool) {
	var buf []T
	for len(buf) < s.size {
		v, ok := s.next()
		if !ok {
			break
		}
		buf = append(buf, v)
	}
	return buf, len(buf) > 0
}

// Chunk groups consecutive elements of the source into slices of the
// given size; the final chunk may be smaller. Sizes less than one
// are an ErrInvalidArgument.
func Chunk[T any](src Source[T], size int) (Source[[]T], error) {
	if size <= 0 {
		return nil, ers.Wrapf(ers.ErrInvalidArgument, "chunk size %d must be positive", size)
	}
	return &chunkStage[T]{stage: stage[T]{src: src}, size: size}, nil
}

// Inspect calls the function with each element as it passes through
// the stage.
func Inspect[T any](src Source[T], fn func(T)) Source[T] {
	ers.Invariant(fn != nil, "inspect requires a function")
	return Map(src, func(v T) T { fn(v); return v })
}
