package seq

import "iter"

// Stream is a fluent wrapper around a Source, for chaining the stages
// that do not change the element type. Use a Converter to change the
// element type of a stream.
//
// A stage that fails to construct (e.g. Take with a negative count)
// records its error on the stream immediately: Err reports it before
// anything is pulled, every later stage carries it forward, the
// stream produces no elements, and Collect returns it.
type Stream[T any] struct {
	src Source[T]
	err error
}

// NewStream wraps a source.
func NewStream[T any](src Source[T]) *Stream[T] { return &Stream[T]{src: src} }

// StreamOf builds a stream over its arguments.
func StreamOf[T any](items ...T) *Stream[T] { return NewStream(Slice(items)) }

func (s *Stream[T]) with(src Source[T], err error) *Stream[T] {
	switch {
	case s.err != nil:
		return &Stream[T]{err: s.err}
	case err != nil:
		return &Stream[T]{err: err}
	default:
		return &Stream[T]{src: src}
	}
}

// Pull implements Source.
func (s *Stream[T]) Pull() (out T, ok bool) {
	if s.err != nil || s.src == nil {
		return out, false
	}
	return s.src.Pull()
}

// Err returns the first error encountered while building the stream.
func (s *Stream[T]) Err() error { return s.err }

func (s *Stream[T]) Filter(fn func(T) bool) *Stream[T]    { return s.with(Filter(s.src, fn), nil) }
func (s *Stream[T]) FilterNot(fn func(T) bool) *Stream[T] { return s.with(FilterNot(s.src, fn), nil) }
func (s *Stream[T]) TakeWhile(fn func(T) bool) *Stream[T] { return s.with(TakeWhile(s.src, fn), nil) }
func (s *Stream[T]) DropWhile(fn func(T) bool) *Stream[T] { return s.with(DropWhile(s.src, fn), nil) }
func (s *Stream[T]) Inspect(fn func(T)) *Stream[T]        { return s.with(Inspect(s.src, fn), nil) }
func (s *Stream[T]) Take(n int) *Stream[T]                { return s.with(Take(s.src, n)) }
func (s *Stream[T]) Drop(n int) *Stream[T]                { return s.with(Drop(s.src, n)) }

// Concat appends the elements of the other sources to the stream.
func (s *Stream[T]) Concat(others ...Source[T]) *Stream[T] {
	return s.with(Concat(append([]Source[T]{s.src}, others...)...), nil)
}

// Trace logs each pull through the stream; see Trace.
func (s *Stream[T]) Trace(opts ...TraceOption) *Stream[T] { return s.with(Trace(s.src, opts...)) }

// Seq adapts the stream for use with the range keyword.
func (s *Stream[T]) Seq() iter.Seq[T] { return Seq[T](s) }

// Collect drains the stream into a slice, returning the stream's
// construction error, if any.
func (s *Stream[T]) Collect() ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}
	return Collect[T](s), nil
}

// Converter is a function that changes the element type of a source
// or stream.
type Converter[T any, O any] func(T) O

// MakeConverter constructs a converter, and exists for type inference.
func MakeConverter[T any, O any](fn func(T) O) Converter[T, O] { return fn }

// Source applies the converter to each element of the source.
func (c Converter[T, O]) Source(src Source[T]) Source[O] { return Map(src, c) }

// Stream applies the converter to each element of the stream,
// carrying any error from the stream's construction.
func (c Converter[T, O]) Stream(s *Stream[T]) *Stream[O] {
	if s.err != nil {
		return &Stream[O]{err: s.err}
	}
	return NewStream(c.Source(s.src))
}
