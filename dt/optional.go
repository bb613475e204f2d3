package dt

import (
	"fmt"

	"github.com/tychoish/coll/ers"
)

// Optional is a wrapper type for a value that may be absent. The zero
// value is absent.
//
// Operations on an absent Optional short circuit: Map, FlatMap and
// Filter return absent values without calling their functions.
type Optional[T any] struct {
	v       T
	defined bool
}

// NewOptional constructs a defined Optional holding the value.
func NewOptional[T any](in T) Optional[T] { return Optional[T]{v: in, defined: true} }

// None constructs an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// OptionalOf converts a "comma ok" pair into an Optional.
func OptionalOf[T any](in T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return NewOptional(in)
}

// OptionalFromPtr converts a (possibly nil) pointer into an Optional
// of the pointed-to value.
func OptionalFromPtr[T any](in *T) Optional[T] {
	if in == nil {
		return None[T]()
	}
	return NewOptional(*in)
}

func (o Optional[T]) Reset() Optional[T]   { return Optional[T]{} }
func (o Optional[T]) Set(in T) Optional[T] { o.defined = true; o.v = in; return o }
func (o Optional[T]) Get() (T, bool)       { return o.v, o.defined }
func (o Optional[T]) Ok() bool             { return o.defined }

// Resolve returns the value, which is the zero value of T when the
// Optional is absent.
func (o Optional[T]) Resolve() T { return o.v }

// OrElse returns the value, or the default if the Optional is absent.
func (o Optional[T]) OrElse(def T) T {
	if o.defined {
		return o.v
	}
	return def
}

// OrElseGet returns the value, or calls the function to produce one
// if the Optional is absent. The function is not called otherwise.
func (o Optional[T]) OrElseGet(fn func() T) T {
	if o.defined {
		return o.v
	}
	return fn()
}

// MustGet returns the value and panics with an ErrIllegalState error
// when the Optional is absent.
func (o Optional[T]) MustGet() T {
	if !o.defined {
		panic(ers.Wrapf(ers.ErrIllegalState, "value of type %T is absent", o.v))
	}
	return o.v
}

// Filter returns the Optional when it is defined and the value
// passes the predicate, and an absent Optional otherwise.
func (o Optional[T]) Filter(fn func(T) bool) Optional[T] {
	if o.defined && fn(o.v) {
		return o
	}
	return None[T]()
}

// IfPresent calls the function with the value when it is defined.
func (o Optional[T]) IfPresent(fn func(T)) {
	if o.defined {
		fn(o.v)
	}
}

func (o Optional[T]) String() string {
	if !o.defined {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

// MapOptional converts the value of a defined Optional, and passes
// absent values through without calling the function.
func MapOptional[T any, O any](o Optional[T], fn func(T) O) Optional[O] {
	if v, ok := o.Get(); ok {
		return NewOptional(fn(v))
	}
	return None[O]()
}

// FlatMapOptional is MapOptional for functions which may themselves
// produce absent values.
func FlatMapOptional[T any, O any](o Optional[T], fn func(T) Optional[O]) Optional[O] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return None[O]()
}
