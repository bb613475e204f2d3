// Package cmp provides the equality and ordering capabilities used by
// the collection packages.
//
// Capabilities are resolved statically: a value type opts in by
// implementing Equaler or Comparer, and generic functions constrained
// on those interfaces select the implementation at compile time.
// Native types use the language operators through the Native and
// EqualNative functions.
package cmp

import "time"

// OrderableNative describes all native types which support the <
// operator. To order custom types, implement the Comparer interface.
type OrderableNative interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Equaler is the equality capability. Implementations must compare
// the fields that define the value's identity, never pointer
// identity.
type Equaler[T any] interface{ Equal(T) bool }

// Comparer is the ordering capability. Compare returns a negative
// number when the receiver sorts before the argument, zero when they
// are equivalent, and a positive number otherwise.
type Comparer[T any] interface{ Compare(T) int }

// Comparable is implemented by types that declare both equality and
// ordering. For these types Compare(b) == 0 must hold exactly when
// Equal(b) is true; see Consistent.
type Comparable[T any] interface {
	Equaler[T]
	Comparer[T]
}

// Ordering is a three-way comparison function.
type Ordering[T any] func(a, b T) int

// Equality reports whether two values are equal.
type Equality[T any] func(a, b T) bool

// Native compares values with the < operator.
func Native[T OrderableNative](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

// Custom compares values using their Comparer implementation.
func Custom[T Comparer[T]](a, b T) int { return a.Compare(b) }

// Time orders time values chronologically.
func Time(a, b time.Time) int { return a.Compare(b) }

// EqualNative compares values with the == operator.
func EqualNative[T comparable](a, b T) bool { return a == b }

// EqualCustom compares values using their Equaler implementation.
func EqualCustom[T Equaler[T]](a, b T) bool { return a.Equal(b) }

// By derives an ordering from a key function whose result is a
// native ordered type.
func By[T any, K OrderableNative](key func(T) K) Ordering[T] {
	return func(a, b T) int { return Native(key(a), key(b)) }
}

// ByCustom derives an ordering from a key function whose result
// implements Comparer.
func ByCustom[T any, K Comparer[K]](key func(T) K) Ordering[T] {
	return func(a, b T) int { return key(a).Compare(key(b)) }
}

// ByOrdering derives an ordering from a key function and an ordering
// for the keys.
func ByOrdering[T any, K any](key func(T) K, ord Ordering[K]) Ordering[T] {
	return func(a, b T) int { return ord(key(a), key(b)) }
}

// Reverse inverts the direction of the ordering.
func (o Ordering[T]) Reverse() Ordering[T] { return func(a, b T) int { return o(b, a) } }

// Less converts the ordering into a less-than predicate.
func (o Ordering[T]) Less(a, b T) bool { return o(a, b) < 0 }

// Then breaks ties in the ordering with the next ordering.
func (o Ordering[T]) Then(next Ordering[T]) Ordering[T] {
	return func(a, b T) int {
		if c := o(a, b); c != 0 {
			return c
		}
		return next(a, b)
	}
}

// Equality returns the equality implied by the ordering: two values
// are equal when neither sorts before the other.
func (o Ordering[T]) Equality() Equality[T] { return func(a, b T) bool { return o(a, b) == 0 } }

// Not inverts the equality.
func (e Equality[T]) Not() Equality[T] { return func(a, b T) bool { return !e(a, b) } }

// Matching binds one side of the equality, producing a predicate.
func (e Equality[T]) Matching(a T) func(T) bool { return func(b T) bool { return e(a, b) } }

// Consistent reports whether the ordering and equality of a pair of
// values agree, in both directions. Types whose Consistent check
// fails for any pair have a discordant total order.
func Consistent[T Comparable[T]](a, b T) bool {
	return (a.Compare(b) == 0) == a.Equal(b) && (b.Compare(a) == 0) == b.Equal(a)
}
