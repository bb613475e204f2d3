// Package ops is the operator capability layer. Each operator (plus,
// minus, contains, indexed get and set, negation and increment) is a
// small interface that a value type opts into by declaring the
// method; the generic functions here dispatch statically on those
// interfaces.
//
// The slice helpers provide the same operators for plain slices,
// with element equality chosen by the caller: the == operator, the
// cmp.Equaler capability, or an explicit cmp.Equality.
package ops

import (
	"errors"

	"github.com/tychoish/coll/dt"
	"github.com/tychoish/coll/ers"
)

// Plusser is the capability behind a + b: A.Plus(B) returns a new A.
type Plusser[A any, B any] interface{ Plus(B) A }

// Minuser is the capability behind a - b.
type Minuser[A any, B any] interface{ Minus(B) A }

// Negater is the capability behind unary -a.
type Negater[A any] interface{ Neg() A }

// Incrementer is the capability behind ++a.
type Incrementer[A any] interface{ Inc() A }

// Container is the capability behind e in c.
type Container[E any] interface{ Contains(E) bool }

// Indexer is the capability behind c[k]. Absent keys must be
// reported with ers.ErrIndexOutOfRange or ers.ErrKeyNotFound.
type Indexer[K any, V any] interface{ Get(K) (V, error) }

// Assigner is the capability behind c[k] = v. Absent keys must be
// reported with ers.ErrIndexOutOfRange or ers.ErrKeyNotFound.
type Assigner[K any, V any] interface{ Set(K, V) error }

// Plus combines the values.
func Plus[A Plusser[A, B], B any](a A, b B) A { return a.Plus(b) }

// Minus takes b away from a.
func Minus[A Minuser[A, B], B any](a A, b B) A { return a.Minus(b) }

// Neg negates the value.
func Neg[A Negater[A]](a A) A { return a.Neg() }

// Inc increments the value.
func Inc[A Incrementer[A]](a A) A { return a.Inc() }

// Contains reports whether the container holds the element, by the
// container's own rule.
func Contains[E any](c Container[E], e E) bool { return c.Contains(e) }

// Get reads the value at the key.
func Get[K any, V any](c Indexer[K, V], key K) (V, error) { return c.Get(key) }

// GetOptional reads the value at the key, returning an absent value
// instead of an error when the key is out of range or not found.
// Other errors are returned unchanged.
func GetOptional[K any, V any](c Indexer[K, V], key K) (dt.Optional[V], error) {
	v, err := c.Get(key)
	switch {
	case err == nil:
		return dt.NewOptional(v), nil
	case errors.Is(err, ers.ErrIndexOutOfRange), errors.Is(err, ers.ErrKeyNotFound):
		return dt.None[V](), nil
	default:
		return dt.None[V](), err
	}
}

// Set writes the value at the key.
func Set[K any, V any](c Assigner[K, V], key K, value V) error { return c.Set(key, value) }

// Sum combines the values from left to right with Plus. The result
// is absent when there are no values.
func Sum[A Plusser[A, A]](values ...A) dt.Optional[A] {
	if len(values) == 0 {
		return dt.None[A]()
	}
	acc := values[0]
	for _, v := range values[1:] {
		acc = acc.Plus(v)
	}
	return dt.NewOptional(acc)
}

// StrictMap adapts a dt.Map to the Assigner capability: Set replaces
// the value of an existing key, and fails with ers.ErrKeyNotFound
// for absent keys instead of inserting them. Get, and the rest of
// the map's methods, are those of dt.Map.
type StrictMap[K comparable, V any] struct{ dt.Map[K, V] }

// Strict wraps the map.
func Strict[K comparable, V any](m dt.Map[K, V]) StrictMap[K, V] { return StrictMap[K, V]{Map: m} }

func (m StrictMap[K, V]) Set(key K, value V) error { return m.Replace(key, value) }
