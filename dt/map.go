package dt

import (
	"iter"
	"maps"

	"github.com/tychoish/coll/ers"
)

// Map is a generic type wrapper around a map, which gives keyed
// access the same fallible shape as indexed access on a Vector: Get
// reports absent keys with ErrKeyNotFound rather than returning the
// zero value.
//
// All normal map operations are still accessible on the underlying
// map.
type Map[K comparable, V any] map[K]V

// DefaultMap takes a map value and returns it if it's non-nil. If the
// map is nil, it constructs and returns a new map, with the
// (optionally specified) length.
func DefaultMap[K comparable, V any](input map[K]V, args ...int) map[K]V {
	if input != nil {
		return input
	}
	switch len(args) {
	case 0:
		return map[K]V{}
	case 1:
		return make(map[K]V, args[0])
	default:
		panic(ers.Wrap(ers.ErrInvariantViolation, "cannot specify >2 arguments to make() for a map"))
	}
}

// NewMap provides a constructor to return a dt.Map without specifying types.
func NewMap[K comparable, V any](in map[K]V) Map[K, V] { return in }

// Check returns true if the value K is in the map.
func (m Map[K, V]) Check(key K) bool { _, ok := m[key]; return ok }

// Get returns the value for the key, or an ErrKeyNotFound.
func (m Map[K, V]) Get(key K) (V, error) {
	v, ok := m[key]
	if !ok {
		return v, ers.Wrapf(ers.ErrKeyNotFound, "key %v", key)
	}
	return v, nil
}

// Lookup returns the value for the key as an Optional.
func (m Map[K, V]) Lookup(key K) Optional[V] { return OptionalOf(m.Load(key)) }

// Load returns the value in the map for the key, and an "ok" value
// which is true if that item is present in the map.
func (m Map[K, V]) Load(key K) (V, bool) { v, ok := m[key]; return v, ok }

// Set adds or replaces the value for the key. Use Replace (or
// ops.Strict) for assignments that must fail on absent keys.
func (m Map[K, V]) Set(k K, v V) { m[k] = v }

// Replace sets the value of an existing key, returning an
// ErrKeyNotFound if the key is absent.
func (m Map[K, V]) Replace(k K, v V) error {
	if !m.Check(k) {
		return ers.Wrapf(ers.ErrKeyNotFound, "key %v", k)
	}
	m[k] = v
	return nil
}

// Delete removes a key from the map.
func (m Map[K, V]) Delete(k K) { delete(m, k) }

// Extend adds a sequence of key value pairs to the map.
func (m Map[K, V]) Extend(seq iter.Seq2[K, V]) { maps.Insert(m, seq) }

// Len returns the length. It is equivalent to len(Map), but is
// provided for consistency.
func (m Map[K, V]) Len() int { return len(m) }

// Iterator returns a standard Go iterator over the key-value pairs of
// the map, in no particular order.
func (m Map[K, V]) Iterator() iter.Seq2[K, V] { return maps.All(m) }
