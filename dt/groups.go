package dt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tychoish/coll/dt/cmp"
	"github.com/tychoish/coll/ers"
)

// Groups is an ordered multimap: each key maps to the sequence of
// values added for it. Keys are kept in the order they were first
// added, and values in the order they were added.
//
// Key equality is either the == operator, through a hash index (the
// zero value, and NewGroups), or a caller-supplied equality with
// NewGroupsFunc and NewGroupsEqual, which scans the keys linearly and
// accepts keys that are not comparable. A zero-value Groups panics
// when it is used with a key type that == cannot compare.
//
// Callers are responsible for their own concurrency control.
type Groups[K any, V any] struct {
	keys   []K
	values [][]V
	eq     cmp.Equality[K]
	hash   map[any]int
}

// NewGroups constructs a Groups whose keys are compared with ==.
func NewGroups[K comparable, V any]() *Groups[K, V] { return &Groups[K, V]{} }

// NewGroupsFunc constructs a Groups whose keys are compared with the
// equality.
func NewGroupsFunc[K any, V any](eq cmp.Equality[K]) *Groups[K, V] {
	ers.Invariant(eq != nil, "groups require an equality")
	return &Groups[K, V]{eq: eq}
}

// NewGroupsEqual constructs a Groups whose keys are compared with
// their Equal method.
func NewGroupsEqual[K cmp.Equaler[K], V any]() *Groups[K, V] {
	return NewGroupsFunc[K, V](cmp.EqualCustom[K])
}

func (g *Groups[K, V]) find(key K) (int, bool) {
	if g.eq != nil {
		idx := slices.IndexFunc(g.keys, g.eq.Matching(key))
		return idx, idx >= 0
	}
	idx, ok := g.hash[key]
	return idx, ok
}

// Add appends the value to the key's group, creating the group at
// the end of the key order if the key is new. The group keeps the
// first key added for it.
func (g *Groups[K, V]) Add(key K, value V) {
	idx, ok := g.find(key)
	if !ok {
		idx = len(g.keys)
		if g.eq == nil {
			g.hash = DefaultMap(g.hash)
			g.hash[key] = idx
		}
		g.keys = append(g.keys, key)
		g.values = append(g.values, nil)
	}
	g.values[idx] = append(g.values[idx], value)
}

// Len returns the number of keys.
func (g *Groups[K, V]) Len() int { return len(g.keys) }

// Check reports whether the key has a group.
func (g *Groups[K, V]) Check(key K) bool { _, ok := g.find(key); return ok }

// Keys returns the keys in first-seen order.
func (g *Groups[K, V]) Keys() []K { return append([]K(nil), g.keys...) }

// Lookup returns the group for the key, and false if the key is absent.
func (g *Groups[K, V]) Lookup(key K) ([]V, bool) {
	idx, ok := g.find(key)
	if !ok {
		return nil, false
	}
	return append([]V(nil), g.values[idx]...), true
}

// Get returns the group for the key, or an ErrKeyNotFound error.
func (g *Groups[K, V]) Get(key K) ([]V, error) {
	out, ok := g.Lookup(key)
	if !ok {
		return nil, ers.Wrapf(ers.ErrKeyNotFound, "group %v", key)
	}
	return out, nil
}

// Pairs returns the key/group pairs in key order.
func (g *Groups[K, V]) Pairs() []Tuple[K, []V] {
	out := make([]Tuple[K, []V], len(g.keys))
	for idx := range g.keys {
		out[idx] = MakeTuple(g.keys[idx], append([]V(nil), g.values[idx]...))
	}
	return out
}

// GroupsMap copies the groups into a native map, losing the key
// order. Groups built with an equality that is looser than == may
// hold keys that collide in the map; the group added last wins.
func GroupsMap[K comparable, V any](g *Groups[K, V]) map[K][]V {
	out := make(map[K][]V, len(g.keys))
	for idx, key := range g.keys {
		out[key] = append([]V(nil), g.values[idx]...)
	}
	return out
}

func (g *Groups[K, V]) String() string {
	buf := &strings.Builder{}
	buf.WriteByte('{')
	for idx, key := range g.keys {
		if idx > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%v=%v", key, g.values[idx])
	}
	buf.WriteByte('}')
	return buf.String()
}
