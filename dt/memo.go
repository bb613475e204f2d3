package dt

// Memo caches a derived value next to the value it is derived from.
// The cache is invalidated explicitly by the owner whenever the
// source changes, and is recomputed on the next read.
//
// The zero value is an empty cache, and can be used with Call. Memo
// is not safe for concurrent use.
type Memo[T any] struct {
	compute func() T
	value   T
	valid   bool
}

// NewMemo constructs a memo that computes its value with the function.
func NewMemo[T any](fn func() T) *Memo[T] { return &Memo[T]{compute: fn} }

// Resolve returns the cached value, computing it with the function
// passed to NewMemo if the cache is invalid.
func (m *Memo[T]) Resolve() T { return m.Call(m.compute) }

// Call returns the cached value, computing it with the provided
// function if the cache is invalid.
func (m *Memo[T]) Call(fn func() T) T {
	if !m.valid {
		m.value = fn()
		m.valid = true
	}
	return m.value
}

// Invalidate marks the cached value as stale.
func (m *Memo[T]) Invalidate() { m.valid = false; var zero T; m.value = zero }

// Valid reports whether a cached value is present.
func (m *Memo[T]) Valid() bool { return m.valid }
