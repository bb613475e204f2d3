package coll

import (
	"github.com/tychoish/coll/dt"
	"github.com/tychoish/coll/dt/cmp"
	"github.com/tychoish/coll/ers"
	"github.com/tychoish/coll/ops"
	"github.com/tychoish/coll/seq"
)

// Number describes the native numeric types that Sum and Average
// accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Count returns the number of elements in the source.
func Count[T any](src seq.Source[T]) int {
	return Fold(src, 0, func(n int, _ T) int { return n + 1 })
}

// CountIf returns the number of elements that match the predicate.
func CountIf[T any](src seq.Source[T], fn func(T) bool) int { return Count(seq.Filter(src, fn)) }

// Sum adds the elements of the source. The sum of an empty source is
// zero.
func Sum[T Number](src seq.Source[T]) T { return Fold(src, 0, func(a, b T) T { return a + b }) }

// Total combines the elements of the source with their Plus
// capability. The result is absent when the source is empty.
func Total[T ops.Plusser[T, T]](src seq.Source[T]) dt.Optional[T] { return ops.Sum(seq.Collect(src)...) }

// SumOf adds the numbers derived from each element of the source.
func SumOf[T any, N Number](src seq.Source[T], fn func(T) N) N { return Sum(seq.Map(src, fn)) }

// Average returns the arithmetic mean of the source. An empty source
// is an ErrEmptyInput.
func Average[T Number](src seq.Source[T]) (float64, error) {
	var sum float64
	var count int
	ForEach(src, func(v T) { sum += float64(v); count++ })
	if count == 0 {
		return 0, ers.Wrap(ers.ErrEmptyInput, "average")
	}
	return sum / float64(count), nil
}

// MinWith returns the smallest element of the source according to
// the ordering; the first one, when several are equivalent. The
// result is absent when the source is empty.
func MinWith[T any](src seq.Source[T], ord cmp.Ordering[T]) dt.Optional[T] {
	return extreme(src, func(cand, cur T) bool { return ord(cand, cur) < 0 })
}

// MaxWith returns the largest element of the source according to the
// ordering; the first one, when several are equivalent. The result
// is absent when the source is empty.
func MaxWith[T any](src seq.Source[T], ord cmp.Ordering[T]) dt.Optional[T] {
	return extreme(src, func(cand, cur T) bool { return ord(cand, cur) > 0 })
}

func extreme[T any](src seq.Source[T], better func(cand, cur T) bool) dt.Optional[T] {
	cur, ok := src.Pull()
	if !ok {
		return dt.None[T]()
	}
	ForEach(src, func(v T) {
		if better(v, cur) {
			cur = v
		}
	})
	return dt.NewOptional(cur)
}

// Min returns the smallest element of the source, if any.
func Min[T cmp.OrderableNative](src seq.Source[T]) dt.Optional[T] { return MinWith(src, cmp.Native[T]) }

// Max returns the largest element of the source, if any.
func Max[T cmp.OrderableNative](src seq.Source[T]) dt.Optional[T] { return MaxWith(src, cmp.Native[T]) }

// MinBy returns the element with the smallest derived key, if any.
func MinBy[T any, K cmp.OrderableNative](src seq.Source[T], keyOf func(T) K) dt.Optional[T] {
	return MinWith(src, cmp.By(keyOf))
}

// MaxBy returns the element with the largest derived key, if any.
func MaxBy[T any, K cmp.OrderableNative](src seq.Source[T], keyOf func(T) K) dt.Optional[T] {
	return MaxWith(src, cmp.By(keyOf))
}
