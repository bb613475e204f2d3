package coll

import (
	"github.com/tychoish/coll/dt"
	"github.com/tychoish/coll/ers"
	"github.com/tychoish/coll/seq"
)

func checkIndex(idx, length int) error {
	return ers.Whenf(idx < 0 || idx >= length, ers.ErrIndexOutOfRange, "index %d for length %d", idx, length)
}

// SliceAt returns the elements at the indices, in the order the
// indices are given. Any index outside of the source is an
// ErrIndexOutOfRange.
func SliceAt[T any](src seq.Source[T], indices ...int) ([]T, error) {
	items := seq.Collect(src)
	out := make([]T, 0, len(indices))
	for _, idx := range indices {
		if err := checkIndex(idx, len(items)); err != nil {
			return nil, err
		}
		out = append(out, items[idx])
	}
	return out, nil
}

// SliceRange returns the elements at the indices of the range, in
// range order (so a DownTo range reverses the selection). The first
// index of the range outside of the source is an ErrIndexOutOfRange.
func SliceRange[T any](src seq.Source[T], r dt.Range) ([]T, error) {
	items := seq.Collect(src)
	out := []T{}
	var err error
	r.Each(func(idx int) bool {
		if err = checkIndex(idx, len(items)); err != nil {
			return false
		}
		out = append(out, items[idx])
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TakeLast returns the last n elements of the source (or all of
// them, if there are fewer). A negative n is an ErrInvalidArgument.
func TakeLast[T any](src seq.Source[T], n int) ([]T, error) {
	if n < 0 {
		return nil, ers.Wrapf(ers.ErrInvalidArgument, "take last count %d is negative", n)
	}
	items := seq.Collect(src)
	return items[max(len(items)-n, 0):], nil
}

// DropLast returns all but the last n elements of the source. A
// negative n is an ErrInvalidArgument.
func DropLast[T any](src seq.Source[T], n int) ([]T, error) {
	if n < 0 {
		return nil, ers.Wrapf(ers.ErrInvalidArgument, "drop last count %d is negative", n)
	}
	items := seq.Collect(src)
	return items[:max(len(items)-n, 0)], nil
}
