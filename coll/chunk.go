package coll

import (
	"github.com/tychoish/coll/ers"
	"github.com/tychoish/coll/seq"
)

// Chunked splits the source into consecutive slices of the given
// size; the final slice may be shorter. A size less than one is an
// ErrInvalidArgument.
func Chunked[T any](src seq.Source[T], size int) ([][]T, error) {
	chunks, err := seq.Chunk(src, size)
	if err != nil {
		return nil, err
	}
	return seq.Collect(chunks), nil
}

// ChunkedWith is Chunked, converting each chunk with the function.
func ChunkedWith[T any, O any](src seq.Source[T], size int, fn func([]T) O) ([]O, error) {
	ers.Invariant(fn != nil, "chunked requires a transform")
	chunks, err := seq.Chunk(src, size)
	if err != nil {
		return nil, err
	}
	return seq.Collect(seq.Map(chunks, fn)), nil
}
