package reconcile

import (
	"errors"
	"fmt"
)

// ErrInvalidBatchSize is returned by Partition for a non-positive size.
var ErrInvalidBatchSize = errors.New("batch size must be positive")

// Partition splits items into contiguous, non-overlapping chunks of at most
// size elements, preserving order and covering the whole input. The chunks
// alias the input's backing array; nothing is copied.
func Partition[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidBatchSize, size)
	}
	if len(items) == 0 {
		return nil, nil
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end:end])
	}
	return batches, nil
}
