package pagination

import "context"

// ResultSet is an ordered, countable and sliceable collection owned by a store.
// Implementations must keep a stable order for the duration of one Paginate call.
type ResultSet[T any] interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// SliceResultSet adapts an already materialized slice to ResultSet.
type SliceResultSet[T any] []T

func (s SliceResultSet[T]) Count(_ context.Context) (int, error) {
	return len(s), nil
}

func (s SliceResultSet[T]) Slice(_ context.Context, offset, limit int) ([]T, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s) || limit <= 0 {
		return []T{}, nil
	}
	end := min(offset+limit, len(s))
	return s[offset:end], nil
}
