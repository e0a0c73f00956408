package pagination

import (
	"context"
	"fmt"
)

// Paginate selects the requested page of rs and the page window around it.
// A malformed or out of range page never fails: it degrades to the first page.
// The only errors returned are the ones of the result set itself.
func Paginate[T any](ctx context.Context, rs ResultSet[T], req Request) (*Page[T], *Range, error) {
	_ = req.Validate()

	count, err := rs.Count(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count result set: %w", err)
	}

	totalPages := TotalPages(count, req.Size)
	current := ParsePage(req.Page, totalPages)
	offset := (current - 1) * req.Size

	items := []T{}
	if count > 0 {
		items, err = rs.Slice(ctx, offset, req.Size)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to slice result set: %w", err)
		}
		if items == nil {
			items = []T{}
		}
	}

	page := &Page[T]{
		Items:      items,
		Number:     current,
		Size:       req.Size,
		Count:      count,
		TotalPages: totalPages,
	}
	rng := MakeRange(current, totalPages, req.Window)

	return page, &rng, nil
}
