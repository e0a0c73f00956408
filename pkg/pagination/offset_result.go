package pagination

// Page is the slice of a result set selected by a request.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	Size       int `json:"size"`
	Count      int `json:"count"`
	TotalPages int `json:"total_pages"`
}

// HasNext reports whether a page follows this one.
func (p *Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

// HasPrevious reports whether a page precedes this one.
func (p *Page[T]) HasPrevious() bool {
	return p.Number > 1
}

// Offset is the position of the first item of the page in the result set.
func (p *Page[T]) Offset() int {
	return (p.Number - 1) * p.Size
}
