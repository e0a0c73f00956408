package pagination

import (
	"strconv"
	"strings"
)

// Range describes the page links to render next to a page.
// FirstPage and LastPage are only set when the window does not already
// contain the first or the last page.
type Range struct {
	PageRange   []int `json:"page_range"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	FirstPage   *int  `json:"first_page,omitempty"`
	LastPage    *int  `json:"last_page,omitempty"`
}

// Paginated reports whether there is more than one page to navigate.
func (r *Range) Paginated() bool {
	return r.TotalPages > 1
}

// TotalPages returns max(1, ceil(count/size)).
func TotalPages(count, size int) int {
	if size <= 0 {
		size = PageDefaultSize
	}
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// ParsePage turns a raw page value into a page number within [1, totalPages].
// Anything that is not a positive integer, or that points past the last page,
// falls back to the first page.
func ParsePage(raw string, totalPages int) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < FirstPage || page > totalPages {
		return FirstPage
	}
	return page
}

// MakeRange computes a window of page numbers of the given width centred on
// current. Near either edge the window is shifted instead of shrunk, so it is
// always min(window, totalPages) pages long.
func MakeRange(current, totalPages, window int) Range {
	if totalPages < 1 {
		totalPages = 1
	}
	if window < 1 {
		window = WindowDefaultSize
	}
	current = min(max(current, 1), totalPages)

	width := min(window, totalPages)
	start := current - (width-1)/2
	if start < 1 {
		start = 1
	}
	if end := start + width - 1; end > totalPages {
		start = totalPages - width + 1
	}

	pages := make([]int, width)
	for i := range pages {
		pages[i] = start + i
	}

	r := Range{
		PageRange:   pages,
		CurrentPage: current,
		TotalPages:  totalPages,
	}
	if pages[0] != 1 {
		first := 1
		r.FirstPage = &first
	}
	if pages[width-1] != totalPages {
		last := totalPages
		r.LastPage = &last
	}
	return r
}
