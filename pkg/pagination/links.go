package pagination

import (
	"net/url"
	"strconv"
)

// PageParam is the query parameter carrying the page number.
const PageParam = "page"

// NextLink returns the URL of the page after p, or nil on the last page.
func NextLink[T any](u url.URL, p *Page[T]) *string {
	if !p.HasNext() {
		return nil
	}
	return pageLink(u, p.Number+1)
}

// PreviousLink returns the URL of the page before p, or nil on the first page.
// The link to the first page carries no page parameter at all.
func PreviousLink[T any](u url.URL, p *Page[T]) *string {
	if !p.HasPrevious() {
		return nil
	}
	return pageLink(u, p.Number-1)
}

func pageLink(u url.URL, page int) *string {
	q := u.Query()
	if page == FirstPage {
		q.Del(PageParam)
	} else {
		q.Set(PageParam, strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	link := u.String()
	return &link
}
