package pagination

// Request carries everything a single pagination call needs.
// Page is kept raw, exactly as the caller received it (usually ?page=).
type Request struct {
	Page   string `json:"page" query:"page"`
	Size   int    `json:"size" query:"size"`
	Window int    `json:"-" query:"-"`
}

// NewRequest builds a request for a call site with its own page and window size.
func NewRequest(page string, size, window int) Request {
	r := Request{Page: page, Size: size, Window: window}
	_ = r.Validate()
	return r
}

// Validate fills in defaults for non-positive size and window.
// Sizes come from configuration, so any positive size is used as is.
func (r *Request) Validate() error {
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Window <= 0 {
		r.Window = WindowDefaultSize
	}
	return nil
}
