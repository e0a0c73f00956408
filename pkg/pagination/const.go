package pagination

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 6

// WindowDefaultSize is the number of page links shown around the current page
const WindowDefaultSize = 4

// FirstPage is the page every malformed request falls back to
const FirstPage = 1
