package domain

import "strings"

// Filter narrows the published recipes a listing works on.
// Zero values mean "no restriction"; unpublished recipes are never listed.
type Filter struct {
	CategoryID int64
	TagSlug    string
	Search     string
}

// Matches applies the filter to a single recipe, for stores that filter in memory.
func (f Filter) Matches(r Recipe) bool {
	if !r.IsPublished {
		return false
	}
	if f.CategoryID != 0 && (r.Category == nil || r.Category.ID != f.CategoryID) {
		return false
	}
	if f.TagSlug != "" && !r.HasTag(f.TagSlug) {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(r.Title), term) &&
			!strings.Contains(strings.ToLower(r.Description), term) {
			return false
		}
	}
	return true
}
