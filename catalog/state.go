package catalog

import "gemrock-store/products"

// QueryState is the search text and current page owned by a category listing.
// Changing the search text always returns to page 1; switching category clears both.
type QueryState struct {
	Category    products.Category
	SearchText  string
	CurrentPage int
}

// NewQueryState starts a listing on page 1 with no search
func NewQueryState(category products.Category) QueryState {
	return QueryState{Category: category, CurrentPage: 1}
}

// SetSearch replaces the search text and resets the page to 1
func (s *QueryState) SetSearch(text string) {
	s.SearchText = text
	s.CurrentPage = 1
}

// SetPage moves to a page. Values below 1 are treated as 1; the upper bound is
// applied when the query runs, since it depends on the filtered count.
func (s *QueryState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.CurrentPage = page
}

// SetCategory switches category, clearing the search text and page
func (s *QueryState) SetCategory(category products.Category) {
	*s = NewQueryState(category)
}
