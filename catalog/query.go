package catalog

import (
	"strings"

	"gemrock-store/models"
	"gemrock-store/products"
)

// ItemsPerPage is the fixed page size of category listings
const ItemsPerPage = 12

// ProductSource provides the base sequence of a category
type ProductSource interface {
	ProductsByCategory(c products.Category) []models.CatalogItem
}

// Matches reports whether the trimmed search text is a case-insensitive substring of
// the item's title, description or price. Blank search matches everything.
func Matches(item models.CatalogItem, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle) ||
		strings.Contains(strings.ToLower(item.Price), needle)
}

// Filter re-derives the filtered sequence from the base sequence, keeping order
func Filter(items []models.CatalogItem, search string) []models.CatalogItem {
	if strings.TrimSpace(search) == "" {
		out := make([]models.CatalogItem, len(items))
		copy(out, items)
		return out
	}

	out := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if Matches(item, search) {
			out = append(out, item)
		}
	}
	return out
}

// TotalPages returns ceil(count / ItemsPerPage)
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + ItemsPerPage - 1) / ItemsPerPage
}

// ClampPage keeps a requested page inside [1, max(1, totalPages)]
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageWindow returns the slice [(page-1)*ItemsPerPage, page*ItemsPerPage) of items,
// bounded by the sequence length
func PageWindow(items []models.CatalogItem, page int) []models.CatalogItem {
	if page < 1 {
		return []models.CatalogItem{}
	}
	start := (page - 1) * ItemsPerPage
	if start >= len(items) {
		return []models.CatalogItem{}
	}
	end := start + ItemsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Querier answers category listing queries against a product source
type Querier struct {
	source ProductSource
}

// NewQuerier creates a new Querier
func NewQuerier(source ProductSource) *Querier {
	return &Querier{source: source}
}

// Query filters the category by search text and returns the requested page
func (q *Querier) Query(category products.Category, search string, page int) models.CategoryPage {
	filtered := Filter(q.source.ProductsByCategory(category), search)
	totalPages := TotalPages(len(filtered))
	page = ClampPage(page, totalPages)

	return models.CategoryPage{
		Category:   string(category),
		Search:     strings.TrimSpace(search),
		Page:       page,
		TotalPages: totalPages,
		TotalCount: len(filtered),
		Items:      PageWindow(filtered, page),
		Pager:      NewPager(page, totalPages),
	}
}

// Run executes the query held by a QueryState
func (q *Querier) Run(state QueryState) models.CategoryPage {
	return q.Query(state.Category, state.SearchText, state.CurrentPage)
}
