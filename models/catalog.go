package models

// CatalogItem represents a single sellable item (a "finding") in the catalog
type CatalogItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"` // Formatted currency string (e.g., "$49.99")
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// Pager represents the page controls rendered below a category listing
type Pager struct {
	Visible     bool  `json:"visible"` // False when there is at most one page
	Current     int   `json:"current"`
	Total       int   `json:"total"`
	Pages       []int `json:"pages"` // At most 5 page numbers
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
	Previous    int   `json:"previous,omitempty"`
	Next        int   `json:"next,omitempty"`
}

// CategoryPage represents one page of a filtered category listing
// Example response:
//
//	{
//	  "category": "jewellery",
//	  "search": "ring",
//	  "page": 1,
//	  "totalPages": 1,
//	  "totalCount": 5,
//	  "items": [ { "id": 54, "title": "Rare Ring #54", ... } ],
//	  "pager": { "visible": false, "current": 1, "total": 1, "pages": [] }
//	}
type CategoryPage struct {
	Category   string        `json:"category"`
	Search     string        `json:"search"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	TotalCount int           `json:"totalCount"`
	Items      []CatalogItem `json:"items"`
	Pager      Pager         `json:"pager"`
}

// CategorySummary represents a category entry in the catalog index
type CategorySummary struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// CatalogIndexResponse represents the response for the catalog index
type CatalogIndexResponse struct {
	Categories []CategorySummary `json:"categories"`
	Featured   []CatalogItem     `json:"featured"`
}
