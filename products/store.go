package products

import (
	"errors"

	"gemrock-store/models"
)

// ErrNotFound is returned by callers that need an error for an absent product lookup
var ErrNotFound = errors.New("product not found")

// Store is the immutable in-memory catalog. It is built once and never mutated,
// so it is safe for concurrent readers.
type Store struct {
	items      []models.CatalogItem
	byID       map[int]int // id -> index in items
	byCategory map[Category][]int
}

// NewStore generates the catalog and indexes it
func NewStore() *Store {
	return newStore(Generate())
}

func newStore(items []models.CatalogItem) *Store {
	s := &Store{
		items:      items,
		byID:       make(map[int]int, len(items)),
		byCategory: make(map[Category][]int),
	}
	for i, item := range items {
		s.byID[item.ID] = i
		c := Category(item.Category)
		s.byCategory[c] = append(s.byCategory[c], i)
	}
	return s
}

// All returns every catalog item in generation order
func (s *Store) All() []models.CatalogItem {
	out := make([]models.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// ProductsByCategory returns all items of a category in generation order.
// An unknown category yields an empty slice.
func (s *Store) ProductsByCategory(c Category) []models.CatalogItem {
	idx := s.byCategory[c]
	out := make([]models.CatalogItem, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.items[i])
	}
	return out
}

// ProductByID looks up a single item. ok is false when no item has that id.
func (s *Store) ProductByID(id int) (models.CatalogItem, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.CatalogItem{}, false
	}
	return s.items[i], true
}

// Categories returns the categories present in the store, in generation order
func (s *Store) Categories() []Category {
	var out []Category
	for _, c := range categoryOrder {
		if len(s.byCategory[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Featured returns the first perCategory items of each category
func (s *Store) Featured(perCategory int) []models.CatalogItem {
	if perCategory <= 0 {
		return nil
	}
	var out []models.CatalogItem
	for _, c := range s.Categories() {
		items := s.ProductsByCategory(c)
		if perCategory < len(items) {
			items = items[:perCategory]
		}
		out = append(out, items...)
	}
	return out
}
