package products

import "strings"

// Category partitions the catalog into disjoint groups
type Category string

const (
	Findings     Category = "findings"
	Jewellery    Category = "jewellery"
	BeadStrings  Category = "beadStrings"
	PearlStrings Category = "pearlStrings"
	Beads        Category = "beads"
	Rocks        Category = "rocks"
	Other        Category = "other"
	Birthstones  Category = "birthstones"
)

// categoryOrder is the generation order of the catalog
var categoryOrder = []Category{Findings, Jewellery, BeadStrings, PearlStrings, Beads, Rocks, Other, Birthstones}

var categoryTitles = map[Category]string{
	Findings:     "Findings",
	Jewellery:    "Jewellery",
	BeadStrings:  "Bead Strings",
	PearlStrings: "Pearl Strings",
	Beads:        "Beads",
	Rocks:        "Rocks",
	Other:        "Other",
	Birthstones:  "Birthstones",
}

var categorySlugs = map[Category]string{
	Findings:     "findings",
	Jewellery:    "jewellery",
	BeadStrings:  "bead-strings",
	PearlStrings: "pearl-strings",
	Beads:        "beads",
	Rocks:        "rocks",
	Other:        "other",
	Birthstones:  "birthstones",
}

// Categories returns the eight categories in generation order
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory resolves a category key or its route slug (e.g. "bead-strings"), case-insensitively
func ParseCategory(value string) (Category, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, c := range categoryOrder {
		if strings.ToLower(string(c)) == v || categorySlugs[c] == v {
			return c, true
		}
	}
	return "", false
}

// Title returns the human-readable category name
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return string(c)
}

// Slug returns the route segment of the category listing
func (c Category) Slug() string {
	if s, ok := categorySlugs[c]; ok {
		return s
	}
	return string(c)
}
