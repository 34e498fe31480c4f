package products

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"gemrock-store/models"
	"gemrock-store/utils"
)

// ItemsPerCategory is the number of items synthesized for each category
const ItemsPerCategory = 50

var adjectives = []string{
	"Beautiful", "Natural", "Polished", "Raw", "Rare", "Unique", "Vintage",
	"Modern", "Elegant", "Rustic", "Classic", "Premium", "Luxury", "Handmade",
}

var nouns = map[Category][]string{
	Findings:     {"Stone", "Pebble", "Crystal", "Rock", "Mineral", "Gem", "Fragment", "Specimen", "Finding", "Component"},
	Jewellery:    {"Necklace", "Bracelet", "Earrings", "Ring", "Pendant", "Brooch", "Anklet", "Tiara", "Bangle", "Choker"},
	BeadStrings:  {"Bead Strand", "Bead String", "Bead Chain", "Bead Rope", "Bead Garland", "Bead Collection", "Bead Set", "Bead Strands"},
	PearlStrings: {"Pearl Strand", "Pearl Necklace", "Pearl Rope", "Pearl Chain", "Pearl Garland", "Pearl Collection", "Pearl Set"},
	Beads:        {"Seed Beads", "Faceted Beads", "Pony Beads", "Bugle Beads", "Crystal Beads", "Wood Beads", "Glass Beads", "Gemstone Beads"},
	Rocks:        {"Crystal", "Geode", "Mineral", "Specimen", "Slab", "Cluster", "Carving", "Stone", "Rock", "Quartz"},
	Other:        {"Tool", "Supply", "Material", "Accessory", "Component", "Equipment", "Kit", "Set", "Package", "Bundle"},
	Birthstones:  {"Garnet", "Amethyst", "Aquamarine", "Diamond", "Emerald", "Pearl", "Ruby", "Peridot", "Sapphire", "Opal", "Topaz", "Turquoise", "Citrine", "Zircon"},
}

// priceRule is a linear price in the item's ordinal: base + step*i
type priceRule struct {
	base decimal.Decimal
	step decimal.Decimal
}

var defaultPriceRule = priceRule{base: decimal.RequireFromString("19.99"), step: decimal.RequireFromString("2.5")}

var priceRules = map[Category]priceRule{
	Jewellery:    {base: decimal.RequireFromString("49.99"), step: decimal.NewFromInt(5)},
	PearlStrings: {base: decimal.RequireFromString("39.99"), step: decimal.NewFromInt(4)},
	Birthstones:  {base: decimal.RequireFromString("59.99"), step: decimal.NewFromInt(6)},
}

// basePrice computes the price of the i-th item (0-based) of a category
func basePrice(c Category, i int) decimal.Decimal {
	rule, ok := priceRules[c]
	if !ok {
		rule = defaultPriceRule
	}
	return rule.base.Add(rule.step.Mul(decimal.NewFromInt(int64(i))))
}

// generateCategory synthesizes count items for a category, with ids starting at startID
func generateCategory(c Category, startID, count int) []models.CatalogItem {
	titles := nouns[c]
	imageList := images[c]

	items := make([]models.CatalogItem, 0, count)
	for i := 0; i < count; i++ {
		id := startID + i
		adj := adjectives[i%len(adjectives)]

		noun := string(c)
		if len(titles) > 0 {
			noun = titles[i%len(titles)]
		}

		image := ""
		if len(imageList) > 0 {
			image = imageList[i%len(imageList)]
		}

		items = append(items, models.CatalogItem{
			ID:    id,
			Title: fmt.Sprintf("%s %s #%d", adj, noun, id),
			Description: fmt.Sprintf(
				"A %s %s from our %s collection. Perfect for jewelry making and creative projects. Each piece is carefully selected for quality and beauty.",
				strings.ToLower(adj), strings.ToLower(noun), c),
			Price:    utils.FormatUSD(basePrice(c, i)),
			Image:    image,
			Category: string(c),
		})
	}
	return items
}

// Generate builds the full catalog: 50 items for each of the 8 categories, ids 1..400.
// The output is deterministic.
func Generate() []models.CatalogItem {
	all := make([]models.CatalogItem, 0, len(categoryOrder)*ItemsPerCategory)
	for idx, c := range categoryOrder {
		all = append(all, generateCategory(c, idx*ItemsPerCategory+1, ItemsPerCategory)...)
	}
	return all
}
