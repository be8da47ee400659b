package studio

import "strings"

// ProductDescriptor is the caller-supplied product record. Category and
// ProductCategory are alternative spellings of the same field across storefront
// payloads; classification checks Category first and falls back.
type ProductDescriptor struct {
	Title           string `json:"title"`
	Category        string `json:"category"`
	ProductCategory string `json:"productCategory"`
}

func (p ProductDescriptor) categoryText() string {
	if p.Category != "" {
		return p.Category
	}
	return p.ProductCategory
}

// StagingCategory selects the staging vibe for placement backgrounds.
type StagingCategory string

const (
	CategorySkincare StagingCategory = "skincare"
	CategoryDrinks   StagingCategory = "drinks"
	CategoryJewelry  StagingCategory = "jewelry"
	CategoryFood     StagingCategory = "food"
	CategoryGeneral  StagingCategory = "general"
)

// Keyword lists are checked in source order and the first match wins.
// The order is load-bearing: ambiguous titles resolve to the earliest list that
// matches, and changing it silently changes which staging template a product
// receives.
var stagingChecks = []struct {
	category StagingCategory
	keywords []string
}{
	{CategorySkincare, []string{"skincare", "beauty", "cosmet"}},
	{CategoryDrinks, []string{"drink", "beverag", "bottle"}},
	{CategoryJewelry, []string{"jewel", "watch", "access"}},
	{CategoryFood, []string{"food", "snack", "cook"}},
}

// NormalizeCategory maps a free-text category to one of the staging categories
// via case-insensitive substring matching.
func NormalizeCategory(category string) StagingCategory {
	c := strings.ToLower(category)
	if c == "" {
		c = "general"
	}
	for _, check := range stagingChecks {
		for _, kw := range check.keywords {
			if strings.Contains(c, kw) {
				return check.category
			}
		}
	}
	return CategoryGeneral
}

// Size classes decide the framing distance for held-item shots. Small wins over
// large when both lists match, mirroring the original check order.
var smallKeywords = []string{"watch", "jewelry", "ring", "earring", "phone", "cosmetic", "lipstick", "cream", "glass", "bottle"}
var largeKeywords = []string{"bag", "suitcase", "sword", "saber", "bow", "umbrella", "equipment"}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func isSmallProduct(text string) bool {
	return containsAny(text, smallKeywords)
}

func isLargeProduct(text string) bool {
	return containsAny(text, largeKeywords)
}

// ProductType distinguishes garments (composited onto a model) from held items.
type ProductType string

const (
	ProductTypeClothing ProductType = "clothing"
	ProductTypeItem     ProductType = "item"
)

var itemOverrideKeywords = []string{"watch", "jewelry", "ring", "earring", "necklace", "phone", "bag", "bottle", "drink"}

var clothingKeywords = []string{
	"shirt", "dress", "pants", "t-shirt", "hoodie", "jacket", "coat", "suit",
	"blazer", "cardigan", "sweater", "clothing", "apparel", "wear", "bottoms",
	"tops", "skirts",
}

// DetectProductType classifies a product as clothing or a held item from its
// title and category. Items often miscategorized as clothing (watches, bags)
// are checked first; anything unrecognized defaults to item.
func DetectProductType(productTitle, category string) ProductType {
	text := strings.ToLower(productTitle + " " + category)

	if containsAny(text, itemOverrideKeywords) {
		return ProductTypeItem
	}
	if containsAny(text, clothingKeywords) {
		return ProductTypeClothing
	}
	return ProductTypeItem
}
