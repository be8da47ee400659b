package studio

import (
	"fmt"
	"strings"
)

// PlacementParams describes an empty staging-surface background for product
// placement. Seed is a caller-supplied literal tag; the builder itself is
// deterministic.
type PlacementParams struct {
	ProductCategory string `json:"productCategory"`
	Material        string `json:"material"`
	Decor           string `json:"decor"`
	Level           string `json:"level"`
	Seed            int64  `json:"seed"`
}

type categoryContext struct {
	vibe   string
	bg     string
	accent string
}

var categoryContexts = map[StagingCategory]categoryContext{
	CategorySkincare: {"minimalist and clean", "soft pastel or bright white", "glass reflections and water droplets"},
	CategoryDrinks:   {"vibrant and refreshing", "natural outdoor or modern bar", "ice cubes and fresh citrus slices"},
	CategoryJewelry:  {"luxurious and high-contrast", "dark velvet or mirrors", "sharp highlights and bokeh flares"},
	CategoryFood:     {"warm and rustic", "wooden kitchen or linen textile", "herbs and scattered ingredients"},
	CategoryGeneral:  {"modern and professional", "soft-focus interior", "subtle lifestyle props"},
}

var materialDescriptions = map[string]string{
	"marble":    "a smooth, polished white marble pedestal with subtle grey veining",
	"wood":      "a natural light oak wooden platform with visible grain",
	"concrete":  "a minimalist raw concrete slab with industrial texture",
	"velvet":    "a luxurious soft velvet-covered jewelry stand",
	"glass":     "a clean frosted glass block with soft internal light",
	"botanical": "a platform made of stacked tropical leaves",
	"sandstone": "a rough-hewn natural sandstone block",
}

var decorDescriptions = map[string]string{
	"organic":    "pampas grass and smooth river stones",
	"minimalist": "stark clean lines with no props",
	"luxury":     "gold accents and silk fabric",
	"floral":     "delicate petals and leaves",
	"nature":     "moss and weathered rocks",
	"seasonal":   "pine cones and seasonal elements",
	"industrial": "wire mesh and metal accents",
}

var viewDescriptions = map[string]string{
	"eye-level": "Eye-level professional product photography shot.",
	"top-down":  "Top-down flat lay perspective.",
	"macro":     "Macro close-up, focusing on the texture of the surface.",
}

// GeneratePlacementPrompt builds the empty pedestal scene sized to the
// product's staging category. Material, decor and level degrade to generic
// phrases when unrecognized.
func GeneratePlacementPrompt(params PlacementParams) string {
	material := params.Material
	if material == "" {
		material = "marble"
	}
	decor := params.Decor
	if decor == "" {
		decor = "organic"
	}
	level := params.Level
	if level == "" {
		level = "eye-level"
	}

	ctx := categoryContexts[NormalizeCategory(params.ProductCategory)]

	materialDesc, ok := materialDescriptions[material]
	if !ok {
		materialDesc = "a professional display pedestal"
	}
	decorDesc := decorDescriptions[decor]
	viewDesc, ok := viewDescriptions[level]
	if !ok {
		viewDesc = "Professional shot."
	}

	return strings.TrimSpace(fmt.Sprintf(`%s
[TASK: Background Asset Generation]
- OBJECTIVE: Generate an EMPTY background scene for product placement.
- NO PRODUCTS: The central focus is an EMPTY %s.
- NO HUMANS: Strictly no people, hands, or skin.
- CATEGORY VIBE: %s.
- DECOR: Surrounded by %s.
- COMPOSITION: %s
- ATMOSPHERE: %s, 8k quality, sharp focus on the pedestal. [SEED: %d]

[NEGATIVE PROMPT]
(products), (people), (hands), (skin), (black bars), (landscape), (horizontal).`,
		AspectRatioHeader,
		materialDesc,
		ctx.vibe,
		decorDesc,
		viewDesc,
		ctx.bg,
		params.Seed))
}

// GenerateAutoPlacementPrompt lets the image model pick material and
// environment itself based on the product's title and category.
func GenerateAutoPlacementPrompt(product ProductDescriptor, seed int64) string {
	productInfo := product.Title
	if cat := product.categoryText(); cat != "" {
		productInfo = fmt.Sprintf("%s (Category: %s)", product.Title, cat)
	}

	return strings.TrimSpace(fmt.Sprintf(`%s
[TASK: Universal Smart Background Generation]
- OBJECTIVE: Generate a high-end, professionally styled background scene for product photography.
- CONTEXT: This background is being designed specifically for the product: %q.
- NO PRODUCTS: The scene must be EMPTY. No products, hands, or people.
- SMART STYLE SELECTION:
    1. Analyze the product %q.
    2. Select the most aesthetically appropriate MATERIAL for the central display platform (e.g., polished marble for skincare, dark velvet or glass for luxury watches, rustic oak for wine/spirits, minimalist concrete for tech).
    3. Select an ENVIRONMENT that matches the product's vibe (e.g., sun-drenched minimalist studio, moody luxury boutique, natural outdoor setting, or a high-end bar/cellar).
- COMPOSITION: A professional eye-level shot. The central platform should be the hero, ready to host the product.
- ATMOSPHERE: Sophisticated lighting, sharp focus, 8k quality. Cinematic shadows and reflections that enhance the sense of depth. [SEED: %d]
- RULES: No black bars, fill the 9:16 vertical frame completely.

[NEGATIVE PROMPT]
(products), (people), (hands), (black bars), (letterbox), (landscape).`,
		AspectRatioHeader,
		productInfo,
		productInfo,
		seed))
}
