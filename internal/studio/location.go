package studio

import (
	"fmt"
	"strings"
)

// LocationParams describes a background-only scene to generate.
type LocationParams struct {
	Setting  string `json:"setting"`
	Lighting string `json:"lighting"`
	Style    string `json:"style"`
	Notes    string `json:"notes"`
}

// GenerateLocationPrompt builds the empty-background scene prompt. The
// negative block excludes people and products so the scene stays ready for
// later compositing.
func GenerateLocationPrompt(params LocationParams) string {
	notes := params.Notes
	if notes == "" {
		notes = "None"
	}

	return strings.TrimSpace(fmt.Sprintf(`%s
Professional product photography background setup.
Style: %s setting with %s lighting, %s aesthetic.
Notes: %s

IMPORTANT: This must be a PHOTOREALISTIC background, not an illustration or 3D render.
Requirements:
- Real photography of actual physical space
- Professional studio or location photography
- Natural lighting and shadows
- High-end commercial photography quality
- Shot on professional DSLR camera
- Empty background ready for product placement
- Sharp focus, high resolution 4K
- Clean, uncluttered composition

[NEGATIVE PROMPT]
(landscape), (horizontal), (black bars), (letterbox), (padding), (people), (hands), (skin), (products).`,
		AspectRatioHeader,
		params.Setting, params.Lighting, params.Style,
		notes))
}

// SmartLocationPrompt delegates scene selection to the image model itself:
// instead of a fixed setting it asks the model to infer the most suitable
// environment from the product's title and category.
func SmartLocationPrompt(title, category string) string {
	if category == "" {
		category = "general"
	}
	return fmt.Sprintf(`Analyze the product %q (category: %s) and determine the most suitable real-world environment. For example: gym for activewear, beach for swimwear, street for casual, luxury interior for formal wear, kitchen for food items, etc. Generate a high-quality, contextually appropriate vertical background.`,
		title, category)
}
