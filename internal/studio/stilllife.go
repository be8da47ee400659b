package studio

import (
	"fmt"
	"strings"
)

// GenerateStillLifePrompt builds a product-only shot: no model, just the
// product staged in the scene. When a location image accompanies the request
// the lighting is matched to it (the product arrives as IMAGE 1, the scene as
// IMAGE 2).
func GenerateStillLifePrompt(
	product ProductDescriptor,
	angleVariation string,
	locationPrompt string,
	seed int64,
	hasLocationImage bool,
) string {
	lighting := "Elegant studio lighting"
	if hasLocationImage {
		lighting = "Match Image 2"
	} else if locationPrompt != "" {
		lighting = locationPrompt
	}

	return strings.TrimSpace(fmt.Sprintf(`%s
[TASK: Professional Still Life Product Photography Shot]
- CAMERA: 8k DSLR, high resolution, photorealistic.
- ANGLE: %s
- LIGHTING: %s.
- PRODUCT: Place %q carefully in the scene.
- MANDATE: Zero digital noise, high fidelity, 9:16 vertical composition. [SEED: %d]
- VERSION: GEMINI 2.5 FLASH CORE.

[NEGATIVE PROMPT]
(landscape), (horizontal), (black bars), (letterbox), (people), (hands), (digital noise), (cartoon), (illustration).`,
		AspectRatioHeader,
		angleVariation,
		lighting,
		product.Title,
		seed))
}
