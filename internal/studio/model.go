package studio

import (
	"fmt"
	"strings"
)

// ModelParams describes a standalone catalog model to synthesize when the
// merchant has no model photo of their own.
type ModelParams struct {
	Age        string `json:"age"`
	Ethnicity  string `json:"ethnicity"`
	Gender     string `json:"gender"`
	HairColor  string `json:"hairColor"`
	HairLength string `json:"hairLength"`
	BodyType   string `json:"bodyType"`
	Height     string `json:"height"`
	Emotion    string `json:"emotion"`
	Aesthetic  string `json:"aesthetic"`
	Makeup     string `json:"makeup"`
	Pose       string `json:"pose"`
	Eyewear    string `json:"eyewear"`
	Jewelry    string `json:"jewelry"`
	Notes      string `json:"notes"`
}

var aestheticDescriptions = map[string]string{
	"ugc-authentic":   "Authentic UGC style, natural lighting, candid feel, minimal retouching",
	"high-fashion":    "High-end editorial fashion, glossy finish, perfect lighting, professional retouching",
	"business-casual": "Professional business casual look, clean and polished",
	"athleisure":      "Active and sporty lifestyle aesthetic, dynamic and energetic",
}

var heightDescriptions = map[string]string{
	"short":   "Short / Petite height (approx 160cm)",
	"average": "Average height (approx 170cm)",
	"tall":    "Tall model height (approx 180cm+)",
}

func lookupOr(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return table[fallback]
}

const defaultAttire = "The model is wearing a clean, crew-neck white t-shirt and simple, solid light-wash blue denim jeans. FOOTWEAR: Simple white sneakers."

// GenerateModelPrompt builds the standalone model portrait prompt on a seamless
// white studio background. It carries no seed: model generation draws variety
// from the physical parameters alone.
func GenerateModelPrompt(params ModelParams) string {
	emotionText := Resolve(DimensionEmotion, params.Emotion)
	aestheticText := lookupOr(aestheticDescriptions, params.Aesthetic, "ugc-authentic")
	makeupText := Resolve(DimensionMakeup, params.Makeup)
	heightText := lookupOr(heightDescriptions, params.Height, "average")
	poseDesc := Resolve(DimensionPose, params.Pose)

	var accessories []string
	if params.Eyewear == "glasses" {
		accessories = append(accessories, "wearing prescription glasses")
	}
	if params.Eyewear == "sunglasses" {
		accessories = append(accessories, "wearing stylish sunglasses")
	}
	if params.Jewelry == "minimal" {
		accessories = append(accessories, "wearing minimal delicate jewelry")
	}
	if params.Jewelry == "statement" {
		accessories = append(accessories, "wearing bold statement jewelry")
	}
	accessoriesLine := ""
	if len(accessories) > 0 {
		accessoriesLine = fmt.Sprintf("ACCESSORIES: %s.", joinClauses(accessories))
	}

	clothingDescription := params.Notes
	if clothingDescription == "" {
		clothingDescription = defaultAttire
	}

	physicalFeatures := fmt.Sprintf("%s %s hair, %s body type, %s.",
		params.HairColor, params.HairLength, params.BodyType, heightText)

	return strings.TrimSpace(fmt.Sprintf(`%s
ROLE: Commercial Fashion Photographer.
TASK: Generate a high-resolution, photorealistic image of a single model for a catalog.

--- MODEL IDENTITY ---
MODEL DESCRIPTION: %s %s %s model.
PHYSICAL FEATURES: %s
STYLING: %s. %s
EMOTION / EXPRESSION: %s.

--- AESTHETIC & VIBE ---
STYLE: %s.

--- UNIFORM ATTIRE ---
CLOTHING: %s

--- COMPOSITION & LIGHTING ---
BACKGROUND: Seamless, professional white studio background.
POSE: %s
FRAMING: Full body shot.
LIGHTING: Clean, bright, Soft, Diffused Lighting (4500K).

[NEGATIVE PROMPT]
(landscape), (horizontal), (black bars), (letterbox), (padding), visible branding, tattoos, extra limbs.`,
		AspectRatioHeader,
		params.Age, params.Ethnicity, params.Gender,
		physicalFeatures,
		makeupText, accessoriesLine,
		emotionText,
		aestheticText,
		clothingDescription,
		poseDesc))
}
