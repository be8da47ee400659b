package studio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clothingArgs() (string, string, string, bool, int64, bool, bool, StyleOptions, bool) {
	opts := StyleOptions{
		Pose:        "editorial",
		Emotion:     "smile",
		Makeup:      "glam",
		Eyewear:     "sunglasses",
		Jewelry:     "statement",
		CameraAngle: "90",
	}
	return "Blue Denim Jacket", ClothingAnglePrompts[0], "Urban street", false, 12345, false, true, opts, false
}

func TestGenerateClothingPromptDeterministic(t *testing.T) {
	title, angle, loc, hasLoc, seed, custom, hasModel, opts, hasPerson := clothingArgs()

	first := GenerateClothingPrompt(title, angle, loc, hasLoc, seed, custom, hasModel, opts, hasPerson)
	second := GenerateClothingPrompt(title, angle, loc, hasLoc, seed, custom, hasModel, opts, hasPerson)

	assert.Equal(t, first, second)
}

func TestGenerateClothingPromptStructuralMarkers(t *testing.T) {
	title, angle, loc, hasLoc, seed, custom, hasModel, opts, hasPerson := clothingArgs()
	out := GenerateClothingPrompt(title, angle, loc, hasLoc, seed, custom, hasModel, opts, hasPerson)

	assert.Contains(t, out, "[STRICT DIMENSIONS]")
	assert.Contains(t, out, "[NEGATIVE PROMPT]")
	assert.Contains(t, out, "[VARIETY SEED]: 12345")
	assert.NotContains(t, out, "${")
	assert.Contains(t, out, `"Blue Denim Jacket"`)
	assert.Contains(t, out, "pure side profile view")
	assert.Contains(t, out, "a high-fashion editorial model pose")
}

func TestGenerateClothingPromptPersonReplacement(t *testing.T) {
	title, angle, loc, hasLoc, seed, custom, hasModel, opts, _ := clothingArgs()

	with := GenerateClothingPrompt(title, angle, loc, hasLoc, seed, custom, hasModel, opts, true)
	without := GenerateClothingPrompt(title, angle, loc, hasLoc, seed, custom, hasModel, opts, false)

	assert.Contains(t, with, "PERSON REPLACEMENT TASK")
	assert.NotContains(t, without, "PERSON REPLACEMENT TASK")
	assert.Contains(t, with, "(wrong person)")
	assert.NotContains(t, without, "(wrong person)")
}

func TestGenerateClothingPromptBackgroundSelection(t *testing.T) {
	title, angle, _, _, seed, custom, hasModel, opts, hasPerson := clothingArgs()

	withImage := GenerateClothingPrompt(title, angle, "", true, seed, custom, hasModel, opts, hasPerson)
	assert.Contains(t, withImage, "USE IMAGE 3 AS THE ABSOLUTE BACKGROUND.")
	assert.Contains(t, withImage, "MANDATORY DEPTH")
	assert.Contains(t, withImage, "LIGHTING SOURCE: Derived exclusively from IMAGE 3.")

	generated := GenerateClothingPrompt(title, angle, "Urban street", false, seed, custom, hasModel, opts, hasPerson)
	assert.Contains(t, generated, `GENERATE A NEW BACKGROUND: "Urban street".`)
	assert.Contains(t, generated, "ENVIRONMENT DESIGN")

	fallback := GenerateClothingPrompt(title, angle, "", false, seed, custom, hasModel, opts, hasPerson)
	assert.Contains(t, fallback, defaultBackgroundPrompt)
}

func TestGenerateClothingPromptNoEmptyStylingLine(t *testing.T) {
	title, angle, loc, hasLoc, seed, custom, hasModel, _, hasPerson := clothingArgs()
	out := GenerateClothingPrompt(title, angle, loc, hasLoc, seed, custom, hasModel, StyleOptions{Eyewear: "none", Jewelry: "none"}, hasPerson)

	for _, line := range strings.Split(out, "\n") {
		assert.NotEqual(t, ".", strings.TrimSpace(line))
	}
}
