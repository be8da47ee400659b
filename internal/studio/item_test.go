package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateItemPromptSizeFraming(t *testing.T) {
	opts := StyleOptions{}

	watch := GenerateItemPrompt(
		ProductDescriptor{Title: "Luxury Watch", Category: "watch"},
		ItemAnglePrompts[0], "Modern office", 67890, 0, false, false, true, opts, false, ActionDemonstrate)
	assert.Contains(t, watch, "Medium Close-up")
	assert.NotContains(t, watch, "Full-body or Knee-up")
	assert.Contains(t, watch, "holding or interacting with the product in a close portrait frame")

	bag := GenerateItemPrompt(
		ProductDescriptor{Title: "Leather Tote", Category: "bag"},
		ItemAnglePrompts[0], "Modern office", 67890, 0, false, false, true, opts, false, ActionDemonstrate)
	assert.Contains(t, bag, "Full-body or Knee-up")
	assert.NotContains(t, bag, "Medium Close-up")
	assert.Contains(t, bag, "the central hero of the full-body shot")
}

func TestGenerateItemPromptModes(t *testing.T) {
	product := ProductDescriptor{Title: "Sparkling Water", Category: "drinks"}

	interaction := GenerateItemPrompt(product, ItemAnglePrompts[0], "", 1, 0, false, false, true, StyleOptions{}, false, ActionInteraction)
	assert.Contains(t, interaction, "MODE: INTERACTION (Active Lifestyle Usage)")
	assert.Contains(t, interaction, "ACTION: Active usage.")
	assert.Contains(t, interaction, "(closed lid:1.5)")

	demo := GenerateItemPrompt(product, ItemAnglePrompts[0], "", 1, 0, false, false, true, StyleOptions{}, false, ActionDemonstrate)
	assert.Contains(t, demo, "MODE: PRESENTATION (The Hero Shot)")
	assert.NotContains(t, demo, "ACTION: Active usage.")
	assert.NotContains(t, demo, "(closed lid:1.5)")
}

func TestGenerateItemPromptInteractionInjectionOnlyOnHeroAngle(t *testing.T) {
	product := ProductDescriptor{Title: "Olive Oil", Category: "food"}

	hero := GenerateItemPrompt(product, ItemAnglePrompts[0], "", 1, 0, false, false, true, StyleOptions{}, false, ActionInteraction)
	assert.Contains(t, hero, "elegantly pouring the liquid")

	macro := GenerateItemPrompt(product, ItemAnglePrompts[2], "", 1, 2, false, false, true, StyleOptions{}, false, ActionInteraction)
	assert.NotContains(t, macro, "elegantly pouring the liquid")
}

func TestGenerateItemPromptForceOverrides(t *testing.T) {
	product := ProductDescriptor{Title: "Hand Cream", Category: "skincare"}
	opts := StyleOptions{Emotion: "smile", Makeup: "auto", Eyewear: "glasses"}

	out := GenerateItemPrompt(product, ItemAnglePrompts[1], "", 7, 1, false, false, true, opts, false, ActionDemonstrate)

	assert.Contains(t, out, "FORCE EMOTION: SMILE")
	assert.Contains(t, out, "FORCE ACCESSORIES/EYEWEAR: GLASSES")
	// "auto" never produces an override line.
	assert.NotContains(t, out, "FORCE MAKEUP/GROOMING")
	assert.NotContains(t, out, "FORCE JEWELRY")
}

func TestGenerateItemPromptMarkersAndDeterminism(t *testing.T) {
	product := ProductDescriptor{Title: "Hand Cream", ProductCategory: "skincare"}

	first := GenerateItemPrompt(product, ItemAnglePrompts[0], "Marble bathroom", 424242, 0, false, false, true, StyleOptions{}, false, ActionInteraction)
	second := GenerateItemPrompt(product, ItemAnglePrompts[0], "Marble bathroom", 424242, 0, false, false, true, StyleOptions{}, false, ActionInteraction)
	require.Equal(t, first, second)

	assert.Contains(t, first, "[STRICT COMPOSITION]")
	assert.Contains(t, first, "[NEGATIVE PROMPT]")
	assert.Contains(t, first, "[ID: 424242]")
	assert.NotContains(t, first, "${")
	// ProductCategory is honored when Category is empty.
	assert.Contains(t, first, `"Hand Cream" (skincare)`)
}

func TestGenerateItemPromptLighting(t *testing.T) {
	product := ProductDescriptor{Title: "Candle", Category: "general"}

	withImage := GenerateItemPrompt(product, ItemAnglePrompts[0], "", 1, 0, true, false, true, StyleOptions{}, false, ActionDemonstrate)
	assert.Contains(t, withImage, "MATCH the lighting of Background Image 3")
	assert.Contains(t, withImage, "MASTER BACKGROUND IMAGE.")

	withPrompt := GenerateItemPrompt(product, ItemAnglePrompts[0], "Cozy cabin", 1, 0, false, false, true, StyleOptions{}, false, ActionDemonstrate)
	assert.Contains(t, withPrompt, `Match the natural atmosphere of "Cozy cabin".`)

	studioLight := GenerateItemPrompt(product, ItemAnglePrompts[0], "", 1, 0, false, false, true, StyleOptions{}, false, ActionDemonstrate)
	assert.Contains(t, studioLight, "High-quality professional studio lighting.")
}
