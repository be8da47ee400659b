package prompts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airep24/server/internal/assistant/model"
)

func testProfile() *model.CharacterProfile {
	return &model.CharacterProfile{
		Name:         "Maya",
		Role:         "Style Advisor",
		Tone:         "playful",
		Initiative:   "high",
		Style:        "emotional",
		Ethics:       "advisor",
		Instructions: "Never discuss competitors.",
		IsActive:     true,
	}
}

func TestRenderSystemPersonaFraming(t *testing.T) {
	out, err := RenderSystem(context.Background(), "demo.myshopify.com", testProfile(), nil)
	require.NoError(t, err)

	assert.Contains(t, out, "You are Maya, the Style Advisor for this specific store: demo.myshopify.com.")
	assert.Contains(t, out, "Tone: playful")
	assert.Contains(t, out, "[PRODUCT: Title](/products/handle)")
	assert.Contains(t, out, "'searchProducts' tool")
	assert.Contains(t, out, "Never discuss competitors.")
}

func TestRenderSystemAxisSwitches(t *testing.T) {
	p := testProfile()

	p.Initiative = "low"
	out, err := RenderSystem(context.Background(), "s.myshopify.com", p, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "REACTIVE: Only answer what is specifically asked.")

	p.Initiative = "high"
	out, err = RenderSystem(context.Background(), "s.myshopify.com", p, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "PROACTIVE: Always guide the user towards a purchase.")

	p.Style = "tech"
	out, err = RenderSystem(context.Background(), "s.myshopify.com", p, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "STYLE: Focus on product specs, materials, and technical details.")

	p.Style = "emotional"
	out, err = RenderSystem(context.Background(), "s.myshopify.com", p, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "STYLE: Focus on benefits, feelings, and style advice.")

	p.Ethics = "sales"
	out, err = RenderSystem(context.Background(), "s.myshopify.com", p, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Use scarcity (FOMO) and social proof to close the deal.")

	p.Ethics = "advisor"
	out, err = RenderSystem(context.Background(), "s.myshopify.com", p, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Recommend the best fit, even if it's cheaper. Honesty first.")
}

func TestRenderSystemToneDefault(t *testing.T) {
	p := testProfile()
	p.Tone = ""

	out, err := RenderSystem(context.Background(), "s.myshopify.com", p, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Tone: friendly")
}

func TestRenderSystemNilProfile(t *testing.T) {
	_, err := RenderSystem(context.Background(), "s.myshopify.com", nil, nil)
	assert.Error(t, err)
}

func TestKnowledgeBlockFormatting(t *testing.T) {
	items := []model.KnowledgeItem{
		{Type: "faq", Title: "Shipping", Content: "Free over $50"},
		{Type: "policy", Content: "30-day returns"},
	}

	block := KnowledgeBlock(items)
	assert.Equal(t, "[FAQ]: Shipping: Free over $50\n[POLICY]: 30-day returns", block)
}

func TestKnowledgeBlockEmpty(t *testing.T) {
	assert.Equal(t, "No direct knowledge base entries yet. Use tools to find info.", KnowledgeBlock(nil))
}

func TestRenderSystemIncludesKnowledge(t *testing.T) {
	items := []model.KnowledgeItem{{Type: "product", Title: "Linen Tee", Content: "Breathable summer tee"}}

	out, err := RenderSystem(context.Background(), "s.myshopify.com", testProfile(), items)
	require.NoError(t, err)
	assert.Contains(t, out, "[PRODUCT]: Linen Tee: Breathable summer tee")
	assert.NotContains(t, out, "No direct knowledge base entries yet")
}
