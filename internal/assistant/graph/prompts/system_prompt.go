package prompts

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/airep24/server/internal/assistant/graph/tools"
	"github.com/airep24/server/internal/assistant/model"
)

//go:embed template/system_prompt.txt
var coreSystemPrompt string

const defaultTone = "friendly"

// RenderSystem renders the per-shop system prompt and triggers prompt callbacks.
func RenderSystem(ctx context.Context, shop string, profile *model.CharacterProfile, knowledge []model.KnowledgeItem) (string, error) {
	if profile == nil {
		return "", fmt.Errorf("render system prompt: nil profile")
	}

	tone := strings.TrimSpace(profile.Tone)
	if tone == "" {
		tone = defaultTone
	}

	// Render via Eino prompt component (Go template) to both format and emit callbacks
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(coreSystemPrompt),
	)
	vars := map[string]any{
		"Name":                  profile.Name,
		"Role":                  profile.Role,
		"Shop":                  shop,
		"Tone":                  tone,
		"InitiativeInstruction": initiativeInstruction(profile.Initiative),
		"StyleInstruction":      styleInstruction(profile.Style),
		"EthicsInstruction":     ethicsInstruction(profile.Ethics),
		"SearchTool":            tools.ToolSearchProducts,
		"KnowledgeBlock":        KnowledgeBlock(knowledge),
		"ExtraInstructions":     profile.Instructions,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("system prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("system prompt render: empty result")
	}
	return msgs[0].Content, nil
}

func initiativeInstruction(initiative string) string {
	if initiative == "low" {
		return "REACTIVE: Only answer what is specifically asked."
	}
	return "PROACTIVE: Always guide the user towards a purchase. End responses with a relevant follow-up question."
}

func styleInstruction(style string) string {
	if style == "tech" {
		return "STYLE: Focus on product specs, materials, and technical details."
	}
	return "STYLE: Focus on benefits, feelings, and style advice. Help the user imagine using the product."
}

func ethicsInstruction(ethics string) string {
	if ethics == "sales" {
		return "ETHICS: Be a high-performance salesperson. Use scarcity (FOMO) and social proof to close the deal."
	}
	return "ETHICS: Be a trusted advisor. Recommend the best fit, even if it's cheaper. Honesty first."
}

// KnowledgeBlock flattens KB entries into the prompt's KNOWLEDGE BASE section,
// one line per entry.
func KnowledgeBlock(items []model.KnowledgeItem) string {
	if len(items) == 0 {
		return "No direct knowledge base entries yet. Use tools to find info."
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		var b strings.Builder
		b.WriteString("[" + strings.ToUpper(item.Type) + "]: ")
		if item.Title != "" {
			b.WriteString(item.Title + ": ")
		}
		b.WriteString(item.Content)
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
