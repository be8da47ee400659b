package conversations

import (
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/airep24/server/internal/assistant/model"
)

// HistoryBuilder converts the widget transcript into the message list handed
// to the response model: a system prompt followed by the most recent turns.
type HistoryBuilder struct {
	maxMessages int
}

func NewHistoryBuilder(config model.ConversationConfig) *HistoryBuilder {
	return &HistoryBuilder{maxMessages: config.HistoryMaxMessages}
}

// BuildResponseContext prepends the system prompt to the trimmed transcript.
// Roles other than user/assistant are dropped; the widget has no business
// injecting system or tool messages.
func (hb *HistoryBuilder) BuildResponseContext(systemPrompt string, transcript []model.ChatMessage) []*schema.Message {
	recent := trimTail(transcript, hb.maxMessages)

	messages := make([]*schema.Message, 0, len(recent)+1)
	messages = append(messages, schema.SystemMessage(systemPrompt))

	for _, msg := range recent {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		switch msg.Role {
		case model.RoleUser:
			messages = append(messages, schema.UserMessage(content))
		case model.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(content, nil))
		}
	}
	return messages
}

func trimTail(messages []model.ChatMessage, max int) []model.ChatMessage {
	if max <= 0 || len(messages) <= max {
		return messages
	}
	return messages[len(messages)-max:]
}
