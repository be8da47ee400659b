package model

// ================ Config ================

type ResponseModelConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
}

type ConversationConfig struct {
	// HistoryMaxMessages bounds how much of the widget-supplied transcript is
	// forwarded to the model; older messages are dropped silently.
	HistoryMaxMessages int `envconfig:"CONVERSATION_HISTORY_MAX_MESSAGES" default:"10"`
	// KnowledgeMaxItems caps the knowledge-base snippets folded into the
	// system prompt.
	KnowledgeMaxItems int `envconfig:"CONVERSATION_KNOWLEDGE_MAX_ITEMS" default:"50"`
	Tools             struct {
		// MaxRounds caps tool-call cycles per turn. One round of store
		// lookups, then the model must answer with what it has.
		MaxRounds int `envconfig:"CONVERSATION_TOOL_MAX_ROUNDS" default:"1"`
	}
}
