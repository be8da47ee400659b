package model

import (
	"github.com/cloudwego/eino/schema"
)

// ChatMessage is one widget-supplied transcript entry. The storefront widget
// only ever sends user and assistant roles.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatInput is everything one chat turn needs. The HTTP handler resolves the
// profile and knowledge base before invoking the graph, so the graph itself
// stays free of storage concerns.
type ChatInput struct {
	Shop      string
	Messages  []ChatMessage
	Profile   *CharacterProfile
	Knowledge []KnowledgeItem
}

// AppState stores per-invocation state for the Eino graph.
// Concurrency model:
//   - This struct is registered as Graph Local State via compose.WithGenLocalState.
//   - All reads/writes happen only inside Eino state handlers:
//     WithStatePreHandler, WithStatePostHandler, or compose.ProcessState.
//   - Eino serializes access to state within these handlers, so no additional
//     mutex/atomic is required as long as you never touch it outside handlers.
type AppState struct {
	Shop             string
	History          []*schema.Message // mutated only inside Eino state handlers
	ToolRounds       int               // completed tool-execution cycles this turn
	ToolLimitReached bool              // set once the per-turn tool budget is spent
	ToolCallIDSeq    int               // local sequence to synthesize tool_call_id when provider omits
}
