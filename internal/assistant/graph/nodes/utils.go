package nodes

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/airep24/server/internal/assistant/model"
)

const DefaultMaxToolRounds = 1

// normalizeMaxToolRounds returns a sane default when the provided value is invalid.
func normalizeMaxToolRounds(n int) int {
	if n <= 0 {
		return DefaultMaxToolRounds
	}
	return n
}

// checkAndMarkToolLimit evaluates whether another tool round would exceed the
// limit and, if so, marks the state accordingly. Returns true when marked now.
func checkAndMarkToolLimit(state *model.AppState, max int) bool {
	max = normalizeMaxToolRounds(max)
	if !state.ToolLimitReached && state.ToolRounds >= max {
		state.ToolLimitReached = true
		return true
	}
	return false
}

// incrementToolRoundAndCheck increments the round counter and marks the state
// if it exceeds the limit after incrementing. Returns true when exceeded.
func incrementToolRoundAndCheck(state *model.AppState, max int) bool {
	max = normalizeMaxToolRounds(max)
	state.ToolRounds++
	if state.ToolRounds > max {
		state.ToolLimitReached = true
		return true
	}
	return false
}

// normalizeToolCallIDs fills in synthetic IDs for providers (Gemini
// OpenAI-compat) that omit tool_call IDs.
func normalizeToolCallIDs(state *model.AppState, msg *schema.Message) {
	if msg == nil {
		return
	}
	for i := range msg.ToolCalls {
		if strings.TrimSpace(msg.ToolCalls[i].ID) == "" {
			state.ToolCallIDSeq++
			msg.ToolCalls[i].ID = fmt.Sprintf("call_%d", state.ToolCallIDSeq)
		}
	}
}
