package nodes

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/airep24/server/internal/assistant/graph/conversations"
	"github.com/airep24/server/internal/assistant/graph/prompts"
	"github.com/airep24/server/internal/assistant/model"
	logx "github.com/airep24/server/pkg/logger"
)

// NewContextAssemblerPreHandler resets per-turn state before assembling context.
func NewContextAssemblerPreHandler() func(context.Context, model.ChatInput, *model.AppState) (model.ChatInput, error) {
	return func(ctx context.Context, in model.ChatInput, s *model.AppState) (model.ChatInput, error) {
		s.Shop = in.Shop
		s.History = nil
		s.ToolRounds = 0
		s.ToolLimitReached = false
		s.ToolCallIDSeq = 0
		return in, nil
	}
}

// NewContextAssemblerNode creates the node that turns a ChatInput into the
// message list for the response model: rendered system prompt plus the
// trimmed widget transcript.
func NewContextAssemblerNode(hb *conversations.HistoryBuilder) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, input model.ChatInput) ([]*schema.Message, error) {
		systemPrompt, err := prompts.RenderSystem(ctx, input.Shop, input.Profile, input.Knowledge)
		if err != nil {
			return nil, fmt.Errorf("render system prompt: %w", err)
		}
		return hb.BuildResponseContext(systemPrompt, input.Messages), nil
	})
}

// NewResponseChatModelPreHandler creates the pre-handler for ResponseChatModel node
func NewResponseChatModelPreHandler(maxToolRounds int) func(context.Context, []*schema.Message, *model.AppState) ([]*schema.Message, error) {
	return func(ctx context.Context, in []*schema.Message, state *model.AppState) ([]*schema.Message, error) {
		state.History = append(state.History, in...)

		if checkAndMarkToolLimit(state, maxToolRounds) {
			maxToolRounds = normalizeMaxToolRounds(maxToolRounds)
			wrapUp := &schema.Message{
				Role: schema.System,
				Content: fmt.Sprintf(
					"SYSTEM NOTICE: You have reached the maximum tool call limit (%d). "+
						"Please answer the customer using the tool results you've already gathered.",
					maxToolRounds,
				),
			}
			state.History = append(state.History, wrapUp)
		}

		logx.Debug().Str("shop", state.Shop).Int("messages", len(state.History)).Msg("AI thinking...")

		return state.History, nil
	}
}

// NewToolExecutorPreHandler creates the pre-handler for ToolExecutor node.
// It records the assistant's tool-call message in history and spends one
// tool round.
func NewToolExecutorPreHandler(maxToolRounds int) func(context.Context, *schema.Message, *model.AppState) (*schema.Message, error) {
	return func(ctx context.Context, in *schema.Message, state *model.AppState) (*schema.Message, error) {
		normalizeToolCallIDs(state, in)
		state.History = append(state.History, in)

		exceeded := incrementToolRoundAndCheck(state, maxToolRounds)

		logx.Debug().
			Int("tool_rounds", state.ToolRounds).
			Int("tool_count", len(in.ToolCalls)).
			Str("shop", state.Shop).
			Msg("Tool execution attempt")

		if exceeded {
			logx.Warn().
				Int("tool_rounds", state.ToolRounds).
				Int("max_tool_rounds", normalizeMaxToolRounds(maxToolRounds)).
				Str("shop", state.Shop).
				Msg("Tool round limit exceeded - flagging and continuing")
		}

		return in, nil
	}
}

// NewToolExecutorPostHandler records tool results in history so the follow-up
// model call sees them.
func NewToolExecutorPostHandler() func(context.Context, []*schema.Message, *model.AppState) ([]*schema.Message, error) {
	return func(ctx context.Context, out []*schema.Message, state *model.AppState) ([]*schema.Message, error) {
		// The model pre-handler appends these on the next hop; nothing to
		// record here beyond visibility.
		logx.Debug().Int("tool_results", len(out)).Str("shop", state.Shop).Msg("Tool execution done")
		return out, nil
	}
}

// NewToolExecutorCondition creates the stream condition that routes the model
// output either to tool execution or to the caller. The first chunk of a
// Gemini response carries the tool-call decision.
func NewToolExecutorCondition() func(context.Context, *schema.StreamReader[*schema.Message]) (string, error) {
	return func(ctx context.Context, sr *schema.StreamReader[*schema.Message]) (string, error) {
		defer sr.Close()

		var limitReached bool
		compose.ProcessState(ctx, func(_ context.Context, state *model.AppState) error {
			limitReached = state.ToolLimitReached
			return nil
		})
		if limitReached {
			logx.Debug().Msg("Tool limit reached previously - routing to end")
			return compose.END, nil
		}

		for {
			chunk, err := sr.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return "", fmt.Errorf("inspect model stream: %w", err)
			}
			if chunk == nil {
				continue
			}
			if len(chunk.ToolCalls) > 0 {
				logx.Debug().Int("tool_count", len(chunk.ToolCalls)).Msg("Routing to ToolExecutor")
				return NodeToolExecutor, nil
			}
			if chunk.Content != "" {
				break
			}
		}

		logx.Debug().Msg("No tool calls - streaming response to caller")
		return compose.END, nil
	}
}
