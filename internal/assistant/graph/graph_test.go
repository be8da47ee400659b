package graph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airep24/server/internal/assistant/graph/conversations"
	"github.com/airep24/server/internal/assistant/graph/nodes"
	"github.com/airep24/server/internal/assistant/graph/tools"
	"github.com/airep24/server/internal/assistant/model"
	"github.com/airep24/server/internal/shopify"
)

// scriptedModel replays canned replies and records every set of input
// messages it was called with.
type scriptedModel struct {
	mu      sync.Mutex
	calls   [][]*schema.Message
	replies []*schema.Message
	tools   []*schema.ToolInfo
}

func (m *scriptedModel) next(input []*schema.Message) *schema.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]*schema.Message, len(input))
	copy(cp, input)
	m.calls = append(m.calls, cp)
	idx := len(m.calls) - 1
	if idx >= len(m.replies) {
		return schema.AssistantMessage("", nil)
	}
	return m.replies[idx]
}

func (m *scriptedModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	return m.next(input), nil
}

func (m *scriptedModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return schema.StreamReaderFromArray([]*schema.Message{m.next(input)}), nil
}

func (m *scriptedModel) WithTools(ts []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	m.tools = ts
	return m, nil
}

type fakeAdmin struct {
	err      error
	orders   []shopify.OrderSummary
	products []shopify.ProductSummary
}

func (f *fakeAdmin) FindOrdersByContact(ctx context.Context, contact string) ([]shopify.OrderSummary, error) {
	return f.orders, f.err
}

func (f *fakeAdmin) SearchProducts(ctx context.Context, query string) ([]shopify.ProductSummary, error) {
	return f.products, f.err
}

func buildTestGraph(t *testing.T, m *scriptedModel, maxRounds int) Runner {
	t.Helper()
	runnable, err := BuildGraph(context.Background(), &GraphConfig{
		ChatModels:     &nodes.ChatModels{Response: m, ResponseModelName: "scripted"},
		HistoryBuilder: conversations.NewHistoryBuilder(model.ConversationConfig{HistoryMaxMessages: 10}),
		MaxToolRounds:  maxRounds,
	})
	require.NoError(t, err)
	return &graphRunner{runnable: runnable}
}

func chatInput(messages ...model.ChatMessage) model.ChatInput {
	return model.ChatInput{
		Shop:     "demo.myshopify.com",
		Messages: messages,
		Profile:  &model.CharacterProfile{Name: "Maya", Role: "Style Advisor", IsActive: true},
	}
}

func toolCallReply(name, args string) *schema.Message {
	return &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{Function: schema.FunctionCall{Name: name, Arguments: args}},
		},
	}
}

func TestGraphToolFailureStillAnswers(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		toolCallReply(tools.ToolCheckOrderStatus, `{"contact":"a@b.com"}`),
		schema.AssistantMessage("I couldn't look that order up, sorry.", nil),
	}}
	runner := buildTestGraph(t, m, 1)

	ctx := shopify.WithClient(context.Background(), &fakeAdmin{err: errors.New("admin down")})
	out, err := runner.Invoke(ctx, chatInput(model.ChatMessage{Role: model.RoleUser, Content: "where is my order?"}))
	require.NoError(t, err)
	assert.Equal(t, "I couldn't look that order up, sorry.", out)

	require.Len(t, m.calls, 2)
	var toolResult *schema.Message
	for _, msg := range m.calls[1] {
		if msg.Role == schema.Tool {
			toolResult = msg
		}
	}
	require.NotNil(t, toolResult, "second model call should carry the tool result")
	assert.Equal(t, "Order lookup error.", toolResult.Content)

	names := make([]string, 0, len(m.tools))
	for _, info := range m.tools {
		names = append(names, info.Name)
	}
	assert.ElementsMatch(t, []string{tools.ToolCheckOrderStatus, tools.ToolSearchProducts}, names)
}

func TestGraphToolRoundBudget(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		toolCallReply(tools.ToolSearchProducts, `{"query":"tee"}`),
		toolCallReply(tools.ToolSearchProducts, `{"query":"tee again"}`),
	}}
	runner := buildTestGraph(t, m, 1)

	admin := &fakeAdmin{products: []shopify.ProductSummary{{Title: "Basic Tee", Handle: "basic-tee"}}}
	ctx := shopify.WithClient(context.Background(), admin)
	sr, err := runner.Stream(ctx, chatInput(model.ChatMessage{Role: model.RoleUser, Content: "any tees?"}))
	require.NoError(t, err)

	var last *schema.Message
	for {
		chunk, recvErr := sr.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		require.NoError(t, recvErr)
		last = chunk
	}
	sr.Close()

	require.Len(t, m.calls, 2, "the round budget should stop the loop after one tool round")

	wrapUp := m.calls[1][len(m.calls[1])-1]
	assert.Equal(t, schema.System, wrapUp.Role)
	assert.Contains(t, wrapUp.Content, "maximum tool call limit (1)")

	require.NotNil(t, last)
	assert.Len(t, last.ToolCalls, 1, "the budget routes the second tool request straight to the caller")
}

func TestGraphStreamsDirectAnswer(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		schema.AssistantMessage("We have three tees in stock.", nil),
	}}
	runner := buildTestGraph(t, m, 1)

	transcript := make([]model.ChatMessage, 0, 15)
	for i := 0; i < 15; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		transcript = append(transcript, model.ChatMessage{Role: role, Content: fmt.Sprintf("m%d", i)})
	}

	sr, err := runner.Stream(context.Background(), chatInput(transcript...))
	require.NoError(t, err)

	var sb strings.Builder
	for {
		chunk, recvErr := sr.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		require.NoError(t, recvErr)
		sb.WriteString(chunk.Content)
	}
	sr.Close()

	assert.Equal(t, "We have three tees in stock.", sb.String())

	require.Len(t, m.calls, 1)
	call := m.calls[0]
	require.Len(t, call, 11, "system prompt plus the trimmed transcript tail")
	assert.Equal(t, schema.System, call[0].Role)
	assert.Equal(t, "m5", call[1].Content)
}
