package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/airep24/server/internal/assistant/graph/conversations"
	"github.com/airep24/server/internal/assistant/graph/nodes"
	"github.com/airep24/server/internal/assistant/graph/observers"
	"github.com/airep24/server/internal/assistant/graph/tools"
	"github.com/airep24/server/internal/assistant/model"
	logx "github.com/airep24/server/pkg/logger"
)

// Runner executes the compiled chat graph for one turn.
type Runner interface {
	Invoke(ctx context.Context, in model.ChatInput) (string, error)
	Stream(ctx context.Context, in model.ChatInput) (*schema.StreamReader[*schema.Message], error)
}

// Config holds everything needed to compose the chat graph end-to-end.
type Config struct {
	APIKey        string
	BaseURL       string
	ResponseModel model.ResponseModelConfig
	Conversation  model.ConversationConfig
}

// GraphConfig holds all configuration needed to build the graph
type GraphConfig struct {
	ChatModels     *nodes.ChatModels
	HistoryBuilder *conversations.HistoryBuilder
	MaxToolRounds  int
}

// GraphBuilder handles the construction of the chat turn graph
type GraphBuilder struct {
	config *GraphConfig
	graph  *compose.Graph[model.ChatInput, *schema.Message]
}

type graphRunner struct {
	runnable compose.Runnable[model.ChatInput, *schema.Message]
}

func (r *graphRunner) Invoke(ctx context.Context, in model.ChatInput) (string, error) {
	out, err := r.runnable.Invoke(ctx, in, compose.WithCallbacks(observers.NewAllCallbacks()))
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	return out.Content, nil
}

func (r *graphRunner) Stream(ctx context.Context, in model.ChatInput) (*schema.StreamReader[*schema.Message], error) {
	return r.runnable.Stream(ctx, in, compose.WithCallbacks(observers.NewAllCallbacks()))
}

// BuildChatGraph composes the chat model, history builder, and tools into a
// compiled Runner shared by all shops. Per-shop data arrives via ChatInput
// and the per-request admin client via the context.
func BuildChatGraph(ctx context.Context, cfg Config) (Runner, error) {
	cms, err := nodes.NewChatModels(ctx, nodes.ChatModelConfig{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		RespConfig: &cfg.ResponseModel,
	})
	if err != nil {
		return nil, err
	}

	hb := conversations.NewHistoryBuilder(cfg.Conversation)

	runnable, err := BuildGraph(ctx, &GraphConfig{
		ChatModels:     cms,
		HistoryBuilder: hb,
		MaxToolRounds:  cfg.Conversation.Tools.MaxRounds,
	})
	if err != nil {
		return nil, err
	}

	logx.Debug().Msg("Chat graph built successfully")
	return &graphRunner{runnable: runnable}, nil
}

// BuildGraph constructs and returns the compiled chat graph
func BuildGraph(ctx context.Context, config *GraphConfig) (compose.Runnable[model.ChatInput, *schema.Message], error) {
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.ChatModels == nil || config.ChatModels.Response == nil {
		return nil, fmt.Errorf("chat model is not properly initialized")
	}
	if config.HistoryBuilder == nil {
		return nil, fmt.Errorf("history builder is nil")
	}

	builder := &GraphBuilder{
		config: config,
		graph: compose.NewGraph[model.ChatInput, *schema.Message](
			compose.WithGenLocalState(func(ctx context.Context) *model.AppState {
				return &model.AppState{}
			}),
		),
	}

	if err := builder.setupTools(ctx); err != nil {
		return nil, err
	}

	builder.addNodes()
	builder.addEdges()

	if err := builder.addBranches(); err != nil {
		return nil, err
	}

	return builder.compile(ctx)
}

// setupTools configures store tools and binds them to the response model
func (b *GraphBuilder) setupTools(ctx context.Context) error {
	storeTools := tools.GetStoreTools()
	toolInfos, err := tools.GetToolInfos(ctx, storeTools)
	if err != nil {
		logx.Error().Err(err).Msg("Failed to get tool infos")
		return fmt.Errorf("failed to get tool infos: %w", err)
	}

	if err := b.config.ChatModels.BindToolsToResponseModel(ctx, toolInfos); err != nil {
		logx.Error().Err(err).Msg("Failed to bind tools to response model")
		return fmt.Errorf("failed to bind tools to response model: %w", err)
	}

	toolsNode, err := compose.NewToolNode(ctx, &compose.ToolsNodeConfig{
		Tools:               storeTools,
		ExecuteSequentially: true,
		UnknownToolsHandler: func(ctx context.Context, name, input string) (string, error) {
			// Gracefully handle hallucinated or malformed tool calls
			logx.Warn().
				Str("tool_name", name).
				Str("arguments", input).
				Msg("Unknown or invalid tool call; returning fallback result")
			return fmt.Sprintf("{\"error\":\"unknown_tool\",\"name\":%q,\"note\":\"ignored\"}", name), nil
		},
		ToolArgumentsHandler: func(ctx context.Context, name, arguments string) (string, error) {
			// Best-effort sanitize; never fail hard here
			var m map[string]any
			if err := json.Unmarshal([]byte(arguments), &m); err != nil {
				return arguments, nil
			}

			switch name {
			case tools.ToolCheckOrderStatus:
				trimStringArg(m, "contact")
			case tools.ToolSearchProducts:
				trimStringArg(m, "query")
			}

			b, err := json.Marshal(m)
			if err != nil {
				return arguments, nil
			}
			return string(b), nil
		},
	})
	if err != nil {
		logx.Error().Err(err).Msg("Failed to create tools node")
		return fmt.Errorf("failed to create tools node: %w", err)
	}

	b.graph.AddToolsNode(nodes.NodeToolExecutor, toolsNode,
		compose.WithStatePreHandler(nodes.NewToolExecutorPreHandler(b.config.MaxToolRounds)),
		compose.WithStatePostHandler(nodes.NewToolExecutorPostHandler()),
	)

	return nil
}

// addNodes adds all processing nodes to the graph
func (b *GraphBuilder) addNodes() {
	b.graph.AddLambdaNode(nodes.NodeContextAssembler,
		nodes.NewContextAssemblerNode(b.config.HistoryBuilder),
		compose.WithStatePreHandler(nodes.NewContextAssemblerPreHandler()),
	)

	// No post-handler on the model node: the final response must reach the
	// caller as an untouched stream.
	b.graph.AddChatModelNode(nodes.NodeResponseChatModel,
		b.config.ChatModels.Response,
		compose.WithStatePreHandler(nodes.NewResponseChatModelPreHandler(b.config.MaxToolRounds)),
	)
}

// addEdges creates the main flow connections between nodes
func (b *GraphBuilder) addEdges() {
	edges := [][2]string{
		{compose.START, nodes.NodeContextAssembler},
		{nodes.NodeContextAssembler, nodes.NodeResponseChatModel},
		{nodes.NodeToolExecutor, nodes.NodeResponseChatModel},
	}

	for _, edge := range edges {
		b.graph.AddEdge(edge[0], edge[1])
	}
}

// addBranches creates conditional routing branches
func (b *GraphBuilder) addBranches() error {
	decisionBranch := compose.NewStreamGraphBranch(
		nodes.NewToolExecutorCondition(),
		map[string]bool{
			nodes.NodeToolExecutor: true,
			compose.END:            true,
		},
	)
	if err := b.graph.AddBranch(nodes.NodeResponseChatModel, decisionBranch); err != nil {
		logx.Error().Err(err).Msg("Error adding decision branch")
		return fmt.Errorf("error adding decision branch: %w", err)
	}

	return nil
}

// compile finalizes and compiles the graph
func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[model.ChatInput, *schema.Message], error) {
	// Limit total run steps to avoid loops in branching or tool retries
	maxSteps := 10 + b.config.MaxToolRounds*2
	if maxSteps < 20 {
		maxSteps = 20
	}

	runnable, err := b.graph.Compile(ctx, compose.WithMaxRunSteps(maxSteps))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return runnable, nil
}

// trimStringArg trims a string argument in place, coercing non-strings.
func trimStringArg(m map[string]any, key string) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch vv := v.(type) {
	case string:
		m[key] = strings.TrimSpace(vv)
	default:
		m[key] = strings.TrimSpace(fmt.Sprint(v))
	}
}
