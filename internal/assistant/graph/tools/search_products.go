package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/airep24/server/internal/shopify"
	logx "github.com/airep24/server/pkg/logger"
)

type searchProductsInput struct {
	Query string `json:"query"`
}

// searchProductsTool searches the shop's catalog through the Admin API.
// Like order lookup, failures degrade to plain text instead of failing the run.
type searchProductsTool struct{}

func createSearchProductsTool() tool.BaseTool {
	return &searchProductsTool{}
}

func (t *searchProductsTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: ToolSearchProducts,
		Desc: "Search the store's inventory for products.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"query": {
				Type:     "string",
				Desc:     "Keywords (e.g., 'blue pants')",
				Required: true,
			},
		}),
	}, nil
}

func (t *searchProductsTool) InvokableRun(ctx context.Context, argumentsInJSON string, _ ...tool.Option) (string, error) {
	var in searchProductsInput
	if err := json.Unmarshal([]byte(argumentsInJSON), &in); err != nil {
		logx.Warn().Err(err).Str("arguments", argumentsInJSON).Msg("bad searchProducts arguments")
		return "Product search error.", nil
	}
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return "Product search error.", nil
	}

	client, ok := shopify.ClientFromContext(ctx)
	if !ok {
		logx.Error().Msg("searchProducts: no admin client in context")
		return "Product search error.", nil
	}

	products, err := client.SearchProducts(ctx, query)
	if err != nil {
		logx.Warn().Err(err).Str("query", query).Msg("product search failed")
		return "Product search error.", nil
	}

	payload, err := json.Marshal(products)
	if err != nil {
		return "Product search error.", nil
	}
	return fmt.Sprintf("Search results for %q: %s", query, payload), nil
}
