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

type checkOrderStatusInput struct {
	Contact string `json:"contact"`
}

// checkOrderStatusTool looks up a customer's recent orders through the shop's
// Admin API. Failures are reported to the model as plain text so the
// conversation can continue; the tool never fails the graph run.
type checkOrderStatusTool struct{}

func createCheckOrderStatusTool() tool.BaseTool {
	return &checkOrderStatusTool{}
}

func (t *checkOrderStatusTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: ToolCheckOrderStatus,
		Desc: "Check fulfillment and financial status of an order.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"contact": {
				Type:     "string",
				Desc:     "Customer email or phone",
				Required: true,
			},
		}),
	}, nil
}

func (t *checkOrderStatusTool) InvokableRun(ctx context.Context, argumentsInJSON string, _ ...tool.Option) (string, error) {
	var in checkOrderStatusInput
	if err := json.Unmarshal([]byte(argumentsInJSON), &in); err != nil {
		logx.Warn().Err(err).Str("arguments", argumentsInJSON).Msg("bad checkOrderStatus arguments")
		return "Order lookup error.", nil
	}
	contact := strings.TrimSpace(in.Contact)
	if contact == "" {
		return "Order lookup error.", nil
	}

	client, ok := shopify.ClientFromContext(ctx)
	if !ok {
		logx.Error().Msg("checkOrderStatus: no admin client in context")
		return "Order lookup error.", nil
	}

	orders, err := client.FindOrdersByContact(ctx, contact)
	if err != nil {
		logx.Warn().Err(err).Str("contact", contact).Msg("order lookup failed")
		return "Order lookup error.", nil
	}

	payload, err := json.Marshal(orders)
	if err != nil {
		return "Order lookup error.", nil
	}
	return fmt.Sprintf("Orders for %s: %s", contact, payload), nil
}
