package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	logx "github.com/airep24/server/pkg/logger"
)

// Tool names are part of the widget/API contract; the system prompt tells the
// model to call them by these exact names.
const (
	ToolCheckOrderStatus = "checkOrderStatus"
	ToolSearchProducts   = "searchProducts"
)

// GetStoreTools returns the tools exposed to the response model for one chat
// turn. Both resolve the shop's admin client from the request context.
func GetStoreTools() []tool.BaseTool {
	return []tool.BaseTool{
		createCheckOrderStatusTool(),
		createSearchProductsTool(),
	}
}

// GetToolInfos extracts ToolInfo from each tool for binding to the chat model.
func GetToolInfos(ctx context.Context, tools []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			logx.Error().Err(err).Msg("Failed to get tool info")
			return nil, fmt.Errorf("get tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
