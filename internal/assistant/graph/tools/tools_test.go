package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airep24/server/internal/shopify"
)

type fakeAdmin struct {
	orders   []shopify.OrderSummary
	products []shopify.ProductSummary
	err      error

	gotContact string
	gotQuery   string
}

func (f *fakeAdmin) FindOrdersByContact(ctx context.Context, contact string) ([]shopify.OrderSummary, error) {
	f.gotContact = contact
	return f.orders, f.err
}

func (f *fakeAdmin) SearchProducts(ctx context.Context, query string) ([]shopify.ProductSummary, error) {
	f.gotQuery = query
	return f.products, f.err
}

func run(t *testing.T, bt tool.BaseTool, admin shopify.AdminAPI, args string) string {
	t.Helper()
	inv, ok := bt.(tool.InvokableTool)
	require.True(t, ok)

	ctx := context.Background()
	if admin != nil {
		ctx = shopify.WithClient(ctx, admin)
	}
	out, err := inv.InvokableRun(ctx, args)
	require.NoError(t, err)
	return out
}

func TestCheckOrderStatus(t *testing.T) {
	admin := &fakeAdmin{orders: []shopify.OrderSummary{{
		Name:                     "#1001",
		DisplayFulfillmentStatus: "FULFILLED",
		FinancialStatus:          "PAID",
		ProcessedAt:              "2026-08-01T10:00:00Z",
	}}}

	out := run(t, createCheckOrderStatusTool(), admin, `{"contact":"jo@example.com"}`)

	assert.Equal(t, "jo@example.com", admin.gotContact)
	assert.Contains(t, out, "Orders for jo@example.com: ")
	assert.Contains(t, out, `"name":"#1001"`)
	assert.Contains(t, out, `"displayFulfillmentStatus":"FULFILLED"`)
}

func TestCheckOrderStatusFailureIsPlainText(t *testing.T) {
	admin := &fakeAdmin{err: errors.New("boom")}

	out := run(t, createCheckOrderStatusTool(), admin, `{"contact":"jo@example.com"}`)
	assert.Equal(t, "Order lookup error.", out)
}

func TestCheckOrderStatusBadArguments(t *testing.T) {
	out := run(t, createCheckOrderStatusTool(), &fakeAdmin{}, `not json`)
	assert.Equal(t, "Order lookup error.", out)

	out = run(t, createCheckOrderStatusTool(), &fakeAdmin{}, `{"contact":"  "}`)
	assert.Equal(t, "Order lookup error.", out)
}

func TestCheckOrderStatusNoClient(t *testing.T) {
	out := run(t, createCheckOrderStatusTool(), nil, `{"contact":"jo@example.com"}`)
	assert.Equal(t, "Order lookup error.", out)
}

func TestSearchProducts(t *testing.T) {
	p := shopify.ProductSummary{Title: "Blue Pants", Handle: "blue-pants"}
	p.PriceRangeV2.MinVariantPrice.Amount = "39.00"
	p.PriceRangeV2.MinVariantPrice.CurrencyCode = "USD"
	admin := &fakeAdmin{products: []shopify.ProductSummary{p}}

	out := run(t, createSearchProductsTool(), admin, `{"query":"blue pants"}`)

	assert.Equal(t, "blue pants", admin.gotQuery)
	assert.Contains(t, out, `Search results for "blue pants": `)
	assert.Contains(t, out, `"handle":"blue-pants"`)
}

func TestSearchProductsFailureIsPlainText(t *testing.T) {
	admin := &fakeAdmin{err: errors.New("boom")}

	out := run(t, createSearchProductsTool(), admin, `{"query":"pants"}`)
	assert.Equal(t, "Product search error.", out)
}

func TestToolInfosAndNames(t *testing.T) {
	ctx := context.Background()
	infos, err := GetToolInfos(ctx, GetStoreTools())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, ToolCheckOrderStatus, infos[0].Name)
	assert.Equal(t, ToolSearchProducts, infos[1].Name)
}
