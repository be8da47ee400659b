package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	logx "github.com/airep24/server/pkg/logger"
)

const DefaultAPIVersion = "2026-04"

const findOrdersQuery = `query findOrders($q: String!) {
  orders(first: 3, query: $q) {
    nodes { name displayFulfillmentStatus financialStatus processedAt }
  }
}`

const searchProductsQuery = `query search($q: String!) {
  products(first: 8, query: $q) {
    nodes { title handle priceRangeV2 { minVariantPrice { amount currencyCode } } }
  }
}`

// AdminAPI is the Shopify Admin surface the chat tools need.
type AdminAPI interface {
	FindOrdersByContact(ctx context.Context, contact string) ([]OrderSummary, error)
	SearchProducts(ctx context.Context, query string) ([]ProductSummary, error)
}

// OrderSummary mirrors the fields the findOrders query selects.
type OrderSummary struct {
	Name                     string `json:"name"`
	DisplayFulfillmentStatus string `json:"displayFulfillmentStatus"`
	FinancialStatus          string `json:"financialStatus"`
	ProcessedAt              string `json:"processedAt"`
}

// ProductSummary mirrors the fields the product search query selects.
type ProductSummary struct {
	Title        string `json:"title"`
	Handle       string `json:"handle"`
	PriceRangeV2 struct {
		MinVariantPrice struct {
			Amount       string `json:"amount"`
			CurrencyCode string `json:"currencyCode"`
		} `json:"minVariantPrice"`
	} `json:"priceRangeV2"`
}

// AdminClient talks to one shop's Admin GraphQL endpoint using its offline
// access token.
type AdminClient struct {
	shop       string
	token      string
	apiVersion string
	endpoint   string
	httpClient *http.Client
}

type AdminClientOption func(*AdminClient)

// WithAPIVersion overrides the Admin API version segment of the endpoint URL.
func WithAPIVersion(version string) AdminClientOption {
	return func(c *AdminClient) {
		if version != "" {
			c.apiVersion = version
		}
	}
}

// WithEndpoint replaces the computed endpoint URL entirely. Test hook.
func WithEndpoint(url string) AdminClientOption {
	return func(c *AdminClient) { c.endpoint = url }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) AdminClientOption {
	return func(c *AdminClient) { c.httpClient = hc }
}

func NewAdminClient(shop, token string, opts ...AdminClientOption) *AdminClient {
	c := &AdminClient{
		shop:       shop,
		token:      token,
		apiVersion: DefaultAPIVersion,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.endpoint == "" {
		c.endpoint = fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.shop, c.apiVersion)
	}
	return c
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// GraphQL posts one query to the shop's Admin endpoint and returns the data
// payload. Top-level GraphQL errors are collapsed into a single error.
func (c *AdminClient) GraphQL(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logx.Error().Err(err).Str("shop", c.shop).Msg("admin graphql request failed")
		return nil, fmt.Errorf("admin graphql request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read graphql response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logx.Error().Int("status", resp.StatusCode).Str("shop", c.shop).Msg("admin graphql non-200 response")
		return nil, fmt.Errorf("admin graphql status %d", resp.StatusCode)
	}

	var envelope graphqlEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("admin graphql error: %s", envelope.Errors[0].Message)
	}
	return envelope.Data, nil
}

// FindOrdersByContact looks up the customer's most recent orders by email or
// phone number.
func (c *AdminClient) FindOrdersByContact(ctx context.Context, contact string) ([]OrderSummary, error) {
	q := fmt.Sprintf("email:%s OR phone:%s", contact, contact)
	data, err := c.GraphQL(ctx, findOrdersQuery, map[string]any{"q": q})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Orders struct {
			Nodes []OrderSummary `json:"nodes"`
		} `json:"orders"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode orders payload: %w", err)
	}
	if payload.Orders.Nodes == nil {
		return []OrderSummary{}, nil
	}
	return payload.Orders.Nodes, nil
}

// SearchProducts runs a keyword search over the shop's catalog.
func (c *AdminClient) SearchProducts(ctx context.Context, query string) ([]ProductSummary, error) {
	data, err := c.GraphQL(ctx, searchProductsQuery, map[string]any{"q": query})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Products struct {
			Nodes []ProductSummary `json:"nodes"`
		} `json:"products"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode products payload: %w", err)
	}
	if payload.Products.Nodes == nil {
		return []ProductSummary{}, nil
	}
	return payload.Products.Nodes, nil
}
