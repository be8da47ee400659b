package shopify

import "context"

type clientContextKey struct{}

// WithClient attaches the per-request admin client to the context so graph
// tools can reach it. The compiled graph is shared across shops; the client
// is not.
func WithClient(ctx context.Context, client AdminAPI) context.Context {
	return context.WithValue(ctx, clientContextKey{}, client)
}

// ClientFromContext returns the admin client placed by WithClient, or false
// when the context carries none.
func ClientFromContext(ctx context.Context) (AdminAPI, bool) {
	client, ok := ctx.Value(clientContextKey{}).(AdminAPI)
	return client, ok
}
