package http

import (
	"context"

	"github.com/headlinehq/newswire/internal/api/domain"
)

type clientCtxKey struct{}

// WithClient stores the authenticated client in the request context.
func WithClient(ctx context.Context, c domain.APIClient) context.Context {
	return context.WithValue(ctx, clientCtxKey{}, c)
}

// ClientFromContext returns the client admitted by the API key middleware,
// if any.
func ClientFromContext(ctx context.Context) (domain.APIClient, bool) {
	c, ok := ctx.Value(clientCtxKey{}).(domain.APIClient)
	return c, ok
}
