package scopeguard

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying the guard. Used to thread a
// scope's guard through layers that only see a context, such as HTTP
// handlers behind the middleware in pkg/adapters/http.
func NewContext(ctx context.Context, g *Guard) context.Context {
	return context.WithValue(ctx, contextKey{}, g)
}

// FromContext extracts the guard stored by [NewContext], if any.
func FromContext(ctx context.Context) (*Guard, bool) {
	g, ok := ctx.Value(contextKey{}).(*Guard)
	return g, ok
}
