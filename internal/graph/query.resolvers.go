package graph

import (
	"context"
)

// Hello is the resolver for the hello field. The worker heartbeat checks the
// exact response text.
func (r *queryResolver) Hello(ctx context.Context) (string, error) {
	return "Hello, GraphQL!", nil
}
