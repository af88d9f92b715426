package api

import (
	"context"
	"time"
)

// QueryTimeout bounds every mongo round trip made by the handlers
const QueryTimeout = 10 * time.Second

// WithQueryTimeout derives a query-scoped context from the request context
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}
