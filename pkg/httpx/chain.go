// Package httpx provides shared HTTP plumbing: JSON responses, middleware
// composition, client IP extraction, and rate limiting.
package httpx

import "net/http"

// Middleware wraps a handler and returns a new handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h so that the first middleware listed is the
// outermost one at request time.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
