package middleware

import (
	"net/http"
	"slices"
)

// Middleware decorates an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one listed sees the request first:
// Chain(Recovery, RequestID)(h) serves as Recovery(RequestID(h)).
// An empty chain returns the handler unchanged, which the router uses as a
// no-op route limiter.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}
