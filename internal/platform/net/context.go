// Package net carries request-scoped values shared by transports
package net

import (
	"context"

	"tirefit/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestIDHeader is the header chi's RequestID middleware reads and the API echoes
const RequestIDHeader = "X-Request-Id"

// WithRequest stores reqID where chi and the logger both find it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID)
}

// RequestID returns the request id on ctx, or ""
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
