package net_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "tirefit/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestWithRequest_RoundTrip(t *testing.T) {
	ctx := pnet.WithRequest(context.Background(), "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID = %q, want req-123", got)
	}
}

func TestWithRequest_EmptyIsNoop(t *testing.T) {
	base := context.Background()
	if pnet.WithRequest(base, "") != base {
		t.Fatalf("empty id should return ctx unchanged")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID on bare ctx = %q", got)
	}
}

func TestRequestID_FromChiMiddleware(t *testing.T) {
	var seen string
	h := chimw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(pnet.RequestIDHeader, "from-header")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "from-header" {
		t.Fatalf("RequestID = %q, want from-header", seen)
	}
}
