package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/product-pagination-service/internal/catalog"
	"github.com/maxviazov/product-pagination-service/internal/handler"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

// stubPingerNoop satisfies handler.Pinger when health is not the focus.
type stubPingerNoop struct{}

func (stubPingerNoop) Ping(context.Context) error { return nil }

func newEngine(p handler.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// nil service – we only exercise health and docs routes here
	handler.Register(r, p, nil)
	return r
}

func TestHealthRoutes(t *testing.T) {
	cases := []struct {
		name   string
		pinger handler.Pinger
		path   string
		want   int
	}{
		{"api live", stubPinger{}, "/api/v1/health/live", http.StatusOK},
		{"api ready", stubPinger{}, "/api/v1/health/ready", http.StatusOK},
		{"api ready down", stubPinger{err: errors.New("catalog missing")}, "/api/v1/health/ready", http.StatusServiceUnavailable},
		{"root live", stubPinger{}, "/live", http.StatusOK},
		{"root ready", stubPinger{}, "/ready", http.StatusOK},
		{"root ready down", stubPinger{err: errors.New("catalog missing")}, "/ready", http.StatusServiceUnavailable},
		{"nil catalog", (*catalog.Catalog)(nil), "/ready", http.StatusServiceUnavailable},
		{"no pinger", nil, "/ready", http.StatusServiceUnavailable},
		{"unknown", stubPinger{}, "/no-such", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(newEngine(tc.pinger), tc.path)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d, body=%s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestDocsRoutes(t *testing.T) {
	r := newEngine(stubPingerNoop{})

	w := get(r, "/openapi.yaml")
	if w.Code != http.StatusOK || len(w.Body.Bytes()) == 0 {
		t.Fatalf("expected openapi spec, got %d", w.Code)
	}
	w = get(r, "/docs")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for docs, got %d", w.Code)
	}
}
