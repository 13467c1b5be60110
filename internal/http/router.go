package http

import (
	"net/http"

	"bookcatalog/internal/httpx"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig selects the optional protections of the API.
type RouterConfig struct {
	JWTSecret    string // empty leaves mutating routes open
	RateLimiter  *httpx.RateLimiter
	CORSOrigins  []string
	EnableHSTS   bool
	MaxBodyBytes int64
}

// NewRouter wires the catalog routes and the middleware stack.
func NewRouter(store BookStore, cfg RouterConfig) http.Handler {
	books := NewBookHandler(store)

	write := func(h http.HandlerFunc) http.Handler {
		if cfg.JWTSecret == "" {
			return h
		}
		return httpx.RequireLibrarian(cfg.JWTSecret)(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /books", books.List)
	mux.HandleFunc("GET /books/{isbn}", books.GetByISBN)
	mux.Handle("POST /books", write(books.Create))
	mux.Handle("PATCH /books/{isbn}", write(books.Update))
	mux.Handle("DELETE /books/{isbn}", write(books.Delete))
	mux.HandleFunc("GET /attributes/{attribute}", books.Values)

	mws := []httpx.Middleware{
		httpx.RecoveryMiddleware,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
	}
	if cfg.RateLimiter != nil {
		mws = append(mws, cfg.RateLimiter.Middleware)
	}
	if cfg.MaxBodyBytes > 0 {
		mws = append(mws, httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	}
	mws = append(mws, httpx.MetricsMiddleware)

	return httpx.Chain(mux, mws...)
}
