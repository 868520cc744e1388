package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diskominfo-bogor/sipmang/backend/internal/setup"
	mw "github.com/diskominfo-bogor/sipmang/shared/middleware"
	"github.com/diskominfo-bogor/sipmang/shared/middleware/metrics"
)

// New creates and configures the API router.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// A single bad request must never take the process down.
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{deps.Config.Public.CorsAllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	// JSON API only, no scripts or styles needed.
	backendCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.SecureCookies, backendCSP))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/auth/login", h.Login)
		// The listing must be fresh on every call; the middleware also covers
		// error responses.
		r.With(mw.NoCache()).Get("/submissions", h.ListSubmissions)
	})

	return r
}
