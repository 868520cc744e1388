package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/diskominfo-bogor/sipmang/frontend/internal/setup"
	mw "github.com/diskominfo-bogor/sipmang/shared/middleware"
)

// New creates and configures the admin UI router.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))

	// The pages carry small inline scripts (session flag, redirect timers),
	// so script-src needs 'unsafe-inline'.
	uiCSP := "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"
	r.Use(mw.SecurityHeadersWithCSP(deps.Public.SecureCookies, uiCSP))

	h := deps.Handler

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", h.DashboardGetHandler)
		r.Get("/login", h.LoginGetHandler)
		r.Post("/login", h.LoginPostHandler)
		r.Get("/login/captcha.png", h.CaptchaImageHandler)
		r.Get("/logout", h.LogoutHandler)
	})

	return r
}
