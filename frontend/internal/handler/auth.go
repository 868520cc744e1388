package handler

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"

	"github.com/diskominfo-bogor/sipmang/frontend/internal/captcha"
	"github.com/diskominfo-bogor/sipmang/shared/logger"
)

const loginURL = "/admin/login"

type loginPageData struct {
	Question        string
	Answer          string
	CaptchaImageURL string
}

// LoginGetHandler renders the login form with a fresh arithmetic challenge.
// The expected answer rides in a hidden field: the captcha is friction, not
// a security control, and the original behaved the same way.
func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	c := captcha.New()
	h.renderTemplate(w, r, "login.html", loginPageData{
		Question:        c.Question,
		Answer:          c.Answer,
		CaptchaImageURL: "/admin/login/captcha.png?q=" + url.QueryEscape(c.Question),
	})
}

type loginSuccessData struct {
	Message   string
	AdminJSON template.JS
}

// LoginPostHandler validates the form locally (empty fields, captcha) and
// only then calls the backend. Every failure redirects back to the form,
// which generates a new challenge.
func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	captchaInput := r.FormValue("captcha")
	captchaExpected := r.FormValue("captcha_expected")

	if email == "" || password == "" {
		if email != "" {
			h.setFlash(w, emailPrefillCookie, email)
		}
		h.redirectWithFlash(w, r, loginURL, flashCookieError, "Email dan password wajib diisi")
		return
	}
	if captchaInput == "" {
		h.setFlash(w, emailPrefillCookie, email)
		h.redirectWithFlash(w, r, loginURL, flashCookieError, "Captcha wajib diisi")
		return
	}
	if !captcha.Verify(captchaInput, captchaExpected) {
		h.setFlash(w, emailPrefillCookie, email)
		h.redirectWithFlash(w, r, loginURL, flashCookieError, "Jawaban captcha salah")
		return
	}

	resp, err := h.API.Login(email, password)
	if err != nil {
		logger.Log.Error("during login API call", "error", err)
		h.setFlash(w, emailPrefillCookie, email)
		h.redirectWithFlash(w, r, loginURL, flashCookieError, userMessage(err))
		return
	}

	// The success page script persists the client-side session and then
	// navigates to the dashboard after a short delay.
	adminJSON, err := json.Marshal(resp.Admin)
	if err != nil {
		logger.Log.Error("encoding admin profile", "error", err)
		h.redirectWithFlash(w, r, loginURL, flashCookieError, "Terjadi kesalahan pada server")
		return
	}
	h.renderTemplate(w, r, "login_success.html", loginSuccessData{
		Message:   "Login berhasil! Mengalihkan ke dashboard...",
		AdminJSON: template.JS(adminJSON),
	})
}

// LogoutHandler renders a page that clears the client-side session keys and
// bounces back to the login form. There is no server-side session to end.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "logout.html", nil)
}
