package handler

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"

	"github.com/diskominfo-bogor/sipmang/shared/logger"
)

const (
	flashCookieError   = "flash_error"
	flashCookieSuccess = "flash_success"
	emailPrefillCookie = "email_prefill"
)

// CommonTemplateData holds fields common to all page templates, available
// as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	Error            string
	Success          string
	EmailPlaceholder string
	Notice           template.HTML
}

// TemplateData wraps page-specific data with common template data.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{
		Data:   data,
		Common: h.initCommonTemplateData(w, r),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	_, _ = buf.WriteTo(w)
}

// initCommonTemplateData consumes flash and prefill cookies into the
// template data.
func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request) CommonTemplateData {
	return CommonTemplateData{
		Error:            h.popFlash(w, r, flashCookieError),
		Success:          h.popFlash(w, r, flashCookieSuccess),
		EmailPlaceholder: h.popFlash(w, r, emailPrefillCookie),
		Notice:           h.Notice,
	}
}

// setFlash stores a one-shot message in a short-lived cookie. Values are
// base64 encoded so arbitrary text survives the cookie format.
func (h *Handler) setFlash(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     name,
		Value:    base64.URLEncoding.EncodeToString([]byte(value)),
		MaxAge:   60,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears a flash cookie.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     name,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, targetURL, cookieName, message string) {
	h.setFlash(w, cookieName, message)
	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}
