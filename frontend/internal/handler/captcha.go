package handler

import (
	"net/http"

	"github.com/diskominfo-bogor/sipmang/frontend/internal/captcha"
	"github.com/diskominfo-bogor/sipmang/shared/logger"
)

// CaptchaImageHandler renders the challenge question as a PNG. The question
// comes from the query string; it is display sugar for the text challenge
// already on the page.
func (h *Handler) CaptchaImageHandler(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("q")
	if question == "" {
		http.Error(w, "missing question", http.StatusBadRequest)
		return
	}

	data, err := captcha.RenderPNG(question)
	if err != nil {
		logger.Log.Error("rendering captcha image", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}
