package handler

import (
	"net/http"

	"github.com/diskominfo-bogor/sipmang/backend/internal/service"
	"github.com/diskominfo-bogor/sipmang/shared/domain"
	"github.com/diskominfo-bogor/sipmang/shared/logger"
	"github.com/diskominfo-bogor/sipmang/shared/utils"
)

const msgListInternalError = "Terjadi kesalahan internal server"

// ListSubmissions handles GET /api/admin/submissions. The anti-cache headers
// are attached by middleware so they cover error responses too.
func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := service.ListParams{
		Search:  query.Get("search"),
		SortBy:  query.Get("sortBy"),
		SortDir: query.Get("sortDir"),
	}

	submissions, err := h.submissions.List(params)
	if err != nil {
		logger.Log.Error("failed to fetch submissions", "error", err)
		utils.WriteErrorWithKey(w, err, "message", msgListInternalError)
		return
	}

	logger.Log.Info("fetched submissions", "count", len(submissions), "search", params.Search)

	// A bare array, never null, matching what the dashboard table expects.
	if submissions == nil {
		submissions = []domain.Submission{}
	}
	utils.WriteJSON(w, http.StatusOK, submissions)
}
