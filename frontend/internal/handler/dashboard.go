package handler

import (
	"net/http"

	"github.com/diskominfo-bogor/sipmang/shared/domain"
	"github.com/diskominfo-bogor/sipmang/shared/logger"
)

type dashboardData struct {
	Submissions []domain.Submission
	Search      string
	SortBy      string
	SortDir     string
	FetchError  string
}

// DashboardGetHandler lists submissions. Search and sort parameters pass
// straight through to the API, which owns their validation. The page itself
// checks the client-side login flag and bounces to the form when absent.
func (h *Handler) DashboardGetHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	data := dashboardData{
		Search:  query.Get("search"),
		SortBy:  query.Get("sortBy"),
		SortDir: query.Get("sortDir"),
	}

	submissions, err := h.API.Submissions(data.Search, data.SortBy, data.SortDir)
	if err != nil {
		logger.Log.Error("fetching submissions via API", "error", err)
		data.FetchError = userMessage(err)
	}
	data.Submissions = submissions

	h.renderTemplate(w, r, "dashboard.html", data)
}
