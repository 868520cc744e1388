package service

import (
	"strings"

	"github.com/diskominfo-bogor/sipmang/shared/domain"
)

const defaultSortColumn = "created_at"

// Explicit mapping from accepted sortBy values to storage columns. User
// input never reaches query construction directly; anything outside this
// map falls back to created_at.
var sortableColumns = map[string]string{
	"created_at":    "created_at",
	"updated_at":    "updated_at",
	"nama":          "nama",
	"status":        "status",
	"jenis_layanan": "jenis_layanan",
	"tracking_code": "tracking_code",
}

type SubmissionService interface {
	List(params ListParams) ([]domain.Submission, error)
}

// ListParams are the raw, untrusted query parameters of the listing endpoint.
type ListParams struct {
	Search  string
	SortBy  string
	SortDir string
}

type SubmissionReader interface {
	Submissions(filter domain.SubmissionFilter) ([]domain.Submission, error)
}

type Submissions struct {
	storage SubmissionReader
}

func NewSubmissions(storage SubmissionReader) *Submissions {
	return &Submissions{storage: storage}
}

// List resolves the untrusted search/sort parameters into a storage filter
// and runs the read query.
func (s *Submissions) List(params ListParams) ([]domain.Submission, error) {
	filter := domain.SubmissionFilter{
		Search:      strings.TrimSpace(params.Search),
		OrderColumn: resolveSortColumn(params.SortBy),
		Descending:  resolveDescending(params.SortDir),
	}
	if filter.Search != "" {
		if status, ok := domain.StatusForSearch(filter.Search); ok {
			filter.Status = status
		}
	}
	return s.storage.Submissions(filter)
}

func resolveSortColumn(sortBy string) string {
	if column, ok := sortableColumns[strings.TrimSpace(sortBy)]; ok {
		return column
	}
	return defaultSortColumn
}

// Only an explicit "ASC" (any case) sorts ascending; everything else,
// including garbage, defaults to descending.
func resolveDescending(sortDir string) bool {
	return !strings.EqualFold(strings.TrimSpace(sortDir), "ASC")
}
