package domain

import (
	"strings"
	"time"
)

type SubmissionStatus string

// Stored status values. The Indonesian strings are the wire/database format
// inherited from the public submission flow.
const (
	StatusNew        SubmissionStatus = "PENGAJUAN_BARU"
	StatusInProgress SubmissionStatus = "DIPROSES"
	StatusCompleted  SubmissionStatus = "SELESAI"
	StatusRejected   SubmissionStatus = "DITOLAK"
)

// Submission is a citizen service request. This service only reads them;
// creation and mutation happen in the public-facing flow.
type Submission struct {
	Id           int64            `json:"id"`
	TrackingCode string           `json:"tracking_code"`
	Nama         string           `json:"nama"`
	JenisLayanan string           `json:"jenis_layanan"`
	Status       SubmissionStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// SubmissionFilter describes a read query against the submission store.
// Status, when non-empty, is an additional exact-match alternative OR-ed
// with the free-text matches.
type SubmissionFilter struct {
	Search      string
	Status      SubmissionStatus
	OrderColumn string
	Descending  bool
}

// Human-readable synonyms mapped to stored statuses. Checked in order;
// containment (not equality) so that e.g. "pengajuan baru terbaru" matches.
var statusSynonyms = []struct {
	terms  []string
	status SubmissionStatus
}{
	{[]string{"pengajuan baru", "pengajuan_baru", "baru"}, StatusNew},
	{[]string{"diproses", "proses"}, StatusInProgress},
	{[]string{"selesai"}, StatusCompleted},
	{[]string{"ditolak"}, StatusRejected},
}

// StatusForSearch maps free search text onto a stored status when the text
// contains a known synonym. The second return value reports whether a
// synonym matched.
func StatusForSearch(search string) (SubmissionStatus, bool) {
	normalized := strings.ToLower(search)
	for _, group := range statusSynonyms {
		for _, term := range group.terms {
			if strings.Contains(normalized, term) {
				return group.status, true
			}
		}
	}
	return "", false
}
