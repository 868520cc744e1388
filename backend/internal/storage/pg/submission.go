package pg

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/diskominfo-bogor/sipmang/shared/domain"
)

// Submissions runs the filtered, sorted read query behind the admin listing.
// The order column must come from the service's allow-list; it is still
// quoted defensively here. The result set is unbounded: the dataset is small
// and the original endpoint returned everything, so no LIMIT is applied.
func (s *Storage) Submissions(filter domain.SubmissionFilter) ([]domain.Submission, error) {
	query := "SELECT id, tracking_code, nama, jenis_layanan, status, created_at, updated_at FROM submissions"
	var args []any

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern)
		where := " WHERE (tracking_code ILIKE $1 OR nama ILIKE $1 OR jenis_layanan ILIKE $1"
		if filter.Status != "" {
			args = append(args, filter.Status)
			where += " OR status = $2"
		}
		query += where + ")"
	}

	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", pq.QuoteIdentifier(filter.OrderColumn), direction)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		if err := rows.Scan(&sub.Id, &sub.TrackingCode, &sub.Nama, &sub.JenisLayanan, &sub.Status, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}
	return submissions, nil
}
