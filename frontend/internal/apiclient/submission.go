package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/diskominfo-bogor/sipmang/shared/domain"
	internal_errors "github.com/diskominfo-bogor/sipmang/shared/errors"
)

// Submissions fetches the filtered, sorted listing. Cache-buster parameters
// ride along on every call so no intermediary ever reuses a response.
func (c *APIClient) Submissions(search, sortBy, sortDir string) ([]domain.Submission, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if sortBy != "" {
		query.Set("sortBy", sortBy)
	}
	if sortDir != "" {
		query.Set("sortDir", sortDir)
	}
	query.Set("t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	query.Set("cb", uuid.NewString())

	resp, err := c.do(http.MethodGet, "/api/admin/submissions?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil || apiErr.Message == "" {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Terjadi kesalahan internal server", StatusCode: resp.StatusCode}
		}
		return nil, &internal_errors.ErrorWithStatusCode{Message: apiErr.Message, StatusCode: resp.StatusCode}
	}

	var submissions []domain.Submission
	if err := json.NewDecoder(resp.Body).Decode(&submissions); err != nil {
		return nil, fmt.Errorf("failed to decode submissions response: %w", err)
	}
	return submissions, nil
}
