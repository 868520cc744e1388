package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diskominfo-bogor/sipmang/shared/domain"
	internal_errors "github.com/diskominfo-bogor/sipmang/shared/errors"
)

// LoginResponse is the successful login payload of the backend.
type LoginResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Admin   domain.AdminProfile `json:"admin"`
}

// Login authenticates against the backend. Non-200 responses come back as
// *errors.ErrorWithStatusCode carrying the backend's user-facing message, so
// the handler can surface it verbatim.
func (c *APIClient) Login(email, password string) (*LoginResponse, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login payload: %w", err)
	}

	resp, err := c.do(http.MethodPost, "/api/admin/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil || apiErr.Error == "" {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Terjadi kesalahan pada server", StatusCode: resp.StatusCode}
		}
		return nil, &internal_errors.ErrorWithStatusCode{Message: apiErr.Error, StatusCode: resp.StatusCode}
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return &loginResp, nil
}
