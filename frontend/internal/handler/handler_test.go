package handler

import (
	"encoding/base64"
	"html/template"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diskominfo-bogor/sipmang/frontend/internal/apiclient"
	"github.com/diskominfo-bogor/sipmang/shared/config"
	"github.com/diskominfo-bogor/sipmang/shared/domain"
)

// MockBackendClient records calls; function fields override the defaults.
type MockBackendClient struct {
	LoginFunc       func(email, password string) (*apiclient.LoginResponse, error)
	SubmissionsFunc func(search, sortBy, sortDir string) ([]domain.Submission, error)

	LoginCalls       int
	SubmissionsCalls int
	LastSearch       string
	LastSortBy       string
	LastSortDir      string
}

func (m *MockBackendClient) Login(email, password string) (*apiclient.LoginResponse, error) {
	m.LoginCalls++
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return &apiclient.LoginResponse{Success: true, Message: "Login berhasil"}, nil
}

func (m *MockBackendClient) Submissions(search, sortBy, sortDir string) ([]domain.Submission, error) {
	m.SubmissionsCalls++
	m.LastSearch, m.LastSortBy, m.LastSortDir = search, sortBy, sortDir
	if m.SubmissionsFunc != nil {
		return m.SubmissionsFunc(search, sortBy, sortDir)
	}
	return nil, nil
}

// testTemplates are minimal stand-ins for the real pages; they expose the
// fields the assertions care about.
func testTemplates(t *testing.T) map[string]*template.Template {
	t.Helper()
	parse := func(text string) *template.Template {
		tmpl, err := template.New("page").Parse(text)
		require.NoError(t, err)
		return tmpl
	}
	return map[string]*template.Template{
		"login.html":         parse(`error={{.Common.Error}} prefill={{.Common.EmailPlaceholder}} question={{.Data.Question}} answer={{.Data.Answer}}`),
		"login_success.html": parse(`{{.Data.Message}} adminData={{.Data.AdminJSON}}`),
		"logout.html":        parse(`logout page`),
		"dashboard.html":     parse(`rows={{len .Data.Submissions}} fetchError={{.Data.FetchError}}`),
	}
}

func newTestHandler(t *testing.T, api BackendClient) *Handler {
	t.Helper()
	return New(testTemplates(t), config.Public{}, api, "")
}

// flashValue extracts and decodes a flash cookie set on the response.
func flashValue(t *testing.T, resp *http.Response, name string) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name && c.MaxAge > 0 {
			decoded, err := base64.URLEncoding.DecodeString(c.Value)
			require.NoError(t, err)
			return string(decoded)
		}
	}
	return ""
}
