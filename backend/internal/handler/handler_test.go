package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/diskominfo-bogor/sipmang/backend/internal/service"
	"github.com/diskominfo-bogor/sipmang/shared/domain"
)

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, url, bytes.NewBuffer(body))
}

// MockAuthService implements service.AuthService with overridable behavior.
type MockAuthService struct {
	MockLogin func(creds domain.Credentials) (domain.AdminProfile, error)
	Calls     int
}

func (m *MockAuthService) Login(creds domain.Credentials) (domain.AdminProfile, error) {
	m.Calls++
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return domain.AdminProfile{}, nil
}

type MockSubmissionService struct {
	MockList   func(params service.ListParams) ([]domain.Submission, error)
	LastParams service.ListParams
}

func (m *MockSubmissionService) List(params service.ListParams) ([]domain.Submission, error) {
	m.LastParams = params
	if m.MockList != nil {
		return m.MockList(params)
	}
	return nil, nil
}

func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/admin/auth/login", h.Login)
	r.Get("/api/admin/submissions", h.ListSubmissions)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	return r
}
