package handler

import (
	"html/template"

	"github.com/diskominfo-bogor/sipmang/frontend/internal/apiclient"
	"github.com/diskominfo-bogor/sipmang/shared/config"
	"github.com/diskominfo-bogor/sipmang/shared/domain"
)

// BackendClient is the slice of the API client the handlers need; tests
// substitute a recording stub.
type BackendClient interface {
	Login(email, password string) (*apiclient.LoginResponse, error)
	Submissions(search, sortBy, sortDir string) ([]domain.Submission, error)
}

type Handler struct {
	Templates map[string]*template.Template
	Public    config.Public
	API       BackendClient
	Notice    template.HTML // sanitized login-page notice, may be empty
}

func New(templates map[string]*template.Template, publicCfg config.Public, api BackendClient, notice template.HTML) *Handler {
	return &Handler{
		Templates: templates,
		Public:    publicCfg,
		API:       api,
		Notice:    notice,
	}
}
