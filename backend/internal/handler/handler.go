package handler

import (
	"context"

	"github.com/diskominfo-bogor/sipmang/backend/internal/service"
	"github.com/diskominfo-bogor/sipmang/shared/config"
)

// Pinger reports readiness of the backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth        service.AuthService
	submissions service.SubmissionService
	health      Pinger
	cfg         *config.Config
}

func New(auth service.AuthService, submissions service.SubmissionService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{auth: auth, submissions: submissions, health: health, cfg: cfg}
}
