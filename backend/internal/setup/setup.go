package setup

import (
	"github.com/diskominfo-bogor/sipmang/backend/internal/handler"
	"github.com/diskominfo-bogor/sipmang/backend/internal/service"
	"github.com/diskominfo-bogor/sipmang/backend/internal/storage/pg"
	"github.com/diskominfo-bogor/sipmang/shared/config"
)

// Dependencies holds all initialized dependencies of the API service.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes the storage connection once and wires the
// services and HTTP handler on top of it.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	auth := service.NewAuth(storage)
	submissions := service.NewSubmissions(storage)

	h := handler.New(auth, submissions, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
