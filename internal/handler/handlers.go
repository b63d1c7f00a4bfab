package handler

import (
	"github.com/MKhiriev/movie-keeper/internal/config"
	"github.com/MKhiriev/movie-keeper/internal/handler/http"
	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/internal/service"
	"github.com/MKhiriev/movie-keeper/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, storages.PosterFileStorage, cfg.Storage.Files, logger),
	}

	return handlers, nil
}
