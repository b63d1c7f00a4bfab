package http

import (
	"github.com/MKhiriev/movie-keeper/internal/config"
	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/internal/service"
	"github.com/MKhiriev/movie-keeper/internal/store"
)

type Handler struct {
	services *service.Services
	posters  store.PosterFileStorage
	files    config.Files

	logger *logger.Logger
}

func NewHandler(services *service.Services, posters store.PosterFileStorage, files config.Files, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		posters:  posters,
		files:    files,
		logger:   logger,
	}
}
