package service

import (
	"github.com/MKhiriev/movie-keeper/internal/config"
	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/internal/store"
)

type Services struct {
	AuthService  AuthService
	MovieService MovieService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg, logger),
		MovieService: NewMovieService(storages.MovieRepository, logger),
	}
}
