package service

import (
	"context"

	"github.com/MKhiriev/movie-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ValidateToken(ctx context.Context, tokenString string) (models.User, error)
}

type MovieService interface {
	ListMovies(ctx context.Context, userID string, page, limit int) (models.MovieList, error)
	GetMovie(ctx context.Context, movieID, userID string) (models.Movie, error)
	CreateMovie(ctx context.Context, req models.CreateMovieRequest, userID string) (models.Movie, error)
	UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error)
	DeleteMovie(ctx context.Context, movieID, userID string) error
}
