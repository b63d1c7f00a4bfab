package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/internal/store"
	"github.com/MKhiriev/movie-keeper/internal/validators"
	"github.com/MKhiriev/movie-keeper/models"
)

// Pagination defaults and bounds for ListMovies. Out-of-range values from
// the transport layer are clamped here rather than rejected, so a caller
// can never produce a negative offset or a zero divisor.
const (
	DefaultPage  = 1
	DefaultLimit = 8
	MaxLimit     = 100
)

// movieService implements MovieService on top of a MovieRepository.
// All operations take the caller's user ID as an explicit scoping parameter;
// the repository enforces the ownership predicate on every query.
type movieService struct {
	movieRepository store.MovieRepository
	validator       validators.Validator

	logger *logger.Logger
}

func NewMovieService(movieRepository store.MovieRepository, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		validator:       validators.NewMovieValidator(),
		logger:          logger,
	}
}

// ListMovies returns one page of the user's movies, most recently updated
// first, together with the total count and the number of pages.
//
// page values below 1 are clamped to DefaultPage; limit values below 1 are
// clamped to DefaultLimit and values above MaxLimit to MaxLimit.
func (m *movieService) ListMovies(ctx context.Context, userID string, page, limit int) (models.MovieList, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := uint64(page-1) * uint64(limit)

	total, err := m.movieRepository.CountMovies(ctx, userID)
	if err != nil {
		return models.MovieList{}, fmt.Errorf("counting movies failed: %w", err)
	}

	movies, err := m.movieRepository.ListMovies(ctx, userID, uint64(limit), offset)
	if err != nil {
		return models.MovieList{}, fmt.Errorf("listing movies failed: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return models.MovieList{
		Movies:     movies,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// GetMovie returns a single movie scoped by owner. A movie owned by a
// different user is reported as store.ErrMovieNotFound, exactly like a
// missing one.
func (m *movieService) GetMovie(ctx context.Context, movieID, userID string) (models.Movie, error) {
	return m.movieRepository.GetMovie(ctx, movieID, userID)
}

// CreateMovie validates the payload and persists a new movie owned by
// userID. The store assigns the id and both timestamps.
func (m *movieService) CreateMovie(ctx context.Context, req models.CreateMovieRequest, userID string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, req); err != nil {
		log.Error().Str("user_id", userID).Err(err).Msg("invalid movie data provided")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	movie := models.Movie{
		Title:          req.Title,
		PublishingYear: req.PublishingYear,
		Poster:         req.Poster,
		UserID:         userID,
	}

	return m.movieRepository.CreateMovie(ctx, movie)
}

// UpdateMovie validates and applies a partial update scoped by owner.
// Fields that are nil in the update are left untouched; an update with no
// fields at all is a no-op that returns the current record. The last write
// wins; there is no concurrent-edit conflict detection.
func (m *movieService) UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, update); err != nil {
		log.Error().Str("user_id", update.UserID).Str("movie_id", update.ID).Err(err).Msg("invalid movie update provided")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.Empty() {
		return m.movieRepository.GetMovie(ctx, update.ID, update.UserID)
	}

	return m.movieRepository.UpdateMovie(ctx, update)
}

// DeleteMovie removes a movie scoped by owner. Poster file cleanup is the
// caller's responsibility; this service only manages the record.
func (m *movieService) DeleteMovie(ctx context.Context, movieID, userID string) error {
	return m.movieRepository.DeleteMovie(ctx, movieID, userID)
}
