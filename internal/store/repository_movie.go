package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/internal/utils"
	"github.com/MKhiriev/movie-keeper/models"
)

// movieRepository is the PostgreSQL-backed implementation of
// [MovieRepository]. It executes all movie CRUD operations against the
// "movies" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, movie_id, etc.).
//
// Every query carries the owner's user_id in its WHERE clause. A movie that
// exists under a different owner is therefore reported exactly like a movie
// that does not exist at all.
//
// Transient driver failures (lost connections, serialization failures,
// deadlock rollbacks) are retried via [DB.withRetry] before an error is
// reported to the caller.
type movieRepository struct {
	*DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

// NewMovieRepository constructs a [MovieRepository] backed by the provided
// database connection and logger.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateMovie persists a new movie record owned by movie.UserID and returns
// the canonical database representation, including the generated id and the
// store-assigned timestamps.
func (r *movieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	movie.ID = r.ids.Generate()
	query, args, err := buildCreateMovieQuery(movie.ID, movie.Title, movie.PublishingYear, movie.Poster, movie.UserID)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.CreateMovie").
			Str("user_id", movie.UserID).
			Msg("failed to create query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Movie
	err = r.DB.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		saved, scanErr = scanMovie(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.CreateMovie").
			Str("user_id", movie.UserID).
			Msg("failed to insert movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// GetMovie retrieves a single movie scoped by both id and owner.
//
// Returns [ErrMovieNotFound] when no row matches: whether the movie is
// absent or owned by a different user.
func (r *movieRepository) GetMovie(ctx context.Context, movieID, userID string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMovieQuery(movieID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.GetMovie").
			Str("user_id", userID).
			Msg("failed to create query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var movie models.Movie
	err = r.DB.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		movie, scanErr = scanMovie(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).
			Str("func", "*movieRepository.GetMovie").
			Str("user_id", userID).
			Str("movie_id", movieID).
			Msg("failed to scan movie row")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return movie, nil
}

// ListMovies returns one page of the user's movies ordered by most recently
// updated first. An owner with no movies yields an empty slice, not an error.
func (r *movieRepository) ListMovies(ctx context.Context, userID string, limit, offset uint64) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMoviesQuery(userID, limit, offset)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.ListMovies").
			Str("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.DB.withRetry(ctx, func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = r.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.ListMovies").
			Str("user_id", userID).
			Msg("failed to execute query for listing movies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0, limit)

	for rows.Next() {
		var movie models.Movie

		scanErr := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.PublishingYear,
			&movie.Poster,
			&movie.UserID,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*movieRepository.ListMovies").
				Str("user_id", userID).
				Msg("failed to scan movie row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		movies = append(movies, movie)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*movieRepository.ListMovies").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return movies, nil
}

// CountMovies returns the total number of movies owned by the user.
func (r *movieRepository) CountMovies(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountMoviesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.CountMovies").
			Str("user_id", userID).
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	err = r.DB.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.CountMovies").
			Str("user_id", userID).
			Msg("failed to count movies")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateMovie applies a partial update to a movie scoped by id and owner.
// Only non-nil fields of the update are written; updated_at is always
// refreshed by the store.
//
// Returns [ErrMovieNotFound] when no row matches the id/owner pair.
func (r *movieRepository) UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMovieQuery(update.ID, update.UserID, update.Title, update.PublishingYear, update.Poster)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.UpdateMovie").
			Str("user_id", update.UserID).
			Msg("failed to create query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var movie models.Movie
	err = r.DB.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		movie, scanErr = scanMovie(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).
			Str("func", "*movieRepository.UpdateMovie").
			Str("user_id", update.UserID).
			Str("movie_id", update.ID).
			Msg("failed to update movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return movie, nil
}

// DeleteMovie removes a movie scoped by id and owner.
//
// Returns [ErrMovieNotFound] when no row was deleted; deleting the same id
// twice therefore yields success then not-found.
func (r *movieRepository) DeleteMovie(ctx context.Context, movieID, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMovieQuery(movieID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.DeleteMovie").
			Str("user_id", userID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.DB.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.DeleteMovie").
			Str("user_id", userID).
			Str("movie_id", movieID).
			Msg("failed to delete movie")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMovieNotFound
	}

	return nil
}

// scanMovie reads one movie row from a single-row query result.
func scanMovie(row *sql.Row) (models.Movie, error) {
	var movie models.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.PublishingYear,
		&movie.Poster,
		&movie.UserID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	return movie, err
}
