package store

import (
	"context"

	"github.com/MKhiriev/movie-keeper/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// MovieRepository is the persistence contract for movie records. Every read
// and write method takes the owner's user ID explicitly; implementations
// must enforce the ownership predicate on every query so that a bare movie
// ID is never trusted without the scope.
type MovieRepository interface {
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	GetMovie(ctx context.Context, movieID, userID string) (models.Movie, error)
	ListMovies(ctx context.Context, userID string, limit, offset uint64) ([]models.Movie, error)
	CountMovies(ctx context.Context, userID string) (int64, error)
	UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error)
	DeleteMovie(ctx context.Context, movieID, userID string) error
}

// PosterFileStorage persists uploaded poster images outside the relational
// database and resolves them to public URLs.
type PosterFileStorage interface {
	// Save writes the poster payload to a freshly named file with the given
	// extension and returns the public URL it will be served under.
	Save(ctx context.Context, extension string, data []byte) (string, error)

	// Delete removes a previously saved poster file by name. A missing file
	// is not an error.
	Delete(ctx context.Context, filename string) error

	// FilenameFromURL extracts the stored filename from a public poster URL.
	// Returns an empty string when the URL does not reference this store.
	FilenameFromURL(url string) string
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
