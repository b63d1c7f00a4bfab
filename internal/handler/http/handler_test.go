package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/movie-keeper/internal/config"
	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/internal/service"
	"github.com/MKhiriev/movie-keeper/internal/store"
	"github.com/MKhiriev/movie-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn  func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
	validateTokenFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, req)
	}
	return models.User{}, service.ErrInvalidDataProvided
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, service.ErrInvalidCredentials
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID, Email: user.Email}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) ValidateToken(ctx context.Context, tokenString string) (models.User, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, tokenString)
	}
	return models.User{}, service.ErrTokenIsExpiredOrInvalid
}

// ─────────────────────────────────────────────
// Mock: service.MovieService
// ─────────────────────────────────────────────

type mockMovieService struct {
	listMoviesFn  func(ctx context.Context, userID string, page, limit int) (models.MovieList, error)
	getMovieFn    func(ctx context.Context, movieID, userID string) (models.Movie, error)
	createMovieFn func(ctx context.Context, req models.CreateMovieRequest, userID string) (models.Movie, error)
	updateMovieFn func(ctx context.Context, update models.MovieUpdate) (models.Movie, error)
	deleteMovieFn func(ctx context.Context, movieID, userID string) error
}

func (m *mockMovieService) ListMovies(ctx context.Context, userID string, page, limit int) (models.MovieList, error) {
	if m.listMoviesFn != nil {
		return m.listMoviesFn(ctx, userID, page, limit)
	}
	return models.MovieList{Movies: []models.Movie{}, Page: 1}, nil
}

func (m *mockMovieService) GetMovie(ctx context.Context, movieID, userID string) (models.Movie, error) {
	if m.getMovieFn != nil {
		return m.getMovieFn(ctx, movieID, userID)
	}
	return models.Movie{}, store.ErrMovieNotFound
}

func (m *mockMovieService) CreateMovie(ctx context.Context, req models.CreateMovieRequest, userID string) (models.Movie, error) {
	if m.createMovieFn != nil {
		return m.createMovieFn(ctx, req, userID)
	}
	return models.Movie{}, service.ErrInvalidDataProvided
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error) {
	if m.updateMovieFn != nil {
		return m.updateMovieFn(ctx, update)
	}
	return models.Movie{}, store.ErrMovieNotFound
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, movieID, userID string) error {
	if m.deleteMovieFn != nil {
		return m.deleteMovieFn(ctx, movieID, userID)
	}
	return store.ErrMovieNotFound
}

// ─────────────────────────────────────────────
// Test wiring
// ─────────────────────────────────────────────

type testEnv struct {
	handler    *Handler
	router     *chi.Mux
	auth       *mockAuthService
	movies     *mockMovieService
	postersDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	posters, err := store.NewPosterFileStorage(config.Files{PostersDir: dir}, logger.Nop())
	require.NoError(t, err)

	auth := &mockAuthService{}
	movies := &mockMovieService{}
	h := NewHandler(
		&service.Services{AuthService: auth, MovieService: movies},
		posters,
		config.Files{PostersDir: dir},
		logger.Nop(),
	)

	return &testEnv{
		handler:    h,
		router:     h.Init(),
		auth:       auth,
		movies:     movies,
		postersDir: dir,
	}
}

// authorize makes the auth middleware accept "Bearer valid-token" for the
// given user on this environment.
func (e *testEnv) authorize(userID, email string) {
	e.auth.parseTokenFn = func(ctx context.Context, tokenString string) (models.Token, error) {
		if tokenString != "valid-token" {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{UserID: userID, Email: email}, nil
	}
}

func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}
