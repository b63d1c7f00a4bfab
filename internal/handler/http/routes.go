package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/movie-keeper/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// owner-scoped movie routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/movies", h.listMovies)
		r.Post("/api/movies", h.createMovie)
		r.Get("/api/movies/{id}", h.getMovie)
		r.Put("/api/movies/{id}", h.updateMovie)
		r.Delete("/api/movies/{id}", h.deleteMovie)
	})

	// uploaded posters are served straight from the file store directory
	posterServer := http.StripPrefix(store.PosterURLPrefix+"/", h.servePosterFiles())
	router.Get(store.PosterURLPrefix+"/*", posterServer.ServeHTTP)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// servePosterFiles serves stored poster images by filename. Requests for the
// directory itself, or for paths without a file extension, are rejected so
// the file server never produces a directory listing of stored posters.
func (h *Handler) servePosterFiles() http.Handler {
	files := http.FileServer(http.Dir(h.files.PostersDir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") || path.Ext(r.URL.Path) == "" {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
