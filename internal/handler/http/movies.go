// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/internal/service"
	"github.com/MKhiriev/movie-keeper/internal/utils"
	"github.com/MKhiriev/movie-keeper/models"
	"github.com/go-chi/chi/v5"
)

// MaxPosterSize is the largest poster upload accepted, in bytes.
const MaxPosterSize = 10 << 20

// posterExtensions maps accepted poster content types to the file
// extension the stored file gets.
var posterExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// listMovies returns one page of the caller's movies, newest first.
// Page numbers and limits outside the accepted range are clamped, not
// rejected, so stale links keep working.
func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	page, err := queryInt(r, "page", service.DefaultPage)
	if err != nil {
		utils.WriteError(w, "page must be an integer", http.StatusBadRequest)
		return
	}
	limit, err := queryInt(r, "limit", service.DefaultLimit)
	if err != nil {
		utils.WriteError(w, "limit must be an integer", http.StatusBadRequest)
		return
	}

	list, err := h.services.MovieService.ListMovies(r.Context(), identity.UserID, page, limit)
	if err != nil {
		log.Error().Err(err).Msg("list movies: error getting movies page")
		respondError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, list, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("list movies: error writing response")
	}
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	movie, err := h.services.MovieService.GetMovie(r.Context(), chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("get movie: error getting movie")
		respondError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, movie, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("get movie: error writing response")
	}
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	request, savedPoster, err := h.readCreateRequest(r)
	if err != nil {
		log.Error().Err(err).Msg("create movie: error reading request")
		respondError(w, err)
		return
	}

	movie, err := h.services.MovieService.CreateMovie(r.Context(), request, identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("create movie: error creating movie")
		h.removePoster(r, savedPoster)
		respondError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, movie, http.StatusCreated); err != nil {
		log.Error().Err(err).Msg("create movie: error writing response")
	}
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// ownership is checked before touching any files so a stranger's id
	// cannot trigger poster writes
	existing, err := h.services.MovieService.GetMovie(r.Context(), chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("update movie: error getting movie")
		respondError(w, err)
		return
	}

	update, savedPoster, err := h.readUpdateRequest(r)
	if err != nil {
		log.Error().Err(err).Msg("update movie: error reading request")
		respondError(w, err)
		return
	}
	update.ID = existing.ID
	update.UserID = identity.UserID

	movie, err := h.services.MovieService.UpdateMovie(r.Context(), update)
	if err != nil {
		log.Error().Err(err).Msg("update movie: error updating movie")
		h.removePoster(r, savedPoster)
		respondError(w, err)
		return
	}

	// the old poster file is orphaned once the row points at the new one
	if savedPoster != "" && existing.Poster != nil && *existing.Poster != savedPoster {
		h.removePoster(r, *existing.Poster)
	}

	if _, err = utils.WriteJSON(w, movie, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("update movie: error writing response")
	}
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	movie, err := h.services.MovieService.GetMovie(r.Context(), chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("delete movie: error getting movie")
		respondError(w, err)
		return
	}

	if err = h.services.MovieService.DeleteMovie(r.Context(), movie.ID, identity.UserID); err != nil {
		log.Error().Err(err).Msg("delete movie: error deleting movie")
		respondError(w, err)
		return
	}

	if movie.Poster != nil {
		h.removePoster(r, *movie.Poster)
	}

	response := models.DeleteResponse{Message: "movie deleted successfully"}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("delete movie: error writing response")
	}
}

// readCreateRequest decodes a movie payload from either a JSON body or a
// multipart form with an optional poster file. When a poster was uploaded
// the returned string holds its public URL so the caller can clean it up
// if the create fails afterwards.
func (h *Handler) readCreateRequest(r *http.Request) (models.CreateMovieRequest, string, error) {
	var request models.CreateMovieRequest

	if !isMultipart(r) {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return request, "", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		}
		return request, "", nil
	}

	if err := r.ParseMultipartForm(MaxPosterSize); err != nil {
		return request, "", multipartError(err)
	}

	request.Title = r.PostFormValue("title")
	if raw := r.PostFormValue("publishingYear"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return request, "", ErrInvalidPublishingYear
		}
		request.PublishingYear = year
	}

	posterURL, err := h.savePosterFile(r)
	if err != nil {
		return request, "", err
	}
	if posterURL != "" {
		request.Poster = &posterURL
	}

	return request, posterURL, nil
}

// readUpdateRequest builds a partial update: only fields present in the
// payload end up non-nil.
func (h *Handler) readUpdateRequest(r *http.Request) (models.MovieUpdate, string, error) {
	var update models.MovieUpdate

	if !isMultipart(r) {
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			return update, "", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		}
		return update, "", nil
	}

	if err := r.ParseMultipartForm(MaxPosterSize); err != nil {
		return update, "", multipartError(err)
	}

	if values, ok := r.MultipartForm.Value["title"]; ok && len(values) > 0 {
		update.Title = &values[0]
	}
	if values, ok := r.MultipartForm.Value["publishingYear"]; ok && len(values) > 0 {
		year, err := strconv.Atoi(values[0])
		if err != nil {
			return update, "", ErrInvalidPublishingYear
		}
		update.PublishingYear = &year
	}

	posterURL, err := h.savePosterFile(r)
	if err != nil {
		return update, "", err
	}
	if posterURL != "" {
		update.Poster = &posterURL
	}

	return update, posterURL, nil
}

// savePosterFile stores the uploaded poster, if any, and returns its public
// URL. A missing "poster" part is not an error.
func (h *Handler) savePosterFile(r *http.Request) (string, error) {
	file, header, err := r.FormFile("poster")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", multipartError(err)
	}
	defer func() { _ = file.Close() }()

	if header.Size > MaxPosterSize {
		return "", ErrPosterTooLarge
	}

	extension, err := posterExtension(header)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxPosterSize+1))
	if err != nil {
		return "", multipartError(err)
	}
	if len(data) > MaxPosterSize {
		return "", ErrPosterTooLarge
	}

	return h.posters.Save(r.Context(), extension, data)
}

// removePoster deletes a stored poster file by its public URL, logging but
// not propagating failures: a leaked file must not fail the request.
func (h *Handler) removePoster(r *http.Request, posterURL string) {
	if posterURL == "" {
		return
	}

	filename := h.posters.FilenameFromURL(posterURL)
	if filename == "" {
		return
	}

	if err := h.posters.Delete(r.Context(), filename); err != nil {
		logger.FromRequest(r).Error().Err(err).
			Str("poster", posterURL).
			Msg("error removing poster file")
	}
}

func posterExtension(header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}

	extension, ok := posterExtensions[contentType]
	if !ok {
		return "", ErrUnsupportedPosterType
	}

	return extension, nil
}

func isMultipart(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.HasPrefix(contentType, "multipart/form-data")
	}
	return mediaType == "multipart/form-data"
}

func multipartError(err error) error {
	if errors.Is(err, multipart.ErrMessageTooLarge) {
		return ErrPosterTooLarge
	}
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
