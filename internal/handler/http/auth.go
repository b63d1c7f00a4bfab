// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/movie-keeper/internal/logger"
	"github.com/MKhiriev/movie-keeper/internal/utils"
	"github.com/MKhiriev/movie-keeper/models"
)

// register creates a new account and immediately signs the user in: the
// response carries both the public user view and a bearer token.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Error().Err(err).Msg("register: error decoding request body")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("register: error registering user")
		respondError(w, err)
		return
	}

	h.writeAuthResponse(w, r, user, http.StatusCreated)
}

// login checks the provided credentials and issues a fresh bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Error().Err(err).Msg("login: error decoding request body")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("login: error authenticating user")
		respondError(w, err)
		return
	}

	h.writeAuthResponse(w, r, user, http.StatusOK)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, statusCode int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Error().Err(err).Msg("error creating token")
		respondError(w, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	response := models.AuthResponse{
		User:  user.View(),
		Token: token.SignedString,
	}
	if _, err = utils.WriteJSON(w, response, statusCode); err != nil {
		log.Error().Err(err).Msg("error writing auth response")
	}
}
