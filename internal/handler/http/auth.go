package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	log.Debug().Str("email", req.Email).Msg("login attempt")

	resp, err := h.services.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, log, err, "login failed")
		return
	}

	writeJSON(w, log, http.StatusOK, resp)
}

func (h *Handler) verifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TwoFactorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.Auth.Verify(ctx, req.Token, req.Code)
	if err != nil {
		writeError(w, log, err, "two-factor verification failed")
		return
	}

	writeJSON(w, log, http.StatusOK, resp)
}
