package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.Profile.LoadProfile(ctx)
	if err != nil {
		writeError(w, log, err, "loading profile failed")
		return
	}

	writeJSON(w, log, http.StatusOK, withSessionEmail(ctx, user))
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var edit models.EditableUser
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.Profile.SaveProfile(ctx, edit)
	if err != nil {
		writeError(w, log, err, "saving profile failed")
		return
	}

	writeJSON(w, log, http.StatusOK, withSessionEmail(ctx, user))
}

// withSessionEmail reports the profile under the account the session was
// issued for.
func withSessionEmail(ctx context.Context, user models.User) models.User {
	if email := emailFromContext(ctx); email != "" {
		user.Email = email
	}
	return user
}
