package http

import (
	"net/http"

	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/models"
)

func (h *Handler) homeItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.Home.LoadItems(r.Context())
	if err != nil {
		writeError(w, log, err, "loading home items failed")
		return
	}

	writeJSON(w, log, http.StatusOK, models.HomeItemsResponse{Items: items, Total: len(items)})
}
