package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrInvalidTwoFactorCode: http.StatusUnauthorized,
	service.ErrInvalidSessionToken:  http.StatusUnauthorized,
	service.ErrValidation:           http.StatusBadRequest,
	service.ErrAuthNetwork:          http.StatusBadGateway,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server errors hide
// their message.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status := statusFromError(err)
	log.Err(err).Int("status", status).Msg(msg)

	text := err.Error()
	if status >= http.StatusInternalServerError {
		text = http.StatusText(status)
	}
	http.Error(w, text, status)
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("error encoding response")
	}
}
