package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Paths served by the dev server. They match the ones the client's HTTP
// services call.
const (
	pathVersion     = "/version"
	pathLogin       = "/auth/login"
	pathTwoFactor   = "/auth/two-factor"
	pathHomeItems   = "/home/items"
	pathUserProfile = "/user/profile"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get(pathVersion, h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post(pathLogin, h.login)
		r.Post(pathTwoFactor, h.verifyTwoFactor)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get(pathHomeItems, h.homeItems)
		r.Get(pathUserProfile, h.getProfile)
		r.Put(pathUserProfile, h.updateProfile)
	})

	return router
}
