package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/password", h.changePassword)

		r.Get("/api/user/salt", h.getSalt)
		r.Post("/api/user/salt", h.registerSalt)
		r.Put("/api/user/salt", h.replaceSalt)

		r.With(h.uploadHashing).Post("/api/drafts", h.upload)
		r.Get("/api/drafts", h.downloadAll)
		r.With(h.updateHashing).Put("/api/drafts", h.updateCiphers)
		r.Delete("/api/drafts", h.deleteDrafts)
		r.Post("/api/drafts/purge", h.purgeDrafts)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
