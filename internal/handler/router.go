package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/passfile/passfile-go/internal/middleware"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires the web front end routes.
func NewRouter(h *PasswordHandler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.LocalOnly)

	r.Get("/", HandleIndex)
	r.Get("/health", HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
		r.Post("/api/v1/generate", h.HandleGenerate)
		r.Post("/api/v1/save", h.HandleSave)
		r.Get("/api/v1/folders", h.HandleListFolders)
	})

	return r
}
