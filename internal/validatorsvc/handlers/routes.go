package handlers

import (
	"time"

	config "github.com/avvvet/bingo-validator/configs"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds the service router with the standard middleware stack.
// rateLimit is the number of requests allowed per IP per minute.
func NewRouter(h *Handler, rateLimit int) *chi.Mux {
	r := chi.NewRouter()
	c := config.CORS()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	h.SetRoutes(r)
	return r
}

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Get("/", h.IndexHandler)
	r.Post("/validate", h.ValidateFormHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)
		r.Post("/validate", h.ValidateHandler)
		r.Get("/ws", h.HandleWebSocket)
	})
}
