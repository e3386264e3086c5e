/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests from the desktop client

ROUTE GROUPS:
  Public routes serve the employee side: health checks, the supervisor
  name list for the signature dropdown, timesheet submission, and
  supervisor login. Everything under the review workflow requires a
  bearer token (see auth.go).

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Route("/api", func(r chi.Router) {
		// Public: employee side
		r.Get("/health", h.Health)
		r.Get("/supervisors/list", h.ListSupervisors)
		r.Post("/timesheets/submit", h.SubmitTimesheet)
		r.Post("/auth/login", h.Login)

		// Supervisor review workflow
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(h.Tokens))
			r.Post("/auth/logout", h.Logout)
			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/{id}", h.GetSubmissions)
				r.Get("/{id}/export", h.ExportSubmission)
				r.Post("/{id}/approve", h.ApproveSubmission)
				r.Post("/{id}/reject", h.RejectSubmission)
				r.Delete("/{id}", h.DeleteSubmission)
			})
		})
	})

	return r
}
