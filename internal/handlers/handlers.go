package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/rentix/rentix/internal/handlers/rentings"
	"github.com/rentix/rentix/internal/handlers/search"
	"github.com/rentix/rentix/internal/handlers/users"
	"github.com/rentix/rentix/internal/service"
	"github.com/rentix/rentix/pkg/auth"
)

// Rate limits follow the public API contract: a broad per-IP ceiling on
// everything plus a tight window on the account endpoints.
const (
	globalRateLimit  = 300
	globalRateWindow = 15 * time.Minute
	authRateLimit    = 10
	authRateWindow   = 5 * time.Minute
)

type Handlers struct {
	Users    *users.Handler
	Rentings *rentings.Handler
	Search   *search.Handler
}

func New(services *service.Services) *Handlers {
	return &Handlers{
		Users:    users.New(services.AuthService),
		Rentings: rentings.New(services.RentingService),
		Search:   search.New(services.VehicleService),
	}
}

func (h *Handlers) InitRoutes(r *chi.Mux, jwtService *auth.JWTService) {
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(globalRateLimit, globalRateWindow))
	r.Use(auth.SessionMiddleware)

	r.Route("/usuarios", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(authRateLimit, authRateWindow))

			r.Put("/login", h.Users.Login)
			r.Post("/register", h.Users.Register)
			r.Post("/oauth/auth0", h.Users.OAuth)
			r.Post("/validacion", h.Users.Validation)

			r.Group(func(r chi.Router) {
				r.Use(jwtService.Middleware)
				r.Delete("/eliminar", h.Users.Delete)
			})
		})

		// Profile reads are frequent; only the global ceiling applies.
		r.Group(func(r chi.Router) {
			r.Use(jwtService.Middleware)
			r.Get("/profile", h.Users.Profile)
		})
	})

	r.Route("/rentings", func(r chi.Router) {
		r.Post("/pending", h.Rentings.Pending)
		r.Get("/checkPendings", h.Rentings.CheckPendings)

		r.Group(func(r chi.Router) {
			r.Use(jwtService.Middleware)
			r.Post("/confirm", h.Rentings.Confirm)
			r.Post("/create", h.Rentings.Create)
		})
	})

	r.Route("/search", func(r chi.Router) {
		r.Get("/vehiculos", h.Search.Vehicles)
		r.Get("/vehiculos/filter", h.Search.Filter)
		r.Get("/vehiculo/{id}", h.Search.Vehicle)
	})
}
