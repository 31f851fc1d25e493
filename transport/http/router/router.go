package router

import (
	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/hotel"
	"hotelier/internal/handlers/repair"
	"hotelier/internal/handlers/room"
	"hotelier/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Hotel   hotel.Handler
	Room    room.Handler
	Booking booking.Handler
	Repair  repair.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every domain under /v1. Authentication and role checks
// run on all routes; the embedded permissions config marks the public ones.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AppMiddleware.Tracing)
		routerGroup.Use(r.AppMiddleware.RateLimit())
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Repair.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
	}
}
