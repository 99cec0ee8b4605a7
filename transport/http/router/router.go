package router

import (
	"github.com/go-chi/chi/v5"

	"studioops/internal/handlers/assignment"
	"studioops/internal/handlers/booking"
	"studioops/internal/handlers/crew"
	"studioops/internal/handlers/event"
	"studioops/internal/handlers/inquiry"
	"studioops/transport/http/middleware"
)

type DomainHandlers struct {
	Assignment assignment.Handler
	Booking    booking.Handler
	Crew       crew.Handler
	Event      event.Handler
	Inquiry    inquiry.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.APIKey)
		routerGroup.Use(r.Auth.Auth)

		r.DomainHandlers.Assignment.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Crew.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
