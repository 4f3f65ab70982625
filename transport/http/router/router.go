package router

import (
	"github.com/go-chi/chi/v5"

	"westwood/internal/handlers/accounting"
	"westwood/internal/handlers/auth"
	"westwood/internal/handlers/booking"
	"westwood/internal/handlers/customer"
	"westwood/internal/handlers/room"
	"westwood/transport/http/middleware"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Room       room.Handler
	Booking    booking.Handler
	Customer   customer.Handler
	Accounting accounting.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Accounting.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
