package router

import (
	"prism/internal/handlers/access"
	"prism/internal/handlers/auth"
	"prism/internal/handlers/booking"
	"prism/internal/handlers/chalan"
	"prism/internal/handlers/company"
	"prism/internal/handlers/customer"
	"prism/internal/handlers/editor"
	"prism/internal/handlers/leave"
	"prism/internal/handlers/project"
	"prism/internal/handlers/room"
	"prism/internal/handlers/user"
	"prism/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Room     room.Handler
	Editor   editor.Handler
	Leave    leave.Handler
	Customer customer.Handler
	Project  project.Handler
	Booking  booking.Handler
	Chalan   chalan.Handler
	Access   access.Handler
	User     user.Handler
	Company  company.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS)
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Editor.Router(routerGroup)
		r.DomainHandlers.Leave.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Project.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Chalan.Router(routerGroup)
		r.DomainHandlers.Access.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Company.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
