package router

import (
	"atrium/internal/handlers/auditorium"
	"atrium/internal/handlers/auth"
	"atrium/internal/handlers/congregation"
	"atrium/internal/handlers/event"
	"atrium/internal/handlers/finance"
	"atrium/internal/handlers/request"
	"atrium/internal/handlers/reservation"
	"atrium/internal/handlers/schedule"
	"atrium/internal/handlers/setting"
	"atrium/internal/handlers/talk"
	"atrium/internal/handlers/user"
	"atrium/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Auditorium   auditorium.Handler
	Congregation congregation.Handler
	Reservation  reservation.Handler
	Schedule     schedule.Handler
	Event        event.Handler
	Finance      finance.Handler
	Request      request.Handler
	Talk         talk.Handler
	Setting      setting.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AppMiddleware.Tracing)
		routerGroup.Use(r.AppMiddleware.RateLimit())
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Auditorium.Router(routerGroup)
		r.DomainHandlers.Congregation.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Finance.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
		r.DomainHandlers.Talk.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
