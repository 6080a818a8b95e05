//go:build wireinject
// +build wireinject

package di

import (
	"atrium/config"
	"atrium/infras/jwt"
	"atrium/infras/kafka"
	"atrium/infras/mongo"
	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/infras/redis"
	"atrium/infras/s3"
	"atrium/permissions"
	"atrium/shared/cache"
	"atrium/transport/http"
	"atrium/transport/http/middleware"
	"atrium/transport/http/router"

	"github.com/google/wire"

	auditoriumRepository "atrium/internal/domains/auditorium/repository"
	auditoriumService "atrium/internal/domains/auditorium/service"
	authService "atrium/internal/domains/auth/service"
	congregationRepository "atrium/internal/domains/congregation/repository"
	congregationService "atrium/internal/domains/congregation/service"
	eventRepository "atrium/internal/domains/event/repository"
	eventService "atrium/internal/domains/event/service"
	financeRepository "atrium/internal/domains/finance/repository"
	financeService "atrium/internal/domains/finance/service"
	requestRepository "atrium/internal/domains/request/repository"
	requestService "atrium/internal/domains/request/service"
	reservationRepository "atrium/internal/domains/reservation/repository"
	reservationService "atrium/internal/domains/reservation/service"
	scheduleService "atrium/internal/domains/schedule/service"
	settingRepository "atrium/internal/domains/setting/repository"
	settingService "atrium/internal/domains/setting/service"
	talkRepository "atrium/internal/domains/talk/repository"
	talkService "atrium/internal/domains/talk/service"
	userRepository "atrium/internal/domains/user/repository"
	userService "atrium/internal/domains/user/service"

	auditoriumHandler "atrium/internal/handlers/auditorium"
	authHandler "atrium/internal/handlers/auth"
	congregationHandler "atrium/internal/handlers/congregation"
	eventHandler "atrium/internal/handlers/event"
	financeHandler "atrium/internal/handlers/finance"
	requestHandler "atrium/internal/handlers/request"
	reservationHandler "atrium/internal/handlers/reservation"
	scheduleHandler "atrium/internal/handlers/schedule"
	settingHandler "atrium/internal/handlers/setting"
	talkHandler "atrium/internal/handlers/talk"
	userHandler "atrium/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	mongo.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var schedulingDomains = wire.NewSet(
	auditoriumRepository.New,
	auditoriumService.New,
	congregationRepository.New,
	congregationService.New,
	reservationRepository.New,
	reservationService.New,
	scheduleService.New,
	eventRepository.New,
	eventService.New,
)

var administrationDomains = wire.NewSet(
	financeRepository.New,
	financeService.New,
	requestRepository.New,
	requestService.New,
	talkRepository.New,
	talkService.New,
	settingRepository.New,
	settingService.New,
)

var domains = wire.NewSet(
	authDomain,
	schedulingDomains,
	administrationDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	auditoriumHandler.New,
	congregationHandler.New,
	reservationHandler.New,
	scheduleHandler.New,
	eventHandler.New,
	financeHandler.New,
	requestHandler.New,
	talkHandler.New,
	settingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
