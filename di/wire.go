//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"studioops/config"
	"studioops/infras/jwt"
	"studioops/infras/kafka"
	"studioops/infras/otel"
	"studioops/infras/postgres"
	"studioops/infras/redis"
	"studioops/shared/cache"
	"studioops/transport/http"
	"studioops/transport/http/middleware"
	"studioops/transport/http/router"

	assignmentService "studioops/internal/domains/assignment/service"
	bookingRepository "studioops/internal/domains/booking/repository"
	bookingService "studioops/internal/domains/booking/service"
	crewRepository "studioops/internal/domains/crew/repository"
	crewService "studioops/internal/domains/crew/service"
	eventRepository "studioops/internal/domains/event/repository"
	eventService "studioops/internal/domains/event/service"
	inquiryRepository "studioops/internal/domains/inquiry/repository"
	inquiryService "studioops/internal/domains/inquiry/service"

	assignmentHandler "studioops/internal/handlers/assignment"
	bookingHandler "studioops/internal/handlers/booking"
	crewHandler "studioops/internal/handlers/crew"
	eventHandler "studioops/internal/handlers/event"
	inquiryHandler "studioops/internal/handlers/inquiry"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var crewDomain = wire.NewSet(
	crewRepository.New,
	crewService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var assignmentDomain = wire.NewSet(
	assignmentService.NewManager,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var domains = wire.NewSet(
	crewDomain,
	inquiryDomain,
	bookingDomain,
	assignmentDomain,
	eventDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	assignmentHandler.New,
	bookingHandler.New,
	crewHandler.New,
	eventHandler.New,
	inquiryHandler.New,
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
