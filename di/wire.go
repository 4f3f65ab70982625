//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"westwood/config"
	"westwood/infras/jwt"
	"westwood/infras/kafka"
	"westwood/infras/otel"
	"westwood/infras/postgres"
	"westwood/infras/redis"
	"westwood/infras/sheets"
	"westwood/permissions"
	"westwood/shared/cache"
	"westwood/transport/http"
	"westwood/transport/http/middleware"
	"westwood/transport/http/router"

	authService "westwood/internal/domains/auth/service"
	userRepository "westwood/internal/domains/user/repository"
	authHandler "westwood/internal/handlers/auth"

	bookingService "westwood/internal/domains/booking/service"
	bookingHandler "westwood/internal/handlers/booking"

	roomRepository "westwood/internal/domains/room/repository"
	roomService "westwood/internal/domains/room/service"
	roomHandler "westwood/internal/handlers/room"

	customerRepository "westwood/internal/domains/customer/repository"
	customerService "westwood/internal/domains/customer/service"
	customerHandler "westwood/internal/handlers/customer"

	accountingRepository "westwood/internal/domains/accounting/repository"
	accountingService "westwood/internal/domains/accounting/service"
	accountingHandler "westwood/internal/handlers/accounting"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	sheets.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	ProvideBookingStore,
	bookingService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var accountingDomain = wire.NewSet(
	accountingRepository.New,
	accountingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	roomDomain,
	customerDomain,
	accountingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	roomHandler.New,
	customerHandler.New,
	accountingHandler.New,
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
