//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/s3"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	"github.com/google/wire"

	authService "hotelier/internal/domains/auth/service"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	hotelRepository "hotelier/internal/domains/hotel/repository"
	hotelService "hotelier/internal/domains/hotel/service"
	repairRepository "hotelier/internal/domains/repair/repository"
	repairService "hotelier/internal/domains/repair/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	userRepository "hotelier/internal/domains/user/repository"
	authHandler "hotelier/internal/handlers/auth"
	bookingHandler "hotelier/internal/handlers/booking"
	hotelHandler "hotelier/internal/handlers/hotel"
	repairHandler "hotelier/internal/handlers/repair"
	roomHandler "hotelier/internal/handlers/room"
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
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var repairDomain = wire.NewSet(
	repairRepository.New,
	repairService.New,
)

var domains = wire.NewSet(
	authDomain,
	hotelDomain,
	roomDomain,
	bookingDomain,
	repairDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	repairHandler.New,
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
