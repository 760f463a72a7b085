//go:build wireinject
// +build wireinject

package di

import (
	"prism/config"
	"prism/infras/jwt"
	"prism/infras/kafka"
	"prism/infras/otel"
	"prism/infras/postgres"
	"prism/infras/redis"
	"prism/infras/s3"
	"prism/permissions"
	"prism/shared/cache"
	"prism/transport/http"
	"prism/transport/http/middleware"
	"prism/transport/http/router"

	"github.com/google/wire"

	accessRepository "prism/internal/domains/access/repository"
	accessService "prism/internal/domains/access/service"
	authService "prism/internal/domains/auth/service"
	bookingRepository "prism/internal/domains/booking/repository"
	bookingService "prism/internal/domains/booking/service"
	chalanRepository "prism/internal/domains/chalan/repository"
	chalanService "prism/internal/domains/chalan/service"
	companyRepository "prism/internal/domains/company/repository"
	companyService "prism/internal/domains/company/service"
	customerRepository "prism/internal/domains/customer/repository"
	customerService "prism/internal/domains/customer/service"
	editorRepository "prism/internal/domains/editor/repository"
	editorService "prism/internal/domains/editor/service"
	leaveRepository "prism/internal/domains/leave/repository"
	leaveService "prism/internal/domains/leave/service"
	projectRepository "prism/internal/domains/project/repository"
	projectService "prism/internal/domains/project/service"
	roomRepository "prism/internal/domains/room/repository"
	roomService "prism/internal/domains/room/service"
	userRepository "prism/internal/domains/user/repository"
	userService "prism/internal/domains/user/service"

	accessHandler "prism/internal/handlers/access"
	authHandler "prism/internal/handlers/auth"
	bookingHandler "prism/internal/handlers/booking"
	chalanHandler "prism/internal/handlers/chalan"
	companyHandler "prism/internal/handlers/company"
	customerHandler "prism/internal/handlers/customer"
	editorHandler "prism/internal/handlers/editor"
	leaveHandler "prism/internal/handlers/leave"
	projectHandler "prism/internal/handlers/project"
	roomHandler "prism/internal/handlers/room"
	userHandler "prism/internal/handlers/user"
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
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var editorDomain = wire.NewSet(
	editorRepository.New,
	editorService.New,
)

var leaveDomain = wire.NewSet(
	leaveRepository.New,
	leaveService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var projectDomain = wire.NewSet(
	projectRepository.New,
	projectService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var chalanDomain = wire.NewSet(
	chalanRepository.New,
	chalanService.New,
)

var accessDomain = wire.NewSet(
	accessRepository.New,
	accessService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var companyDomain = wire.NewSet(
	companyRepository.New,
	companyService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	editorDomain,
	leaveDomain,
	customerDomain,
	projectDomain,
	bookingDomain,
	chalanDomain,
	accessDomain,
	userDomain,
	companyDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	editorHandler.New,
	leaveHandler.New,
	customerHandler.New,
	projectHandler.New,
	bookingHandler.New,
	chalanHandler.New,
	accessHandler.New,
	userHandler.New,
	companyHandler.New,
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
