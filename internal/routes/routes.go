package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-portal/internal/repositories"
	"employee-portal/internal/services"
	"employee-portal/pkg/config"
	"employee-portal/pkg/eventbus"
	"employee-portal/pkg/middleware"
	"employee-portal/pkg/service"
)

type Loggers struct {
	Main     *zap.Logger
	Auth     *zap.Logger
	Employee *zap.Logger
}

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	bus *eventbus.Bus,
	loggers *Loggers,
	cfg *config.Config,
) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)

	// --- РЕПОЗИТОРИИ ---
	employeeRepo := repositories.NewEmployeeRepository(dbConn, loggers.Employee)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- СЕРВИСЫ ---
	authService := services.NewAuthService(employeeRepo, cacheRepo, loggers.Auth, &cfg.Auth)
	employeeService := services.NewEmployeeService(employeeRepo, bus, loggers.Employee)
	reportService := services.NewReportService(employeeRepo)

	// --- КОНТРОЛЛЕРЫ И МАРШРУТЫ ---
	runAuthRouter(api, authService, jwtSvc, loggers.Auth)
	runEmployeeRouter(api, authMW, employeeService, loggers.Employee)
	runReportRouter(api, authMW, reportService, loggers.Main)

	loggers.Main.Info("InitRouter: Маршруты созданы")
}
