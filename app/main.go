package main

import (
	"context"
	"net/http"

	"employee-portal/internal/listeners"
	"employee-portal/internal/routes"
	"employee-portal/pkg/config"
	"employee-portal/pkg/database/postgresql"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/eventbus"
	applogger "employee-portal/pkg/logger"
	appmiddleware "employee-portal/pkg/middleware"
	"employee-portal/pkg/service"
	"employee-portal/pkg/telegram"
	"employee-portal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	e.Use(appmiddleware.RequestLogger(logger))

	e.Validator = utils.NewValidator(validator.New())

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	bus := eventbus.New(logger.Named("eventbus"))
	var telegramSvc telegram.ServiceInterface
	if cfg.Telegram.BotToken != "" {
		telegramSvc = telegram.NewService(cfg.Telegram.BotToken)
	}
	notificationListener := listeners.NewNotificationListener(telegramSvc, cfg.Telegram.ChatID, logger.Named("notifications"))
	notificationListener.Subscribe(bus)

	loggers := &routes.Loggers{
		Main:     logger,
		Auth:     logger.Named("auth"),
		Employee: logger.Named("employee"),
	}
	routes.InitRouter(e, dbConn, redisClient, jwtSvc, bus, loggers, cfg)

	logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
