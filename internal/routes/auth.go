package routes

import (
	"employee-portal/internal/controllers"
	"employee-portal/internal/services"
	"employee-portal/pkg/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, jwtSvc service.JWTService, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authCtrl.Register)
	authGroup.POST("/login", authCtrl.Login)
}
