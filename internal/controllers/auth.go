package controllers

import (
	"net/http"

	"employee-portal/internal/dto"
	"employee-portal/internal/services"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/service"
	"employee-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных для входа"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	employee, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Login: отказ в авторизации", zap.String("email", payload.Email), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	accessToken, _, err := ctrl.jwtSvc.GenerateTokens(employee.ID, employee.Role.String())
	if err != nil {
		ctrl.logger.Error("Login: не удалось выпустить токены", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	res := dto.AuthResponseDTO{
		ID:        employee.ID,
		FirstName: employee.FirstName,
		Email:     employee.Email,
		Role:      employee.Role.String(),
		Token:     accessToken,
	}
	return utils.SuccessResponse(c, res, "Авторизация прошла успешно", http.StatusOK)
}

func (ctrl *AuthController) Register(c echo.Context) error {
	var payload dto.RegisterDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Register: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат данных регистрации"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	employee, err := ctrl.authService.Register(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	accessToken, _, err := ctrl.jwtSvc.GenerateTokens(employee.ID, employee.Role.String())
	if err != nil {
		ctrl.logger.Error("Register: не удалось выпустить токены", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	res := dto.AuthResponseDTO{
		ID:        employee.ID,
		FirstName: employee.FirstName,
		Email:     employee.Email,
		Role:      employee.Role.String(),
		Token:     accessToken,
	}
	return utils.SuccessResponse(c, res, "Регистрация прошла успешно", http.StatusCreated)
}
