package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"employee-portal/internal/dto"
	"employee-portal/internal/services"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EmployeeController struct {
	employeeService services.EmployeeServiceInterface
	logger          *zap.Logger
}

func NewEmployeeController(employeeService services.EmployeeServiceInterface, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		logger:          logger,
	}
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, err := c.employeeService.GetEmployees(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список сотрудников успешно получен", http.StatusOK)
}

func (c *EmployeeController) FindEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID сотрудника", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	res, err := c.employeeService.FindEmployee(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно найден", http.StatusOK)
}

func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateEmployeeDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateEmployee: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.employeeService.CreateEmployee(reqCtx, actor, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно создан", http.StatusCreated)
}

func (c *EmployeeController) UpdateEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID сотрудника", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	// Тело читаем целиком: сервису нужен список реально присланных полей.
	rawBody, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Не удалось прочитать тело запроса"), c.logger)
	}

	var payload dto.UpdateEmployeeDTO
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		c.logger.Error("UpdateEmployee: ошибка разбора JSON", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.employeeService.UpdateEmployee(reqCtx, actor, id, payload, rawBody)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно обновлён", http.StatusOK)
}

func (c *EmployeeController) DeleteEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID сотрудника", err,
				map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	if err := c.employeeService.DeleteEmployee(reqCtx, actor, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Сотрудник успешно удалён", http.StatusOK)
}
