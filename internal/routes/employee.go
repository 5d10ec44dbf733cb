package routes

import (
	"employee-portal/internal/controllers"
	"employee-portal/internal/entities"
	"employee-portal/internal/services"
	"employee-portal/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// runEmployeeRouter вешает CRUD сотрудников за auth-middleware.
// Гейты по ролям повторяют политику: создание и изменение — Admin и
// Supervisor, удаление — только Admin, чтение — любой аутентифицированный.
func runEmployeeRouter(api *echo.Group, authMW *middleware.AuthMiddleware, employeeService services.EmployeeServiceInterface, logger *zap.Logger) {
	employeeCtrl := controllers.NewEmployeeController(employeeService, logger)

	secureGroup := api.Group("/employees", authMW.Auth)

	secureGroup.GET("", employeeCtrl.GetEmployees)
	secureGroup.GET("/:id", employeeCtrl.FindEmployee)

	secureGroup.POST("", employeeCtrl.CreateEmployee,
		authMW.RequireRoles(entities.RoleAdmin, entities.RoleSupervisor))
	secureGroup.PUT("/:id", employeeCtrl.UpdateEmployee,
		authMW.RequireRoles(entities.RoleAdmin, entities.RoleSupervisor))
	secureGroup.DELETE("/:id", employeeCtrl.DeleteEmployee,
		authMW.RequireRoles(entities.RoleAdmin))
}
