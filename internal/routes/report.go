package routes

import (
	"employee-portal/internal/controllers"
	"employee-portal/internal/entities"
	"employee-portal/internal/services"
	"employee-portal/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runReportRouter(api *echo.Group, authMW *middleware.AuthMiddleware, reportService services.ReportServiceInterface, logger *zap.Logger) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	reportGroup := api.Group("/reports", authMW.Auth)
	reportGroup.GET("/employees", reportCtrl.GetRosterReport,
		authMW.RequireRoles(entities.RoleAdmin, entities.RoleSupervisor))
}
