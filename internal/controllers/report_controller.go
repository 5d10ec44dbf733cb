package controllers

import (
	"fmt"
	"net/http"
	"time"

	"employee-portal/internal/entities"
	"employee-portal/internal/services"
	"employee-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var rosterHeaders = []interface{}{
	"ID", "Табельный номер", "Имя", "Фамилия", "Email",
	"Отдел", "Роль", "ID руководителя", "Дата приёма", "Статус",
}

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetRosterReport выгружает реестр сотрудников в XLSX.
// Фильтры те же, что и у списка сотрудников.
func (c *ReportController) GetRosterReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	employees, err := c.reportService.GetRoster(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return c.respondWithXLSX(ctx, employees)
}

func rosterRow(e entities.Employee) []interface{} {
	managerID := ""
	if e.ManagerID != nil {
		managerID = fmt.Sprintf("%d", *e.ManagerID)
	}
	return []interface{}{
		e.ID, e.EmployeeID, e.FirstName, e.LastName, e.Email,
		e.Department, e.Role.String(), managerID,
		e.DateOfJoining.Format("2006-01-02"), string(e.Status),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, employees []entities.Employee) error {
	f := excelize.NewFile()
	sheet := "Реестр сотрудников"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &rosterHeaders)

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "J1", style)

	for i, e := range employees {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rosterRow(e)
		f.SetSheetRow(sheet, cell, &row)
	}

	f.SetColWidth(sheet, "B", "B", 18)
	f.SetColWidth(sheet, "C", "E", 25)
	f.SetColWidth(sheet, "F", "G", 18)
	f.SetColWidth(sheet, "I", "I", 15)

	fileName := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
