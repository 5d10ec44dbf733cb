package services

import (
	"context"

	"employee-portal/internal/entities"
	"employee-portal/internal/repositories"
	"employee-portal/pkg/types"
)

type ReportServiceInterface interface {
	GetRoster(ctx context.Context, filter types.Filter) ([]entities.Employee, error)
}

// ReportService отдаёт полный срез реестра под выгрузку в XLSX.
type ReportService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
}

func NewReportService(employeeRepository repositories.EmployeeRepositoryInterface) ReportServiceInterface {
	return &ReportService{employeeRepository: employeeRepository}
}

func (s *ReportService) GetRoster(ctx context.Context, filter types.Filter) ([]entities.Employee, error) {
	// Выгрузка игнорирует пагинацию: в файл попадает вся выборка.
	filter.WithPagination = false

	employees, _, err := s.employeeRepository.GetEmployees(ctx, filter)
	if err != nil {
		return nil, err
	}
	return employees, nil
}
