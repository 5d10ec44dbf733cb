package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"employee-portal/internal/authz"
	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	"employee-portal/internal/events"
	"employee-portal/internal/repositories"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/eventbus"
	"employee-portal/pkg/types"
	"employee-portal/pkg/utils"

	"go.uber.org/zap"
)

const dateOfJoiningLayout = "2006-01-02"

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) (*dto.EmployeeListDTO, error)
	FindEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error)
	CreateEmployee(ctx context.Context, actor authz.Actor, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error)
	UpdateEmployee(ctx context.Context, actor authz.Actor, id uint64, payload dto.UpdateEmployeeDTO, rawRequestBody []byte) (*dto.EmployeeDTO, error)
	DeleteEmployee(ctx context.Context, actor authz.Actor, id uint64) error
}

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	bus                *eventbus.Bus
	logger             *zap.Logger
}

func NewEmployeeService(
	employeeRepository repositories.EmployeeRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) EmployeeServiceInterface {
	return &EmployeeService{
		employeeRepository: employeeRepository,
		bus:                bus,
		logger:             logger,
	}
}

func employeeEntityToDTO(entity *entities.Employee) *dto.EmployeeDTO {
	if entity == nil {
		return nil
	}

	res := &dto.EmployeeDTO{
		ID:            entity.ID,
		EmployeeID:    entity.EmployeeID,
		FirstName:     entity.FirstName,
		LastName:      entity.LastName,
		Email:         entity.Email,
		Department:    entity.Department,
		Role:          entity.Role.String(),
		ManagerID:     entity.ManagerID,
		DateOfJoining: entity.DateOfJoining.Format(dateOfJoiningLayout),
		Status:        string(entity.Status),
	}
	if entity.CreatedAt != nil {
		res.CreatedAt = entity.CreatedAt.Format("2006-01-02 15:04:05")
	}
	if entity.UpdatedAt != nil {
		res.UpdatedAt = entity.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return res
}

func employeeEntitiesToDTOs(list []entities.Employee) []dto.EmployeeDTO {
	dtos := make([]dto.EmployeeDTO, 0, len(list))
	for i := range list {
		dtos = append(dtos, *employeeEntityToDTO(&list[i]))
	}
	return dtos
}

func (s *EmployeeService) GetEmployees(ctx context.Context, filter types.Filter) (*dto.EmployeeListDTO, error) {
	employees, totalCount, err := s.employeeRepository.GetEmployees(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.EmployeeListDTO{
		List:       employeeEntitiesToDTOs(employees),
		Pagination: types.NewPagination(totalCount, filter.Page, filter.Limit),
	}, nil
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error) {
	employee, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return employeeEntityToDTO(employee), nil
}

// ensureManagerExists проверяет, что manager_id указывает на существующую
// запись. Ссылочная целостность в схеме не закреплена, поэтому проверяем явно.
func (s *EmployeeService) ensureManagerExists(ctx context.Context, managerID *uint64) error {
	if managerID == nil {
		return nil
	}
	if _, err := s.employeeRepository.FindEmployee(ctx, *managerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrManagerNotFound
		}
		return err
	}
	return nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, actor authz.Actor, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
	// Отсутствующая роль означает Employee; всё остальное валидируется строго.
	newRole := entities.RoleEmployee
	if payload.Role != "" {
		parsed, err := entities.ParseRole(payload.Role)
		if err != nil {
			return nil, err
		}
		newRole = parsed
	}

	// Решение политики до какого-либо обращения к хранилищу.
	managerID, err := authz.CanCreate(actor, newRole, payload.ManagerID)
	if err != nil {
		s.logger.Warn("CreateEmployee: отказ политики доступа",
			zap.Uint64("actorID", actor.ID),
			zap.String("actorRole", actor.Role.String()),
			zap.String("newRole", newRole.String()),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.ensureManagerExists(ctx, managerID); err != nil {
		return nil, err
	}

	status := entities.StatusActive
	if payload.Status != "" {
		parsed, err := entities.ParseEmployeeStatus(payload.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	dateOfJoining := time.Now()
	if payload.DateOfJoining != nil {
		parsed, err := time.Parse(dateOfJoiningLayout, *payload.DateOfJoining)
		if err != nil {
			return nil, apperrors.NewBadRequestError("неверный формат даты приёма на работу")
		}
		dateOfJoining = parsed
	}

	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	entity := &entities.Employee{
		EmployeeID:    payload.EmployeeID,
		FirstName:     payload.FirstName,
		LastName:      payload.LastName,
		Email:         payload.Email,
		Password:      hashedPassword,
		Department:    payload.Department,
		Role:          newRole,
		ManagerID:     managerID,
		DateOfJoining: dateOfJoining,
		Status:        status,
	}

	created, err := s.employeeRepository.CreateEmployee(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Создан сотрудник",
		zap.Uint64("id", created.ID),
		zap.String("role", created.Role.String()),
		zap.Uint64("creatorID", actor.ID),
	)
	s.bus.Publish(ctx, events.EmployeeCreatedEvent{Employee: *created, ActorID: actor.ID})
	return employeeEntityToDTO(created), nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, actor authz.Actor, id uint64, payload dto.UpdateEmployeeDTO, rawRequestBody []byte) (*dto.EmployeeDTO, error) {
	target, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.CanUpdate(actor, target); err != nil {
		s.logger.Warn("UpdateEmployee: отказ политики доступа",
			zap.Uint64("actorID", actor.ID),
			zap.Uint64("targetID", target.ID),
			zap.Error(err),
		)
		return nil, err
	}

	// Какие поля реально присланы — определяем по сырому телу запроса,
	// иначе null и «не прислано» неразличимы.
	var sentFields map[string]json.RawMessage
	if err := json.Unmarshal(rawRequestBody, &sentFields); err != nil {
		return nil, apperrors.NewBadRequestError("неверное тело запроса")
	}

	merged := *target

	if payload.FirstName != nil {
		merged.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		merged.LastName = *payload.LastName
	}
	if payload.Email != nil {
		merged.Email = *payload.Email
	}
	if payload.EmployeeID != nil {
		merged.EmployeeID = *payload.EmployeeID
	}
	if payload.Department != nil {
		merged.Department = *payload.Department
	}
	if payload.Role != nil {
		parsed, err := entities.ParseRole(*payload.Role)
		if err != nil {
			return nil, err
		}
		merged.Role = parsed
	}
	if payload.Status != nil {
		parsed, err := entities.ParseEmployeeStatus(*payload.Status)
		if err != nil {
			return nil, err
		}
		merged.Status = parsed
	}
	if payload.DateOfJoining != nil {
		parsed, err := time.Parse(dateOfJoiningLayout, *payload.DateOfJoining)
		if err != nil {
			return nil, apperrors.NewBadRequestError("неверный формат даты приёма на работу")
		}
		merged.DateOfJoining = parsed
	}

	if _, sent := sentFields["manager_id"]; sent {
		merged.ManagerID = payload.ManagerID.Ptr()
		if err := s.ensureManagerExists(ctx, merged.ManagerID); err != nil {
			return nil, err
		}
	}

	// Пустой пароль никогда не затирает сохранённый хеш.
	if payload.Password != nil && strings.TrimSpace(*payload.Password) != "" {
		hashedPassword, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		merged.Password = hashedPassword
	}

	updated, err := s.employeeRepository.UpdateEmployee(ctx, &merged)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(ctx, events.EmployeeUpdatedEvent{Employee: *updated, ActorID: actor.ID})
	return employeeEntityToDTO(updated), nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, actor authz.Actor, id uint64) error {
	target, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.CanDelete(actor); err != nil {
		s.logger.Warn("DeleteEmployee: отказ политики доступа",
			zap.Uint64("actorID", actor.ID),
			zap.Uint64("targetID", id),
			zap.Error(err),
		)
		return err
	}

	if err := s.employeeRepository.DeleteEmployee(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.EmployeeDeletedEvent{
		EmployeeID: target.ID,
		FullName:   target.FullName(),
		ActorID:    actor.ID,
	})
	return nil
}
