package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	"employee-portal/internal/repositories"
	"employee-portal/pkg/config"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.Employee, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*entities.Employee, error)
}

type AuthService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	logger       *zap.Logger
	cfg          *config.AuthConfig
}

func NewAuthService(
	employeeRepo repositories.EmployeeRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		employeeRepo: employeeRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cfg:          cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.Employee, error) {
	lockoutKey := fmt.Sprintf("login_attempts:%s", payload.Email)

	// Блокировка по числу неудачных попыток.
	attemptsStr, _ := s.cacheRepo.Get(ctx, lockoutKey)
	if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
		s.logger.Warn("Login: превышен лимит попыток входа", zap.String("email", payload.Email))
		return nil, apperrors.NewHttpError(
			http.StatusTooManyRequests,
			fmt.Sprintf("Слишком много попыток входа. Попробуйте через %.0f минут.", s.cfg.LockoutDuration.Minutes()),
			nil,
			nil,
		)
	}

	employee, err := s.employeeRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		// Не раскрываем, существует ли такой email.
		s.registerFailedAttempt(ctx, lockoutKey)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(employee.Password, payload.Password); err != nil {
		s.registerFailedAttempt(ctx, lockoutKey)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cacheRepo.Delete(ctx, lockoutKey); err != nil {
		s.logger.Warn("Login: не удалось сбросить счётчик попыток", zap.Error(err))
	}

	return employee, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, key string) {
	if _, err := s.cacheRepo.Incr(ctx, key, s.cfg.LockoutDuration); err != nil {
		s.logger.Warn("Login: не удалось увеличить счётчик попыток", zap.Error(err))
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*entities.Employee, error) {
	role := entities.RoleEmployee
	if payload.Role != "" {
		parsed, err := entities.ParseRole(payload.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
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
		Role:          role,
		DateOfJoining: time.Now(),
		Status:        entities.StatusActive,
	}

	created, err := s.employeeRepo.CreateEmployee(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Зарегистрирован пользователь", zap.Uint64("id", created.ID), zap.String("role", created.Role.String()))
	return created, nil
}
