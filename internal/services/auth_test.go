package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	"employee-portal/pkg/config"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cacheRepoStub struct {
	values map[string]string
}

func newCacheRepoStub() *cacheRepoStub {
	return &cacheRepoStub{values: make(map[string]string)}
}

func (c *cacheRepoStub) Get(_ context.Context, key string) (string, error) {
	return c.values[key], nil
}

func (c *cacheRepoStub) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *cacheRepoStub) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	current, _ := strconv.ParseInt(c.values[key], 10, 64)
	current++
	c.values[key] = strconv.FormatInt(current, 10)
	return current, nil
}

func (c *cacheRepoStub) Delete(_ context.Context, key string) error {
	delete(c.values, key)
	return nil
}

func newTestAuthService(t *testing.T) (AuthServiceInterface, *employeeRepoStub, *cacheRepoStub) {
	t.Helper()
	repo := newEmployeeRepoStub()
	cache := newCacheRepoStub()
	cfg := &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: 15 * time.Minute}
	return NewAuthService(repo, cache, zap.NewNop(), cfg), repo, cache
}

func seedLoginUser(t *testing.T, repo *employeeRepoStub, email, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	_, err = repo.CreateEmployee(context.Background(), &entities.Employee{
		EmployeeID: "ZS10", FirstName: "Иван", LastName: "Иванов",
		Email: email, Password: hash,
		Department: "Engineering", Role: entities.RoleEmployee,
		DateOfJoining: time.Now(), Status: entities.StatusActive,
	})
	require.NoError(t, err)
}

func TestLogin_Success(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	seedLoginUser(t, repo, "ivanov@zevenstone.com", "secret-123")

	employee, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "ivanov@zevenstone.com", Password: "secret-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ivanov@zevenstone.com", employee.Email)
}

func TestLogin_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	seedLoginUser(t, repo, "ivanov@zevenstone.com", "secret-123")
	ctx := context.Background()

	_, errWrongPassword := svc.Login(ctx, dto.LoginDTO{
		Email: "ivanov@zevenstone.com", Password: "wrong",
	})
	_, errUnknownEmail := svc.Login(ctx, dto.LoginDTO{
		Email: "nobody@zevenstone.com", Password: "secret-123",
	})

	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, apperrors.ErrInvalidCredentials)
}

func TestLogin_LockoutAfterTooManyAttempts(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	seedLoginUser(t, repo, "ivanov@zevenstone.com", "secret-123")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, dto.LoginDTO{Email: "ivanov@zevenstone.com", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Даже верный пароль больше не проходит.
	_, err := svc.Login(ctx, dto.LoginDTO{Email: "ivanov@zevenstone.com", Password: "secret-123"})
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 429, httpErr.Code)
}

func TestLogin_SuccessResetsAttemptCounter(t *testing.T) {
	svc, repo, cache := newTestAuthService(t)
	seedLoginUser(t, repo, "ivanov@zevenstone.com", "secret-123")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, dto.LoginDTO{Email: "ivanov@zevenstone.com", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	_, err := svc.Login(ctx, dto.LoginDTO{Email: "ivanov@zevenstone.com", Password: "secret-123"})
	require.NoError(t, err)
	assert.Empty(t, cache.values["login_attempts:ivanov@zevenstone.com"])
}

func TestRegister_DefaultsAndHashing(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	created, err := svc.Register(context.Background(), dto.RegisterDTO{
		FirstName: "Пётр", LastName: "Петров",
		Email: "petrov@zevenstone.com", Password: "secret-123",
		EmployeeID: "ZS11", Department: "Sales",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleEmployee, created.Role)
	assert.Equal(t, entities.StatusActive, created.Status)
	assert.False(t, created.DateOfJoining.IsZero())

	stored, err := repo.FindEmployee(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NoError(t, utils.ComparePasswords(stored.Password, "secret-123"))
}
