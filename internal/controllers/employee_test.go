package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"employee-portal/internal/authz"
	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	"employee-portal/pkg/contextkeys"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/types"
	"employee-portal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type employeeServiceStub struct {
	getEmployeesFn   func(ctx context.Context, filter types.Filter) (*dto.EmployeeListDTO, error)
	findEmployeeFn   func(ctx context.Context, id uint64) (*dto.EmployeeDTO, error)
	createEmployeeFn func(ctx context.Context, actor authz.Actor, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error)
	updateEmployeeFn func(ctx context.Context, actor authz.Actor, id uint64, payload dto.UpdateEmployeeDTO, rawRequestBody []byte) (*dto.EmployeeDTO, error)
	deleteEmployeeFn func(ctx context.Context, actor authz.Actor, id uint64) error
}

func (s *employeeServiceStub) GetEmployees(ctx context.Context, filter types.Filter) (*dto.EmployeeListDTO, error) {
	return s.getEmployeesFn(ctx, filter)
}

func (s *employeeServiceStub) FindEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error) {
	return s.findEmployeeFn(ctx, id)
}

func (s *employeeServiceStub) CreateEmployee(ctx context.Context, actor authz.Actor, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
	return s.createEmployeeFn(ctx, actor, payload)
}

func (s *employeeServiceStub) UpdateEmployee(ctx context.Context, actor authz.Actor, id uint64, payload dto.UpdateEmployeeDTO, rawRequestBody []byte) (*dto.EmployeeDTO, error) {
	return s.updateEmployeeFn(ctx, actor, id, payload, rawRequestBody)
}

func (s *employeeServiceStub) DeleteEmployee(ctx context.Context, actor authz.Actor, id uint64) error {
	return s.deleteEmployeeFn(ctx, actor, id)
}

// newEchoContext собирает echo-контекст с актором, как это делает auth-middleware.
func newEchoContext(t *testing.T, method, target, body string, actor authz.Actor) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ctx := context.WithValue(req.Context(), contextkeys.UserIDKey, actor.ID)
	ctx = context.WithValue(ctx, contextkeys.UserRoleKey, actor.Role)
	c.SetRequest(req.WithContext(ctx))
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateEmployee_PolicyDenialBecomes403(t *testing.T) {
	svc := &employeeServiceStub{
		createEmployeeFn: func(_ context.Context, _ authz.Actor, _ dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
			return nil, apperrors.ErrRoleEscalation
		},
	}
	ctrl := NewEmployeeController(svc, zap.NewNop())

	body := `{"first_name":"Иван","last_name":"Иванов","email":"i@zevenstone.com","password":"secret-123","employee_id":"ZS10","department":"IT","role":"Supervisor"}`
	c, rec := newEchoContext(t, http.MethodPost, "/api/employees", body,
		authz.Actor{ID: 2, Role: entities.RoleSupervisor})

	require.NoError(t, ctrl.CreateEmployee(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["status"])
}

func TestCreateEmployee_ValidationFailureBecomes400(t *testing.T) {
	svc := &employeeServiceStub{
		createEmployeeFn: func(_ context.Context, _ authz.Actor, _ dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
			t.Fatal("сервис не должен вызываться при невалидном теле")
			return nil, nil
		},
	}
	ctrl := NewEmployeeController(svc, zap.NewNop())

	// Нет обязательных полей и кривой email.
	c, rec := newEchoContext(t, http.MethodPost, "/api/employees", `{"email":"not-an-email"}`,
		authz.Actor{ID: 1, Role: entities.RoleAdmin})

	require.NoError(t, ctrl.CreateEmployee(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEmployee_Success(t *testing.T) {
	svc := &employeeServiceStub{
		createEmployeeFn: func(_ context.Context, actor authz.Actor, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
			assert.Equal(t, uint64(1), actor.ID)
			return &dto.EmployeeDTO{ID: 7, Email: payload.Email, Role: "Employee"}, nil
		},
	}
	ctrl := NewEmployeeController(svc, zap.NewNop())

	body := `{"first_name":"Иван","last_name":"Иванов","email":"i@zevenstone.com","password":"secret-123","employee_id":"ZS10","department":"IT"}`
	c, rec := newEchoContext(t, http.MethodPost, "/api/employees", body,
		authz.Actor{ID: 1, Role: entities.RoleAdmin})

	require.NoError(t, ctrl.CreateEmployee(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["status"])
	assert.Equal(t, float64(7), resp["body"].(map[string]interface{})["id"])
}

func TestFindEmployee_BadIDParam(t *testing.T) {
	ctrl := NewEmployeeController(&employeeServiceStub{}, zap.NewNop())

	c, rec := newEchoContext(t, http.MethodGet, "/api/employees/abc", "",
		authz.Actor{ID: 1, Role: entities.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, ctrl.FindEmployee(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEmployee_NotFoundBecomes404(t *testing.T) {
	svc := &employeeServiceStub{
		deleteEmployeeFn: func(_ context.Context, _ authz.Actor, _ uint64) error {
			return apperrors.ErrNotFound
		},
	}
	ctrl := NewEmployeeController(svc, zap.NewNop())

	c, rec := newEchoContext(t, http.MethodDelete, "/api/employees/99", "",
		authz.Actor{ID: 1, Role: entities.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, ctrl.DeleteEmployee(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
