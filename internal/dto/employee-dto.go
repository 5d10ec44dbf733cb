package dto

import (
	"employee-portal/pkg/types"

	"github.com/aarondl/null/v8"
)

type CreateEmployeeDTO struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	EmployeeID string `json:"employee_id" validate:"required"`
	Department string `json:"department" validate:"required"`

	// Пустая роль означает Employee; любое другое значение, кроме трёх
	// допустимых, отклоняется сервисом.
	Role string `json:"role" validate:"omitempty,oneof=Admin Supervisor Employee"`

	ManagerID     *uint64 `json:"manager_id" validate:"omitempty"`
	DateOfJoining *string `json:"date_of_joining" validate:"omitempty,datetime=2006-01-02"`
	Status        string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateEmployeeDTO — частичное обновление: трогаются только присланные поля.
// ManagerID типа null.Uint64, чтобы различать null (очистить) и значение;
// «поле не прислано» определяется по сырому телу запроса в сервисе.
type UpdateEmployeeDTO struct {
	FirstName  *string `json:"first_name" validate:"omitempty"`
	LastName   *string `json:"last_name" validate:"omitempty"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Password   *string `json:"password" validate:"omitempty"`
	EmployeeID *string `json:"employee_id" validate:"omitempty"`
	Department *string `json:"department" validate:"omitempty"`
	Role       *string `json:"role" validate:"omitempty,oneof=Admin Supervisor Employee"`

	ManagerID null.Uint64 `json:"manager_id"`

	DateOfJoining *string `json:"date_of_joining" validate:"omitempty,datetime=2006-01-02"`
	Status        *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type EmployeeDTO struct {
	ID            uint64  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Department    string  `json:"department"`
	Role          string  `json:"role"`
	ManagerID     *uint64 `json:"manager_id"`
	DateOfJoining string  `json:"date_of_joining"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type EmployeeListDTO struct {
	List       []EmployeeDTO    `json:"list"`
	Pagination types.Pagination `json:"pagination"`
}

type ShortEmployeeDTO struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
