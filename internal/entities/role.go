package entities

import apperrors "employee-portal/pkg/errors"

// Role — закрытый перечень ролей. Любое другое значение отклоняется
// на границе системы, без молчаливых умолчаний.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleSupervisor Role = "Supervisor"
	RoleEmployee   Role = "Employee"
)

// ParseRole валидирует строку роли. Пустая строка означает
// "роль не указана" — умолчание решает вызывающий код.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleSupervisor, RoleEmployee:
		return Role(s), nil
	}
	return "", apperrors.ErrUnknownRole
}

func (r Role) String() string {
	return string(r)
}

// EmployeeStatus — статус записи сотрудника.
type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "Active"
	StatusInactive EmployeeStatus = "Inactive"
)

func ParseEmployeeStatus(s string) (EmployeeStatus, error) {
	switch EmployeeStatus(s) {
	case StatusActive, StatusInactive:
		return EmployeeStatus(s), nil
	}
	return "", apperrors.ErrUnknownStatus
}
