package entities

import (
	"time"

	"employee-portal/pkg/types"
)

type Employee struct {
	ID         uint64 `json:"id" db:"id"`
	EmployeeID string `json:"employee_id" db:"employee_id"`
	FirstName  string `json:"first_name" db:"first_name"`
	LastName   string `json:"last_name" db:"last_name"`
	Email      string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	Department string `json:"department" db:"department"`
	Role       Role   `json:"role" db:"role"`

	// ManagerID — ссылка на запись руководителя. NULL означает,
	// что прямого руководителя нет (например, у администратора).
	ManagerID *uint64 `json:"manager_id" db:"manager_id"`

	DateOfJoining time.Time      `json:"date_of_joining" db:"date_of_joining"`
	Status        EmployeeStatus `json:"status" db:"status"`

	types.BaseEntity
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
