package events

import (
	"employee-portal/internal/entities"
)

const (
	EmployeeCreatedName = "employee.created"
	EmployeeUpdatedName = "employee.updated"
	EmployeeDeletedName = "employee.deleted"
)

// EmployeeCreatedEvent возникает после успешного создания записи сотрудника.
type EmployeeCreatedEvent struct {
	Employee entities.Employee
	ActorID  uint64
}

func (e EmployeeCreatedEvent) Name() string {
	return EmployeeCreatedName
}

// EmployeeUpdatedEvent возникает после успешного обновления записи.
type EmployeeUpdatedEvent struct {
	Employee entities.Employee
	ActorID  uint64
}

func (e EmployeeUpdatedEvent) Name() string {
	return EmployeeUpdatedName
}

// EmployeeDeletedEvent возникает после удаления записи.
type EmployeeDeletedEvent struct {
	EmployeeID uint64
	FullName   string
	ActorID    uint64
}

func (e EmployeeDeletedEvent) Name() string {
	return EmployeeDeletedName
}
